package logger

import (
	"patient-record-service/internal/app/config"
	"patient-record-service/internal/pkg/constvars"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) (*zap.Logger, error) {
	outputPaths, errorOutputPaths := outputPathsFor(driverConfig, internalConfig.App.Env)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(driverConfig.Logger.Level)),
		Development:      internalConfig.App.Env == constvars.AppEnvDevelopment,
		Encoding:         "json",
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputPaths,
		ErrorOutputPaths: errorOutputPaths,
	}

	return cfg.Build(zap.Fields(
		zap.String(constvars.LoggingServiceKey, constvars.ServiceName),
		zap.String(constvars.LoggingVersionKey, internalConfig.App.Version),
		zap.String(constvars.LoggingStorageBackendKey, internalConfig.App.StorageBackend),
	))
}

// parseLevel falls back to info for anything zapcore does not recognise.
func parseLevel(level string) zapcore.Level {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return parsed
}

func outputPathsFor(driverConfig *config.DriverConfig, env string) (outputPaths, errorOutputPaths []string) {
	if env == constvars.AppEnvProduction {
		return []string{driverConfig.Logger.OutputFileName}, []string{"stderr", driverConfig.Logger.OutputErrorFileName}
	}
	return []string{"stdout"}, []string{"stderr"}
}
