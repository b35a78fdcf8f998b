package logger

import (
	"patient-record-service/internal/app/config"
	"patient-record-service/internal/pkg/constvars"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewZapLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel zapcore.Level
	}{
		{name: "Debug Level", level: "debug", wantLevel: zapcore.DebugLevel},
		{name: "Warn Level", level: "warn", wantLevel: zapcore.WarnLevel},
		{name: "Upper Case Level", level: "ERROR", wantLevel: zapcore.ErrorLevel},
		{name: "Unknown Level Falls Back To Info", level: "verbose", wantLevel: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driverConfig := &config.DriverConfig{Logger: config.Logger{Level: tt.level}}
			internalConfig := &config.InternalConfig{App: config.App{Env: constvars.AppEnvDevelopment, Version: "test"}}

			log, err := NewZapLogger(driverConfig, internalConfig)

			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.wantLevel))
			assert.False(t, log.Core().Enabled(tt.wantLevel-1))
		})
	}
}

func TestNewZapLogger_ProductionWritesToFiles(t *testing.T) {
	dir := t.TempDir()
	driverConfig := &config.DriverConfig{Logger: config.Logger{
		Level:               "info",
		OutputFileName:      filepath.Join(dir, "app.log"),
		OutputErrorFileName: filepath.Join(dir, "app_error.log"),
	}}
	internalConfig := &config.InternalConfig{App: config.App{Env: constvars.AppEnvProduction, Version: "1.0.0"}}

	log, err := NewZapLogger(driverConfig, internalConfig)

	require.NoError(t, err)
	log.Info("patient saved")
	require.NoError(t, log.Sync())
	assert.FileExists(t, driverConfig.Logger.OutputFileName)
}

func TestOutputPathsFor(t *testing.T) {
	driverConfig := &config.DriverConfig{Logger: config.Logger{
		OutputFileName:      "logger.log",
		OutputErrorFileName: "logger_error.log",
	}}

	t.Run("Production", func(t *testing.T) {
		outputPaths, errorOutputPaths := outputPathsFor(driverConfig, constvars.AppEnvProduction)

		assert.Equal(t, []string{"logger.log"}, outputPaths)
		assert.Equal(t, []string{"stderr", "logger_error.log"}, errorOutputPaths)
	})

	t.Run("Development", func(t *testing.T) {
		outputPaths, errorOutputPaths := outputPathsFor(driverConfig, constvars.AppEnvDevelopment)

		assert.Equal(t, []string{"stdout"}, outputPaths)
		assert.Equal(t, []string{"stderr"}, errorOutputPaths)
	})
}
