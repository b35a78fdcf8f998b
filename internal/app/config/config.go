package config

import (
	"patient-record-service/internal/pkg/constvars"
	"patient-record-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		File: File{
			Path: utils.GetEnvString("STORAGE_FILE_PATH", "patients.json"),
		},
		Redis: Redis{
			Host:        utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:        utils.GetEnvString("REDIS_PORT", "6379"),
			Password:    utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:          utils.GetEnvInt("REDIS_DB", 0),
			DocumentKey: utils.GetEnvString("REDIS_DOCUMENT_KEY", constvars.DefaultRedisDocumentKey),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "patients"),
			ObjectName: utils.GetEnvString("MINIO_OBJECT_NAME", constvars.DefaultMinioObjectName),
		},
		MongoDB: MongoDB{
			URI:        utils.GetEnvString("MONGODB_URI", "mongodb://localhost:27017"),
			DbName:     utils.GetEnvString("MONGODB_DB_NAME", "patient_records"),
			Collection: utils.GetEnvString("MONGODB_COLLECTION", constvars.DefaultMongoDBCollection),
		},
		PostgresDB: PostgresDB{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "patient_records"),
			SSLMode:  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "UTC"),
			StorageBackend:           utils.GetEnvString("APP_STORAGE_BACKEND", constvars.StorageBackendFile),
			EventsEnabled:            utils.GetEnvBool("APP_EVENTS_ENABLED", false),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:  utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		RabbitMQ: AppRabbitMQ{
			PatientEventsQueue: utils.GetEnvString("RABBITMQ_PATIENT_EVENTS_QUEUE", "patient_events"),
		},
	}
}
