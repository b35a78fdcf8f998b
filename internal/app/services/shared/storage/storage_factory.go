package storage

import (
	"patient-record-service/internal/app/config"
	"patient-record-service/internal/app/contracts"
	"patient-record-service/internal/app/services/shared/redis"
	"patient-record-service/internal/pkg/constvars"
	"patient-record-service/internal/pkg/exceptions"
)

// NewPatientStorage picks the implementation named by APP_STORAGE_BACKEND.
// The matching driver client must already be set on the bootstrap.
func NewPatientStorage(bootstrap *config.Bootstrap) (contracts.PatientStorage, error) {
	backend := bootstrap.InternalConfig.App.StorageBackend
	driverConfig := bootstrap.DriverConfig

	switch backend {
	case constvars.StorageBackendFile:
		return NewFilePatientStorage(driverConfig.File.Path, bootstrap.Logger), nil
	case constvars.StorageBackendRedis:
		if bootstrap.Redis == nil {
			break
		}
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		return NewRedisPatientStorage(redisRepository, driverConfig.Redis.DocumentKey, bootstrap.Logger), nil
	case constvars.StorageBackendMinio:
		if bootstrap.Minio == nil {
			break
		}
		minioStorage := NewMinioStorage(bootstrap.Minio)
		return NewObjectPatientStorage(minioStorage, driverConfig.Minio.BucketName, driverConfig.Minio.ObjectName, bootstrap.Logger), nil
	case constvars.StorageBackendMongoDB:
		if bootstrap.MongoDB == nil {
			break
		}
		database := bootstrap.MongoDB.Database(driverConfig.MongoDB.DbName)
		return NewMongoPatientStorage(database, driverConfig.MongoDB.Collection, bootstrap.Logger), nil
	case constvars.StorageBackendPostgres:
		if bootstrap.PostgresDB == nil {
			break
		}
		return NewPostgresPatientStorage(bootstrap.PostgresDB, bootstrap.Logger), nil
	}

	return nil, exceptions.ErrStorageUnknownBackend(backend)
}
