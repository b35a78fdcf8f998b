package storage

import (
	"context"
	"patient-record-service/internal/app/contracts"
	"patient-record-service/internal/app/models"
	"patient-record-service/internal/pkg/constvars"
	"patient-record-service/internal/pkg/exceptions"
	"patient-record-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type redisPatientStorage struct {
	RedisRepository contracts.RedisRepository
	DocumentKey     string
	Log             *zap.Logger
}

func NewRedisPatientStorage(redisRepository contracts.RedisRepository, documentKey string, logger *zap.Logger) contracts.PatientStorage {
	return &redisPatientStorage{
		RedisRepository: redisRepository,
		DocumentKey:     documentKey,
		Log:             logger,
	}
}

func (s *redisPatientStorage) Load(ctx context.Context) ([]models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Debug("redisPatientStorage.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, s.DocumentKey),
	)

	data, err := s.RedisRepository.Get(ctx, s.DocumentKey)
	if err != nil {
		s.Log.Error("redisPatientStorage.Load error getting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, s.DocumentKey),
			zap.Error(err),
		)
		return nil, exceptions.ErrStorageRead(err, constvars.StorageBackendRedis)
	}

	return readDocument(s.Log, requestID, constvars.StorageBackendRedis, data), nil
}

func (s *redisPatientStorage) Save(ctx context.Context, patients []models.Patient) error {
	requestID := utils.GetRequestID(ctx)
	s.Log.Debug("redisPatientStorage.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, s.DocumentKey),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)

	data, err := encodeDocument(patients)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.RedisRepository.Set(ctx, s.DocumentKey, data, 0)
	if err != nil {
		s.Log.Error("redisPatientStorage.Save error setting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, s.DocumentKey),
			zap.Error(err),
		)
		return exceptions.ErrStorageWrite(err, constvars.StorageBackendRedis)
	}

	return nil
}
