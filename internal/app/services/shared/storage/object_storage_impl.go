package storage

import (
	"bytes"
	"context"
	"patient-record-service/internal/app/contracts"
	"patient-record-service/internal/app/models"
	"patient-record-service/internal/pkg/constvars"
	"patient-record-service/internal/pkg/exceptions"
	"patient-record-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type objectPatientStorage struct {
	ObjectStorage contracts.ObjectStorage
	BucketName    string
	ObjectName    string
	Log           *zap.Logger
}

func NewObjectPatientStorage(objectStorage contracts.ObjectStorage, bucketName, objectName string, logger *zap.Logger) contracts.PatientStorage {
	return &objectPatientStorage{
		ObjectStorage: objectStorage,
		BucketName:    bucketName,
		ObjectName:    objectName,
		Log:           logger,
	}
}

func (s *objectPatientStorage) Load(ctx context.Context) ([]models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Debug("objectPatientStorage.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, s.BucketName),
		zap.String(constvars.LoggingObjectNameKey, s.ObjectName),
	)

	data, err := s.ObjectStorage.GetObject(ctx, s.BucketName, s.ObjectName)
	if err != nil {
		s.Log.Error("objectPatientStorage.Load error getting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, s.BucketName),
			zap.String(constvars.LoggingObjectNameKey, s.ObjectName),
			zap.Error(err),
		)
		return nil, exceptions.ErrStorageRead(err, constvars.StorageBackendMinio)
	}

	return readDocument(s.Log, requestID, constvars.StorageBackendMinio, data), nil
}

func (s *objectPatientStorage) Save(ctx context.Context, patients []models.Patient) error {
	requestID := utils.GetRequestID(ctx)
	s.Log.Debug("objectPatientStorage.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, s.BucketName),
		zap.String(constvars.LoggingObjectNameKey, s.ObjectName),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)

	data, err := encodeDocument(patients)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.ObjectStorage.PutObject(
		ctx,
		s.BucketName,
		s.ObjectName,
		bytes.NewReader(data),
		int64(len(data)),
		constvars.MIMEApplicationJSON,
	)
	if err != nil {
		s.Log.Error("objectPatientStorage.Save error putting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, s.BucketName),
			zap.String(constvars.LoggingObjectNameKey, s.ObjectName),
			zap.Error(err),
		)
		return exceptions.ErrStorageWrite(err, constvars.StorageBackendMinio)
	}

	return nil
}
