package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"patient-record-service/internal/app/contracts"
	"patient-record-service/internal/app/models"
	"patient-record-service/internal/pkg/constvars"
	"patient-record-service/internal/pkg/exceptions"
	"patient-record-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type filePatientStorage struct {
	Path string
	Log  *zap.Logger
}

func NewFilePatientStorage(path string, logger *zap.Logger) contracts.PatientStorage {
	return &filePatientStorage{
		Path: path,
		Log:  logger,
	}
}

func (s *filePatientStorage) Load(ctx context.Context) ([]models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Debug("filePatientStorage.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStoragePathKey, s.Path),
	)

	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return readDocument(s.Log, requestID, constvars.StorageBackendFile, nil), nil
	}
	if err != nil {
		s.Log.Error("filePatientStorage.Load error reading document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStoragePathKey, s.Path),
			zap.Error(err),
		)
		return nil, exceptions.ErrStorageRead(err, constvars.StorageBackendFile)
	}

	return readDocument(s.Log, requestID, constvars.StorageBackendFile, data), nil
}

// Save writes the document to a temp file next to the target and renames it
// over the target, so readers never observe a half-written document.
func (s *filePatientStorage) Save(ctx context.Context, patients []models.Patient) error {
	requestID := utils.GetRequestID(ctx)
	s.Log.Debug("filePatientStorage.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStoragePathKey, s.Path),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeDocument(patients)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.writeAtomically(data)
	if err != nil {
		s.Log.Error("filePatientStorage.Save error writing document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStoragePathKey, s.Path),
			zap.Error(err),
		)
		return exceptions.ErrStorageWrite(err, constvars.StorageBackendFile)
	}

	return nil
}

func (s *filePatientStorage) writeAtomically(data []byte) error {
	tempFile, err := os.CreateTemp(filepath.Dir(s.Path), constvars.StorageTempFilePattern)
	if err != nil {
		return err
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	_, err = tempFile.Write(data)
	if err == nil {
		err = tempFile.Sync()
	}
	if closeErr := tempFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	err = os.Chmod(tempPath, constvars.StorageFileMode)
	if err != nil {
		return err
	}

	return os.Rename(tempPath, s.Path)
}
