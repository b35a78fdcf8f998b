package storage

import (
	"context"
	"database/sql"
	"errors"
	"patient-record-service/internal/app/contracts"
	"patient-record-service/internal/app/models"
	"patient-record-service/internal/pkg/constvars"
	"patient-record-service/internal/pkg/exceptions"
	"patient-record-service/internal/pkg/queries"
	"patient-record-service/internal/pkg/utils"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const postgresErrorCodeUndefinedTable = "42P01"

type postgresPatientStorage struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewPostgresPatientStorage(db *sql.DB, logger *zap.Logger) contracts.PatientStorage {
	return &postgresPatientStorage{
		DB:  db,
		Log: logger,
	}
}

func (s *postgresPatientStorage) Load(ctx context.Context) ([]models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Debug("postgresPatientStorage.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := s.DB.QueryContext(ctx, queries.FindAllPatientsQuery)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == postgresErrorCodeUndefinedTable {
			s.Log.Warn("Patient table is absent, starting from an empty collection",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return []models.Patient{}, nil
		}
		s.Log.Error("postgresPatientStorage.Load error querying patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrStorageRead(exceptions.ErrPostgresDBFindData(err), constvars.StorageBackendPostgres)
	}
	defer rows.Close()

	patients := []models.Patient{}
	for rows.Next() {
		var patient models.Patient
		err = rows.Scan(
			&patient.ID,
			&patient.Name,
			&patient.City,
			&patient.Age,
			&patient.Gender,
			&patient.Height,
			&patient.Weight,
		)
		if err != nil {
			return nil, exceptions.ErrStorageRead(exceptions.ErrPostgresDBFindData(err), constvars.StorageBackendPostgres)
		}
		patients = append(patients, patient)
	}

	err = rows.Err()
	if err != nil {
		return nil, exceptions.ErrStorageRead(exceptions.ErrPostgresDBFindData(err), constvars.StorageBackendPostgres)
	}

	return patients, nil
}

// Save replaces the table content inside one transaction.
func (s *postgresPatientStorage) Save(ctx context.Context, patients []models.Patient) error {
	requestID := utils.GetRequestID(ctx)
	s.Log.Debug("postgresPatientStorage.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)

	err := s.replaceAll(ctx, patients)
	if err != nil {
		s.Log.Error("postgresPatientStorage.Save error replacing patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrStorageWrite(exceptions.ErrPostgresDBReplaceData(err), constvars.StorageBackendPostgres)
	}

	return nil
}

func (s *postgresPatientStorage) replaceAll(ctx context.Context, patients []models.Patient) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, queries.CreatePatientsTableQuery)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, queries.DeleteAllPatientsQuery)
	if err != nil {
		return err
	}

	for position, patient := range patients {
		_, err = tx.ExecContext(ctx, queries.InsertPatientQuery,
			position,
			patient.ID,
			patient.Name,
			patient.City,
			patient.Age,
			patient.Gender,
			patient.Height,
			patient.Weight,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
