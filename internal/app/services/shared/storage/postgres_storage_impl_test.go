package storage

import (
	"context"
	"database/sql"
	"errors"
	"patient-record-service/internal/app/models"
	"patient-record-service/internal/pkg/constvars"
	"patient-record-service/internal/pkg/exceptions"
	"patient-record-service/internal/pkg/queries"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var patientColumns = []string{"id", "name", "city", "age", "gender", "height", "weight"}

func TestPostgresPatientStorage_Load(t *testing.T) {
	t.Run("Rows In Position Order", func(t *testing.T) {
		db, mock := setupMockDB(t)
		rows := sqlmock.NewRows(patientColumns).
			AddRow(2, "Ravi Mehta", "Mumbai", 35, "male", 180.0, 60.0).
			AddRow(1, "Ananya Verma", "Guwahati", 28, "female", 165.0, 90.0)
		mock.ExpectQuery(queries.FindAllPatientsQuery).WillReturnRows(rows)

		storage := NewPostgresPatientStorage(db, zap.NewNop())
		patients, err := storage.Load(context.Background())

		require.NoError(t, err)
		require.Len(t, patients, 2)
		assert.Equal(t, 2, patients[0].ID)
		assert.Equal(t, "Guwahati", patients[1].City)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Table Is Empty Collection", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(queries.FindAllPatientsQuery).
			WillReturnError(&pq.Error{Code: postgresErrorCodeUndefinedTable, Message: `relation "patients" does not exist`})

		storage := NewPostgresPatientStorage(db, zap.NewNop())
		patients, err := storage.Load(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, patients)
		assert.Empty(t, patients)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Connection Error Is Returned", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(queries.FindAllPatientsQuery).WillReturnError(errors.New("connection refused"))

		storage := NewPostgresPatientStorage(db, zap.NewNop())
		_, err := storage.Load(context.Background())

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresPatientStorage_Save(t *testing.T) {
	patients := []models.Patient{
		{ID: 1, Name: "Ananya Verma", City: "Guwahati", Age: 28, Gender: "female", Height: 165, Weight: 90},
		{ID: 2, Name: "Ravi Mehta", City: "Mumbai", Age: 35, Gender: "male", Height: 180, Weight: 60},
	}

	t.Run("Replaces Table Content In One Transaction", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(queries.CreatePatientsTableQuery).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(queries.DeleteAllPatientsQuery).WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(queries.InsertPatientQuery).
			WithArgs(0, 1, "Ananya Verma", "Guwahati", 28, "female", 165.0, 90.0).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(queries.InsertPatientQuery).
			WithArgs(1, 2, "Ravi Mehta", "Mumbai", 35, "male", 180.0, 60.0).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		storage := NewPostgresPatientStorage(db, zap.NewNop())
		err := storage.Save(context.Background(), patients)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insert Failure Rolls Back", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(queries.CreatePatientsTableQuery).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(queries.DeleteAllPatientsQuery).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(queries.InsertPatientQuery).WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		storage := NewPostgresPatientStorage(db, zap.NewNop())
		err := storage.Save(context.Background(), patients)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
