package patients

import (
	"context"
	"errors"
	"patient-record-service/internal/app/models"
	"patient-record-service/internal/pkg/constvars"
	"patient-record-service/internal/pkg/dto/requests"
	"patient-record-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type memoryPatientStorage struct {
	patients  []models.Patient
	loadErr   error
	saveErr   error
	saveCalls int
}

func (s *memoryPatientStorage) Load(ctx context.Context) ([]models.Patient, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return append([]models.Patient{}, s.patients...), nil
}

func (s *memoryPatientStorage) Save(ctx context.Context, patients []models.Patient) error {
	s.saveCalls++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.patients = append([]models.Patient{}, patients...)
	return nil
}

type mockPatientEventPublisher struct {
	mock.Mock
}

func (m *mockPatientEventPublisher) Publish(ctx context.Context, event *requests.PatientEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockPatientEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func seedPatients() []models.Patient {
	return []models.Patient{
		{ID: 1, Name: "Ananya Verma", City: "Guwahati", Age: 28, Gender: "female", Height: 165, Weight: 90},
		{ID: 2, Name: "Ravi Mehta", City: "Mumbai", Age: 35, Gender: "male", Height: 180, Weight: 60},
		{ID: 3, Name: "Sneha Kulkarni", City: "Pune", Age: 22, Gender: "female", Height: 150, Weight: 55.5},
		{ID: 4, Name: "Arjun Singh", City: "Delhi", Age: 35, Gender: "male", Height: 175, Weight: 75},
	}
}

func newTestUsecase(storage *memoryPatientStorage) (*patientUsecase, *mockPatientEventPublisher) {
	publisher := new(mockPatientEventPublisher)
	uc := NewPatientUsecase(storage, publisher, zap.NewNop()).(*patientUsecase)
	return uc, publisher
}

func newObservedUsecase(storage *memoryPatientStorage) (*patientUsecase, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	uc := NewPatientUsecase(storage, new(mockPatientEventPublisher), zap.New(core)).(*patientUsecase)
	return uc, logs
}

func assertPatientNotFoundLogged(t *testing.T, logs *observer.ObservedLogs, message string, patientID int) {
	t.Helper()
	entries := logs.FilterMessage(message).All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(patientID), entries[0].ContextMap()[constvars.LoggingPatientIDKey])
}

func assertStatusCode(t *testing.T, err error, statusCode int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "error should be a CustomError")
	assert.Equal(t, statusCode, customErr.StatusCode)
}

func TestPatientUsecase_FindAll(t *testing.T) {
	t.Run("Returns Every Patient With Derived Fields", func(t *testing.T) {
		uc, _ := newTestUsecase(&memoryPatientStorage{patients: seedPatients()})

		patients, err := uc.FindAll(context.Background())

		require.NoError(t, err)
		require.Len(t, patients, 4)
		assert.Equal(t, 1, patients[0].ID)
		assert.Equal(t, 24.67, patients[2].BMI)
		assert.Equal(t, constvars.BMICategoryHealthy, patients[2].Category)
	})

	t.Run("Empty Storage Returns Empty Slice", func(t *testing.T) {
		uc, _ := newTestUsecase(&memoryPatientStorage{})

		patients, err := uc.FindAll(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, patients)
		assert.Empty(t, patients)
	})

	t.Run("Storage Error Is Returned", func(t *testing.T) {
		storageErr := exceptions.ErrStorageRead(errors.New("connection refused"), constvars.StorageBackendRedis)
		uc, _ := newTestUsecase(&memoryPatientStorage{loadErr: storageErr})

		_, err := uc.FindAll(context.Background())

		assertStatusCode(t, err, constvars.StatusInternalServerError)
	})
}

func TestPatientUsecase_FindByID(t *testing.T) {
	uc, _ := newTestUsecase(&memoryPatientStorage{patients: seedPatients()})

	t.Run("Existing Patient", func(t *testing.T) {
		patient, err := uc.FindByID(context.Background(), 2)

		require.NoError(t, err)
		assert.Equal(t, "Ravi Mehta", patient.Name)
		assert.Equal(t, 18.52, patient.BMI)
		assert.Equal(t, constvars.BMICategoryHealthy, patient.Category)
	})

	t.Run("Missing Patient", func(t *testing.T) {
		_, err := uc.FindByID(context.Background(), 99)

		assertStatusCode(t, err, constvars.StatusNotFound)
	})
}

func TestPatientUsecase_Sort(t *testing.T) {
	t.Run("BMI Descending Is Non Increasing", func(t *testing.T) {
		storage := &memoryPatientStorage{patients: seedPatients()}
		uc, _ := newTestUsecase(storage)

		patients, err := uc.Sort(context.Background(), &requests.SortPatients{SortBy: "bmi", Order: "desc"})

		require.NoError(t, err)
		require.Len(t, patients, 4)
		for i := 1; i < len(patients); i++ {
			assert.GreaterOrEqual(t, patients[i-1].BMI, patients[i].BMI)
		}
		assert.Equal(t, 0, storage.saveCalls)
	})

	t.Run("Age Ascending Keeps Ties In Stored Order", func(t *testing.T) {
		uc, _ := newTestUsecase(&memoryPatientStorage{patients: seedPatients()})

		patients, err := uc.Sort(context.Background(), &requests.SortPatients{SortBy: "age", Order: "asc"})

		require.NoError(t, err)
		ids := make([]int, len(patients))
		for i, patient := range patients {
			ids[i] = patient.ID
		}
		assert.Equal(t, []int{3, 1, 2, 4}, ids)
	})

	t.Run("Age Descending Keeps Ties In Stored Order", func(t *testing.T) {
		uc, _ := newTestUsecase(&memoryPatientStorage{patients: seedPatients()})

		patients, err := uc.Sort(context.Background(), &requests.SortPatients{SortBy: "age", Order: "desc"})

		require.NoError(t, err)
		ids := make([]int, len(patients))
		for i, patient := range patients {
			ids[i] = patient.ID
		}
		assert.Equal(t, []int{2, 4, 1, 3}, ids)
	})

	t.Run("Empty Order Defaults To Ascending", func(t *testing.T) {
		uc, _ := newTestUsecase(&memoryPatientStorage{patients: seedPatients()})

		patients, err := uc.Sort(context.Background(), &requests.SortPatients{SortBy: "height"})

		require.NoError(t, err)
		assert.Equal(t, 150.0, patients[0].Height)
		assert.Equal(t, 180.0, patients[3].Height)
	})

	t.Run("Invalid Field Names Allowed Set", func(t *testing.T) {
		storage := &memoryPatientStorage{patients: seedPatients()}
		uc, _ := newTestUsecase(storage)

		_, err := uc.Sort(context.Background(), &requests.SortPatients{SortBy: "name", Order: "asc"})

		assertStatusCode(t, err, constvars.StatusBadRequest)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.ClientMessage, `"name"`)
		assert.Contains(t, customErr.ClientMessage, "height")
		assert.Contains(t, customErr.ClientMessage, "bmi")
		assert.Equal(t, 0, storage.saveCalls)
	})

	t.Run("Invalid Order", func(t *testing.T) {
		uc, _ := newTestUsecase(&memoryPatientStorage{patients: seedPatients()})

		_, err := uc.Sort(context.Background(), &requests.SortPatients{SortBy: "age", Order: "sideways"})

		assertStatusCode(t, err, constvars.StatusBadRequest)
	})
}

func TestPatientUsecase_Create(t *testing.T) {
	validRequest := func() *requests.CreatePatient {
		return &requests.CreatePatient{ID: 5, Name: "Kavya Rao", City: "Chennai", Age: 30, Gender: "female", Height: 160, Weight: 52}
	}

	t.Run("Appends Saves And Publishes", func(t *testing.T) {
		storage := &memoryPatientStorage{patients: seedPatients()}
		uc, publisher := newTestUsecase(storage)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(event *requests.PatientEvent) bool {
			return event.Event == constvars.EventPatientCreated && event.PatientID == 5 && event.Patient != nil
		})).Return(nil).Once()

		patient, err := uc.Create(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, 20.31, patient.BMI)
		assert.Equal(t, constvars.BMICategoryHealthy, patient.Category)
		assert.Equal(t, 1, storage.saveCalls)
		require.Len(t, storage.patients, 5)
		assert.Equal(t, 5, storage.patients[4].ID)
		publisher.AssertExpectations(t)
	})

	t.Run("Duplicate ID Leaves Storage Unchanged", func(t *testing.T) {
		storage := &memoryPatientStorage{patients: seedPatients()}
		uc, publisher := newTestUsecase(storage)
		request := validRequest()
		request.ID = 1

		_, err := uc.Create(context.Background(), request)

		assertStatusCode(t, err, constvars.StatusBadRequest)
		assert.Equal(t, 0, storage.saveCalls)
		assert.Equal(t, seedPatients(), storage.patients)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Collects Every Validation Error", func(t *testing.T) {
		storage := &memoryPatientStorage{patients: seedPatients()}
		uc, _ := newTestUsecase(storage)
		request := &requests.CreatePatient{ID: 0, Name: "", Age: -1, Gender: "robot", Height: 0, Weight: 70}

		_, err := uc.Create(context.Background(), request)

		assertStatusCode(t, err, constvars.StatusUnprocessableEntity)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		fields := make([]string, len(customErr.Details))
		for i, detail := range customErr.Details {
			fields[i] = detail.Field
		}
		assert.Equal(t, []string{"id", "name", "age", "gender", "height"}, fields)
		assert.Equal(t, 0, storage.saveCalls)
	})

	t.Run("Save Failure Is Returned Without Event", func(t *testing.T) {
		storage := &memoryPatientStorage{saveErr: exceptions.ErrStorageWrite(errors.New("disk full"), constvars.StorageBackendFile)}
		uc, publisher := newTestUsecase(storage)

		_, err := uc.Create(context.Background(), validRequest())

		assertStatusCode(t, err, constvars.StatusInternalServerError)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Publish Failure Does Not Fail Request", func(t *testing.T) {
		storage := &memoryPatientStorage{}
		uc, publisher := newTestUsecase(storage)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

		patient, err := uc.Create(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, 5, patient.ID)
		assert.Equal(t, 1, storage.saveCalls)
		publisher.AssertExpectations(t)
	})
}

func TestPatientUsecase_Update(t *testing.T) {
	t.Run("Weight Only Keeps Other Fields", func(t *testing.T) {
		storage := &memoryPatientStorage{patients: seedPatients()}
		uc, publisher := newTestUsecase(storage)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(event *requests.PatientEvent) bool {
			return event.Event == constvars.EventPatientUpdated && event.PatientID == 3
		})).Return(nil).Once()
		weight := 70.0

		patient, err := uc.Update(context.Background(), 3, &requests.UpdatePatient{Weight: &weight})

		require.NoError(t, err)
		assert.Equal(t, 31.11, patient.BMI)
		assert.Equal(t, constvars.BMICategoryObese, patient.Category)
		stored := storage.patients[2]
		original := seedPatients()[2]
		assert.Equal(t, original.ID, stored.ID)
		assert.Equal(t, original.Name, stored.Name)
		assert.Equal(t, original.City, stored.City)
		assert.Equal(t, original.Age, stored.Age)
		assert.Equal(t, original.Gender, stored.Gender)
		assert.Equal(t, original.Height, stored.Height)
		assert.Equal(t, 70.0, stored.Weight)
		publisher.AssertExpectations(t)
	})

	t.Run("Missing Patient", func(t *testing.T) {
		storage := &memoryPatientStorage{patients: seedPatients()}
		uc, _ := newTestUsecase(storage)
		name := "Nobody"

		_, err := uc.Update(context.Background(), 42, &requests.UpdatePatient{Name: &name})

		assertStatusCode(t, err, constvars.StatusNotFound)
		assert.Equal(t, 0, storage.saveCalls)
	})

	t.Run("Missing Patient Is Logged", func(t *testing.T) {
		uc, logs := newObservedUsecase(&memoryPatientStorage{patients: seedPatients()})
		name := "Nobody"

		_, err := uc.Update(context.Background(), 42, &requests.UpdatePatient{Name: &name})

		require.Error(t, err)
		assertPatientNotFoundLogged(t, logs, "patientUsecase.Update patient not found", 42)
	})

	t.Run("Invalid Merged Record Is Rejected", func(t *testing.T) {
		storage := &memoryPatientStorage{patients: seedPatients()}
		uc, _ := newTestUsecase(storage)
		height := -10.0

		_, err := uc.Update(context.Background(), 1, &requests.UpdatePatient{Height: &height})

		assertStatusCode(t, err, constvars.StatusUnprocessableEntity)
		assert.Equal(t, 0, storage.saveCalls)
		assert.Equal(t, seedPatients(), storage.patients)
	})
}

func TestPatientUsecase_Delete(t *testing.T) {
	t.Run("Removes Patient And Keeps Order", func(t *testing.T) {
		storage := &memoryPatientStorage{patients: seedPatients()}
		uc, publisher := newTestUsecase(storage)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(event *requests.PatientEvent) bool {
			return event.Event == constvars.EventPatientDeleted && event.PatientID == 2 && event.Patient == nil
		})).Return(nil).Once()

		err := uc.Delete(context.Background(), 2)

		require.NoError(t, err)
		require.Len(t, storage.patients, 3)
		assert.Equal(t, []int{1, 3, 4}, []int{storage.patients[0].ID, storage.patients[1].ID, storage.patients[2].ID})
		publisher.AssertExpectations(t)
	})

	t.Run("Missing Patient Leaves Storage Unchanged", func(t *testing.T) {
		storage := &memoryPatientStorage{patients: seedPatients()}
		uc, _ := newTestUsecase(storage)

		err := uc.Delete(context.Background(), 99)

		assertStatusCode(t, err, constvars.StatusNotFound)
		assert.Equal(t, 0, storage.saveCalls)
		assert.Equal(t, seedPatients(), storage.patients)
	})

	t.Run("Missing Patient Is Logged", func(t *testing.T) {
		uc, logs := newObservedUsecase(&memoryPatientStorage{patients: seedPatients()})

		err := uc.Delete(context.Background(), 99)

		require.Error(t, err)
		assertPatientNotFoundLogged(t, logs, "patientUsecase.Delete patient not found", 99)
	})
}
