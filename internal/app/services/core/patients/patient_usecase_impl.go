package patients

import (
	"context"
	"patient-record-service/internal/app/contracts"
	"patient-record-service/internal/app/models"
	"patient-record-service/internal/pkg/constvars"
	"patient-record-service/internal/pkg/dto/requests"
	"patient-record-service/internal/pkg/dto/responses"
	"patient-record-service/internal/pkg/exceptions"
	"patient-record-service/internal/pkg/utils"
	"sort"
	"time"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientStorage        contracts.PatientStorage
	PatientEventPublisher contracts.PatientEventPublisher
	Log                   *zap.Logger
}

func NewPatientUsecase(
	patientStorage contracts.PatientStorage,
	patientEventPublisher contracts.PatientEventPublisher,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientStorage:        patientStorage,
		PatientEventPublisher: patientEventPublisher,
		Log:                   logger,
	}
}

func (uc *patientUsecase) FindAll(ctx context.Context) ([]responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, err := uc.PatientStorage.Load(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.FindAll error loading patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return convertPatientsIntoResponse(patients), nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID int) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientIDKey, patientID),
	)

	patients, err := uc.PatientStorage.Load(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.FindByID error loading patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	index := findPatientIndex(patients, patientID)
	if index < 0 {
		uc.Log.Info("patientUsecase.FindByID patient not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingPatientIDKey, patientID),
		)
		return nil, exceptions.ErrPatientNotFound(patientID)
	}

	response := patients[index].ConvertIntoResponse()
	return &response, nil
}

// Sort orders a copy of the collection by one numeric field. Ties keep their
// stored order in both directions.
func (uc *patientUsecase) Sort(ctx context.Context, request *requests.SortPatients) ([]responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Sort called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSortByKey, request.SortBy),
		zap.String(constvars.LoggingSortOrderKey, request.Order),
	)

	if !isAllowed(constvars.AllowedSortFields, request.SortBy) {
		return nil, exceptions.ErrInvalidSortField(request.SortBy)
	}

	order := request.Order
	if order == "" {
		order = constvars.SortOrderAsc
	}
	if !isAllowed(constvars.AllowedSortOrders, order) {
		return nil, exceptions.ErrInvalidSortOrder(order)
	}

	patients, err := uc.PatientStorage.Load(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.Sort error loading patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := convertPatientsIntoResponse(patients)
	sortKey := sortKeys[request.SortBy]
	descending := order == constvars.SortOrderDesc
	sort.SliceStable(response, func(i, j int) bool {
		if descending {
			return sortKey(response[i]) > sortKey(response[j])
		}
		return sortKey(response[i]) < sortKey(response[j])
	})

	uc.Log.Info("patientUsecase.Sort succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(response)),
	)
	return response, nil
}

func (uc *patientUsecase) Create(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientIDKey, request.ID),
	)

	patient := models.NewPatientFromCreateRequest(request)
	err := utils.ValidatePatient(patient)
	if err != nil {
		uc.Log.Info("patientUsecase.Create validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	patients, err := uc.PatientStorage.Load(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.Create error loading patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if findPatientIndex(patients, patient.ID) >= 0 {
		uc.Log.Info("patientUsecase.Create patient already exists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingPatientIDKey, patient.ID),
		)
		return nil, exceptions.ErrPatientAlreadyExists(patient.ID)
	}

	patients = append(patients, patient)
	err = uc.PatientStorage.Save(ctx, patients)
	if err != nil {
		uc.Log.Error("patientUsecase.Create error saving patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := patient.ConvertIntoResponse()
	uc.publishEvent(ctx, constvars.EventPatientCreated, patient.ID, &response)

	uc.Log.Info("patientUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientIDKey, patient.ID),
	)
	return &response, nil
}

func (uc *patientUsecase) Update(ctx context.Context, patientID int, request *requests.UpdatePatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientIDKey, patientID),
	)

	patients, err := uc.PatientStorage.Load(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.Update error loading patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	index := findPatientIndex(patients, patientID)
	if index < 0 {
		uc.Log.Info("patientUsecase.Update patient not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingPatientIDKey, patientID),
		)
		return nil, exceptions.ErrPatientNotFound(patientID)
	}

	updated := patients[index]
	updated.ApplyUpdate(request)
	err = utils.ValidatePatient(updated)
	if err != nil {
		uc.Log.Info("patientUsecase.Update validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	patients[index] = updated
	err = uc.PatientStorage.Save(ctx, patients)
	if err != nil {
		uc.Log.Error("patientUsecase.Update error saving patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := updated.ConvertIntoResponse()
	uc.publishEvent(ctx, constvars.EventPatientUpdated, patientID, &response)

	uc.Log.Info("patientUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientIDKey, patientID),
	)
	return &response, nil
}

func (uc *patientUsecase) Delete(ctx context.Context, patientID int) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientIDKey, patientID),
	)

	patients, err := uc.PatientStorage.Load(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.Delete error loading patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	index := findPatientIndex(patients, patientID)
	if index < 0 {
		uc.Log.Info("patientUsecase.Delete patient not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingPatientIDKey, patientID),
		)
		return exceptions.ErrPatientNotFound(patientID)
	}

	remaining := make([]models.Patient, 0, len(patients)-1)
	remaining = append(remaining, patients[:index]...)
	remaining = append(remaining, patients[index+1:]...)

	err = uc.PatientStorage.Save(ctx, remaining)
	if err != nil {
		uc.Log.Error("patientUsecase.Delete error saving patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.publishEvent(ctx, constvars.EventPatientDeleted, patientID, nil)

	uc.Log.Info("patientUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}

// publishEvent runs after the document is saved. A failure is logged and
// does not change the outcome of the request.
func (uc *patientUsecase) publishEvent(ctx context.Context, eventName string, patientID int, patient *responses.Patient) {
	requestID := utils.GetRequestID(ctx)
	event := &requests.PatientEvent{
		EventID:    utils.GenerateEventID(),
		Event:      eventName,
		PatientID:  patientID,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
		Patient:    patient,
	}

	err := uc.PatientEventPublisher.Publish(ctx, event)
	if err != nil {
		uc.Log.Warn("patientUsecase.publishEvent error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventNameKey, eventName),
			zap.Int(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	}
}

var sortKeys = map[string]func(responses.Patient) float64{
	constvars.SortByHeight: func(p responses.Patient) float64 { return p.Height },
	constvars.SortByWeight: func(p responses.Patient) float64 { return p.Weight },
	constvars.SortByAge:    func(p responses.Patient) float64 { return float64(p.Age) },
	constvars.SortByBMI:    func(p responses.Patient) float64 { return p.BMI },
}

func convertPatientsIntoResponse(patients []models.Patient) []responses.Patient {
	response := make([]responses.Patient, len(patients))
	for i, eachPatient := range patients {
		response[i] = eachPatient.ConvertIntoResponse()
	}
	return response
}

func findPatientIndex(patients []models.Patient, patientID int) int {
	for i, eachPatient := range patients {
		if eachPatient.ID == patientID {
			return i
		}
	}
	return -1
}

func isAllowed(allowed []string, value string) bool {
	for _, each := range allowed {
		if each == value {
			return true
		}
	}
	return false
}
