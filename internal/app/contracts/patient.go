package contracts

import (
	"context"
	"patient-record-service/internal/app/models"
	"patient-record-service/internal/pkg/dto/requests"
	"patient-record-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	FindAll(ctx context.Context) ([]responses.Patient, error)
	FindByID(ctx context.Context, patientID int) (*responses.Patient, error)
	Sort(ctx context.Context, request *requests.SortPatients) ([]responses.Patient, error)
	Create(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	Update(ctx context.Context, patientID int, request *requests.UpdatePatient) (*responses.Patient, error)
	Delete(ctx context.Context, patientID int) error
}

// PatientStorage reads and replaces the whole patient document at once.
type PatientStorage interface {
	Load(ctx context.Context) ([]models.Patient, error)
	Save(ctx context.Context, patients []models.Patient) error
}

type PatientEventPublisher interface {
	Publish(ctx context.Context, event *requests.PatientEvent) error
	Close() error
}
