package requests

import (
	"patient-record-service/internal/pkg/dto/responses"
	"time"
)

// PatientEvent is published after a mutation has been saved.
type PatientEvent struct {
	EventID    string             `json:"event_id"`
	Event      string             `json:"event"`
	PatientID  int                `json:"patient_id"`
	RequestID  string             `json:"request_id,omitempty"`
	OccurredAt time.Time          `json:"occurred_at"`
	Patient    *responses.Patient `json:"patient,omitempty"`
}
