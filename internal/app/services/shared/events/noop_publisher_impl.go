package events

import (
	"context"
	"patient-record-service/internal/app/contracts"
	"patient-record-service/internal/pkg/dto/requests"
)

type noopPublisher struct{}

// NewNoopPublisher is used when APP_EVENTS_ENABLED is off.
func NewNoopPublisher() contracts.PatientEventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, event *requests.PatientEvent) error {
	return nil
}

func (noopPublisher) Close() error {
	return nil
}
