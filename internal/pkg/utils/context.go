package utils

import (
	"context"
	"patient-record-service/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
