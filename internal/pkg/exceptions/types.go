package exceptions

import (
	"errors"
	"fmt"
	"patient-record-service/internal/pkg/constvars"
	"strings"
)

var (
	// Request parsing
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, fmt.Sprintf(constvars.ErrClientInvalidURLParam, paramName), fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrQueryParamRequired = func(paramName string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, fmt.Sprintf(constvars.ErrClientMissingQueryParam, paramName), fmt.Sprintf(constvars.ErrDevQueryParamMissing, paramName))
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientInvalidJSONBody, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// Patient
	ErrPatientNotFound = func(patientID int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientPatientNotFound, fmt.Sprintf(constvars.ErrDevPatientNotFound, patientID))
	}
	ErrPatientAlreadyExists = func(patientID int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientPatientAlreadyExists, fmt.Sprintf(constvars.ErrDevPatientAlreadyExists, patientID))
	}
	ErrPatientValidation = func(details []FieldError) *CustomError {
		customErr := BuildNewCustomError(errors.New(FormatFieldErrors(details)), constvars.StatusUnprocessableEntity, constvars.ErrClientPatientValidationFailed, constvars.ErrDevValidationFailed)
		customErr.Details = details
		return customErr
	}
	ErrInvalidSortField = func(sortBy string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientInvalidSortField, sortBy, formatAllowedValues(constvars.AllowedSortFields)), fmt.Sprintf(constvars.ErrDevInvalidSortField, sortBy))
	}
	ErrInvalidSortOrder = func(order string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientInvalidSortOrder, order, formatAllowedValues(constvars.AllowedSortOrders)), fmt.Sprintf(constvars.ErrDevInvalidSortOrder, order))
	}

	// Storage
	ErrStorageRead = func(err error, backend string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStorageRead, backend))
	}
	ErrStorageWrite = func(err error, backend string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStorageWrite, backend))
	}
	ErrStorageUnknownBackend = func(backend string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStorageUnknownBackend, backend))
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}

	// Minio
	ErrMinioGetObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToGetObject, bucketName))
	}
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}

	// Mongo DB
	ErrMongoDBFindDocuments = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMongoDBFindDocuments, collection))
	}
	ErrMongoDBReplaceDocuments = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMongoDBReplaceDocuments, collection))
	}

	// Postgres DB
	ErrPostgresDBFindData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPostgresDBFindData)
	}
	ErrPostgresDBReplaceData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPostgresDBReplaceData)
	}

	// RabbitMQ
	ErrRabbitMQOpenChannel = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRabbitMQOpenChannel)
	}
	ErrRabbitMQDeclareQueue = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQDeclareQueue, queueName))
	}
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}

	// Routing
	ErrRouteNotFound = func(method, path string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientRouteNotFound, fmt.Sprintf(constvars.ErrDevRouteNotFound, method, path))
	}
	ErrMethodNotAllowed = func(method, path string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusMethodNotAllowed, constvars.ErrClientMethodNotAllowed, fmt.Sprintf(constvars.ErrDevMethodNotAllowed, method, path))
	}
	ErrTooManyRequests = func(remoteAddr string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevTooManyRequests, remoteAddr))
	}

	// Default Server
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerPanicRecovered = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerPanicRecovered)
	}
)

func formatAllowedValues(values []string) string {
	quoted := make([]string, len(values))
	for i, value := range values {
		quoted[i] = fmt.Sprintf("'%s'", value)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
