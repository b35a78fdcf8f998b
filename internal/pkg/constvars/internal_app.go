package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "PRS_SVC_"
	ServiceName       = "patient-record-service"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	URLParamPatientID = "id"
	QueryParamSortBy  = "sort_by"
	QueryParamOrder   = "order"
)
