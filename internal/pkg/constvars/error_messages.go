package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"min":   true,
	"max":   true,
}

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientPatientAlreadyExists          = "Patient already exists"
	ErrClientPatientValidationFailed       = "patient data is invalid"
	ErrClientInvalidSortField              = "Invalid sort field %q, select from %s"
	ErrClientInvalidSortOrder              = "Invalid sort order %q, select between %s"
	ErrClientInvalidJSONBody               = "request body is not valid JSON"
	ErrClientInvalidURLParam               = "%s must be an integer"
	ErrClientMissingQueryParam             = "%s is required"
	ErrClientRouteNotFound                 = "route not found"
	ErrClientMethodNotAllowed              = "method not allowed"
	ErrClientTooManyRequests               = "Too many requests, please try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevURLParamIDValidationFailed = "url param %s is not a valid integer"
	ErrDevQueryParamMissing          = "query param %s is missing"
	ErrDevPatientNotFound            = "patient with id %d not found"
	ErrDevPatientAlreadyExists       = "patient with id %d already exists"
	ErrDevInvalidSortField           = "invalid sort field %q"
	ErrDevInvalidSortOrder           = "invalid sort order %q"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevServerDeadlineExceeded     = "deadline exceeded"
	ErrDevServerPanicRecovered       = "panic recovered while serving request"
	ErrDevStorageRead                = "failed to read patient document from %s storage"
	ErrDevStorageWrite               = "failed to write patient document to %s storage"
	ErrDevStorageUnknownBackend      = "unknown storage backend %q"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisSetData               = "failed to set data into redis"
	ErrDevMinioFailedToGetObject     = "failed to get object from bucket %s"
	ErrDevMinioFailedToCreateObject  = "failed to create object into bucket %s"
	ErrDevMongoDBFindDocuments       = "failed to find documents in collection %s"
	ErrDevMongoDBReplaceDocuments    = "failed to replace documents in collection %s"
	ErrDevPostgresDBFindData         = "failed to find data on postgres database"
	ErrDevPostgresDBReplaceData      = "failed to replace data on postgres database"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue %s"
	ErrDevRabbitMQOpenChannel        = "failed to open rabbitmq channel"
	ErrDevRabbitMQDeclareQueue       = "failed to declare rabbitmq queue %s"
	ErrDevRouteNotFound              = "no route matches %s %s"
	ErrDevMethodNotAllowed           = "method %s not allowed on %s"
	ErrDevTooManyRequests            = "rate limit exceeded for %s"
	ErrFileLocationUnknown           = "file location unknown"
	ErrFunctionNameUnknown           = "function name unknown"
)
