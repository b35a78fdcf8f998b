package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingPatientIDKey      = "patient_id"
	LoggingPatientCountKey   = "patient_count"
	LoggingSortByKey         = "sort_by"
	LoggingSortOrderKey      = "sort_order"
	LoggingStorageBackendKey = "storage_backend"
	LoggingStoragePathKey    = "storage_path"
	LoggingRedisKey          = "redis_key"
	LoggingBucketNameKey     = "bucket_name"
	LoggingObjectNameKey     = "object_name"
	LoggingCollectionKey     = "collection"
	LoggingEventNameKey      = "event_name"
	LoggingQueueNameKey      = "queue_name"
	LoggingServiceKey        = "service"
	LoggingVersionKey        = "version"
)
