package constvars

const (
	StorageBackendFile     = "file"
	StorageBackendRedis    = "redis"
	StorageBackendMinio    = "minio"
	StorageBackendMongoDB  = "mongodb"
	StorageBackendPostgres = "postgres"
)

const (
	StorageFileMode          = 0o644
	StorageTempFilePattern   = ".patients-*.json"
	StorageDocumentIndent    = "  "
	DefaultRedisDocumentKey  = "patients:document"
	DefaultMinioObjectName   = "patients.json"
	DefaultMongoDBCollection = "patients"
)
