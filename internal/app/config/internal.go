package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
}

type App struct {
	Env                      string `mapstructure:"env"`
	Port                     string `mapstructure:"port"`
	Version                  string `mapstructure:"version"`
	Timezone                 string `mapstructure:"timezone"`
	StorageBackend           string `mapstructure:"storage_backend"`
	EventsEnabled            bool   `mapstructure:"events_enabled"`
	MaxRequests              int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds  int    `mapstructure:"request_timeout_in_seconds"`
}

type AppRabbitMQ struct {
	PatientEventsQueue string `mapstructure:"patient_events_queue"`
}
