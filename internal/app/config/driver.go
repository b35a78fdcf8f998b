package config

type (
	DriverConfig struct {
		File       File
		Redis      Redis
		Minio      Minio
		MongoDB    MongoDB
		PostgresDB PostgresDB
		RabbitMQ   RabbitMQ
		Logger     Logger
	}
	File struct {
		Path string
	}
	Redis struct {
		Host        string
		Port        string
		Password    string
		DB          int
		DocumentKey string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		UseSSL     bool
		BucketName string
		ObjectName string
	}
	MongoDB struct {
		URI        string
		DbName     string
		Collection string
	}
	PostgresDB struct {
		Host     string
		Port     string
		Username string
		Password string
		DBName   string
		SSLMode  string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
