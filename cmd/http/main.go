package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"patient-record-service/internal/app/config"
	"patient-record-service/internal/app/contracts"
	"patient-record-service/internal/app/delivery/http/controllers"
	"patient-record-service/internal/app/delivery/http/middlewares"
	"patient-record-service/internal/app/delivery/http/routers"
	"patient-record-service/internal/app/drivers/database"
	"patient-record-service/internal/app/drivers/logger"
	"patient-record-service/internal/app/drivers/messaging"
	minioDriver "patient-record-service/internal/app/drivers/storage"
	"patient-record-service/internal/app/services/core/patients"
	"patient-record-service/internal/app/services/shared/events"
	"patient-record-service/internal/app/services/shared/storage"
	"patient-record-service/internal/pkg/constvars"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

const driverConnectTimeout = 30 * time.Second

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		stdlog.Fatalf("Error while initializing zap logger: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	log.Info("Starting patient record service",
		zap.String("build_version", Version),
		zap.String("build_tag", Tag),
		zap.String(constvars.LoggingStorageBackendKey, internalConfig.App.StorageBackend),
	)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), driverConnectTimeout)
	err = connectDrivers(connectCtx, bootstrap)
	cancelConnect()
	if err != nil {
		log.Fatal("Failed to connect drivers", zap.Error(err))
	}

	publisher, err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server listening", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = publisher.Close()
	if err != nil {
		log.Error("Failed to close event publisher", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to close drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

// connectDrivers dials only what the selected storage backend and the event
// publisher need.
func connectDrivers(ctx context.Context, bootstrap *config.Bootstrap) error {
	var err error
	switch bootstrap.InternalConfig.App.StorageBackend {
	case constvars.StorageBackendRedis:
		bootstrap.Redis, err = database.NewRedisClient(ctx, bootstrap.DriverConfig, bootstrap.Logger)
	case constvars.StorageBackendMinio:
		bootstrap.Minio, err = minioDriver.NewMinio(ctx, bootstrap.DriverConfig, bootstrap.Logger)
	case constvars.StorageBackendMongoDB:
		bootstrap.MongoDB, err = database.NewMongoDB(ctx, bootstrap.DriverConfig, bootstrap.Logger)
	case constvars.StorageBackendPostgres:
		bootstrap.PostgresDB, err = database.NewPostgresDB(ctx, bootstrap.DriverConfig, bootstrap.Logger)
	}
	if err != nil {
		return err
	}

	if bootstrap.InternalConfig.App.EventsEnabled {
		bootstrap.RabbitMQ, err = messaging.NewRabbitMQ(bootstrap.DriverConfig, bootstrap.Logger)
		if err != nil {
			return err
		}
	}

	return nil
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) (contracts.PatientEventPublisher, error) {
	// Storage
	patientStorage, err := storage.NewPatientStorage(bootstrap)
	if err != nil {
		return nil, err
	}

	// Events
	publisher := events.NewNoopPublisher()
	if bootstrap.InternalConfig.App.EventsEnabled {
		publisher, err = events.NewRabbitMQPublisher(
			bootstrap.RabbitMQ,
			bootstrap.InternalConfig.RabbitMQ.PatientEventsQueue,
			bootstrap.Logger,
		)
		if err != nil {
			return nil, err
		}
	}

	// Patient
	patientUsecase := patients.NewPatientUsecase(patientStorage, publisher, bootstrap.Logger)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, bootstrap.InternalConfig)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewareInstance, patientController)

	return publisher, nil
}
