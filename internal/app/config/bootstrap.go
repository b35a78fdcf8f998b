package config

import (
	"context"
	"database/sql"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Bootstrap carries the router, logger, configs and whichever driver
// clients the selected storage backend and event publisher needed.
// Clients that were never dialled stay nil.
type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	Redis          *redis.Client
	Minio          *minio.Client
	MongoDB        *mongo.Client
	PostgresDB     *sql.DB
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		b.Logger.Info("Successfully closing Redis")
	}

	if b.MongoDB != nil {
		err := b.MongoDB.Disconnect(ctx)
		if err != nil {
			return err
		}
		b.Logger.Info("Successfully closing MongoDB")
	}

	if b.PostgresDB != nil {
		err := b.PostgresDB.Close()
		if err != nil {
			return err
		}
		b.Logger.Info("Successfully closing PostgresDB")
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		b.Logger.Info("Successfully closing RabbitMQ")
	}

	// Sync on stdout/stderr returns EINVAL on some platforms; ignore it.
	_ = b.Logger.Sync()

	return nil
}
