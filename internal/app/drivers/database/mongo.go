package database

import (
	"context"
	"fmt"
	"patient-record-service/internal/app/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func NewMongoDB(ctx context.Context, driverConfig *config.DriverConfig, log *zap.Logger) (*mongo.Client, error) {
	dbOptions := options.Client().ApplyURI(driverConfig.MongoDB.URI)
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo database: %w", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping or test the connection to mongo database: %w", err)
	}

	log.Info("Successfully connected to mongo database")
	return client, nil
}
