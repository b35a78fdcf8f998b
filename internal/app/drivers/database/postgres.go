package database

import (
	"context"
	"database/sql"
	"fmt"
	"patient-record-service/internal/app/config"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func NewPostgresDB(ctx context.Context, driverConfig *config.DriverConfig, log *zap.Logger) (*sql.DB, error) {
	connectionString := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		driverConfig.PostgresDB.Host,
		driverConfig.PostgresDB.Port,
		driverConfig.PostgresDB.Username,
		driverConfig.PostgresDB.Password,
		driverConfig.PostgresDB.DBName,
		driverConfig.PostgresDB.SSLMode,
	)

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres database connection: %w", err)
	}

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to postgres database: %w", err)
	}

	log.Info("Successfully connected to postgres database")
	return db, nil
}
