package app

import (
	"context"
	"fmt"

	"go-personnel/internal/messaging/kafka"
	"go-personnel/internal/messaging/kafka/producer"
	"go-personnel/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker publishes pending outbox events until ctx is cancelled.
func RunWorker(ctx context.Context, cfg Config) error {
	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DSN(), cfg.DBRetries)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, 5)
	if err != nil {
		return err
	}
	defer writer.Close()

	worker := producer.NewOutboxWorker(kafka.NewOutboxRepository(sqlDB), writer, cfg.PollInterval, zap.L())
	worker.Run(ctx)
	return nil
}
