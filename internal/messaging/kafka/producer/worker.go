package producer

import (
	"context"
	"time"

	"go-personnel/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	defaultPollInterval = 3 * time.Second
	defaultBatchSize    = 50
)

// OutboxWorker relays pending outbox rows to Kafka.
type OutboxWorker struct {
	repo         kafka.OutboxRepository
	writer       MessageWriter
	pollInterval time.Duration
	batchSize    int
	logger       *zap.Logger
}

func NewOutboxWorker(repo kafka.OutboxRepository, writer MessageWriter, pollInterval time.Duration, logger ...*zap.Logger) *OutboxWorker {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &OutboxWorker{
		repo:         repo,
		writer:       writer,
		pollInterval: pollInterval,
		batchSize:    defaultBatchSize,
		logger:       l.Named("kafka.producer.worker"),
	}
}

// Run polls until ctx is cancelled.
func (w *OutboxWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("outbox worker started", zap.Duration("poll_interval", w.pollInterval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if _, err := w.RunOnce(ctx); err != nil {
				w.logger.Error("process outbox events failed", zap.Error(err))
			}
		}
	}
}

// RunOnce publishes one claimed batch and returns how many events were sent.
func (w *OutboxWorker) RunOnce(ctx context.Context) (int, error) {
	pending, err := w.repo.Claim(ctx, w.batchSize)
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	w.logger.Debug("processing pending outbox events", zap.Int("count", len(pending)))

	sent := 0
	for _, event := range pending {
		log := w.logger.With(
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("request_id", event.RequestID),
		)

		if err := w.writer.WriteMessages(ctx, toMessage(event)); err != nil {
			log.Error("publish outbox event failed", zap.Int("attempts", event.Attempts), zap.Error(err))
			if markErr := w.repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				log.Error("mark outbox failed failed", zap.Error(markErr))
			}
			continue
		}

		if err := w.repo.MarkPublished(ctx, event.ID); err != nil {
			log.Error("mark outbox published failed", zap.Error(err))
			continue
		}

		sent++
		log.Info("outbox event sent", zap.String("topic", event.Topic))
	}

	return sent, nil
}
