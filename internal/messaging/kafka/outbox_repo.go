package kafka

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"

	// ClaimLease hides claimed rows from other workers while they publish.
	ClaimLease = time.Minute
)

// OutboxEvent is a lifecycle event of one officer waiting to reach Kafka.
type OutboxEvent struct {
	ID         string
	RequestID  string
	PersonalID int
	EventType  string
	Topic      string
	Payload    []byte
	Status     string
	Attempts   int
	// AvailableAt is when the row becomes due again; after Claim it is the
	// lease expiry.
	AvailableAt time.Time
}

func NewOutboxEvent(requestID string, personalID int, eventType, topic string, body any) (OutboxEvent, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return OutboxEvent{}, fmt.Errorf("marshal %s: %w", eventType, err)
	}
	return OutboxEvent{
		ID:         uuid.NewString(),
		RequestID:  requestID,
		PersonalID: personalID,
		EventType:  eventType,
		Topic:      topic,
		Payload:    payload,
		Status:     OutboxStatusPending,
	}, nil
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock
type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	Claim(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkPublished(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type outboxRepository struct {
	db   *sql.DB
	exec execer
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db, exec: db}
}

// WithTx makes Create part of the caller's transaction.
func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, exec: tx}
}

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}
	_, err := r.exec.ExecContext(ctx, `
INSERT INTO outbox_events (id, request_id, personal_id, event_type, topic, payload, status)
VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7)`,
		event.ID, event.RequestID, event.PersonalID, event.EventType, event.Topic, event.Payload, event.Status,
	)
	return err
}

// Claim leases up to limit due events, oldest first. Rows locked by another
// worker are skipped, and a claimed row becomes due again after ClaimLease
// unless it is marked in between.
func (r *outboxRepository) Claim(ctx context.Context, limit int) ([]OutboxEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
WITH due AS (
	SELECT id FROM outbox_events
	WHERE status IN ($1, $2) AND available_at <= NOW()
	ORDER BY created_at
	LIMIT $3
	FOR UPDATE SKIP LOCKED
)
UPDATE outbox_events o
SET available_at = NOW() + make_interval(secs => $4)
FROM due
WHERE o.id = due.id
RETURNING o.id::text, COALESCE(o.request_id, ''), o.personal_id, o.event_type,
	o.topic, o.payload, o.status, o.attempts, o.available_at`,
		OutboxStatusPending, OutboxStatusFailed, limit, ClaimLease.Seconds(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	claimed := make([]OutboxEvent, 0, limit)
	for rows.Next() {
		var e OutboxEvent
		if err := rows.Scan(&e.ID, &e.RequestID, &e.PersonalID, &e.EventType,
			&e.Topic, &e.Payload, &e.Status, &e.Attempts, &e.AvailableAt); err != nil {
			return nil, err
		}
		claimed = append(claimed, e)
	}
	return claimed, rows.Err()
}

func (r *outboxRepository) MarkPublished(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE outbox_events
SET status = $2, published_at = NOW(), last_error = NULL
WHERE id = $1`, id, OutboxStatusSent)
	return err
}

// MarkFailed schedules a retry 15s later per attempt, capped at 150s.
func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE outbox_events
SET status = $2,
	attempts = attempts + 1,
	last_error = LEFT($3, 500),
	available_at = NOW() + LEAST(attempts + 1, 10) * INTERVAL '15 seconds'
WHERE id = $1`, id, OutboxStatusFailed, reason)
	return err
}

func ValidateOutboxEvent(event OutboxEvent) error {
	switch {
	case event.ID == "":
		return errors.New("outbox id is required")
	case event.PersonalID <= 0:
		return errors.New("outbox personal_id is required")
	case event.EventType == "" || event.Topic == "":
		return errors.New("outbox event type and topic are required")
	case len(event.Payload) == 0:
		return errors.New("outbox payload is required")
	case event.Status != OutboxStatusPending:
		return fmt.Errorf("new outbox event must be %s, got %q", OutboxStatusPending, event.Status)
	}
	return nil
}
