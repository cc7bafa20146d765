package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-personnel/internal/events"
	"go-personnel/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	evt, err := kafka.NewOutboxEvent("req-1", 42, events.PersonnelCreated, events.PersonnelLifecycleTopic,
		events.PersonnelCreatedEvent{EventType: events.PersonnelCreated, PersonalID: 42, CURP: "AAAA000101HDFXXX01"})
	require.NoError(t, err)

	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, 42, evt.PersonalID)
	assert.Equal(t, kafka.OutboxStatusPending, evt.Status)
	assert.NoError(t, kafka.ValidateOutboxEvent(evt))

	var body map[string]any
	require.NoError(t, json.Unmarshal(evt.Payload, &body))
	assert.Equal(t, "AAAA000101HDFXXX01", body["curp"])
}

func TestValidateOutboxEvent(t *testing.T) {
	valid, err := kafka.NewOutboxEvent("", 3, events.PersonnelSeparated, events.PersonnelLifecycleTopic, map[string]int{"personal_id": 3})
	require.NoError(t, err)

	noOfficer := valid
	noOfficer.PersonalID = 0
	assert.EqualError(t, kafka.ValidateOutboxEvent(noOfficer), "outbox personal_id is required")

	noPayload := valid
	noPayload.Payload = nil
	assert.EqualError(t, kafka.ValidateOutboxEvent(noPayload), "outbox payload is required")

	alreadySent := valid
	alreadySent.Status = kafka.OutboxStatusSent
	assert.Error(t, kafka.ValidateOutboxEvent(alreadySent))
}

func TestOutboxRepository_CreateInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	evt, err := kafka.NewOutboxEvent("", 7, events.PersonnelSeparated, events.PersonnelLifecycleTopic, map[string]int{"personal_id": 7})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(evt.ID, "", 7, events.PersonnelSeparated, events.PersonnelLifecycleTopic, evt.Payload, kafka.OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	repo := kafka.NewOutboxRepository(db).WithTx(tx)
	require.NoError(t, repo.Create(context.Background(), evt))
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalid(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = kafka.NewOutboxRepository(db).Create(context.Background(),
		kafka.OutboxEvent{ID: "x", PersonalID: 1, EventType: "e", Topic: "t", Status: kafka.OutboxStatusPending})
	assert.EqualError(t, err, "outbox payload is required")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_Claim(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	leaseEnd := time.Date(2025, 3, 1, 10, 1, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "request_id", "personal_id", "event_type", "topic", "payload", "status", "attempts", "available_at"}).
		AddRow("e-1", "req-1", 3, events.PersonnelStatusChanged, events.PersonnelLifecycleTopic, []byte(`{}`), kafka.OutboxStatusFailed, 2, leaseEnd)
	mock.ExpectQuery(`FOR UPDATE SKIP LOCKED[\s\S]*RETURNING[\s\S]*o\.available_at`).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 10, kafka.ClaimLease.Seconds()).
		WillReturnRows(rows)

	got, err := kafka.NewOutboxRepository(db).Claim(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "req-1", got[0].RequestID)
	assert.Equal(t, 3, got[0].PersonalID)
	assert.Equal(t, 2, got[0].Attempts)
	assert.Equal(t, leaseEnd, got[0].AvailableAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("attempts = attempts \\+ 1").
		WithArgs("e-1", kafka.OutboxStatusFailed, "broker down").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, kafka.NewOutboxRepository(db).MarkFailed(context.Background(), "e-1", "broker down"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
