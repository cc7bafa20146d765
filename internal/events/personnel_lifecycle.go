package events

import "time"

// PersonnelLifecycleTopic carries every change to an officer's service state.
const PersonnelLifecycleTopic = "police.personnel.lifecycle.v1"

const (
	PersonnelCreated       = "personnel.created"
	PersonnelStatusChanged = "personnel.status_changed"
	PersonnelSeparated     = "personnel.separated"
)

type PersonnelCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PersonalID int       `json:"personal_id"`
	CURP       string    `json:"curp"`
	Estatus    string    `json:"estatus"`
	OccurredAt time.Time `json:"occurred_at"`
}

type PersonnelStatusChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PersonalID int       `json:"personal_id"`
	Estatus    string    `json:"estatus"`
	OccurredAt time.Time `json:"occurred_at"`
}

type PersonnelSeparatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	PersonalID   int       `json:"personal_id"`
	SeparacionID int       `json:"separacion_id"`
	Motivo       string    `json:"motivo"`
	FechaBaja    string    `json:"fecha_baja"`
	OccurredAt   time.Time `json:"occurred_at"`
}
