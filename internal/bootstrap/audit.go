package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

const (
	AuditServerShutdown         = "SERVER_SHUTDOWN"
	AuditPersonnelDeleted       = "PERSONNEL_DELETED"
	AuditPersonnelStatusChanged = "PERSONNEL_STATUS_CHANGED"
)
