package bootstrap

import "context"

// AuditLog adalah satu entri audit operasional (bukan domain event).
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
