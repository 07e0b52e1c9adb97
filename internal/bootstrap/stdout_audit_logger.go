package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ali44ashhad/contractor/internal/shared/contextutil"
)

// StdoutAuditLogger menulis entri audit sebagai structured log biasa.
// Cukup untuk deployment tunggal; sink lain tinggal implement AuditLogger.
type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	zap.L().Named("audit").Info("audit event", fields...)
}
