package logging

import (
	"context"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// AuditLogger writes audit events as structured log lines
type AuditLogger struct {
	log Logger
}

// NewAuditLogger writes audit events through log.
func NewAuditLogger(log Logger) *AuditLogger {
	return &AuditLogger{log: log.With("component", "audit")}
}

// LogEvent implements domain.AuditLogger
func (a *AuditLogger) LogEvent(ctx context.Context, event *domain.AuditEvent) error {
	if event == nil {
		return nil
	}
	if event.IPAddress == "" && event.UserAgent == "" {
		event.WithClientContext(domain.ClientFromContext(ctx))
	}

	args := []any{
		"event_type", string(event.EventType),
		"user_id", event.UserID,
		"success", event.Success,
		"timestamp", event.Timestamp,
	}
	if event.Mobile != "" {
		args = append(args, "mobile", event.Mobile)
	}
	if event.IPAddress != "" {
		args = append(args, "ip", event.IPAddress)
	}
	if event.UserAgent != "" {
		args = append(args, "user_agent", event.UserAgent)
	}
	if len(event.Metadata) > 0 {
		args = append(args, "metadata", event.Metadata)
	}

	if event.Success {
		a.log.Info(ctx, "audit", args...)
	} else {
		a.log.Warn(ctx, "audit", append(args, "error", event.ErrorMsg)...)
	}
	return nil
}

var _ domain.AuditLogger = (*AuditLogger)(nil)
