package services

import (
	"context"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// emit records an audit event when an audit logger is configured.
// Audit failures never fail the business operation.
func emit(ctx context.Context, audit domain.AuditLogger, event *domain.AuditEvent) {
	if audit == nil || event == nil {
		return
	}
	_ = audit.LogEvent(ctx, event.WithClientContext(domain.ClientFromContext(ctx)))
}
