package mocks

import (
	"context"
	"sync"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// MockAuditLogger collects audit events for assertions
type MockAuditLogger struct {
	mu     sync.Mutex
	events []*domain.AuditEvent
}

func NewMockAuditLogger() *MockAuditLogger {
	return &MockAuditLogger{}
}

func (m *MockAuditLogger) LogEvent(ctx context.Context, event *domain.AuditEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

// Events returns the recorded events of the given type, or all when empty
func (m *MockAuditLogger) Events(eventType domain.AuditEventType) []*domain.AuditEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.AuditEvent
	for _, e := range m.events {
		if eventType == "" || e.EventType == eventType {
			out = append(out, e)
		}
	}
	return out
}

var _ domain.AuditLogger = (*MockAuditLogger)(nil)
