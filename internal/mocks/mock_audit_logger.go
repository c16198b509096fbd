package mocks

import (
	"sync"

	"github.com/you/profilecms/domain"
)

// MockAuditLogger implements domain.AuditLogger interface for testing.
// It records every event so tests can assert on what was logged.
type MockAuditLogger struct {
	mu     sync.Mutex
	Events []*domain.AuditEvent

	LogEventFunc func(event *domain.AuditEvent)
}

// NewMockAuditLogger creates a new MockAuditLogger
func NewMockAuditLogger() *MockAuditLogger {
	return &MockAuditLogger{}
}

// LogEvent records an audit event
func (m *MockAuditLogger) LogEvent(event *domain.AuditEvent) {
	m.mu.Lock()
	m.Events = append(m.Events, event)
	m.mu.Unlock()
	if m.LogEventFunc != nil {
		m.LogEventFunc(event)
	}
}

// HasEvent reports whether an event of the given type was logged
func (m *MockAuditLogger) HasEvent(eventType domain.AuditEventType) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Events {
		if e.EventType == eventType {
			return true
		}
	}
	return false
}
