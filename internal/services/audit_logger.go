package services

import (
	"log"

	"github.com/you/profilecms/domain"
)

// LogAuditLogger implements domain.AuditLogger on the standard logger,
// one line per event with a grep-friendly tag.
type LogAuditLogger struct{}

// NewAuditLogger creates a new log-based audit logger
func NewAuditLogger() domain.AuditLogger {
	return &LogAuditLogger{}
}

// LogEvent implements domain.AuditLogger
func (l *LogAuditLogger) LogEvent(event *domain.AuditEvent) {
	if event == nil {
		return
	}
	if event.Success {
		log.Printf("%s: user_id=%d email=%s ip=%s resource=%s",
			event.EventType, event.UserID, event.Email, event.IPAddress, event.Resource)
		return
	}
	log.Printf("%s: user_id=%d email=%s ip=%s resource=%s error=%q",
		event.EventType, event.UserID, event.Email, event.IPAddress, event.Resource, event.ErrorMsg)
}
