package domain

import "time"

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Authentication events
	UserLoginEvent        AuditEventType = "USER_LOGIN"
	UserLoginFailureEvent AuditEventType = "USER_LOGIN_FAILED"
	UserLogoutEvent       AuditEventType = "USER_LOGOUT"

	// Authorization events
	AccessDeniedEvent   AuditEventType = "ACCESS_DENIED"
	StoreDegradedEvent  AuditEventType = "SESSION_STORE_DEGRADED"
	SelfDemotionEvent   AuditEventType = "SELF_DEMOTION_BLOCKED"

	// Content events
	ContentChangedEvent AuditEventType = "CONTENT_CHANGED"
)

// AuditEvent represents a business event that occurred in the system
type AuditEvent struct {
	EventType AuditEventType `json:"event_type"`
	UserID    uint           `json:"user_id"`
	Email     string         `json:"email,omitempty"`
	IPAddress string         `json:"ip_address,omitempty"`
	Resource  string         `json:"resource,omitempty"`
	ErrorMsg  string         `json:"error_msg,omitempty"`
	Success   bool           `json:"success"`
	Timestamp time.Time      `json:"timestamp"`
}

// AuditLogger defines operations for audit logging
type AuditLogger interface {
	LogEvent(event *AuditEvent)
}

// NewAuditEvent creates a new audit event with common fields populated
func NewAuditEvent(eventType AuditEventType, userID uint) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Success:   true,
	}
}

// WithError sets error information on the audit event
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithEmail sets the email field
func (e *AuditEvent) WithEmail(email string) *AuditEvent {
	e.Email = email
	return e
}

// WithIP sets the origin address field
func (e *AuditEvent) WithIP(ip string) *AuditEvent {
	e.IPAddress = ip
	return e
}

// WithResource sets the resource field
func (e *AuditEvent) WithResource(resource string) *AuditEvent {
	e.Resource = resource
	return e
}
