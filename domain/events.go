package domain

import "time"

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	AdminLoginEvent         AuditEventType = "ADMIN_LOGIN"
	AdminLoginFailureEvent  AuditEventType = "ADMIN_LOGIN_FAILED"
	CodeIssuedEvent         AuditEventType = "VERIFICATION_CODE_ISSUED"
	MemberLoginEvent        AuditEventType = "MEMBER_LOGIN"
	MemberLoginFailureEvent AuditEventType = "MEMBER_LOGIN_FAILED"
	RegistrationEvent       AuditEventType = "REGISTRATION_SUBMITTED"
	RegistrationDeniedEvent AuditEventType = "REGISTRATION_DENIED"
)

// AuditEvent records a business event for the audit trail.
type AuditEvent struct {
	EventType    AuditEventType `json:"event_type"`
	SubjectID    string         `json:"subject_id,omitempty"`
	MobileNumber string         `json:"mobile_number,omitempty"`
	Username     string         `json:"username,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
	Success      bool           `json:"success"`
	ErrorMsg     string         `json:"error_msg,omitempty"`
}

// AuditLogger defines audit trail operations
type AuditLogger interface {
	LogEvent(event *AuditEvent)
}

// NewAuditEvent creates an audit event stamped with the current time.
func NewAuditEvent(eventType AuditEventType) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		Success:   true,
	}
}

// WithError marks the event as failed and records the failure message.
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithSubject sets the acting principal's identifier.
func (e *AuditEvent) WithSubject(id string) *AuditEvent {
	e.SubjectID = id
	return e
}

// WithMobile sets the mobile number the event concerns.
func (e *AuditEvent) WithMobile(mobileNumber string) *AuditEvent {
	e.MobileNumber = mobileNumber
	return e
}

// WithUsername sets the admin username the event concerns.
func (e *AuditEvent) WithUsername(username string) *AuditEvent {
	e.Username = username
	return e
}
