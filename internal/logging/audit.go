package logging

import (
	"go.uber.org/zap"

	"github.com/elifesajna/self-employ-final/domain"
)

// AuditLogger implements domain.AuditLogger on top of zap.
type AuditLogger struct {
	logger *zap.Logger
}

// NewAuditLogger creates a zap-backed audit logger.
func NewAuditLogger(logger *zap.Logger) *AuditLogger {
	return &AuditLogger{logger: logger.Named("audit")}
}

// LogEvent implements domain.AuditLogger
func (a *AuditLogger) LogEvent(event *domain.AuditEvent) {
	if event == nil {
		return
	}

	fields := []zap.Field{
		zap.String("event_type", string(event.EventType)),
		zap.Time("timestamp", event.Timestamp),
		zap.Bool("success", event.Success),
	}
	if event.SubjectID != "" {
		fields = append(fields, zap.String("subject_id", event.SubjectID))
	}
	if event.MobileNumber != "" {
		fields = append(fields, zap.String("mobile_number", event.MobileNumber))
	}
	if event.Username != "" {
		fields = append(fields, zap.String("username", event.Username))
	}
	if event.ErrorMsg != "" {
		fields = append(fields, zap.String("error", event.ErrorMsg))
	}

	if event.Success {
		a.logger.Info("audit event", fields...)
	} else {
		a.logger.Warn("audit event", fields...)
	}
}
