package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventInvalidToken       EventType = "invalid_token"
	EventUnauthorizedAccess EventType = "unauthorized_access"
	EventForbiddenAccess    EventType = "forbidden_access"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventSocketRejected     EventType = "socket_rejected"
)

// SecurityEvent represents a security-related event to be logged
type SecurityEvent struct {
	Timestamp    time.Time              `json:"timestamp"`
	Service      string                 `json:"service"`
	Environment  string                 `json:"env"`
	Level        string                 `json:"level"`
	Event        EventType              `json:"event"`
	SubjectType  string                 `json:"subject_type,omitempty"`  // "ip", "user_id"
	SubjectValue string                 `json:"subject_value,omitempty"` // hashed for user ids
	IP           string                 `json:"ip,omitempty"`
	UserAgent    string                 `json:"user_agent,omitempty"`
	RequestID    string                 `json:"request_id,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// SecurityLogger provides structured logging for security events
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var (
	defaultLogger *SecurityLogger
	defaultMu     sync.RWMutex
)

// InitSecurityLogger builds the zap-backed security logger and makes it the default.
func InitSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	sl := NewSecurityLogger(logger, serviceName, environment)

	defaultMu.Lock()
	defaultLogger = sl
	defaultMu.Unlock()
	return sl
}

// NewSecurityLogger wraps an existing zap logger. Tests pass an observer core here.
func NewSecurityLogger(logger *zap.Logger, serviceName, environment string) *SecurityLogger {
	return &SecurityLogger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
}

// DefaultLogger returns the process-wide security logger, or a no-op one before init.
func DefaultLogger() *SecurityLogger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	if defaultLogger == nil {
		return NewSecurityLogger(zap.NewNop(), "", "")
	}
	return defaultLogger
}

// Log logs a security event
func (sl *SecurityLogger) Log(ctx context.Context, event SecurityEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = sl.serviceName
	event.Environment = sl.environment

	level := zapcore.WarnLevel
	switch event.Event {
	case EventSocketRejected:
		level = zapcore.InfoLevel
	case EventForbiddenAccess, EventUnauthorizedAccess:
		level = zapcore.ErrorLevel
	}
	event.Level = level.String()

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	sl.zapLogger.Log(level, string(event.Event), fields...)
}

// LogForbiddenAccess records an actor touching a match or offer they do not belong to.
func (sl *SecurityLogger) LogForbiddenAccess(ctx context.Context, userID, ip, requestID, endpoint, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventForbiddenAccess,
		SubjectType:  "user_id",
		SubjectValue: HashValue(userID),
		IP:           ip,
		RequestID:    requestID,
		Details:      map[string]interface{}{"endpoint": endpoint, "reason": reason},
	})
}

// LogInvalidToken records a rejected bearer token.
func (sl *SecurityLogger) LogInvalidToken(ctx context.Context, ip, userAgent, requestID, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:       EventInvalidToken,
		SubjectType: "ip",
		IP:          ip,
		UserAgent:   userAgent,
		RequestID:   requestID,
		Details:     map[string]interface{}{"reason": reason},
	})
}

// LogRateLimitTriggered logs when rate limiting is triggered
func (sl *SecurityLogger) LogRateLimitTriggered(ctx context.Context, subject, ip, userAgent, requestID, endpoint string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventRateLimitTriggered,
		SubjectType:  "key",
		SubjectValue: HashValue(subject),
		IP:           ip,
		UserAgent:    userAgent,
		RequestID:    requestID,
		Details:      map[string]interface{}{"endpoint": endpoint},
	})
}

// LogSocketRejected records a websocket handshake or room join that was refused.
func (sl *SecurityLogger) LogSocketRejected(ctx context.Context, userID, ip, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventSocketRejected,
		SubjectType:  "user_id",
		SubjectValue: HashValue(userID),
		IP:           ip,
		Details:      map[string]interface{}{"reason": reason},
	})
}

// Sync flushes any buffered log entries
func (sl *SecurityLogger) Sync() error {
	return sl.zapLogger.Sync()
}

// HashValue creates a short SHA256 digest of a value (for logging without PII)
func HashValue(value string) string {
	if value == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}
