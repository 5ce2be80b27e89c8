package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// contextKey is private so keys never collide with other packages.
type contextKey string

const (
	requestIDKey  contextKey = "request_id"
	employeeIDKey contextKey = "employee_id"
	roleKey       contextKey = "role"
	loggerKey     contextKey = "logger"
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithEmployeeID stores the authenticated employee (the actor) on the context.
func WithEmployeeID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, employeeIDKey, id)
}

func GetEmployeeID(ctx context.Context) string {
	if id, ok := ctx.Value(employeeIDKey).(string); ok {
		return id
	}
	return ""
}

func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

func GetRole(ctx context.Context) string {
	if role, ok := ctx.Value(roleKey).(string); ok {
		return role
	}
	return ""
}

// WithLogger stores a request scoped logger, usually already decorated with request metadata.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request scoped logger, falling back to defaultLogger and then to a
// no-op logger so callers never receive nil.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	if defaultLogger != nil {
		return defaultLogger
	}

	return zap.NewNop()
}

type Metadata struct {
	RequestID  string
	EmployeeID string
	Role       string
}

func ExtractMetadata(ctx context.Context) Metadata {
	return Metadata{
		RequestID:  GetRequestID(ctx),
		EmployeeID: GetEmployeeID(ctx),
		Role:       GetRole(ctx),
	}
}
