// Package context carries request-scoped values (request id, logger, tenant)
// between the transports and the use cases.
package context

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyTenant    ContextKey = "tenant"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	// HeaderCloudTraceContext is set by Google front ends as "TRACE_ID/SPAN_ID;o=1".
	HeaderCloudTraceContext = "X-Cloud-Trace-Context"
)

// Tenant identifies the caller and the farm its request is scoped to.
type Tenant struct {
	UID    string
	FarmID string
}

// RequestIDFromHeaders prefers an explicit request id, then the Cloud trace id.
// It returns "" when neither header is present.
func RequestIDFromHeaders(header interface{ Get(string) string }) string {
	if id := strings.TrimSpace(header.Get(HeaderXRequestID)); id != "" {
		return id
	}

	trace := header.Get(HeaderCloudTraceContext)
	if traceID, _, _ := strings.Cut(trace, "/"); traceID != "" {
		return traceID
	}

	return ""
}

// GetRequestID returns the request id stored on c, or a fresh one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request id.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns nil when ctx carries no request-scoped logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithTenant stores the caller on ctx and tags the request logger with it.
func WithTenant(ctx context.Context, tenant Tenant, fallback *slog.Logger) context.Context {
	attrs := []any{slog.String("uid", tenant.UID)}
	if tenant.FarmID != "" {
		attrs = append(attrs, slog.String("farm_id", tenant.FarmID))
	}

	ctx = context.WithValue(ctx, KeyTenant, tenant)

	return WithLogger(ctx, GetLoggerOrDefault(ctx, fallback).With(attrs...))
}

// TenantFromContext reports the caller set by WithTenant.
func TenantFromContext(ctx context.Context) (Tenant, bool) {
	tenant, ok := ctx.Value(KeyTenant).(Tenant)

	return tenant, ok
}
