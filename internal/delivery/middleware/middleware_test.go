package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmdesk/config"
	deliverycontext "farmdesk/internal/delivery/context"
	domainerrors "farmdesk/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var seen string
	handler := m.Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	})

	t.Run("reuses header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-1")
		rec := httptest.NewRecorder()

		require.NoError(t, handler(echo.New().NewContext(req, rec)))

		assert.Equal(t, "req-1", seen)
		assert.Equal(t, "req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()

		require.NoError(t, handler(echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		path    string
		handler echo.HandlerFunc
		wantLog string
	}{
		{
			name:    "debug logs success",
			debug:   true,
			path:    "/api/v1/fields",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog: "status=200",
		},
		{
			name:    "quiet mode skips client errors",
			path:    "/api/v1/fields",
			handler: func(_ echo.Context) error { return domainerrors.ErrFieldNotFound },
		},
		{
			name:    "quiet mode logs server errors",
			path:    "/api/v1/fields",
			handler: func(_ echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway) },
			wantLog: "status=502",
		},
		{
			name:    "health is never logged",
			debug:   true,
			path:    "/health",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, tt.path, nil), httptest.NewRecorder())
			_ = m.Handle(tt.handler)(c)

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.wantLog)
			}
		})
	}
}
