package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmdesk/config"
	deliverycontext "farmdesk/internal/delivery/context"
	"farmdesk/internal/domain/constants"
	"farmdesk/internal/domain/service"
	mockUsecase "farmdesk/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockDeliveryUsecase) {
	deliveryUC := mockUsecase.NewMockDeliveryUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		DeliveryUC: deliveryUC,
	})

	return h, deliveryUC
}

func developConfig() *config.Config {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	cfg.Env.Env = constants.EnvDevelop

	return cfg
}

func pushBody(t *testing.T, data string, attributes map[string]string) []byte {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/farmdesk/subscriptions/notifications"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func encodeEvent(t *testing.T, event service.NotificationEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func servePush(h *PushHandler, body []byte, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := service.NotificationEvent{
		NotificationID: "n-1",
		UserID:         "staff-uid",
		Kind:           "task_assigned",
		Title:          "New task",
		Message:        "Check the irrigation lines",
	}

	t.Run("delivers event", func(t *testing.T) {
		h, deliveryUC := newTestPushHandler(t, developConfig())
		deliveryUC.EXPECT().
			Deliver(mock.Anything, mock.MatchedBy(func(got *service.NotificationEvent) bool {
				return got.NotificationID == "n-1" && got.UserID == "staff-uid"
			})).
			RunAndReturn(func(ctx context.Context, _ *service.NotificationEvent) error {
				assert.Equal(t, "req-from-attributes", deliverycontext.GetRequestIDFromContext(ctx))

				return nil
			})

		rec := servePush(h, pushBody(t, encodeEvent(t, event), map[string]string{"request_id": "req-from-attributes"}), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("event request id is used without attributes", func(t *testing.T) {
		h, deliveryUC := newTestPushHandler(t, developConfig())
		withRequestID := event
		withRequestID.RequestID = "req-from-event"
		deliveryUC.EXPECT().
			Deliver(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, _ *service.NotificationEvent) error {
				assert.Equal(t, "req-from-event", deliverycontext.GetRequestIDFromContext(ctx))

				return nil
			})

		rec := servePush(h, pushBody(t, encodeEvent(t, withRequestID), nil), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delivery failure asks for retry", func(t *testing.T) {
		h, deliveryUC := newTestPushHandler(t, developConfig())
		deliveryUC.EXPECT().Deliver(mock.Anything, mock.Anything).Return(errors.New("firestore unavailable"))

		rec := servePush(h, pushBody(t, encodeEvent(t, event), nil), "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestPushHandler_HandlePush_Malformed(t *testing.T) {
	noRecipient := encodeEvent(t, service.NotificationEvent{NotificationID: "n-1"})

	tests := []struct {
		name string
		body []byte
	}{
		{name: "invalid json", body: []byte("{not json")},
		{name: "invalid base64", body: pushBody(t, "***", nil)},
		{name: "invalid event", body: pushBody(t, base64.StdEncoding.EncodeToString([]byte("[1,2]")), nil)},
		{name: "missing recipient", body: pushBody(t, noRecipient, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, developConfig())

			rec := servePush(h, tt.body, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifyPushAuth(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://worker.farmdesk.test/push",
	}}
	cfg.Env.Env = "production"

	body := pushBody(t, encodeEvent(t, service.NotificationEvent{NotificationID: "n-1", UserID: "u"}), nil)

	tests := []struct {
		name          string
		authorization string
		payload       *idtoken.Payload
		validateErr   error
		wantStatus    int
	}{
		{name: "missing token", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", authorization: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", authorization: "Bearer bad", validateErr: errors.New("expired"), wantStatus: http.StatusUnauthorized},
		{
			name:          "wrong issuer",
			authorization: "Bearer token",
			payload:       &idtoken.Payload{Issuer: "https://evil.test"},
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "unverified email",
			authorization: "Bearer token",
			payload:       &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "valid token",
			authorization: "Bearer token",
			payload:       &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": true}},
			wantStatus:    http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deliveryUC := newTestPushHandler(t, cfg)
			require.True(t, h.verifyPushAuth)

			h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "https://worker.farmdesk.test/push", audience)
				if tt.validateErr != nil {
					return nil, tt.validateErr
				}

				return tt.payload, nil
			}
			if tt.wantStatus == http.StatusOK {
				deliveryUC.EXPECT().Deliver(mock.Anything, mock.Anything).Return(nil)
			}

			rec := servePush(h, body, tt.authorization)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
