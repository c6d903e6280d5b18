package notification

import (
	"context"
	"log/slog"

	"farmdesk/config"
	"farmdesk/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// noopPushSender drops pushes when FCM is not configured.
type noopPushSender struct {
	logger *slog.Logger
}

func (s *noopPushSender) SendBatchNotification(_ context.Context, tokens []string, title, _ string, _ map[string]string) (int, int, []string, error) {
	s.logger.Debug("[NoopPush] Push delivery disabled, skipping", slog.String("title", title), slog.Int("tokens", len(tokens)))

	return 0, 0, nil, nil
}

// noopMailer drops emails when no API key is configured.
type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) Send(_ context.Context, email *service.Email) error {
	m.logger.Debug("[NoopMail] Email delivery disabled, skipping", slog.String("subject", email.Subject))

	return nil
}

type PushSenderParams struct {
	fx.In

	Ctx    context.Context
	App    *firebase.App `optional:"true"`
	Logger *slog.Logger
}

// NewPushSender uses FCM when a Firebase app is available.
func NewPushSender(params PushSenderParams) (service.PushSender, error) {
	if params.App == nil {
		params.Logger.Info("Firebase not configured, using no-op push sender")

		return &noopPushSender{logger: params.Logger}, nil
	}

	return NewFirebasePushSender(params.Ctx, params.App)
}

// NewMailer uses Resend when an API key is configured.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.Email == nil || cfg.Email.APIKey == "" {
		logger.Info("Email not configured, using no-op mailer")

		return &noopMailer{logger: logger}
	}

	return NewResendMailer(cfg.Email.APIKey, cfg.Email.From)
}
