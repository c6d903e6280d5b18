package pubsub

import (
	"context"
	"log/slog"
	"strings"

	"farmdesk/config"
	"farmdesk/internal/domain/constants"
	"farmdesk/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher keeps notifications in-app only. Events are still encoded so
// a malformed event fails the same way it would against a real topic.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	if _, _, err := encodeEvent(event); err != nil {
		return err
	}

	p.logger.Debug("Notification delivery disabled, event kept in-app only",
		slog.String(attrNotificationID, event.NotificationID),
		slog.String(attrUserID, event.UserID),
		slog.String(attrKind, event.Kind),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the notification event transport from config. An
// unset provider disables out-of-app delivery.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	provider := providerName(cfg)
	if provider == "" {
		logger.Info("Notification delivery not configured, using in-app only publisher")

		return &noopPublisher{logger: logger}, nil
	}

	if err := validatePubSubConfig(provider, cfg); err != nil {
		return nil, err
	}

	var publisher service.EventPublisher
	switch provider {
	case constants.PubSubProviderLocal:
		logger.Info("Publishing notification events over HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		logger.Info("Publishing notification events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		var err error
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing notification event publisher", slog.String("provider", provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func providerName(cfg *config.PubSubConfig) string {
	if cfg == nil {
		return ""
	}

	return strings.ToLower(strings.TrimSpace(cfg.Provider))
}

func validatePubSubConfig(provider string, cfg *config.PubSubConfig) error {
	switch provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("local endpoint is required for local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return errors.New("topic ID is required for google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}
