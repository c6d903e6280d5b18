package impl

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"
	"strings"

	"farmdesk/config"
	deliverycontext "farmdesk/internal/delivery/context"
	"farmdesk/internal/domain/entity"
	"farmdesk/internal/domain/repository"
	"farmdesk/internal/domain/service"
	"farmdesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var notificationEmailTemplate = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #1f2933;">
    <p>Hi {{.Name}},</p>
    <h2 style="margin-bottom: 4px;">{{.Title}}</h2>
    <p>{{.Message}}</p>
    {{- if .URL}}
    <p><a href="{{.URL}}">Open Farmdesk</a></p>
    {{- end}}
    <p style="font-size: 12px; color: #7b8794;">You can change which emails you receive in your notification settings.</p>
  </body>
</html>`))

type notificationEmail struct {
	Name    string
	Title   string
	Message string
	URL     string
}

type deliveryService struct {
	userRepo   repository.UserRepository
	txManager  repository.TransactionManager
	mailer     service.Mailer
	pushSender service.PushSender
	appBaseURL string
	logger     *slog.Logger
}

// DeliveryServiceParams holds dependencies for DeliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	TxManager  repository.TransactionManager
	Mailer     service.Mailer
	PushSender service.PushSender
	Config     *config.Config
	Logger     *slog.Logger
}

func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	var appBaseURL string
	if params.Config != nil && params.Config.Email != nil {
		appBaseURL = strings.TrimRight(params.Config.Email.AppBaseURL, "/")
	}

	return &deliveryService{
		userRepo:   params.UserRepo,
		txManager:  params.TxManager,
		mailer:     params.Mailer,
		pushSender: params.PushSender,
		appBaseURL: appBaseURL,
		logger:     params.Logger,
	}
}

func (srv *deliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Deliver sends the event over the channels the recipient opted into. Channel
// failures are logged and dropped; only a failed recipient lookup asks for
// redelivery.
func (srv *deliveryService) Deliver(ctx context.Context, event *service.NotificationEvent) error {
	logger := srv.log(ctx).With(slog.String("notificationID", event.NotificationID), slog.String("userID", event.UserID))

	user, err := srv.userRepo.FindByUID(ctx, event.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		logger.Warn("Notification recipient not found, dropping event")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to load notification recipient")
	}

	if !user.Preferences.WantsKind(entity.NotificationKind(event.Kind)) {
		logger.Debug("Recipient opted out of this notification kind", slog.String("kind", event.Kind))

		return nil
	}

	if user.Preferences.Email && user.Email != "" {
		srv.sendEmail(ctx, logger, user, event)
	}

	if user.Preferences.Push && len(user.PushTokens) > 0 {
		srv.sendPush(ctx, logger, user, event)
	}

	return nil
}

func (srv *deliveryService) sendEmail(ctx context.Context, logger *slog.Logger, user *entity.User, event *service.NotificationEvent) {
	data := notificationEmail{
		Name:    user.Name,
		Title:   event.Title,
		Message: event.Message,
	}
	if event.Link != "" && srv.appBaseURL != "" {
		data.URL = srv.appBaseURL + event.Link
	}

	var body bytes.Buffer
	if err := notificationEmailTemplate.Execute(&body, data); err != nil {
		logger.Error("Failed to render notification email", slog.Any("error", err))

		return
	}

	email := &service.Email{
		To:      []string{user.Email},
		Subject: event.Title,
		HTML:    body.String(),
		Text:    event.Message,
	}
	if err := srv.mailer.Send(ctx, email); err != nil {
		logger.Warn("Failed to send notification email", slog.Any("error", err))

		return
	}

	logger.Debug("Notification email sent")
}

func (srv *deliveryService) sendPush(ctx context.Context, logger *slog.Logger, user *entity.User, event *service.NotificationEvent) {
	data := map[string]string{
		"notification_id": event.NotificationID,
		"kind":            event.Kind,
		"link":            event.Link,
	}

	successCount, failureCount, invalidTokens, err := srv.pushSender.SendBatchNotification(ctx, user.PushTokens, event.Title, event.Message, data)
	if err != nil {
		logger.Warn("Failed to send push notification", slog.Any("error", err))

		return
	}

	logger.Debug("Push notification sent", slog.Int("success", successCount), slog.Int("failure", failureCount))

	if len(invalidTokens) == 0 {
		return
	}

	if err := srv.pruneTokens(ctx, user.UID, invalidTokens); err != nil {
		logger.Warn("Failed to prune invalid push tokens", slog.Int("invalid", len(invalidTokens)), slog.Any("error", err))

		return
	}

	logger.Info("Pruned invalid push tokens", slog.Int("invalid", len(invalidTokens)))
}

// pruneTokens drops tokens the push provider rejected. The list is re-read
// under a row lock; the snapshot used for sending may already be stale.
func (srv *deliveryService) pruneTokens(ctx context.Context, uid string, invalid []string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByUIDForUpdate(ctx, uid)
		if err != nil {
			return errors.Wrap(err, "failed to lock user")
		}

		user.RemovePushTokens(invalid)

		return errors.Wrap(userRepo.UpdatePushTokens(ctx, uid, user.PushTokens), "failed to update push tokens")
	})
}
