package notification

import (
	"context"

	"farmdesk/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
)

type resendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer creates a Mailer that sends through the Resend API.
func NewResendMailer(apiKey, from string) service.Mailer {
	return &resendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *resendMailer) Send(ctx context.Context, email *service.Email) error {
	if len(email.To) == 0 {
		return errors.New("email has no recipients")
	}

	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	return nil
}
