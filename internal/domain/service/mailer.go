package service

import "context"

// Email is a rendered transactional message.
type Email struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Mailer delivers transactional email through the email API.
type Mailer interface {
	Send(ctx context.Context, email *Email) error
}
