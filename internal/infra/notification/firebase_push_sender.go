// Package notification implements the push and email channels notifications are delivered over.
package notification

import (
	"context"
	"fmt"

	"farmdesk/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

const maxMulticastTokens = 500

// multicastClient is the subset of the FCM client used here.
type multicastClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebasePushSender struct {
	client multicastClient
}

// NewFirebasePushSender creates a PushSender backed by Firebase Cloud Messaging.
func NewFirebasePushSender(ctx context.Context, app *firebase.App) (service.PushSender, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebasePushSender{
		client: client,
	}, nil
}

// SendBatchNotification sends push notifications to multiple device tokens (max 500 tokens)
func (s *firebasePushSender) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	if len(tokens) > maxMulticastTokens {
		return 0, 0, nil, fmt.Errorf("token count exceeds limit: %d (max %d)", len(tokens), maxMulticastTokens)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to send multicast notification: %w", err)
	}

	successCount = response.SuccessCount
	failureCount = response.FailureCount

	// Unregistered or malformed tokens will never succeed; report them for pruning.
	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error != nil &&
			(messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error)) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	return successCount, failureCount, invalidTokens, nil
}
