package pubsub

import (
	"encoding/json"

	"farmdesk/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute keys set on every notification message. The worker reads
// request_id from here before falling back to the payload.
const (
	attrNotificationID = "notification_id"
	attrUserID         = "user_id"
	attrKind           = "kind"
	attrRequestID      = "request_id"
)

// encodeEvent returns the JSON payload and the attributes used for
// subscription filtering and tracing.
func encodeEvent(event *service.NotificationEvent) ([]byte, map[string]string, error) {
	if event == nil || event.UserID == "" {
		return nil, nil, errors.New("notification event needs a recipient")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		attrNotificationID: event.NotificationID,
		attrUserID:         event.UserID,
		attrKind:           event.Kind,
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return data, attributes, nil
}

// orderingKey keeps one recipient's notifications in publish order.
func orderingKey(event *service.NotificationEvent) string {
	return "user:" + event.UserID
}
