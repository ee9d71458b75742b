package kafka

import (
	"time"

	"swiftrider/internal/entities"
)

// NotificationEvent - сообщение в топике уведомлений.
type NotificationEvent struct {
	Kind      string            `json:"kind"`
	To        string            `json:"to"`
	Data      map[string]string `json:"data,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationEvent {
	return NotificationEvent{
		Kind:      n.Kind.String(),
		To:        n.To,
		Data:      n.Data,
		CreatedAt: n.CreatedAt,
	}
}

func (e NotificationEvent) ToNotification() entities.Notification {
	return entities.Notification{
		Kind:      entities.NotificationKind(e.Kind),
		To:        e.To,
		Data:      e.Data,
		CreatedAt: e.CreatedAt,
	}
}
