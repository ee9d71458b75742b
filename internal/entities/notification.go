package entities

import "time"

type NotificationKind string

const (
	NotificationWelcome           NotificationKind = "welcome"
	NotificationDeliveryAccepted  NotificationKind = "delivery_accepted"
	NotificationDeliveryPickedUp  NotificationKind = "delivery_picked_up"
	NotificationDeliveryCompleted NotificationKind = "delivery_completed"
	NotificationDeliveryCancelled NotificationKind = "delivery_cancelled"
	NotificationPaymentSuccess    NotificationKind = "payment_success"
	NotificationPaymentFailed     NotificationKind = "payment_failed"
)

func (k NotificationKind) String() string {
	return string(k)
}

func (k NotificationKind) IsValid() bool {
	switch k {
	case NotificationWelcome,
		NotificationDeliveryAccepted,
		NotificationDeliveryPickedUp,
		NotificationDeliveryCompleted,
		NotificationDeliveryCancelled,
		NotificationPaymentSuccess,
		NotificationPaymentFailed:
		return true
	default:
		return false
	}
}

// NotificationKindForStatus возвращает тип письма клиенту для нового статуса,
// false если письмо не отправляется.
func NotificationKindForStatus(status DeliveryStatus) (NotificationKind, bool) {
	switch status {
	case DeliveryAccepted:
		return NotificationDeliveryAccepted, true
	case DeliveryInProgress:
		return NotificationDeliveryPickedUp, true
	case DeliveryCompleted:
		return NotificationDeliveryCompleted, true
	case DeliveryCancelled:
		return NotificationDeliveryCancelled, true
	default:
		return "", false
	}
}

type Notification struct {
	Kind      NotificationKind
	To        string
	Data      map[string]string
	CreatedAt time.Time
}

type EmailMessage struct {
	To      string
	Subject string
	Body    string
}
