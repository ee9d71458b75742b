package notification_requested

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"time"

	"github.com/IBM/sarama"
	"swiftrider/internal/apperr"
	"swiftrider/internal/pkg/kafka"
	"swiftrider/pkg/logger"
)

type Handler struct {
	notificationService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notificationService Service, timeout time.Duration) *Handler {
	return &Handler{
		notificationService:      notificationService,
		log:                      log.With(logger.NewField("handler", "notification.requested")),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim messages closed, exiting ConsumeClaim")
				return nil
			}

			if h.messageProcessing(sess, message) {
				return nil
			}

		case <-sess.Context().Done():
			// ребалансировка или остановка группы
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если сообщение оставлено на повторную доставку
// и ConsumeClaim нужно прервать.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event kafka.NotificationEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.Error("received bad message",
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		)
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("kind", event.Kind),
		logger.NewField("offset", message.Offset),
		logger.NewField("partition", message.Partition),
	)

	err = h.notificationService.Send(ctx, event.ToNotification())
	if err != nil {
		switch {
		case isTransient(err):
			msgLog.Warn("notification not sent, message will be reprocessed", logger.NewField("error", err))
			return true

		case errors.Is(err, apperr.ErrValidation):
			msgLog.Warn("notification rejected", logger.NewField("error", err))

		default:
			msgLog.Error("failed to send notification", logger.NewField("error", err))
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("notification processed")
	sess.MarkMessage(message, "")
	return false
}

func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
