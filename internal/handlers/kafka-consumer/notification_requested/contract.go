//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_requested_test
package notification_requested

import (
	"context"

	"swiftrider/internal/entities"
	"swiftrider/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Send(ctx context.Context, notification entities.Notification) error
}
