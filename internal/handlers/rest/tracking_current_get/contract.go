//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_current_get_test
package tracking_current_get

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
	Current(ctx context.Context, identity entities.Identity, deliveryID int64) (*entities.TrackingEntry, error)
}
