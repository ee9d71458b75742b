//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_location_post_test
package tracking_location_post

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
	RecordLocation(ctx context.Context, identity entities.Identity, create entities.TrackingCreate) (*entities.TrackingEntry, error)
}
