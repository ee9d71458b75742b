//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_availability_put_test
package rider_availability_put

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
	SetAvailability(ctx context.Context, identity entities.Identity, isAvailable bool) (*entities.User, error)
}
