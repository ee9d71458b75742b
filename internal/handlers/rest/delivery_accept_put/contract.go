//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_accept_put_test
package delivery_accept_put

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
	Accept(ctx context.Context, identity entities.Identity, id int64) (*entities.Delivery, error)
}
