//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_customer_get_test
package deliveries_customer_get

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
	ListForCustomer(ctx context.Context, identity entities.Identity, page entities.Page) (*entities.List[entities.Delivery], error)
}
