//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"swiftrider/internal/entities"
	"swiftrider/internal/service/access"
	"swiftrider/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, create entities.TrackingCreate) (*entities.TrackingEntry, error)
	ListByDelivery(ctx context.Context, deliveryID int64) ([]entities.TrackingEntry, error)
	Latest(ctx context.Context, deliveryID int64) (*entities.TrackingEntry, error)
}

type DeliveryRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
}

// LocationCache хранит последнюю точку доставки. Промах - ErrLocationNotCached.
type LocationCache interface {
	Set(ctx context.Context, entry entities.TrackingEntry) error
	Get(ctx context.Context, deliveryID int64) (*entities.TrackingEntry, error)
}

type Authorizer interface {
	Authorize(actor entities.Identity, resource access.Resource, action access.Action) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
