//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"swiftrider/internal/entities"
	"swiftrider/internal/service/access"
	"swiftrider/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, create entities.DeliveryCreate) (*entities.Delivery, error)
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
	List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, int64, error)
	// Transition меняет статус только если в базе все еще transition.From,
	// иначе ErrStatusChanged.
	Transition(ctx context.Context, transition entities.DeliveryTransition) (*entities.Delivery, error)
	UpdateActualCost(ctx context.Context, id int64, actualCost float64) (*entities.Delivery, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	// ClaimRider переводит свободного курьера в занятые, false если он уже занят.
	ClaimRider(ctx context.Context, riderID int64) (bool, error)
	ReleaseRider(ctx context.Context, riderID int64) error
}

type DistanceCalculator interface {
	Distance(ctx context.Context, origin string, destination string) (float64, error)
}

type Notifier interface {
	Publish(ctx context.Context, notification entities.Notification) error
}

type Authorizer interface {
	Authorize(actor entities.Identity, resource access.Resource, action access.Action) error
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
