//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"
	"encoding/json"
	"time"

	"swiftrider/internal/entities"
	"swiftrider/internal/service/access"
	"swiftrider/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, create entities.PaymentCreate) (*entities.Payment, error)
	GetByID(ctx context.Context, id int64) (*entities.Payment, error)
	GetByReference(ctx context.Context, reference string) (*entities.Payment, error)
	List(ctx context.Context, filter entities.PaymentFilter) ([]entities.Payment, int64, error)
	// Complete фиксирует итог только у pending платежа, иначе ErrAlreadySettled.
	Complete(ctx context.Context, id int64, status entities.TransactionStatus, gatewayResponse json.RawMessage) (*entities.Payment, error)
	ListPending(ctx context.Context, createdBefore time.Time, limit int) ([]entities.Payment, error)
}

type DeliveryRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
	MarkPaid(ctx context.Context, id int64, amount float64) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
}

type Gateway interface {
	Initialize(ctx context.Context, charge entities.GatewayCharge) (*entities.GatewayInitialization, error)
	Verify(ctx context.Context, reference string) (*entities.GatewayVerification, error)
}

type Notifier interface {
	Publish(ctx context.Context, notification entities.Notification) error
}

type Authorizer interface {
	Authorize(actor entities.Identity, resource access.Resource, action access.Action) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
