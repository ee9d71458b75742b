//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"swiftrider/internal/entities"
	"swiftrider/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, create entities.UserCreate) (*entities.User, error)
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	List(ctx context.Context, filter entities.UserFilter) ([]entities.User, int64, error)
	Update(ctx context.Context, modify entities.UserModify) (*entities.User, error)
	HasActiveDelivery(ctx context.Context, riderID int64) (bool, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash string, plain string) error
}

type TokenIssuer interface {
	Issue(identity entities.Identity) (string, error)
}

type Notifier interface {
	Publish(ctx context.Context, notification entities.Notification) error
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
