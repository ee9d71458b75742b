//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_user_get_test
package admin_user_get

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
	GetUser(ctx context.Context, id int64) (*entities.User, error)
}
