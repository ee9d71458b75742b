//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_register_post_test
package auth_register_post

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
	Register(ctx context.Context, registration entities.UserRegistration) (*entities.AuthResult, error)
}
