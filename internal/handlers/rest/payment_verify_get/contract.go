//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_verify_get_test
package payment_verify_get

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
	Verify(ctx context.Context, identity entities.Identity, reference string) (*entities.Payment, error)
}
