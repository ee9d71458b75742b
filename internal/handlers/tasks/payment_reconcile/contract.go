//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_reconcile_test
package payment_reconcile

import (
	"context"
	"time"

	"swiftrider/pkg/logger"
)

type Service interface {
	Reconcile(ctx context.Context, olderThan time.Duration, limit int) (int, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
