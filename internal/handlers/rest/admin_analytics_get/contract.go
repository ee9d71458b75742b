//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_analytics_get_test
package admin_analytics_get

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
	Get(ctx context.Context, window entities.AnalyticsWindow) (*entities.AnalyticsReport, error)
}
