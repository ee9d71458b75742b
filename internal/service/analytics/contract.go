//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=analytics_test
package analytics

import (
	"context"

	"swiftrider/internal/entities"
	"swiftrider/pkg/logger"
)

type Repository interface {
	DeliveryCounts(ctx context.Context, window entities.AnalyticsWindow) (entities.DeliveryCounts, error)
	Revenue(ctx context.Context, window entities.AnalyticsWindow) (entities.RevenueSummary, error)
	UserCounts(ctx context.Context, window entities.AnalyticsWindow) (entities.UserCounts, error)
	Performance(ctx context.Context, window entities.AnalyticsWindow) (entities.PerformanceSummary, error)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
