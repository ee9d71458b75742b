//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"swiftrider/internal/handlers/tasks/payment_reconcile"
	"swiftrider/internal/pkg/config"
	"swiftrider/internal/pkg/kafka"
	"swiftrider/internal/pkg/middlewares/auth"
	"swiftrider/internal/pkg/token"
	analyticsService "swiftrider/internal/service/analytics"
	deliveryService "swiftrider/internal/service/delivery"
	paymentService "swiftrider/internal/service/payment"
	trackingService "swiftrider/internal/service/tracking"
	userService "swiftrider/internal/service/user"
	"swiftrider/pkg/logger"
)

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideUserRepository,
	provideDeliveryRepository,
	providePaymentRepository,
	provideTrackingRepository,
	provideAnalyticsRepository,
	provideLocationCache,
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient goredis.Cmdable,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,

		provideTokenIssuer,
		providePasswordHasher,
		provideGate,
		provideDistanceCalculator,
		providePaystackGateway,

		provideServiceUser,
		provideServiceDelivery,
		provideServicePayment,
		provideServiceTracking,
		provideServiceAnalytics,

		provideRateLimiter,
		providePaymentReconcileTask,
		provideRateLimiterPruneTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServicePayment), new(*paymentService.Payment)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Tracking)),
		wire.Bind(new(ServiceAnalytics), new(*analyticsService.Analytics)),
		wire.Bind(new(auth.TokenParser), new(*token.Issuer)),

		wire.Bind(new(userService.Notifier), new(*kafka.Producer)),
		wire.Bind(new(deliveryService.Notifier), new(*kafka.Producer)),
		wire.Bind(new(paymentService.Notifier), new(*kafka.Producer)),

		wire.Bind(new(payment_reconcile.Service), new(*paymentService.Payment)),
	)
	return &Application{}, nil
}

// InitializeNotificationWorkerApp для воркера уведомлений (cmd/worker-notifications)
func InitializeNotificationWorkerApp(
	log logger.Logger,
	cfg *config.Config,
) (*NotificationWorkerApp, error) {
	wire.Build(
		provideMailer,
		provideServiceNotification,

		wire.Struct(new(NotificationWorkerApp), "*"),
	)
	return nil, nil
}
