package app

import (
	"context"
	"net/http"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"swiftrider/internal/gateway/http/paystack"
	"swiftrider/internal/gateway/maps/distance"
	"swiftrider/internal/gateway/smtp/mailer"
	"swiftrider/internal/handlers/tasks/payment_reconcile"
	"swiftrider/internal/handlers/tasks/rate_limiter_prune"
	"swiftrider/internal/pkg/config"
	"swiftrider/internal/pkg/token"
	"swiftrider/internal/repository"
	analyticsRepo "swiftrider/internal/repository/analytics"
	deliveryRepo "swiftrider/internal/repository/delivery"
	"swiftrider/internal/repository/location"
	paymentRepo "swiftrider/internal/repository/payment"
	trackingRepo "swiftrider/internal/repository/tracking"
	userRepo "swiftrider/internal/repository/user"
	"swiftrider/internal/service/access"
	analyticsService "swiftrider/internal/service/analytics"
	deliveryService "swiftrider/internal/service/delivery"
	"swiftrider/internal/service/notification"
	paymentService "swiftrider/internal/service/payment"
	trackingService "swiftrider/internal/service/tracking"
	userService "swiftrider/internal/service/user"
	"swiftrider/pkg/background"
	"swiftrider/pkg/logger"
	"swiftrider/pkg/password"
	"swiftrider/pkg/querier"
	"swiftrider/pkg/token_bucket"
	"swiftrider/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) repository.Querier {
	return querier.New(pool, getter)
}

func provideUserRepository(q repository.Querier) *userRepo.Repository {
	return userRepo.New(q)
}

func provideDeliveryRepository(q repository.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(q)
}

func providePaymentRepository(q repository.Querier) *paymentRepo.Repository {
	return paymentRepo.New(q)
}

func provideTrackingRepository(q repository.Querier) *trackingRepo.Repository {
	return trackingRepo.New(q)
}

func provideAnalyticsRepository(q repository.Querier) *analyticsRepo.Repository {
	return analyticsRepo.New(q)
}

func provideLocationCache(client goredis.Cmdable, cfg *config.Config) *location.Cache {
	return location.New(client, cfg.Redis.LocationTTL)
}

func provideTokenIssuer(cfg *config.Config) *token.Issuer {
	return token.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func providePasswordHasher() *password.Hasher {
	return password.New(0)
}

func provideGate() *access.Gate {
	return access.New()
}

// provideDistanceCalculator без ключа Google Maps возвращает nil интерфейс,
// доставки тогда создаются без расстояния.
func provideDistanceCalculator(log logger.Logger, cfg *config.Config) (deliveryService.DistanceCalculator, error) {
	if cfg.Maps.APIKey == "" {
		log.Warn("MAPS_API_KEY is not set, distance calculation disabled")
		return nil, nil
	}
	calculator, err := distance.New(&cfg.Maps)
	if err != nil {
		return nil, err
	}
	return calculator, nil
}

func providePaystackGateway(cfg *config.Config) *paystack.Gateway {
	return paystack.New(&http.Client{}, &cfg.Paystack)
}

func provideMailer(cfg *config.Config) *mailer.Mailer {
	return mailer.New(&cfg.SMTP)
}

func provideServiceUser(
	repository *userRepo.Repository,
	hasher *password.Hasher,
	tokens *token.Issuer,
	notifier userService.Notifier,
	txManager *tx.Manager,
	log logger.Logger,
) *userService.User {
	return userService.New(repository, hasher, tokens, notifier, txManager, log.With(logger.NewField("service", "user")))
}

func provideServiceDelivery(
	repository *deliveryRepo.Repository,
	users *userRepo.Repository,
	distances deliveryService.DistanceCalculator,
	notifier deliveryService.Notifier,
	gate *access.Gate,
	txManager *tx.Manager,
	log logger.Logger,
) *deliveryService.Delivery {
	return deliveryService.New(repository, users, distances, notifier, gate, txManager, log.With(logger.NewField("service", "delivery")))
}

func provideServicePayment(
	repository *paymentRepo.Repository,
	deliveries *deliveryRepo.Repository,
	users *userRepo.Repository,
	gateway *paystack.Gateway,
	notifier paymentService.Notifier,
	gate *access.Gate,
	txManager *tx.Manager,
	log logger.Logger,
) *paymentService.Payment {
	return paymentService.New(repository, deliveries, users, gateway, notifier, gate, txManager, log.With(logger.NewField("service", "payment")))
}

func provideServiceTracking(
	repository *trackingRepo.Repository,
	deliveries *deliveryRepo.Repository,
	cache *location.Cache,
	gate *access.Gate,
	log logger.Logger,
) *trackingService.Tracking {
	return trackingService.New(repository, deliveries, cache, gate, log.With(logger.NewField("service", "tracking")))
}

func provideServiceAnalytics(repository *analyticsRepo.Repository, log logger.Logger) *analyticsService.Analytics {
	return analyticsService.New(repository, log.With(logger.NewField("service", "analytics")))
}

func provideServiceNotification(sender *mailer.Mailer, log logger.Logger) *notification.Notification {
	return notification.New(sender, log.With(logger.NewField("service", "notification")))
}

func providePaymentReconcileTask(
	log logger.Logger,
	service payment_reconcile.Service,
	cfg *config.Config,
) *payment_reconcile.PaymentReconcile {
	return payment_reconcile.New(
		log.With(logger.NewField("task", "payment_reconcile")),
		service,
		cfg.Tasks.PaymentReconcileInterval,
		cfg.Tasks.PaymentReconcileMinAge,
		cfg.Tasks.PaymentReconcileBatch,
	)
}

const rateLimiterPruneInterval = time.Minute

// provideRateLimiter - корзина на каждого клиента: емкость RateLimiterQPS, пополнение RateLimiterBurst в секунду.
func provideRateLimiter(cfg *config.Config) *token_bucket.Keyed {
	return token_bucket.NewKeyed(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))
}

func provideRateLimiterPruneTask(log logger.Logger, limiter *token_bucket.Keyed) *rate_limiter_prune.RateLimiterPrune {
	return rate_limiter_prune.New(log.With(logger.NewField("task", "rate_limiter_prune")), limiter, rateLimiterPruneInterval)
}

func provideTaskList(
	paymentReconcileTask *payment_reconcile.PaymentReconcile,
	rateLimiterPruneTask *rate_limiter_prune.RateLimiterPrune,
) []background.Task {
	return []background.Task{
		paymentReconcileTask,
		rateLimiterPruneTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
