package app

import (
	"context"

	"swiftrider/internal/entities"
	"swiftrider/internal/handlers/rest/admin_analytics_get"
	"swiftrider/internal/handlers/rest/admin_deliveries_get"
	"swiftrider/internal/handlers/rest/admin_delivery_put"
	"swiftrider/internal/handlers/rest/admin_payments_get"
	"swiftrider/internal/handlers/rest/admin_user_get"
	"swiftrider/internal/handlers/rest/admin_user_put"
	"swiftrider/internal/handlers/rest/admin_users_get"
	"swiftrider/internal/handlers/rest/auth_login_post"
	"swiftrider/internal/handlers/rest/auth_me_get"
	"swiftrider/internal/handlers/rest/auth_register_post"
	"swiftrider/internal/handlers/rest/deliveries_available_get"
	"swiftrider/internal/handlers/rest/deliveries_customer_get"
	"swiftrider/internal/handlers/rest/deliveries_rider_get"
	"swiftrider/internal/handlers/rest/delivery_accept_put"
	"swiftrider/internal/handlers/rest/delivery_get"
	"swiftrider/internal/handlers/rest/delivery_post"
	"swiftrider/internal/handlers/rest/delivery_status_put"
	"swiftrider/internal/handlers/rest/payment_get"
	"swiftrider/internal/handlers/rest/payment_initialize_post"
	"swiftrider/internal/handlers/rest/payment_verify_get"
	"swiftrider/internal/handlers/rest/payments_history_get"
	"swiftrider/internal/handlers/rest/rider_availability_put"
	"swiftrider/internal/handlers/rest/tracking_current_get"
	"swiftrider/internal/handlers/rest/tracking_history_get"
	"swiftrider/internal/handlers/rest/tracking_location_post"
	"swiftrider/internal/pkg/middlewares/auth"
	"swiftrider/internal/service/notification"
	"swiftrider/pkg/background"
	"swiftrider/pkg/token_bucket"
)

// Application - все, что нужно HTTP сервису для построения роутера.
type Application struct {
	ServiceUser       ServiceUser
	ServiceDelivery   ServiceDelivery
	ServicePayment    ServicePayment
	ServiceTracking   ServiceTracking
	ServiceAnalytics  ServiceAnalytics
	Tokens            auth.TokenParser
	RateLimiter       *token_bucket.Keyed
	BackgroundWorkers *background.Worker
}

type ServiceUser interface {
	auth_register_post.Service
	auth_login_post.Service
	auth_me_get.Service
	rider_availability_put.Service
	admin_users_get.Service
	admin_user_get.Service
	admin_user_put.Service

	EnsureAdmin(ctx context.Context, name, email, plainPassword string) (*entities.User, error)
}

type ServiceDelivery interface {
	delivery_post.Service
	delivery_get.Service
	deliveries_customer_get.Service
	deliveries_rider_get.Service
	deliveries_available_get.Service
	delivery_accept_put.Service
	delivery_status_put.Service
	admin_deliveries_get.Service
	admin_delivery_put.Service
}

type ServicePayment interface {
	payment_initialize_post.Service
	payment_verify_get.Service
	payments_history_get.Service
	payment_get.Service
	admin_payments_get.Service
}

type ServiceTracking interface {
	tracking_location_post.Service
	tracking_history_get.Service
	tracking_current_get.Service
}

type ServiceAnalytics interface {
	admin_analytics_get.Service
}

// NotificationWorkerApp - зависимости воркера уведомлений.
type NotificationWorkerApp struct {
	NotificationService *notification.Notification
}
