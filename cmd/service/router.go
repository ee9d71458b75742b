package main

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "swiftrider/internal/app"
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
	"swiftrider/internal/handlers/rest/dto"
	"swiftrider/internal/handlers/rest/healthcheck_head"
	"swiftrider/internal/handlers/rest/payment_get"
	"swiftrider/internal/handlers/rest/payment_initialize_post"
	"swiftrider/internal/handlers/rest/payment_verify_get"
	"swiftrider/internal/handlers/rest/payments_history_get"
	"swiftrider/internal/handlers/rest/ping_get"
	"swiftrider/internal/handlers/rest/response"
	"swiftrider/internal/handlers/rest/rider_availability_put"
	"swiftrider/internal/handlers/rest/tracking_current_get"
	"swiftrider/internal/handlers/rest/tracking_history_get"
	"swiftrider/internal/handlers/rest/tracking_location_post"
	"swiftrider/internal/pkg/config"
	"swiftrider/internal/pkg/middlewares/auth"
	"swiftrider/internal/pkg/middlewares/graceful_shutdown"
	"swiftrider/internal/pkg/middlewares/metrics"
	"swiftrider/internal/pkg/middlewares/rate_limiter"
	"swiftrider/internal/pkg/middlewares/timeout"
	"swiftrider/pkg/logger"
)

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = notFound(log)
	router.MethodNotAllowedHandler = methodNotAllowed(log)

	router.Use(graceful_shutdown.Middleware(log, isShuttingDown, ongoingCtx))
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, app.RateLimiter))

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	router.Handle("/auth/register", auth_register_post.New(log, app.ServiceUser)).Methods(http.MethodPost)
	router.Handle("/auth/login", auth_login_post.New(log, app.ServiceUser)).Methods(http.MethodPost)

	api := router.NewRoute().Subrouter()
	api.Use(auth.Middleware(log, app.Tokens))

	customer := auth.RequireRole(log, entities.RoleCustomer)
	rider := auth.RequireRole(log, entities.RoleRider)

	api.Handle("/auth/me", auth_me_get.New(log, app.ServiceUser)).Methods(http.MethodGet)
	api.Handle("/riders/me/availability", rider(rider_availability_put.New(log, app.ServiceUser))).Methods(http.MethodPut)

	// статические пути регистрируются раньше /deliveries/{id}
	api.Handle("/deliveries", customer(delivery_post.New(log, app.ServiceDelivery))).Methods(http.MethodPost)
	api.Handle("/deliveries/customer", customer(deliveries_customer_get.New(log, app.ServiceDelivery))).Methods(http.MethodGet)
	api.Handle("/deliveries/available", rider(deliveries_available_get.New(log, app.ServiceDelivery))).Methods(http.MethodGet)
	api.Handle("/deliveries/rider", rider(deliveries_rider_get.New(log, app.ServiceDelivery))).Methods(http.MethodGet)
	api.Handle("/deliveries/{id:[0-9]+}/accept", rider(delivery_accept_put.New(log, app.ServiceDelivery))).Methods(http.MethodPut)
	api.Handle("/deliveries/{id:[0-9]+}/status",
		auth.RequireRole(log, entities.RoleRider, entities.RoleAdmin)(delivery_status_put.New(log, app.ServiceDelivery)),
	).Methods(http.MethodPut)
	api.Handle("/deliveries/{id:[0-9]+}", delivery_get.New(log, app.ServiceDelivery)).Methods(http.MethodGet)

	api.Handle("/payments/initialize", customer(payment_initialize_post.New(log, app.ServicePayment))).Methods(http.MethodPost)
	api.Handle("/payments/verify/{reference}", customer(payment_verify_get.New(log, app.ServicePayment))).Methods(http.MethodGet)
	api.Handle("/payments/history", customer(payments_history_get.New(log, app.ServicePayment))).Methods(http.MethodGet)
	api.Handle("/payments/{id:[0-9]+}", payment_get.New(log, app.ServicePayment)).Methods(http.MethodGet)

	api.Handle("/tracking/location", rider(tracking_location_post.New(log, app.ServiceTracking))).Methods(http.MethodPost)
	api.Handle("/tracking/{deliveryId:[0-9]+}/current", tracking_current_get.New(log, app.ServiceTracking)).Methods(http.MethodGet)
	api.Handle("/tracking/{deliveryId:[0-9]+}", tracking_history_get.New(log, app.ServiceTracking)).Methods(http.MethodGet)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(auth.RequireRole(log, entities.RoleAdmin))

	admin.Handle("/users", admin_users_get.New(log, app.ServiceUser)).Methods(http.MethodGet)
	admin.Handle("/users/{id:[0-9]+}", admin_user_get.New(log, app.ServiceUser)).Methods(http.MethodGet)
	admin.Handle("/users/{id:[0-9]+}", admin_user_put.New(log, app.ServiceUser)).Methods(http.MethodPut)
	admin.Handle("/deliveries", admin_deliveries_get.New(log, app.ServiceDelivery)).Methods(http.MethodGet)
	admin.Handle("/deliveries/{id:[0-9]+}", delivery_get.New(log, app.ServiceDelivery)).Methods(http.MethodGet)
	admin.Handle("/deliveries/{id:[0-9]+}", admin_delivery_put.New(log, app.ServiceDelivery)).Methods(http.MethodPut)
	admin.Handle("/payments", admin_payments_get.New(log, app.ServicePayment)).Methods(http.MethodGet)
	admin.Handle("/analytics", admin_analytics_get.New(log, app.ServiceAnalytics)).Methods(http.MethodGet)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}

func notFound(log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, log, http.StatusNotFound, dto.MessageResponse{Message: "route not found"})
	})
}

func methodNotAllowed(log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, log, http.StatusMethodNotAllowed, dto.MessageResponse{Message: "method not allowed"})
	})
}
