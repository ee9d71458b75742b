package admin_analytics_get

import (
	"net/http"

	"swiftrider/internal/handlers/rest/dto"
	"swiftrider/internal/handlers/rest/response"
	"swiftrider/internal/service/analytics"
	"swiftrider/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "admin_analytics_get")),
		service: service,
	}
}

// ServeHTTP принимает ?startDate=&endDate= в RFC3339 или YYYY-MM-DD, оба необязательны.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	window, err := analytics.ParseWindow(query.Get("startDate"), query.Get("endDate"))
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	report, err := h.service.Get(r.Context(), window)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromAnalytics(report))
}
