package admin_payments_get

import (
	"net/http"

	"swiftrider/internal/entities"
	"swiftrider/internal/handlers/rest/dto"
	"swiftrider/internal/handlers/rest/request"
	"swiftrider/internal/handlers/rest/response"
	"swiftrider/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "admin_payments_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page, err := request.Page(r)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	filter := entities.PaymentFilter{Page: page}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := entities.TransactionStatus(raw)
		filter.Status = &status
	}

	payments, err := h.service.List(r.Context(), filter)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromList(payments, dto.FromPayment))
}
