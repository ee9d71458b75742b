package payment_initialize_post

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
		log:     log.With(logger.NewField("handler", "payment_initialize_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, err := request.Identity(r)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	var req dto.PaymentInitializeRequest
	err = request.DecodeJSON(r, &req)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	initialization, err := h.service.Initialize(r.Context(), actor, entities.PaymentInitialize{
		DeliveryID: req.DeliveryID,
		Amount:     req.Amount,
		Method:     entities.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("payment initialized",
		logger.NewField("delivery", req.DeliveryID),
		logger.NewField("reference", initialization.Payment.TransactionReference),
	)

	response.JSON(w, h.log, http.StatusCreated, dto.FromPaymentInitialization(initialization))
}
