package payment_verify_get

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"swiftrider/internal/apperr"
	"swiftrider/internal/handlers/rest/dto"
	"swiftrider/internal/handlers/rest/request"
	"swiftrider/internal/handlers/rest/response"
	"swiftrider/pkg/logger"
)

var ErrMissingReference = fmt.Errorf("%w: reference is required", apperr.ErrValidation)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "payment_verify_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, err := request.Identity(r)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	reference := strings.TrimSpace(mux.Vars(r)["reference"])
	if reference == "" {
		response.Error(w, h.log, ErrMissingReference)
		return
	}

	payment, err := h.service.Verify(r.Context(), actor, reference)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromPayment(payment))
}
