package admin_user_get

import (
	"net/http"

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
		log:     log.With(logger.NewField("handler", "admin_user_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathID(r, "id")
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromUser(user))
}
