package actor_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest"
	"github.com/bidbinh/vnss-tms-sub009/internal/service/actor"
	"github.com/bidbinh/vnss-tms-sub009/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid actor id")
		return
	}

	actorEntity, err := h.service.GetActor(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, actor.ErrActorNotFound):
			rest.WriteDetail(w, http.StatusNotFound, err.Error())
		case errors.Is(err, actor.ErrInvalidActorID):
			rest.WriteDetail(w, http.StatusBadRequest, err.Error())
		default:
			rest.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	err = rest.WriteJSON(w, http.StatusOK, rest.ToActorDTO(actorEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
