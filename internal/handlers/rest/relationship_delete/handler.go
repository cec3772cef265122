package relationship_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest"
	"github.com/bidbinh/vnss-tms-sub009/internal/service/relationship"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	actorID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid actor id")
		return
	}
	relID, err := strconv.ParseInt(vars["relId"], 10, 64)
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid relationship id")
		return
	}

	err = h.service.DeleteRelationship(r.Context(), actorID, relID)
	if err != nil {
		switch {
		case errors.Is(err, relationship.ErrRelationshipNotFound):
			rest.WriteDetail(w, http.StatusNotFound, err.Error())
		case errors.Is(err, relationship.ErrInvalidActorID),
			errors.Is(err, relationship.ErrInvalidRelationshipID):
			rest.WriteDetail(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, relationship.ErrNotDeletable):
			rest.WriteDetail(w, http.StatusConflict, err.Error())
		default:
			rest.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
