package relationships_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest"
	"github.com/bidbinh/vnss-tms-sub009/internal/service/relationship"
	"github.com/bidbinh/vnss-tms-sub009/pkg/logger"
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

// ServeHTTP serves both the collection and, when relId is present in
// the route, a single edge.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	actorID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid actor id")
		return
	}

	if relIDStr, ok := vars["relId"]; ok {
		h.serveOne(w, r, actorID, relIDStr)
		return
	}

	query := r.URL.Query()

	filter := entities.RelationshipFilter{
		Direction: entities.DirectionBoth,
	}
	switch query.Get("direction") {
	case "outgoing":
		filter.Direction = entities.DirectionOutgoing
	case "incoming":
		filter.Direction = entities.DirectionIncoming
	case "", "both":
	default:
		rest.WriteDetail(w, http.StatusBadRequest, "invalid direction")
		return
	}
	if v := query.Get("type"); v != "" {
		filter.Type = &v
	}
	if v := query.Get("role"); v != "" {
		filter.Role = &v
	}
	if v := query.Get("status"); v != "" {
		statusType := entities.RelationshipStatusType(v)
		filter.Status = &statusType
	}

	relationshipEntities, err := h.service.ListRelationships(r.Context(), actorID, filter)
	if err != nil {
		switch {
		case errors.Is(err, relationship.ErrInvalidActorID):
			rest.WriteDetail(w, http.StatusBadRequest, err.Error())
		default:
			rest.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	err = rest.WriteJSON(w, http.StatusOK, rest.ToRelationshipDTOList(relationshipEntities))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) serveOne(w http.ResponseWriter, r *http.Request, actorID int64, relIDStr string) {
	relID, err := strconv.ParseInt(relIDStr, 10, 64)
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid relationship id")
		return
	}

	relationshipEntity, err := h.service.GetRelationship(r.Context(), actorID, relID)
	if err != nil {
		switch {
		case errors.Is(err, relationship.ErrRelationshipNotFound):
			rest.WriteDetail(w, http.StatusNotFound, err.Error())
		case errors.Is(err, relationship.ErrInvalidActorID),
			errors.Is(err, relationship.ErrInvalidRelationshipID):
			rest.WriteDetail(w, http.StatusBadRequest, err.Error())
		default:
			rest.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	err = rest.WriteJSON(w, http.StatusOK, rest.ToRelationshipDTO(relationshipEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
