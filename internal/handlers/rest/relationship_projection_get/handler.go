package relationship_projection_get

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

// Projections is the set of read-model route segments this handler
// serves, used by the router to constrain the path variable.
const Projections = "employees|employers|connections|pending-requests"

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

// ServeHTTP dispatches on the projection route var: employees,
// employers, connections or pending-requests.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	actorID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid actor id")
		return
	}

	var relationshipEntities []entities.Relationship
	switch vars["projection"] {
	case "employees":
		relationshipEntities, err = h.service.ListEmployees(r.Context(), actorID)
	case "employers":
		relationshipEntities, err = h.service.ListEmployers(r.Context(), actorID)
	case "connections":
		relationshipEntities, err = h.service.ListConnections(r.Context(), actorID)
	case "pending-requests":
		relationshipEntities, err = h.service.ListPendingRequests(r.Context(), actorID)
	default:
		rest.WriteDetail(w, http.StatusNotFound, "unknown projection")
		return
	}

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
