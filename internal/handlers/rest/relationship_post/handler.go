package relationship_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bidbinh/vnss-tms-sub009/internal/dto"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actorIDStr := mux.Vars(r)["id"]
	actorID, err := strconv.ParseInt(actorIDStr, 10, 64)
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid actor id")
		return
	}

	var relationshipCreateDTO dto.RelationshipCreate
	err = json.NewDecoder(r.Body).Decode(&relationshipCreateDTO)
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	relationshipModifyEntity := entities.RelationshipModify{
		RelatedActorID: &relationshipCreateDTO.RelatedActorID,
		Type:           &relationshipCreateDTO.Type,
		Role:           relationshipCreateDTO.Role,
		Message:        relationshipCreateDTO.Message,
		Permissions:    relationshipCreateDTO.Permissions,
		PaymentTerms:   relationshipCreateDTO.PaymentTerms,
	}

	relationshipEntity, err := h.service.CreateRelationship(r.Context(), actorID, relationshipModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, relationship.ErrMissingRequiredFields),
			errors.Is(err, relationship.ErrInvalidActorID),
			errors.Is(err, relationship.ErrSelfRelationship),
			errors.Is(err, relationship.ErrInvalidType):
			rest.WriteDetail(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, relationship.ErrRelationshipNotFound):
			rest.WriteDetail(w, http.StatusNotFound, err.Error())
		case errors.Is(err, relationship.ErrActorNotActive),
			errors.Is(err, relationship.ErrConflict):
			rest.WriteDetail(w, http.StatusConflict, err.Error())
		default:
			rest.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	err = rest.WriteJSON(w, http.StatusCreated, rest.ToRelationshipDTO(relationshipEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
