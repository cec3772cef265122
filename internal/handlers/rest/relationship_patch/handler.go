package relationship_patch

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

	var relationshipUpdateDTO dto.RelationshipUpdate
	err = json.NewDecoder(r.Body).Decode(&relationshipUpdateDTO)
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	relationshipModifyEntity := entities.RelationshipModify{
		Role:         relationshipUpdateDTO.Role,
		Message:      relationshipUpdateDTO.Message,
		Permissions:  relationshipUpdateDTO.Permissions,
		PaymentTerms: relationshipUpdateDTO.PaymentTerms,
		Rating:       relationshipUpdateDTO.Rating,
	}
	if relationshipUpdateDTO.Status != nil {
		statusType := entities.RelationshipStatusType(*relationshipUpdateDTO.Status)
		relationshipModifyEntity.Status = &statusType
	}

	relationshipEntity, err := h.service.UpdateRelationship(r.Context(), actorID, relID, relationshipModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, relationship.ErrRelationshipNotFound):
			rest.WriteDetail(w, http.StatusNotFound, err.Error())
		case errors.Is(err, relationship.ErrInvalidActorID),
			errors.Is(err, relationship.ErrInvalidRelationshipID),
			errors.Is(err, relationship.ErrInvalidStatus):
			rest.WriteDetail(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, relationship.ErrInvalidStatusTransition):
			rest.WriteDetail(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, relationship.ErrRelationshipTerminal),
			errors.Is(err, relationship.ErrNotRelationshipTarget):
			rest.WriteDetail(w, http.StatusConflict, err.Error())
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
