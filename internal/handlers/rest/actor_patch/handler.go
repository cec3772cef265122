package actor_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bidbinh/vnss-tms-sub009/internal/dto"
	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid actor id")
		return
	}

	var actorUpdateDTO dto.ActorUpdate
	err = json.NewDecoder(r.Body).Decode(&actorUpdateDTO)
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	actorModifyEntity := entities.ActorModify{
		ID:           &id,
		Name:         actorUpdateDTO.Name,
		Code:         actorUpdateDTO.Code,
		Email:        actorUpdateDTO.Email,
		Phone:        actorUpdateDTO.Phone,
		Address:      actorUpdateDTO.Address,
		City:         actorUpdateDTO.City,
		Country:      actorUpdateDTO.Country,
		TaxCode:      actorUpdateDTO.TaxCode,
		IDNumber:     actorUpdateDTO.IDNumber,
		DateOfBirth:  actorUpdateDTO.DateOfBirth,
		Gender:       actorUpdateDTO.Gender,
		BusinessType: actorUpdateDTO.BusinessType,
	}
	if actorUpdateDTO.Type != nil {
		actorType := entities.ActorType(*actorUpdateDTO.Type)
		actorModifyEntity.Type = &actorType
	}
	if actorUpdateDTO.Status != nil {
		statusType := entities.ActorStatusType(*actorUpdateDTO.Status)
		actorModifyEntity.Status = &statusType
	}

	actorEntity, err := h.service.UpdateActor(r.Context(), actorModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, actor.ErrActorNotFound):
			rest.WriteDetail(w, http.StatusNotFound, err.Error())
		case errors.Is(err, actor.ErrInvalidActorID),
			errors.Is(err, actor.ErrInvalidName),
			errors.Is(err, actor.ErrInvalidStatus):
			rest.WriteDetail(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, actor.ErrTypeImmutable),
			errors.Is(err, actor.ErrConflict):
			rest.WriteDetail(w, http.StatusConflict, err.Error())
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
