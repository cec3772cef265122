package actor_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var actorCreateDTO dto.ActorCreate
	err := json.NewDecoder(r.Body).Decode(&actorCreateDTO)
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	actorModifyEntity := entities.ActorModify{
		Name:         &actorCreateDTO.Name,
		Code:         actorCreateDTO.Code,
		Email:        actorCreateDTO.Email,
		Phone:        actorCreateDTO.Phone,
		Address:      actorCreateDTO.Address,
		City:         actorCreateDTO.City,
		Country:      actorCreateDTO.Country,
		TaxCode:      actorCreateDTO.TaxCode,
		IDNumber:     actorCreateDTO.IDNumber,
		DateOfBirth:  actorCreateDTO.DateOfBirth,
		Gender:       actorCreateDTO.Gender,
		BusinessType: actorCreateDTO.BusinessType,
	}
	if actorCreateDTO.Type != nil {
		actorType := entities.ActorType(*actorCreateDTO.Type)
		actorModifyEntity.Type = &actorType
	}

	actorEntity, err := h.service.CreateActor(r.Context(), actorModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, actor.ErrMissingRequiredFields),
			errors.Is(err, actor.ErrInvalidName),
			errors.Is(err, actor.ErrInvalidType),
			errors.Is(err, actor.ErrInvalidStatus):
			rest.WriteDetail(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, actor.ErrConflict):
			rest.WriteDetail(w, http.StatusConflict, err.Error())
		default:
			rest.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	err = rest.WriteJSON(w, http.StatusCreated, rest.ToActorDTO(actorEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
