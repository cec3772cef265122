package actors_get

import (
	"net/http"
	"strconv"

	"github.com/bidbinh/vnss-tms-sub009/internal/dto"
	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest"
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
	query := r.URL.Query()

	var filter entities.ActorFilter
	if v := query.Get("type"); v != "" {
		actorType := entities.ActorType(v)
		filter.Type = &actorType
	}
	if v := query.Get("status"); v != "" {
		statusType := entities.ActorStatusType(v)
		filter.Status = &statusType
	}
	if v := query.Get("search"); v != "" {
		filter.Search = &v
	}

	var err error
	filter.Limit, filter.Offset, err = parsePage(query.Get("limit"), query.Get("offset"))
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid limit or offset")
		return
	}

	actorEntities, err := h.service.ListActors(r.Context(), filter)
	if err != nil {
		rest.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := dto.ActorList{
		Items:  rest.ToActorDTOList(actorEntities),
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	err = rest.WriteJSON(w, http.StatusOK, response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parsePage(limitStr, offsetStr string) (int64, int64, error) {
	var limit, offset int64
	var err error

	if limitStr != "" {
		limit, err = strconv.ParseInt(limitStr, 10, 64)
		if err != nil {
			return 0, 0, err
		}
	}
	if offsetStr != "" {
		offset, err = strconv.ParseInt(offsetStr, 10, 64)
		if err != nil {
			return 0, 0, err
		}
	}
	return limit, offset, nil
}
