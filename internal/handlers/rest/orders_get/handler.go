package orders_get

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/bidbinh/vnss-tms-sub009/internal/dto"
	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest"
	"github.com/bidbinh/vnss-tms-sub009/internal/service/order"
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

	ownerActorID, err := strconv.ParseInt(query.Get("owner_actor_id"), 10, 64)
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "owner_actor_id is required")
		return
	}

	filter := entities.OrderFilter{
		OwnerActorID: ownerActorID,
	}
	if v := query.Get("source_type"); v != "" {
		sourceType := entities.OrderSourceType(v)
		filter.SourceType = &sourceType
	}
	if v := query.Get("status"); v != "" {
		statusType := entities.OrderStatusType(v)
		filter.Status = &statusType
	}
	if v := query.Get("driver_actor_id"); v != "" {
		driverActorID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			rest.WriteDetail(w, http.StatusBadRequest, "invalid driver_actor_id")
			return
		}
		filter.DriverActorID = &driverActorID
	}
	if v := query.Get("customer_name"); v != "" {
		filter.CustomerName = &v
	}
	if v := query.Get("container_code"); v != "" {
		filter.ContainerCode = &v
	}
	if v := query.Get("date_from"); v != "" {
		dateFrom, err := time.Parse(time.RFC3339, v)
		if err != nil {
			rest.WriteDetail(w, http.StatusBadRequest, "invalid date_from")
			return
		}
		filter.DateFrom = &dateFrom
	}
	if v := query.Get("date_to"); v != "" {
		dateTo, err := time.Parse(time.RFC3339, v)
		if err != nil {
			rest.WriteDetail(w, http.StatusBadRequest, "invalid date_to")
			return
		}
		filter.DateTo = &dateTo
	}
	if v := query.Get("limit"); v != "" {
		filter.Limit, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			rest.WriteDetail(w, http.StatusBadRequest, "invalid limit")
			return
		}
	}
	if v := query.Get("offset"); v != "" {
		filter.Offset, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			rest.WriteDetail(w, http.StatusBadRequest, "invalid offset")
			return
		}
	}

	orderEntities, err := h.service.ListOrders(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidActorID):
			rest.WriteDetail(w, http.StatusBadRequest, err.Error())
		default:
			rest.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response := dto.OrderList{
		Items:  rest.ToOrderDTOList(orderEntities),
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
