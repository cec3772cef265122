package orders_assigned_get

import (
	"errors"
	"net/http"
	"strconv"

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

	driverActorID, err := strconv.ParseInt(query.Get("driver_actor_id"), 10, 64)
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "driver_actor_id is required")
		return
	}

	var status *entities.OrderStatusType
	if v := query.Get("status"); v != "" {
		statusType := entities.OrderStatusType(v)
		status = &statusType
	}

	orderEntities, err := h.service.ListAssignedOrders(r.Context(), driverActorID, status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidActorID):
			rest.WriteDetail(w, http.StatusBadRequest, err.Error())
		default:
			rest.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	err = rest.WriteJSON(w, http.StatusOK, rest.ToOrderDTOList(orderEntities))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
