package order_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest"
	"github.com/bidbinh/vnss-tms-sub009/internal/service/order"
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
		rest.WriteDetail(w, http.StatusBadRequest, "invalid order id")
		return
	}

	err = h.service.DeleteOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			rest.WriteDetail(w, http.StatusNotFound, err.Error())
		case errors.Is(err, order.ErrInvalidOrderID):
			rest.WriteDetail(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, order.ErrOrderNotDeletable):
			rest.WriteDetail(w, http.StatusConflict, err.Error())
		default:
			rest.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
