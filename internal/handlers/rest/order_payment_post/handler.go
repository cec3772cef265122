package order_payment_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bidbinh/vnss-tms-sub009/internal/dto"
	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest"
	"github.com/bidbinh/vnss-tms-sub009/internal/service/order"
	"github.com/bidbinh/vnss-tms-sub009/pkg/logger"
)

// Legs is the set of payment route segments this handler serves.
const Legs = "mark-paid|mark-customer-paid"

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

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var paymentDTO dto.OrderPaymentRequest
	err = json.NewDecoder(r.Body).Decode(&paymentDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var orderEntity *entities.Order
	switch vars["leg"] {
	case "mark-customer-paid":
		if paymentDTO.Amount == nil {
			rest.WriteDetail(w, http.StatusBadRequest, "amount is required")
			return
		}
		orderEntity, err = h.service.MarkCustomerPaid(r.Context(), id, *paymentDTO.Amount, paymentDTO.ActorID)
	case "mark-paid":
		orderEntity, err = h.service.MarkDriverPaid(r.Context(), id, paymentDTO.ActorID)
	default:
		rest.WriteDetail(w, http.StatusNotFound, "unknown payment action")
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidAmount):
			rest.WriteDetail(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, order.ErrOrderNotFound):
			rest.WriteDetail(w, http.StatusNotFound, err.Error())
		case errors.Is(err, order.ErrStateConflict):
			rest.WriteDetail(w, http.StatusConflict, err.Error())
		default:
			rest.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	err = rest.WriteJSON(w, http.StatusOK, rest.ToOrderDTO(orderEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
