package order_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var orderUpdateDTO dto.OrderUpdate
	err = json.NewDecoder(r.Body).Decode(&orderUpdateDTO)
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	orderModifyEntity := entities.OrderModify{
		ID:           &id,
		ExternalCode: orderUpdateDTO.ExternalCode,

		CustomerActorID: orderUpdateDTO.CustomerActorID,
		CustomerName:    orderUpdateDTO.CustomerName,
		CustomerPhone:   orderUpdateDTO.CustomerPhone,
		CustomerEmail:   orderUpdateDTO.CustomerEmail,

		PickupLocation:   orderUpdateDTO.PickupLocation,
		PickupAddress:    orderUpdateDTO.PickupAddress,
		PickupTime:       orderUpdateDTO.PickupTime,
		PickupNotes:      orderUpdateDTO.PickupNotes,
		DeliveryLocation: orderUpdateDTO.DeliveryLocation,
		DeliveryAddress:  orderUpdateDTO.DeliveryAddress,
		DeliveryTime:     orderUpdateDTO.DeliveryTime,
		DeliveryNotes:    orderUpdateDTO.DeliveryNotes,

		EquipmentType: orderUpdateDTO.EquipmentType,
		ContainerCode: orderUpdateDTO.ContainerCode,
		SealNumber:    orderUpdateDTO.SealNumber,
		WeightKg:      orderUpdateDTO.WeightKg,
		CBM:           orderUpdateDTO.CBM,
		PackageCount:  orderUpdateDTO.PackageCount,
		Hazardous:     orderUpdateDTO.Hazardous,
		TemperatureC:  orderUpdateDTO.TemperatureC,

		Currency:          orderUpdateDTO.Currency,
		FreightCharge:     orderUpdateDTO.FreightCharge,
		AdditionalCharges: orderUpdateDTO.AdditionalCharges,
		DriverPayment:     orderUpdateDTO.DriverPayment,

		InternalNotes: orderUpdateDTO.InternalNotes,
		DriverNotes:   orderUpdateDTO.DriverNotes,
		CustomerNotes: orderUpdateDTO.CustomerNotes,
		Tags:          orderUpdateDTO.Tags,
	}

	orderEntity, err := h.service.UpdateOrder(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			rest.WriteDetail(w, http.StatusNotFound, err.Error())
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrNegativeCharge):
			rest.WriteDetail(w, http.StatusBadRequest, err.Error())
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
