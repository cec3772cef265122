package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	orderModifyEntity := entities.OrderModify{
		OwnerActorID: &orderCreateDTO.OwnerActorID,
		ExternalCode: orderCreateDTO.ExternalCode,

		CustomerActorID: orderCreateDTO.CustomerActorID,
		CustomerName:    orderCreateDTO.CustomerName,
		CustomerPhone:   orderCreateDTO.CustomerPhone,
		CustomerEmail:   orderCreateDTO.CustomerEmail,

		PickupLocation:   orderCreateDTO.PickupLocation,
		PickupAddress:    orderCreateDTO.PickupAddress,
		PickupTime:       orderCreateDTO.PickupTime,
		PickupNotes:      orderCreateDTO.PickupNotes,
		DeliveryLocation: orderCreateDTO.DeliveryLocation,
		DeliveryAddress:  orderCreateDTO.DeliveryAddress,
		DeliveryTime:     orderCreateDTO.DeliveryTime,
		DeliveryNotes:    orderCreateDTO.DeliveryNotes,

		EquipmentType: orderCreateDTO.EquipmentType,
		ContainerCode: orderCreateDTO.ContainerCode,
		SealNumber:    orderCreateDTO.SealNumber,
		WeightKg:      orderCreateDTO.WeightKg,
		CBM:           orderCreateDTO.CBM,
		PackageCount:  orderCreateDTO.PackageCount,
		Hazardous:     orderCreateDTO.Hazardous,
		TemperatureC:  orderCreateDTO.TemperatureC,

		Currency:          orderCreateDTO.Currency,
		FreightCharge:     orderCreateDTO.FreightCharge,
		AdditionalCharges: orderCreateDTO.AdditionalCharges,
		DriverPayment:     orderCreateDTO.DriverPayment,

		InternalNotes: orderCreateDTO.InternalNotes,
		DriverNotes:   orderCreateDTO.DriverNotes,
		CustomerNotes: orderCreateDTO.CustomerNotes,
		Tags:          orderCreateDTO.Tags,
	}
	if orderCreateDTO.SourceType != nil {
		sourceType := entities.OrderSourceType(*orderCreateDTO.SourceType)
		orderModifyEntity.SourceType = &sourceType
	}
	if key := r.Header.Get("Idempotency-Key"); key != "" {
		orderModifyEntity.IdempotencyKey = &key
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), orderModifyEntity, orderCreateDTO.Draft)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidActorID),
			errors.Is(err, order.ErrNegativeCharge):
			rest.WriteDetail(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, order.ErrOrderNotFound):
			rest.WriteDetail(w, http.StatusNotFound, err.Error())
		case errors.Is(err, order.ErrConflict):
			rest.WriteDetail(w, http.StatusConflict, err.Error())
		default:
			rest.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	err = rest.WriteJSON(w, http.StatusCreated, rest.ToOrderDTO(orderEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
