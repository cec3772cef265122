package order

import (
	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	orderEntity := &entities.Order{
		ID:           o.ID,
		SourceType:   entities.OrderSourceType(o.SourceType),
		OwnerActorID: o.OwnerActorID,
		OrderCode:    o.OrderCode,
		ExternalCode: o.ExternalCode,
		Status:       entities.OrderStatusType(o.Status),

		CustomerActorID: o.CustomerActorID,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerEmail:   o.CustomerEmail,

		PickupLocation:   o.PickupLocation,
		PickupAddress:    o.PickupAddress,
		PickupTime:       o.PickupTime,
		PickupNotes:      o.PickupNotes,
		DeliveryLocation: o.DeliveryLocation,
		DeliveryAddress:  o.DeliveryAddress,
		DeliveryTime:     o.DeliveryTime,
		DeliveryNotes:    o.DeliveryNotes,

		EquipmentType: o.EquipmentType,
		ContainerCode: o.ContainerCode,
		SealNumber:    o.SealNumber,
		WeightKg:      o.WeightKg,
		CBM:           o.CBM,
		PackageCount:  o.PackageCount,
		Hazardous:     o.Hazardous,
		TemperatureC:  o.TemperatureC,

		Currency:            o.Currency,
		FreightCharge:       o.FreightCharge,
		AdditionalCharges:   o.AdditionalCharges,
		TotalCharge:         o.TotalCharge,
		DriverPayment:       o.DriverPayment,
		AmountPaid:          o.AmountPaid,
		PaymentStatus:       entities.PaymentStatusType(o.PaymentStatus),
		DriverPaymentStatus: entities.PaymentStatusType(o.DriverPaymentStatus),

		PrimaryDriverActorID: o.PrimaryDriverActorID,
		PrimaryVehicleID:     o.PrimaryVehicleID,

		SubmittedAt:     o.SubmittedAt,
		AssignedAt:      o.AssignedAt,
		AcceptedAt:      o.AcceptedAt,
		StartedAt:       o.StartedAt,
		PickedUpAt:      o.PickedUpAt,
		DeliveredAt:     o.DeliveredAt,
		CompletedAt:     o.CompletedAt,
		CancelledAt:     o.CancelledAt,
		HeldAt:          o.HeldAt,
		CancelledReason: o.CancelledReason,

		InternalNotes:  o.InternalNotes,
		DriverNotes:    o.DriverNotes,
		CustomerNotes:  o.CustomerNotes,
		Tags:           o.Tags,
		IdempotencyKey: o.IdempotencyKey,

		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}

	if o.HeldFromStatus != nil {
		heldFrom := entities.OrderStatusType(*o.HeldFromStatus)
		orderEntity.HeldFromStatus = &heldFrom
	}

	return orderEntity
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}

func ToDomainHistory(h *OrderStatusHistoryDB) *entities.OrderStatusHistory {
	if h == nil {
		return nil
	}

	return &entities.OrderStatusHistory{
		ID:               h.ID,
		OrderID:          h.OrderID,
		FromStatus:       entities.OrderStatusType(h.FromStatus),
		ToStatus:         entities.OrderStatusType(h.ToStatus),
		ChangedByActorID: h.ChangedByActorID,
		Note:             h.Note,
		CreatedAt:        h.CreatedAt,
	}
}

// FromDomainModify flattens the set fields into column values for the
// statement builder.
func FromDomainModify(orderModify *entities.OrderModify) map[string]interface{} {
	columns := make(map[string]interface{})
	if orderModify == nil {
		return columns
	}

	if orderModify.SourceType != nil {
		columns["source_type"] = orderModify.SourceType.String()
	}
	if orderModify.OwnerActorID != nil {
		columns["owner_actor_id"] = *orderModify.OwnerActorID
	}
	if orderModify.OrderCode != nil {
		columns["order_code"] = *orderModify.OrderCode
	}
	if orderModify.ExternalCode != nil {
		columns["external_code"] = *orderModify.ExternalCode
	}
	if orderModify.Status != nil {
		columns["status"] = orderModify.Status.String()
	}
	if orderModify.CustomerActorID != nil {
		columns["customer_actor_id"] = *orderModify.CustomerActorID
	}
	if orderModify.CustomerName != nil {
		columns["customer_name"] = *orderModify.CustomerName
	}
	if orderModify.CustomerPhone != nil {
		columns["customer_phone"] = *orderModify.CustomerPhone
	}
	if orderModify.CustomerEmail != nil {
		columns["customer_email"] = *orderModify.CustomerEmail
	}
	if orderModify.PickupLocation != nil {
		columns["pickup_location"] = *orderModify.PickupLocation
	}
	if orderModify.PickupAddress != nil {
		columns["pickup_address"] = *orderModify.PickupAddress
	}
	if orderModify.PickupTime != nil {
		columns["pickup_time"] = *orderModify.PickupTime
	}
	if orderModify.PickupNotes != nil {
		columns["pickup_notes"] = *orderModify.PickupNotes
	}
	if orderModify.DeliveryLocation != nil {
		columns["delivery_location"] = *orderModify.DeliveryLocation
	}
	if orderModify.DeliveryAddress != nil {
		columns["delivery_address"] = *orderModify.DeliveryAddress
	}
	if orderModify.DeliveryTime != nil {
		columns["delivery_time"] = *orderModify.DeliveryTime
	}
	if orderModify.DeliveryNotes != nil {
		columns["delivery_notes"] = *orderModify.DeliveryNotes
	}
	if orderModify.EquipmentType != nil {
		columns["equipment_type"] = *orderModify.EquipmentType
	}
	if orderModify.ContainerCode != nil {
		columns["container_code"] = *orderModify.ContainerCode
	}
	if orderModify.SealNumber != nil {
		columns["seal_number"] = *orderModify.SealNumber
	}
	if orderModify.WeightKg != nil {
		columns["weight_kg"] = *orderModify.WeightKg
	}
	if orderModify.CBM != nil {
		columns["cbm"] = *orderModify.CBM
	}
	if orderModify.PackageCount != nil {
		columns["package_count"] = *orderModify.PackageCount
	}
	if orderModify.Hazardous != nil {
		columns["hazardous"] = *orderModify.Hazardous
	}
	if orderModify.TemperatureC != nil {
		columns["temperature_c"] = *orderModify.TemperatureC
	}
	if orderModify.Currency != nil {
		columns["currency"] = *orderModify.Currency
	}
	if orderModify.FreightCharge != nil {
		columns["freight_charge"] = *orderModify.FreightCharge
	}
	if orderModify.AdditionalCharges != nil {
		columns["additional_charges"] = *orderModify.AdditionalCharges
	}
	if orderModify.TotalCharge != nil {
		columns["total_charge"] = *orderModify.TotalCharge
	}
	if orderModify.DriverPayment != nil {
		columns["driver_payment"] = *orderModify.DriverPayment
	}
	if orderModify.InternalNotes != nil {
		columns["internal_notes"] = *orderModify.InternalNotes
	}
	if orderModify.DriverNotes != nil {
		columns["driver_notes"] = *orderModify.DriverNotes
	}
	if orderModify.CustomerNotes != nil {
		columns["customer_notes"] = *orderModify.CustomerNotes
	}
	if orderModify.Tags != nil {
		columns["tags"] = *orderModify.Tags
	}
	if orderModify.IdempotencyKey != nil {
		columns["idempotency_key"] = *orderModify.IdempotencyKey
	}

	return columns
}

// FromDomainStatusPatch flattens a status patch into column values.
func FromDomainStatusPatch(patch entities.OrderStatusPatch) map[string]interface{} {
	columns := make(map[string]interface{})

	if patch.SubmittedAt != nil {
		columns["submitted_at"] = *patch.SubmittedAt
	}
	if patch.AssignedAt != nil {
		columns["assigned_at"] = *patch.AssignedAt
	}
	if patch.AcceptedAt != nil {
		columns["accepted_at"] = *patch.AcceptedAt
	}
	if patch.StartedAt != nil {
		columns["started_at"] = *patch.StartedAt
	}
	if patch.PickedUpAt != nil {
		columns["picked_up_at"] = *patch.PickedUpAt
	}
	if patch.DeliveredAt != nil {
		columns["delivered_at"] = *patch.DeliveredAt
	}
	if patch.CompletedAt != nil {
		columns["completed_at"] = *patch.CompletedAt
	}
	if patch.CancelledAt != nil {
		columns["cancelled_at"] = *patch.CancelledAt
	}
	if patch.HeldAt != nil {
		columns["held_at"] = *patch.HeldAt
	}
	if patch.HeldFromStatus != nil {
		columns["held_from_status"] = patch.HeldFromStatus.String()
	}
	if patch.CancelledReason != nil {
		columns["cancelled_reason"] = *patch.CancelledReason
	}
	if patch.PrimaryDriverActorID != nil {
		columns["primary_driver_actor_id"] = *patch.PrimaryDriverActorID
	}
	if patch.PrimaryVehicleID != nil {
		columns["primary_vehicle_id"] = *patch.PrimaryVehicleID
	}
	if patch.ClearAssignment {
		columns["primary_driver_actor_id"] = nil
		columns["primary_vehicle_id"] = nil
		columns["assigned_at"] = nil
	}
	if patch.ClearHold {
		columns["held_at"] = nil
		columns["held_from_status"] = nil
	}

	return columns
}
