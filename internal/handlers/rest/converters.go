package rest

import (
	"github.com/bidbinh/vnss-tms-sub009/internal/dto"
	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
)

func ToActorDTO(actorEntity *entities.Actor) dto.Actor {
	return dto.Actor{
		ID:           actorEntity.ID,
		Type:         actorEntity.Type.String(),
		Status:       actorEntity.Status.String(),
		Name:         actorEntity.Name,
		Code:         actorEntity.Code,
		Email:        actorEntity.Email,
		Phone:        actorEntity.Phone,
		Address:      actorEntity.Address,
		City:         actorEntity.City,
		Country:      actorEntity.Country,
		TaxCode:      actorEntity.TaxCode,
		IDNumber:     actorEntity.IDNumber,
		DateOfBirth:  actorEntity.DateOfBirth,
		Gender:       actorEntity.Gender,
		BusinessType: actorEntity.BusinessType,
		CreatedAt:    actorEntity.CreatedAt,
		UpdatedAt:    actorEntity.UpdatedAt,
	}
}

func ToActorDTOList(actorEntities []entities.Actor) []dto.Actor {
	actorDTOs := make([]dto.Actor, len(actorEntities))
	for i := range actorEntities {
		actorDTOs[i] = ToActorDTO(&actorEntities[i])
	}
	return actorDTOs
}

func ToRelationshipDTO(relationshipEntity *entities.Relationship) dto.Relationship {
	return dto.Relationship{
		ID:                   relationshipEntity.ID,
		ActorID:              relationshipEntity.ActorID,
		RelatedActorID:       relationshipEntity.RelatedActorID,
		Type:                 relationshipEntity.Type,
		Role:                 relationshipEntity.Role,
		Status:               relationshipEntity.Status.String(),
		Message:              relationshipEntity.Message,
		Permissions:          relationshipEntity.Permissions,
		PaymentTerms:         relationshipEntity.PaymentTerms,
		TotalOrdersCompleted: relationshipEntity.TotalOrdersCompleted,
		TotalAmountPaid:      relationshipEntity.TotalAmountPaid,
		TotalAmountPending:   relationshipEntity.TotalAmountPending,
		Rating:               relationshipEntity.Rating,
		CreatedAt:            relationshipEntity.CreatedAt,
		UpdatedAt:            relationshipEntity.UpdatedAt,
	}
}

func ToRelationshipDTOList(relationshipEntities []entities.Relationship) []dto.Relationship {
	relationshipDTOs := make([]dto.Relationship, len(relationshipEntities))
	for i := range relationshipEntities {
		relationshipDTOs[i] = ToRelationshipDTO(&relationshipEntities[i])
	}
	return relationshipDTOs
}

func ToOrderDTO(orderEntity *entities.Order) dto.Order {
	return dto.Order{
		ID:           orderEntity.ID,
		SourceType:   orderEntity.SourceType.String(),
		OwnerActorID: orderEntity.OwnerActorID,
		OrderCode:    orderEntity.OrderCode,
		ExternalCode: orderEntity.ExternalCode,
		Status:       orderEntity.Status.String(),

		CustomerActorID: orderEntity.CustomerActorID,
		CustomerName:    orderEntity.CustomerName,
		CustomerPhone:   orderEntity.CustomerPhone,
		CustomerEmail:   orderEntity.CustomerEmail,

		PickupLocation:   orderEntity.PickupLocation,
		PickupAddress:    orderEntity.PickupAddress,
		PickupTime:       orderEntity.PickupTime,
		PickupNotes:      orderEntity.PickupNotes,
		DeliveryLocation: orderEntity.DeliveryLocation,
		DeliveryAddress:  orderEntity.DeliveryAddress,
		DeliveryTime:     orderEntity.DeliveryTime,
		DeliveryNotes:    orderEntity.DeliveryNotes,

		EquipmentType: orderEntity.EquipmentType,
		ContainerCode: orderEntity.ContainerCode,
		SealNumber:    orderEntity.SealNumber,
		WeightKg:      orderEntity.WeightKg,
		CBM:           orderEntity.CBM,
		PackageCount:  orderEntity.PackageCount,
		Hazardous:     orderEntity.Hazardous,
		TemperatureC:  orderEntity.TemperatureC,

		Currency:            orderEntity.Currency,
		FreightCharge:       orderEntity.FreightCharge,
		AdditionalCharges:   orderEntity.AdditionalCharges,
		TotalCharge:         orderEntity.TotalCharge,
		DriverPayment:       orderEntity.DriverPayment,
		AmountPaid:          orderEntity.AmountPaid,
		PaymentStatus:       orderEntity.PaymentStatus.String(),
		DriverPaymentStatus: orderEntity.DriverPaymentStatus.String(),

		PrimaryDriverActorID: orderEntity.PrimaryDriverActorID,
		PrimaryVehicleID:     orderEntity.PrimaryVehicleID,

		SubmittedAt:     orderEntity.SubmittedAt,
		AssignedAt:      orderEntity.AssignedAt,
		AcceptedAt:      orderEntity.AcceptedAt,
		StartedAt:       orderEntity.StartedAt,
		PickedUpAt:      orderEntity.PickedUpAt,
		DeliveredAt:     orderEntity.DeliveredAt,
		CompletedAt:     orderEntity.CompletedAt,
		CancelledAt:     orderEntity.CancelledAt,
		CancelledReason: orderEntity.CancelledReason,

		InternalNotes: orderEntity.InternalNotes,
		DriverNotes:   orderEntity.DriverNotes,
		CustomerNotes: orderEntity.CustomerNotes,
		Tags:          orderEntity.Tags,

		CreatedAt: orderEntity.CreatedAt,
		UpdatedAt: orderEntity.UpdatedAt,
	}
}

func ToOrderDTOList(orderEntities []entities.Order) []dto.Order {
	orderDTOs := make([]dto.Order, len(orderEntities))
	for i := range orderEntities {
		orderDTOs[i] = ToOrderDTO(&orderEntities[i])
	}
	return orderDTOs
}

func ToHistoryDTO(historyEntity *entities.OrderStatusHistory) dto.OrderStatusHistoryEntry {
	return dto.OrderStatusHistoryEntry{
		ID:               historyEntity.ID,
		OrderID:          historyEntity.OrderID,
		FromStatus:       historyEntity.FromStatus.String(),
		ToStatus:         historyEntity.ToStatus.String(),
		ChangedByActorID: historyEntity.ChangedByActorID,
		Note:             historyEntity.Note,
		CreatedAt:        historyEntity.CreatedAt,
	}
}

func ToHistoryDTOList(historyEntities []entities.OrderStatusHistory) []dto.OrderStatusHistoryEntry {
	historyDTOs := make([]dto.OrderStatusHistoryEntry, len(historyEntities))
	for i := range historyEntities {
		historyDTOs[i] = ToHistoryDTO(&historyEntities[i])
	}
	return historyDTOs
}
