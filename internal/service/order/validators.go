package order

import (
	"fmt"
	"strings"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
)

func isValidSource(source entities.OrderSourceType) bool {
	switch source {
	case entities.SourceTenant, entities.SourceDispatcher, entities.SourceMarketplace:
		return true
	default:
		return false
	}
}

func validateCharges(orderModifyEntity entities.OrderModify) error {
	for name, charge := range map[string]*int64{
		"freight_charge":     orderModifyEntity.FreightCharge,
		"additional_charges": orderModifyEntity.AdditionalCharges,
		"driver_payment":     orderModifyEntity.DriverPayment,
	} {
		if charge != nil && *charge < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeCharge, name)
		}
	}

	return nil
}

// validateSubmittable checks the minimum a dispatchable order needs:
// both endpoints of the route and either cargo details or a charge.
func validateSubmittable(orderEntity *entities.Order) error {
	if strings.TrimSpace(orderEntity.PickupLocation) == "" {
		return fmt.Errorf("%w: pickup_location", ErrOrderIncomplete)
	}
	if strings.TrimSpace(orderEntity.DeliveryLocation) == "" {
		return fmt.Errorf("%w: delivery_location", ErrOrderIncomplete)
	}

	hasCargo := orderEntity.EquipmentType != "" ||
		orderEntity.ContainerCode != "" ||
		orderEntity.WeightKg > 0 ||
		orderEntity.PackageCount > 0
	if !hasCargo && orderEntity.TotalCharge <= 0 {
		return fmt.Errorf("%w: cargo details or charges", ErrOrderIncomplete)
	}

	return nil
}

// totalCharge folds the modified charge columns over the current ones.
func totalCharge(freightModify, additionalModify *int64, currentFreight, currentAdditional int64) int64 {
	freight := currentFreight
	if freightModify != nil {
		freight = *freightModify
	}
	additional := currentAdditional
	if additionalModify != nil {
		additional = *additionalModify
	}

	return freight + additional
}
