package order

import (
	"context"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
)

// MarkCustomerPaid records a customer payment. Amounts accumulate and
// the payment status is derived from the running total against the
// total charge. Payments are independent of the workflow status.
func (s *Order) MarkCustomerPaid(ctx context.Context, id, amount int64, actorID *int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var result *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return err
		}

		newPaid := current.AmountPaid + amount
		status := entities.PaymentPartial
		if newPaid >= current.TotalCharge {
			status = entities.PaymentPaid
		}

		result, err = s.repository.UpdatePayment(ctx, id, entities.OrderPaymentPatch{
			AmountPaid:    &newPaid,
			PaymentStatus: &status,
		})

		return err
	})
	if err != nil {
		return nil, err
	}

	s.publishPaymentChanged(ctx, result, entities.PaymentLegCustomer, amount)

	return result, nil
}

// MarkDriverPaid settles the driver leg in full. Repeating the call is
// a no-op and publishes nothing.
func (s *Order) MarkDriverPaid(ctx context.Context, id int64, actorID *int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	var (
		result  *entities.Order
		settled bool
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		settled = false

		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if current.DriverPaymentStatus == entities.PaymentPaid {
			result = current
			return nil
		}

		paid := entities.PaymentPaid
		result, err = s.repository.UpdatePayment(ctx, id, entities.OrderPaymentPatch{
			DriverPaymentStatus: &paid,
		})
		if err != nil {
			return err
		}

		settled = true

		return nil
	})
	if err != nil {
		return nil, err
	}

	if settled {
		s.publishPaymentChanged(ctx, result, entities.PaymentLegDriver, result.DriverPayment)
	}

	return result, nil
}
