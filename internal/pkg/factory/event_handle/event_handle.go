package event_handle

import (
	"context"
	"fmt"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
	"github.com/bidbinh/vnss-tms-sub009/internal/service/orderevent"
)

// Factory maps order event shapes to relationship counter handlers.
type Factory struct {
	relationshipStats orderevent.RelationshipStats
}

func New(relationshipStats orderevent.RelationshipStats) *Factory {
	return &Factory{relationshipStats: relationshipStats}
}

func (f *Factory) GetHandler(event entities.OrderEvent) (orderevent.ExecuteFn, error) {
	switch event.Type {
	case entities.EventOrderStatusChanged:
		if event.ToStatus == entities.OrderCompleted && event.DriverActorID != nil {
			return f.orderCompleted, nil
		}
	case entities.EventOrderPaymentChanged:
		switch event.PaymentLeg {
		case entities.PaymentLegDriver:
			if event.DriverActorID != nil {
				return f.driverPayment, nil
			}
		case entities.PaymentLegCustomer:
			if event.CustomerActorID != nil {
				return f.customerPayment, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: type %q", orderevent.ErrUnhandledEvent, event.Type)
}

func (f *Factory) orderCompleted(ctx context.Context, event entities.OrderEvent) error {
	return f.relationshipStats.ApplyOrderCompleted(ctx, event.OwnerActorID, *event.DriverActorID, event.DriverPayment)
}

func (f *Factory) driverPayment(ctx context.Context, event entities.OrderEvent) error {
	return f.relationshipStats.ApplyDriverPayment(ctx, event.OwnerActorID, *event.DriverActorID, event.Amount)
}

func (f *Factory) customerPayment(ctx context.Context, event entities.OrderEvent) error {
	return f.relationshipStats.ApplyCustomerPayment(ctx, event.OwnerActorID, *event.CustomerActorID, event.Amount)
}
