package orderevent

import (
	"context"
	"errors"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
)

type OrderEvent struct {
	handlerFactory HandlerFactory
}

func New(handlerFactory HandlerFactory) *OrderEvent {
	return &OrderEvent{handlerFactory: handlerFactory}
}

// ProcessOrderEvent routes a consumed event to its counter handler.
// Events without a handler are acknowledged and dropped so the
// partition keeps moving.
func (s *OrderEvent) ProcessOrderEvent(ctx context.Context, event entities.OrderEvent) error {
	if event.OrderID <= 0 || event.OwnerActorID <= 0 {
		return ErrInvalidEvent
	}

	executeFn, err := s.handlerFactory.GetHandler(event)
	if err != nil {
		if errors.Is(err, ErrUnhandledEvent) {
			return nil
		}

		return err
	}

	return executeFn(ctx, event)
}
