//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderevent_test
package orderevent

import (
	"context"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
)

// ExecuteFn applies one consumed order event to the relationship
// counters.
type ExecuteFn func(ctx context.Context, event entities.OrderEvent) error

type HandlerFactory interface {
	// GetHandler resolves the handler for the event, returning
	// ErrUnhandledEvent for event shapes that carry no counter delta.
	GetHandler(event entities.OrderEvent) (ExecuteFn, error)
}

// RelationshipStats is the slice of the relationship service the event
// handlers drive.
type RelationshipStats interface {
	ApplyOrderCompleted(ctx context.Context, ownerActorID, driverActorID, driverPayment int64) error
	ApplyDriverPayment(ctx context.Context, ownerActorID, driverActorID, amount int64) error
	ApplyCustomerPayment(ctx context.Context, ownerActorID, customerActorID, amount int64) error
}
