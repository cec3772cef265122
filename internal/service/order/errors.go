package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidActorID        = errors.New("invalid actor id")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrNegativeCharge        = errors.New("charges must be non-negative")
	ErrOrderIncomplete       = errors.New("order is missing fields required for submission")
	ErrReasonRequired        = errors.New("cancellation reason required")

	ErrOrderNotFound = errors.New("order not found")
	ErrConflict      = errors.New("order already exists")

	ErrOrderNotDeletable        = errors.New("only draft orders may be deleted")
	ErrInvalidStatusTransition  = errors.New("invalid order status transition")
	ErrStateConflict            = errors.New("order state changed concurrently")
	ErrNotOnHold                = errors.New("order is not on hold")
	ErrDriverNotActive          = errors.New("driver actor is not active")
	ErrNoAssignableRelationship = errors.New("no active assignable relationship with driver")
	ErrNotAssignedDriver        = errors.New("caller is not the assigned driver")
	ErrDriverNotPaid            = errors.New("driver payment is not settled")

	// ErrStatusNotMatched is returned by the repository when a guarded
	// status update finds the row in a different status.
	ErrStatusNotMatched = errors.New("order status did not match expected")
)
