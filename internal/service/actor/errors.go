package actor

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidActorID        = errors.New("invalid actor id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidType           = errors.New("invalid actor type")
	ErrInvalidStatus         = errors.New("invalid actor status")
	ErrTypeImmutable         = errors.New("actor type is immutable")

	ErrActorNotFound       = errors.New("actor not found")
	ErrConflict            = errors.New("actor code already exists")
	ErrActorHasActiveWork  = errors.New("actor owns orders in an active status")
	ErrActorAlreadyDeleted = errors.New("actor already deleted")
)
