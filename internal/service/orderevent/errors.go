package orderevent

import "errors"

var (
	ErrInvalidEvent   = errors.New("invalid order event")
	ErrUnhandledEvent = errors.New("no handler for order event")
)
