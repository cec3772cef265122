package relationship

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidActorID        = errors.New("invalid actor id")
	ErrInvalidRelationshipID = errors.New("invalid relationship id")
	ErrSelfRelationship      = errors.New("relationship endpoints must differ")
	ErrInvalidType           = errors.New("invalid relationship type")
	ErrInvalidStatus         = errors.New("invalid relationship status")

	ErrRelationshipNotFound = errors.New("relationship not found")
	ErrActorNotActive       = errors.New("actor is not active")
	ErrConflict             = errors.New("relationship already exists")

	ErrInvalidStatusTransition = errors.New("invalid relationship status transition")
	ErrRelationshipTerminal    = errors.New("relationship is in a terminal status")
	ErrNotRelationshipTarget   = errors.New("only the receiving actor may answer a pending request")
	ErrNotDeletable            = errors.New("only pending or declined relationships may be deleted")
)
