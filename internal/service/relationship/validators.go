package relationship

import (
	"strings"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
)

func isValidStatus(status entities.RelationshipStatusType) bool {
	switch status {
	case entities.RelationshipPending, entities.RelationshipActive, entities.RelationshipDeclined,
		entities.RelationshipSuspended, entities.RelationshipTerminated:
		return true
	default:
		return false
	}
}

func isValidType(relationshipType string) bool {
	return strings.TrimSpace(relationshipType) != ""
}

// hasAttributeChanges reports whether the modify carries anything
// besides a status change.
func hasAttributeChanges(modify entities.RelationshipModify) bool {
	return modify.Type != nil ||
		modify.Role != nil ||
		modify.Message != nil ||
		modify.Permissions != nil ||
		modify.PaymentTerms != nil ||
		modify.Rating != nil
}
