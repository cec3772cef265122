package actor

import (
	"strings"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidType(actorType entities.ActorType) bool {
	switch actorType {
	case entities.ActorPerson, entities.ActorOrganization:
		return true
	default:
		return false
	}
}

func isValidStatus(status entities.ActorStatusType) bool {
	switch status {
	case entities.ActorActive, entities.ActorInactive, entities.ActorSuspended, entities.ActorDeleted:
		return true
	default:
		return false
	}
}
