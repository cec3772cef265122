package entities

import (
	"time"
)

// Actor is a person or organization participating in the system.
type Actor struct {
	ID           int64
	Type         ActorType
	Status       ActorStatusType
	Name         string
	Code         string
	Email        string
	Phone        string
	Address      string
	City         string
	Country      string
	TaxCode      string
	IDNumber     string
	DateOfBirth  *time.Time
	Gender       string
	BusinessType string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ActorType string

const (
	ActorPerson       ActorType = "PERSON"
	ActorOrganization ActorType = "ORGANIZATION"
)

const DefaultActorType = ActorPerson

func (t ActorType) String() string {
	return string(t)
}

type ActorStatusType string

const (
	ActorActive    ActorStatusType = "ACTIVE"
	ActorInactive  ActorStatusType = "INACTIVE"
	ActorSuspended ActorStatusType = "SUSPENDED"
	ActorDeleted   ActorStatusType = "DELETED"
)

const DefaultActorStatus = ActorActive

func (s ActorStatusType) String() string {
	return string(s)
}

type ActorModify struct {
	ID           *int64
	Type         *ActorType
	Status       *ActorStatusType
	Name         *string
	Code         *string
	Email        *string
	Phone        *string
	Address      *string
	City         *string
	Country      *string
	TaxCode      *string
	IDNumber     *string
	DateOfBirth  *time.Time
	Gender       *string
	BusinessType *string
}

type ActorFilter struct {
	Type   *ActorType
	Status *ActorStatusType
	Search *string
	Limit  int64
	Offset int64
}
