package relationship

import "time"

type RelationshipDB struct {
	ID                   int64
	ActorID              int64
	RelatedActorID       int64
	Type                 string
	Role                 string
	Status               string
	Message              string
	Permissions          []string
	PaymentTerms         string
	TotalOrdersCompleted int64
	TotalAmountPaid      int64
	TotalAmountPending   int64
	Rating               float64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
