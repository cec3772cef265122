package entities

import "time"

// Relationship is a directed, typed edge between two actors. The
// aggregate counters are maintained by the order workflow only and are
// monotonically non-decreasing.
type Relationship struct {
	ID                   int64
	ActorID              int64
	RelatedActorID       int64
	Type                 string
	Role                 string
	Status               RelationshipStatusType
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

// Well-known relationship types. Type is a free-form classifier, these
// are the ones the projections filter on.
const (
	RelationshipEmployment = "EMPLOYMENT"
	RelationshipPartner    = "PARTNER"
	RelationshipConnection = "CONNECTION"
)

type RelationshipStatusType string

const (
	RelationshipPending    RelationshipStatusType = "PENDING"
	RelationshipActive     RelationshipStatusType = "ACTIVE"
	RelationshipDeclined   RelationshipStatusType = "DECLINED"
	RelationshipSuspended  RelationshipStatusType = "SUSPENDED"
	RelationshipTerminated RelationshipStatusType = "TERMINATED"
)

const DefaultRelationshipStatus = RelationshipPending

func (s RelationshipStatusType) String() string {
	return string(s)
}

// IsTerminal reports whether no further status transition or attribute
// update is allowed.
func (s RelationshipStatusType) IsTerminal() bool {
	return s == RelationshipDeclined || s == RelationshipTerminated
}

var relationshipTransitions = map[RelationshipStatusType][]RelationshipStatusType{
	RelationshipPending:   {RelationshipActive, RelationshipDeclined},
	RelationshipActive:    {RelationshipSuspended, RelationshipTerminated},
	RelationshipSuspended: {RelationshipActive, RelationshipTerminated},
}

// CanTransitionTo reports whether the status change is in the allowed
// set. Repeating the current status is treated as allowed so retried
// accepts stay idempotent.
func (s RelationshipStatusType) CanTransitionTo(target RelationshipStatusType) bool {
	if s == target {
		return true
	}
	for _, allowed := range relationshipTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

type RelationshipModify struct {
	ID             *int64
	ActorID        *int64
	RelatedActorID *int64
	Type           *string
	Role           *string
	Status         *RelationshipStatusType
	Message        *string
	Permissions    *[]string
	PaymentTerms   *string
	Rating         *float64
}

type RelationshipDirection string

const (
	DirectionOutgoing RelationshipDirection = "outgoing"
	DirectionIncoming RelationshipDirection = "incoming"
	DirectionBoth     RelationshipDirection = "both"
)

type RelationshipFilter struct {
	Direction RelationshipDirection
	Type      *string
	Role      *string
	Status    *RelationshipStatusType
}

// RelationshipStatsDelta is applied to a relationship's aggregate
// counters by the order event worker. All fields are non-negative.
type RelationshipStatsDelta struct {
	OrdersCompleted int64
	AmountPaid      int64
	AmountPending   int64
}
