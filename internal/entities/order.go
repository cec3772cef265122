package entities

import "time"

// Order is the unified logistics job record.
type Order struct {
	ID           int64
	SourceType   OrderSourceType
	OwnerActorID int64
	OrderCode    string
	ExternalCode string
	Status       OrderStatusType

	CustomerActorID *int64
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string

	PickupLocation   string
	PickupAddress    string
	PickupTime       *time.Time
	PickupNotes      string
	DeliveryLocation string
	DeliveryAddress  string
	DeliveryTime     *time.Time
	DeliveryNotes    string

	EquipmentType string
	ContainerCode string
	SealNumber    string
	WeightKg      float64
	CBM           float64
	PackageCount  int64
	Hazardous     bool
	TemperatureC  *float64

	Currency            string
	FreightCharge       int64
	AdditionalCharges   int64
	TotalCharge         int64
	DriverPayment       int64
	AmountPaid          int64
	PaymentStatus       PaymentStatusType
	DriverPaymentStatus PaymentStatusType

	PrimaryDriverActorID *int64
	PrimaryVehicleID     *int64

	SubmittedAt     *time.Time
	AssignedAt      *time.Time
	AcceptedAt      *time.Time
	StartedAt       *time.Time
	PickedUpAt      *time.Time
	DeliveredAt     *time.Time
	CompletedAt     *time.Time
	CancelledAt     *time.Time
	HeldAt          *time.Time
	HeldFromStatus  *OrderStatusType
	CancelledReason string

	InternalNotes  string
	DriverNotes    string
	CustomerNotes  string
	Tags           []string
	IdempotencyKey *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderSourceType string

const (
	SourceTenant      OrderSourceType = "TENANT"
	SourceDispatcher  OrderSourceType = "DISPATCHER"
	SourceMarketplace OrderSourceType = "MARKETPLACE"
)

const DefaultOrderSource = SourceTenant

func (t OrderSourceType) String() string {
	return string(t)
}

type OrderStatusType string

const (
	OrderDraft     OrderStatusType = "DRAFT"
	OrderPending   OrderStatusType = "PENDING"
	OrderAssigned  OrderStatusType = "ASSIGNED"
	OrderAccepted  OrderStatusType = "ACCEPTED"
	OrderInTransit OrderStatusType = "IN_TRANSIT"
	OrderDelivered OrderStatusType = "DELIVERED"
	OrderCompleted OrderStatusType = "COMPLETED"
	OrderCancelled OrderStatusType = "CANCELLED"
	OrderOnHold    OrderStatusType = "ON_HOLD"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsTerminal reports whether the workflow has ended for the record.
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// IsValid reports whether the value is one of the known statuses.
func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderDraft, OrderPending, OrderAssigned, OrderAccepted,
		OrderInTransit, OrderDelivered, OrderCompleted, OrderCancelled, OrderOnHold:
		return true
	default:
		return false
	}
}

var orderTransitions = map[OrderStatusType][]OrderStatusType{
	OrderDraft:     {OrderPending},
	OrderPending:   {OrderAssigned},
	OrderAssigned:  {OrderPending, OrderAccepted},
	OrderAccepted:  {OrderInTransit},
	OrderInTransit: {OrderDelivered},
	OrderDelivered: {OrderCompleted},
}

// CanTransitionTo reports whether the status change is in the allowed
// set. Any non-terminal status may move to CANCELLED or ON_HOLD; resume
// from ON_HOLD is validated against the stored pre-hold status by the
// order service, here every non-terminal resume target is accepted.
func (s OrderStatusType) CanTransitionTo(target OrderStatusType) bool {
	if s.IsTerminal() {
		return false
	}
	if target == OrderCancelled {
		return true
	}
	if target == OrderOnHold {
		return s != OrderOnHold
	}
	if s == OrderOnHold {
		return !target.IsTerminal()
	}
	for _, allowed := range orderTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ActiveWorkStatuses are the statuses that block deleting the owning
// actor: work is assigned or moving, deleting the owner would orphan it.
var ActiveWorkStatuses = []OrderStatusType{OrderAssigned, OrderAccepted, OrderInTransit}

type PaymentStatusType string

const (
	PaymentPending PaymentStatusType = "PENDING"
	PaymentPartial PaymentStatusType = "PARTIAL"
	PaymentPaid    PaymentStatusType = "PAID"
)

const DefaultPaymentStatus = PaymentPending

func (s PaymentStatusType) String() string {
	return string(s)
}

type OrderModify struct {
	ID           *int64
	SourceType   *OrderSourceType
	OwnerActorID *int64
	OrderCode    *string
	ExternalCode *string
	Status       *OrderStatusType

	CustomerActorID *int64
	CustomerName    *string
	CustomerPhone   *string
	CustomerEmail   *string

	PickupLocation   *string
	PickupAddress    *string
	PickupTime       *time.Time
	PickupNotes      *string
	DeliveryLocation *string
	DeliveryAddress  *string
	DeliveryTime     *time.Time
	DeliveryNotes    *string

	EquipmentType *string
	ContainerCode *string
	SealNumber    *string
	WeightKg      *float64
	CBM           *float64
	PackageCount  *int64
	Hazardous     *bool
	TemperatureC  *float64

	Currency          *string
	FreightCharge     *int64
	AdditionalCharges *int64
	TotalCharge       *int64
	DriverPayment     *int64

	InternalNotes  *string
	DriverNotes    *string
	CustomerNotes  *string
	Tags           *[]string
	IdempotencyKey *string
}

type OrderFilter struct {
	OwnerActorID  int64
	SourceType    *OrderSourceType
	Status        *OrderStatusType
	DriverActorID *int64
	CustomerName  *string
	ContainerCode *string
	DateFrom      *time.Time
	DateTo        *time.Time
	Limit         int64
	Offset        int64
}

// OrderStatusHistory is the append-only audit trail: exactly one row per
// status change, never mutated or deleted.
type OrderStatusHistory struct {
	ID               int64
	OrderID          int64
	FromStatus       OrderStatusType
	ToStatus         OrderStatusType
	ChangedByActorID *int64
	Note             string
	CreatedAt        time.Time
}

// OrderSegment is one leg of a multi-leg order. The order's primary
// driver/vehicle columns mirror the segment assigned last.
type OrderSegment struct {
	OrderID       int64
	SegmentNumber int64
	SegmentType   string
	DriverActorID int64
	VehicleID     *int64
	AssignedAt    time.Time
}

// OrderStatusPatch carries the column writes that accompany a guarded
// status update. Nil fields are left untouched.
type OrderStatusPatch struct {
	SubmittedAt          *time.Time
	AssignedAt           *time.Time
	AcceptedAt           *time.Time
	StartedAt            *time.Time
	PickedUpAt           *time.Time
	DeliveredAt          *time.Time
	CompletedAt          *time.Time
	CancelledAt          *time.Time
	HeldAt               *time.Time
	HeldFromStatus       *OrderStatusType
	CancelledReason      *string
	PrimaryDriverActorID *int64
	PrimaryVehicleID     *int64
	ClearAssignment      bool
	ClearHold            bool
}

// OrderPaymentPatch carries payment column writes. AmountPaid is the
// new absolute value, not a delta.
type OrderPaymentPatch struct {
	AmountPaid          *int64
	PaymentStatus       *PaymentStatusType
	DriverPaymentStatus *PaymentStatusType
}

// OrderAssignment captures the inputs of an assign call.
type OrderAssignment struct {
	DriverActorID int64
	VehicleID     *int64
	SegmentNumber int64
	SegmentType   string
	ActorID       *int64
}
