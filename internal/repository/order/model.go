package order

import "time"

type OrderDB struct {
	ID           int64
	SourceType   string
	OwnerActorID int64
	OrderCode    string
	ExternalCode string
	Status       string

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
	PaymentStatus       string
	DriverPaymentStatus string

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
	HeldFromStatus  *string
	CancelledReason string

	InternalNotes  string
	DriverNotes    string
	CustomerNotes  string
	Tags           []string
	IdempotencyKey *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderStatusHistoryDB struct {
	ID               int64
	OrderID          int64
	FromStatus       string
	ToStatus         string
	ChangedByActorID *int64
	Note             string
	CreatedAt        time.Time
}
