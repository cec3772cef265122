// Package dto holds the request and response bodies of the HTTP API.
package dto

import "time"

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type Actor struct {
	ID           int64      `json:"id"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	Name         string     `json:"name"`
	Code         string     `json:"code,omitempty"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Address      string     `json:"address,omitempty"`
	City         string     `json:"city,omitempty"`
	Country      string     `json:"country,omitempty"`
	TaxCode      string     `json:"tax_code,omitempty"`
	IDNumber     string     `json:"id_number,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	Gender       string     `json:"gender,omitempty"`
	BusinessType string     `json:"business_type,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type ActorCreate struct {
	Type         *string    `json:"type,omitempty"`
	Name         string     `json:"name"`
	Code         *string    `json:"code,omitempty"`
	Email        *string    `json:"email,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Address      *string    `json:"address,omitempty"`
	City         *string    `json:"city,omitempty"`
	Country      *string    `json:"country,omitempty"`
	TaxCode      *string    `json:"tax_code,omitempty"`
	IDNumber     *string    `json:"id_number,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	Gender       *string    `json:"gender,omitempty"`
	BusinessType *string    `json:"business_type,omitempty"`
}

type ActorUpdate struct {
	Type         *string    `json:"type,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Name         *string    `json:"name,omitempty"`
	Code         *string    `json:"code,omitempty"`
	Email        *string    `json:"email,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Address      *string    `json:"address,omitempty"`
	City         *string    `json:"city,omitempty"`
	Country      *string    `json:"country,omitempty"`
	TaxCode      *string    `json:"tax_code,omitempty"`
	IDNumber     *string    `json:"id_number,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	Gender       *string    `json:"gender,omitempty"`
	BusinessType *string    `json:"business_type,omitempty"`
}

type ActorList struct {
	Items  []Actor `json:"items"`
	Limit  int64   `json:"limit"`
	Offset int64   `json:"offset"`
}

type Relationship struct {
	ID                   int64     `json:"id"`
	ActorID              int64     `json:"actor_id"`
	RelatedActorID       int64     `json:"related_actor_id"`
	Type                 string    `json:"type"`
	Role                 string    `json:"role,omitempty"`
	Status               string    `json:"status"`
	Message              string    `json:"message,omitempty"`
	Permissions          []string  `json:"permissions,omitempty"`
	PaymentTerms         string    `json:"payment_terms,omitempty"`
	TotalOrdersCompleted int64     `json:"total_orders_completed"`
	TotalAmountPaid      int64     `json:"total_amount_paid"`
	TotalAmountPending   int64     `json:"total_amount_pending"`
	Rating               float64   `json:"rating,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type RelationshipCreate struct {
	RelatedActorID int64     `json:"related_actor_id"`
	Type           string    `json:"type"`
	Role           *string   `json:"role,omitempty"`
	Message        *string   `json:"message,omitempty"`
	Permissions    *[]string `json:"permissions,omitempty"`
	PaymentTerms   *string   `json:"payment_terms,omitempty"`
}

type RelationshipUpdate struct {
	Status       *string   `json:"status,omitempty"`
	Role         *string   `json:"role,omitempty"`
	Message      *string   `json:"message,omitempty"`
	Permissions  *[]string `json:"permissions,omitempty"`
	PaymentTerms *string   `json:"payment_terms,omitempty"`
	Rating       *float64  `json:"rating,omitempty"`
}

type Order struct {
	ID           int64  `json:"id"`
	SourceType   string `json:"source_type"`
	OwnerActorID int64  `json:"owner_actor_id"`
	OrderCode    string `json:"order_code"`
	ExternalCode string `json:"external_code,omitempty"`
	Status       string `json:"status"`

	CustomerActorID *int64 `json:"customer_actor_id,omitempty"`
	CustomerName    string `json:"customer_name,omitempty"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	CustomerEmail   string `json:"customer_email,omitempty"`

	PickupLocation   string     `json:"pickup_location,omitempty"`
	PickupAddress    string     `json:"pickup_address,omitempty"`
	PickupTime       *time.Time `json:"pickup_time,omitempty"`
	PickupNotes      string     `json:"pickup_notes,omitempty"`
	DeliveryLocation string     `json:"delivery_location,omitempty"`
	DeliveryAddress  string     `json:"delivery_address,omitempty"`
	DeliveryTime     *time.Time `json:"delivery_time,omitempty"`
	DeliveryNotes    string     `json:"delivery_notes,omitempty"`

	EquipmentType string   `json:"equipment_type,omitempty"`
	ContainerCode string   `json:"container_code,omitempty"`
	SealNumber    string   `json:"seal_number,omitempty"`
	WeightKg      float64  `json:"weight_kg,omitempty"`
	CBM           float64  `json:"cbm,omitempty"`
	PackageCount  int64    `json:"package_count,omitempty"`
	Hazardous     bool     `json:"hazardous"`
	TemperatureC  *float64 `json:"temperature_c,omitempty"`

	Currency            string `json:"currency"`
	FreightCharge       int64  `json:"freight_charge"`
	AdditionalCharges   int64  `json:"additional_charges"`
	TotalCharge         int64  `json:"total_charge"`
	DriverPayment       int64  `json:"driver_payment"`
	AmountPaid          int64  `json:"amount_paid"`
	PaymentStatus       string `json:"payment_status"`
	DriverPaymentStatus string `json:"driver_payment_status"`

	PrimaryDriverActorID *int64 `json:"primary_driver_actor_id,omitempty"`
	PrimaryVehicleID     *int64 `json:"primary_vehicle_id,omitempty"`

	SubmittedAt     *time.Time `json:"submitted_at,omitempty"`
	AssignedAt      *time.Time `json:"assigned_at,omitempty"`
	AcceptedAt      *time.Time `json:"accepted_at,omitempty"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	PickedUpAt      *time.Time `json:"picked_up_at,omitempty"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	CancelledReason string     `json:"cancelled_reason,omitempty"`

	InternalNotes string   `json:"internal_notes,omitempty"`
	DriverNotes   string   `json:"driver_notes,omitempty"`
	CustomerNotes string   `json:"customer_notes,omitempty"`
	Tags          []string `json:"tags,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderCreate struct {
	SourceType   *string `json:"source_type,omitempty"`
	OwnerActorID int64   `json:"owner_actor_id"`
	ExternalCode *string `json:"external_code,omitempty"`
	Draft        bool    `json:"draft,omitempty"`

	CustomerActorID *int64  `json:"customer_actor_id,omitempty"`
	CustomerName    *string `json:"customer_name,omitempty"`
	CustomerPhone   *string `json:"customer_phone,omitempty"`
	CustomerEmail   *string `json:"customer_email,omitempty"`

	PickupLocation   *string    `json:"pickup_location,omitempty"`
	PickupAddress    *string    `json:"pickup_address,omitempty"`
	PickupTime       *time.Time `json:"pickup_time,omitempty"`
	PickupNotes      *string    `json:"pickup_notes,omitempty"`
	DeliveryLocation *string    `json:"delivery_location,omitempty"`
	DeliveryAddress  *string    `json:"delivery_address,omitempty"`
	DeliveryTime     *time.Time `json:"delivery_time,omitempty"`
	DeliveryNotes    *string    `json:"delivery_notes,omitempty"`

	EquipmentType *string  `json:"equipment_type,omitempty"`
	ContainerCode *string  `json:"container_code,omitempty"`
	SealNumber    *string  `json:"seal_number,omitempty"`
	WeightKg      *float64 `json:"weight_kg,omitempty"`
	CBM           *float64 `json:"cbm,omitempty"`
	PackageCount  *int64   `json:"package_count,omitempty"`
	Hazardous     *bool    `json:"hazardous,omitempty"`
	TemperatureC  *float64 `json:"temperature_c,omitempty"`

	Currency          *string `json:"currency,omitempty"`
	FreightCharge     *int64  `json:"freight_charge,omitempty"`
	AdditionalCharges *int64  `json:"additional_charges,omitempty"`
	DriverPayment     *int64  `json:"driver_payment,omitempty"`

	InternalNotes *string   `json:"internal_notes,omitempty"`
	DriverNotes   *string   `json:"driver_notes,omitempty"`
	CustomerNotes *string   `json:"customer_notes,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
}

type OrderUpdate struct {
	ExternalCode *string `json:"external_code,omitempty"`

	CustomerActorID *int64  `json:"customer_actor_id,omitempty"`
	CustomerName    *string `json:"customer_name,omitempty"`
	CustomerPhone   *string `json:"customer_phone,omitempty"`
	CustomerEmail   *string `json:"customer_email,omitempty"`

	PickupLocation   *string    `json:"pickup_location,omitempty"`
	PickupAddress    *string    `json:"pickup_address,omitempty"`
	PickupTime       *time.Time `json:"pickup_time,omitempty"`
	PickupNotes      *string    `json:"pickup_notes,omitempty"`
	DeliveryLocation *string    `json:"delivery_location,omitempty"`
	DeliveryAddress  *string    `json:"delivery_address,omitempty"`
	DeliveryTime     *time.Time `json:"delivery_time,omitempty"`
	DeliveryNotes    *string    `json:"delivery_notes,omitempty"`

	EquipmentType *string  `json:"equipment_type,omitempty"`
	ContainerCode *string  `json:"container_code,omitempty"`
	SealNumber    *string  `json:"seal_number,omitempty"`
	WeightKg      *float64 `json:"weight_kg,omitempty"`
	CBM           *float64 `json:"cbm,omitempty"`
	PackageCount  *int64   `json:"package_count,omitempty"`
	Hazardous     *bool    `json:"hazardous,omitempty"`
	TemperatureC  *float64 `json:"temperature_c,omitempty"`

	Currency          *string `json:"currency,omitempty"`
	FreightCharge     *int64  `json:"freight_charge,omitempty"`
	AdditionalCharges *int64  `json:"additional_charges,omitempty"`
	DriverPayment     *int64  `json:"driver_payment,omitempty"`

	InternalNotes *string   `json:"internal_notes,omitempty"`
	DriverNotes   *string   `json:"driver_notes,omitempty"`
	CustomerNotes *string   `json:"customer_notes,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
}

type OrderList struct {
	Items  []Order `json:"items"`
	Limit  int64   `json:"limit"`
	Offset int64   `json:"offset"`
}

// OrderTransitionRequest covers all workflow action endpoints; which
// fields are required depends on the action.
type OrderTransitionRequest struct {
	ActorID       *int64  `json:"actor_id,omitempty"`
	DriverActorID *int64  `json:"driver_actor_id,omitempty"`
	VehicleID     *int64  `json:"vehicle_id,omitempty"`
	SegmentNumber *int64  `json:"segment_number,omitempty"`
	SegmentType   *string `json:"segment_type,omitempty"`
	Reason        *string `json:"reason,omitempty"`
}

type OrderPaymentRequest struct {
	Amount  *int64 `json:"amount,omitempty"`
	ActorID *int64 `json:"actor_id,omitempty"`
}

type OrderStatusHistoryEntry struct {
	ID               int64     `json:"id"`
	OrderID          int64     `json:"order_id"`
	FromStatus       string    `json:"from_status"`
	ToStatus         string    `json:"to_status"`
	ChangedByActorID *int64    `json:"changed_by_actor_id,omitempty"`
	Note             string    `json:"note,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
