package entities

import "time"

// Order event types carried on the Kafka topic.
const (
	EventOrderStatusChanged  = "order.status.changed"
	EventOrderPaymentChanged = "order.payment.changed"
)

// Payment legs of a payment changed event.
const (
	PaymentLegCustomer = "customer"
	PaymentLegDriver   = "driver"
)

// OrderEvent is the envelope published after an order commit. Status
// fields are set for status changed events, payment fields for payment
// changed events.
type OrderEvent struct {
	Type            string          `json:"type"`
	OrderID         int64           `json:"order_id"`
	OrderCode       string          `json:"order_code"`
	OwnerActorID    int64           `json:"owner_actor_id"`
	DriverActorID   *int64          `json:"driver_actor_id,omitempty"`
	CustomerActorID *int64          `json:"customer_actor_id,omitempty"`
	FromStatus      OrderStatusType `json:"from_status,omitempty"`
	ToStatus        OrderStatusType `json:"to_status,omitempty"`
	PaymentLeg      string          `json:"payment_leg,omitempty"`
	Amount          int64           `json:"amount,omitempty"`
	DriverPayment   int64           `json:"driver_payment,omitempty"`
	OccurredAt      time.Time       `json:"occurred_at"`
}
