package entities

import "time"

// OrderStatus represents the lifecycle of a writing order.
//
// Domain notes:
//   - The order service is the source of truth for order state.
//   - Legal transitions are defined once in orderTransitions and consulted by
//     every caller; screens must not re-implement the edge set.

type OrderStatus string

const (
	OrderStatusPending           OrderStatus = "pending"
	OrderStatusPaymentPending    OrderStatus = "payment_pending"
	OrderStatusPaymentConfirmed  OrderStatus = "payment_confirmed"
	OrderStatusInProgress        OrderStatus = "in_progress"
	OrderStatusReview            OrderStatus = "review"
	OrderStatusRevisionRequested OrderStatus = "revision_requested"
	OrderStatusCompleted         OrderStatus = "completed"
	OrderStatusCancelled         OrderStatus = "cancelled"
)

// orderTransitions is the only place the order edge set is defined.
//
// pending to in_progress is listed here but additionally gated by the service
// type's no-payment-required policy in the use case.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:           {OrderStatusPaymentPending, OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusPaymentPending:    {OrderStatusPaymentConfirmed, OrderStatusCancelled},
	OrderStatusPaymentConfirmed:  {OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusInProgress:        {OrderStatusReview, OrderStatusCancelled},
	OrderStatusReview:            {OrderStatusRevisionRequested, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusRevisionRequested: {OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusCompleted:         {},
	OrderStatusCancelled:         {},
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// IsTerminal reports whether no further transitions are accepted from s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the edge from s to the target status is in
// the legal edge set.
func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderPriority is a coarse scheduling hint for the back office.
type OrderPriority string

const (
	OrderPriorityLow    OrderPriority = "low"
	OrderPriorityNormal OrderPriority = "normal"
	OrderPriorityHigh   OrderPriority = "high"
	OrderPriorityUrgent OrderPriority = "urgent"
)

// Order is the central aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - AmountCents is the estimate persisted at creation, in minor currency
//     units. It does not silently change later; the selection inputs that
//     produced it are persisted alongside.
type Order struct {
	ID          string        `json:"id"`
	ServiceType string        `json:"service_type"`
	Status      OrderStatus   `json:"status"`
	Priority    OrderPriority `json:"priority"`
	AmountCents int64         `json:"amount_cents"`

	Quantity     int      `json:"quantity"`
	Modifiers    []string `json:"modifiers,omitempty"`
	AddOns       []string `json:"add_ons,omitempty"`
	DiscountCode string   `json:"discount_code,omitempty"`

	CurrentRevisions int `json:"current_revisions"`
	RevisionLimit    int `json:"revision_limit"`

	DueDate        *time.Time `json:"due_date,omitempty"`
	AssignedWriter string     `json:"assigned_writer,omitempty"`
	AssignedEditor string     `json:"assigned_editor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
