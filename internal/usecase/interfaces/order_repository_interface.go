package interfaces

import (
	"context"

	"copydesk/internal/domain/entities"
)

// OrderFilter narrows ListOrders results. Zero values mean "any".
type OrderFilter struct {
	Status      entities.OrderStatus
	ServiceType string
}

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Conventions (followed by every repository here):
//   - Get* returns the zero value with a nil error when the record is absent.
//   - Conditional updates return the zero value with a nil error when the
//     condition failed, so the use case can tell a lost race apart from an
//     infrastructure error.
type IOrderRepository interface {
	// Create persists the order together with its workflow step batch in one
	// transaction. A half-created order with missing steps is never
	// observable.
	Create(ctx context.Context, o entities.Order, steps []entities.WorkflowStep) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]entities.Order, error)

	// UpdateStatus writes the new status conditioned on the stored status
	// still being from (compare-and-swap, serializable per order).
	UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus) (entities.Order, error)

	// RequestRevision is UpdateStatus plus an increment of current_revisions,
	// conditioned on current_revisions < revision_limit, as one write.
	RequestRevision(ctx context.Context, id string, from, to entities.OrderStatus) (entities.Order, error)
}
