package interfaces

import (
	"context"
	"time"

	"copydesk/internal/domain/entities"
)

// IWorkflowStepRepository abstracts DynamoDB persistence for WorkflowStep.
// The step batch is written by IOrderRepository.Create, in the same
// transaction as the order row.
type IWorkflowStepRepository interface {
	// ListByOrderID returns the steps ordered by ordinal.
	ListByOrderID(ctx context.Context, orderID string) ([]entities.WorkflowStep, error)

	Get(ctx context.Context, orderID string, ordinal int) (entities.WorkflowStep, error)

	// UpdateStatus writes the new status conditioned on the stored status
	// still being from. startedAt/completedAt are written only when non-nil.
	UpdateStatus(ctx context.Context, orderID string, ordinal int, from, to entities.StepStatus, startedAt, completedAt *time.Time) (entities.WorkflowStep, error)
}
