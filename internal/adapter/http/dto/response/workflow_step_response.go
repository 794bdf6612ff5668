package response

import (
	"time"

	"copydesk/internal/domain/entities"
	"copydesk/internal/usecase"
)

type WorkflowStepResponse struct {
	OrderID string `json:"order_id"`
	Ordinal int    `json:"ordinal"`
	Name    string `json:"name"`
	Status  string `json:"status"`

	EstimatedMinutes int        `json:"estimated_minutes,omitempty"`
	ActualMinutes    int        `json:"actual_minutes,omitempty"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

func FromWorkflowStep(s entities.WorkflowStep) WorkflowStepResponse {
	return WorkflowStepResponse{
		OrderID:          s.OrderID,
		Ordinal:          s.Ordinal,
		Name:             s.Name,
		Status:           string(s.Status),
		EstimatedMinutes: s.EstimatedMinutes,
		ActualMinutes:    s.ActualMinutes(),
		StartedAt:        s.StartedAt,
		CompletedAt:      s.CompletedAt,
	}
}

func FromWorkflowSteps(steps []entities.WorkflowStep) []WorkflowStepResponse {
	out := make([]WorkflowStepResponse, 0, len(steps))
	for _, s := range steps {
		out = append(out, FromWorkflowStep(s))
	}
	return out
}

// StepUpdateResponse reports the transition outcome plus what it did (or
// could do) to the order.
type StepUpdateResponse struct {
	Step             WorkflowStepResponse `json:"step"`
	Progress         float64              `json:"progress"`
	OrderCompletable bool                 `json:"order_completable"`
	OrderCompleted   bool                 `json:"order_completed"`
}

func FromStepUpdate(r usecase.StepUpdateResult) StepUpdateResponse {
	return StepUpdateResponse{
		Step:             FromWorkflowStep(r.Step),
		Progress:         r.Progress,
		OrderCompletable: r.OrderCompletable,
		OrderCompleted:   r.OrderCompleted,
	}
}

type ProgressResponse struct {
	OrderID  string  `json:"order_id"`
	Progress float64 `json:"progress"`
}
