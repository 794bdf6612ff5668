package entities

import "time"

// StepStatus represents the sub-state of one production step.
//
// Only forward transitions are legal; there is no un-complete. skipped is a
// side-state for steps an operator marks not applicable.

type StepStatus string

const (
	StepStatusPending    StepStatus = "pending"
	StepStatusInProgress StepStatus = "in_progress"
	StepStatusCompleted  StepStatus = "completed"
	StepStatusSkipped    StepStatus = "skipped"
)

var stepTransitions = map[StepStatus][]StepStatus{
	StepStatusPending:    {StepStatusInProgress, StepStatusSkipped},
	StepStatusInProgress: {StepStatusCompleted, StepStatusSkipped},
	StepStatusCompleted:  {},
	StepStatusSkipped:    {},
}

// Valid reports whether s is a known step status.
func (s StepStatus) Valid() bool {
	_, ok := stepTransitions[s]
	return ok
}

// CanTransitionTo reports whether the edge from s to the target status is
// legal.
func (s StepStatus) CanTransitionTo(to StepStatus) bool {
	for _, next := range stepTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// WorkflowStep is one unit of production work belonging to an order.
//
// Storage model (DynamoDB):
//   - PK: order_id
//   - SK: ordinal (number)
//
// Ordinals are contiguous and unique within an order; the whole batch is
// written under one transaction at order creation.
type WorkflowStep struct {
	OrderID string     `json:"order_id"`
	Ordinal int        `json:"ordinal"`
	Name    string     `json:"name"`
	Status  StepStatus `json:"status"`

	EstimatedMinutes int        `json:"estimated_minutes,omitempty"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// ActualMinutes derives the worked duration from the transition timestamps.
// It is 0 until the step has both started and completed.
func (s WorkflowStep) ActualMinutes() int {
	if s.StartedAt == nil || s.CompletedAt == nil {
		return 0
	}
	d := s.CompletedAt.Sub(*s.StartedAt)
	if d < 0 {
		return 0
	}
	return int(d.Minutes())
}

// StepProgress is the derived completion ratio for a set of steps.
// It is defined as 0 (not NaN) for an empty set.
func StepProgress(steps []WorkflowStep) float64 {
	if len(steps) == 0 {
		return 0
	}
	completed := 0
	for _, s := range steps {
		if s.Status == StepStatusCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(steps))
}

// AllStepsCompleted reports whether every step reached completed.
// Skipped steps do not count as completed.
func AllStepsCompleted(steps []WorkflowStep) bool {
	if len(steps) == 0 {
		return false
	}
	for _, s := range steps {
		if s.Status != StepStatusCompleted {
			return false
		}
	}
	return true
}
