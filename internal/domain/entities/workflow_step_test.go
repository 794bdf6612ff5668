package entities

import (
	"testing"
	"time"
)

func TestStepStatusTransitions(t *testing.T) {
	if !StepStatusPending.CanTransitionTo(StepStatusInProgress) {
		t.Fatalf("expected pending -> in_progress to be legal")
	}
	if !StepStatusInProgress.CanTransitionTo(StepStatusCompleted) {
		t.Fatalf("expected in_progress -> completed to be legal")
	}
	if StepStatusPending.CanTransitionTo(StepStatusCompleted) {
		t.Fatalf("expected pending -> completed to require fast-forward")
	}
	if StepStatusCompleted.CanTransitionTo(StepStatusInProgress) {
		t.Fatalf("expected completed to be final")
	}
	if StepStatusSkipped.CanTransitionTo(StepStatusInProgress) {
		t.Fatalf("expected skipped to be final")
	}
}

func TestStepProgress(t *testing.T) {
	if got := StepProgress(nil); got != 0 {
		t.Fatalf("expected 0 progress for no steps, got %v", got)
	}

	steps := []WorkflowStep{
		{Ordinal: 1, Status: StepStatusCompleted},
		{Ordinal: 2, Status: StepStatusCompleted},
		{Ordinal: 3, Status: StepStatusInProgress},
		{Ordinal: 4, Status: StepStatusPending},
	}
	if got := StepProgress(steps); got != 0.5 {
		t.Fatalf("expected progress 0.5, got %v", got)
	}
}

func TestAllStepsCompleted(t *testing.T) {
	if AllStepsCompleted(nil) {
		t.Fatalf("expected empty set to not count as completed")
	}

	steps := []WorkflowStep{
		{Ordinal: 1, Status: StepStatusCompleted},
		{Ordinal: 2, Status: StepStatusSkipped},
	}
	if AllStepsCompleted(steps) {
		t.Fatalf("expected skipped step to block completion")
	}

	steps[1].Status = StepStatusCompleted
	if !AllStepsCompleted(steps) {
		t.Fatalf("expected all completed")
	}
}

func TestActualMinutes(t *testing.T) {
	s := WorkflowStep{Ordinal: 1, Status: StepStatusInProgress}
	if s.ActualMinutes() != 0 {
		t.Fatalf("expected 0 before completion")
	}

	started := time.Now().UTC().Add(-45 * time.Minute)
	completed := started.Add(40 * time.Minute)
	s.StartedAt = &started
	s.CompletedAt = &completed
	if got := s.ActualMinutes(); got != 40 {
		t.Fatalf("expected 40 minutes, got %d", got)
	}
}
