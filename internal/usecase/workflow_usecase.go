package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"copydesk/internal/domain/entities"
	"copydesk/internal/usecase/interfaces"
)

var (
	ErrStepNotFound          = errors.New("workflow step not found")
	ErrInvalidStepOrdinal    = errors.New("invalid step ordinal")
	ErrUnknownStepStatus     = errors.New("unknown step status")
	ErrIllegalStepTransition = errors.New("illegal step transition")
	ErrStepConflict          = errors.New("concurrent step update lost the race")
)

// StepUpdateResult is the outcome of one step transition, including the
// derived progress and what happened (or could happen) to the order.
type StepUpdateResult struct {
	Step     entities.WorkflowStep
	Progress float64

	// OrderCompletable is set when every step is completed and the engine is
	// configured to offer (not force) the automatic order completion.
	OrderCompletable bool

	// OrderCompleted is set when the engine auto-completed the order.
	OrderCompleted bool
}

// IWorkflowUseCase exposes the per-step production workflow.

type IWorkflowUseCase interface {
	ListSteps(ctx context.Context, orderID string) ([]entities.WorkflowStep, error)
	Progress(ctx context.Context, orderID string) (float64, error)

	// UpdateStepStatus drives the step sub-state machine. force permits the
	// pending to completed fast-forward reserved for authorized operators.
	UpdateStepStatus(ctx context.Context, orderID string, ordinal int, to entities.StepStatus, force bool) (StepUpdateResult, error)
}

type WorkflowUseCase struct {
	stepRepo  interfaces.IWorkflowStepRepository
	orderRepo interfaces.IOrderRepository
	catalog   interfaces.ICatalog
	notifier  interfaces.INotificationDispatcher
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(stepRepo interfaces.IWorkflowStepRepository, orderRepo interfaces.IOrderRepository, catalog interfaces.ICatalog, notifier interfaces.INotificationDispatcher) *WorkflowUseCase {
	return &WorkflowUseCase{stepRepo: stepRepo, orderRepo: orderRepo, catalog: catalog, notifier: notifier}
}

func (u *WorkflowUseCase) ListSteps(ctx context.Context, orderID string) ([]entities.WorkflowStep, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	if err := u.requireOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return u.stepRepo.ListByOrderID(ctx, orderID)
}

func (u *WorkflowUseCase) Progress(ctx context.Context, orderID string) (float64, error) {
	steps, err := u.ListSteps(ctx, orderID)
	if err != nil {
		return 0, err
	}
	return entities.StepProgress(steps), nil
}

func (u *WorkflowUseCase) UpdateStepStatus(ctx context.Context, orderID string, ordinal int, to entities.StepStatus, force bool) (StepUpdateResult, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return StepUpdateResult{}, ErrInvalidOrderID
	}
	if ordinal < 1 {
		return StepUpdateResult{}, ErrInvalidStepOrdinal
	}
	if !to.Valid() {
		return StepUpdateResult{}, ErrUnknownStepStatus
	}

	step, err := u.stepRepo.Get(ctx, orderID, ordinal)
	if err != nil {
		return StepUpdateResult{}, err
	}
	if step.OrderID == "" {
		return StepUpdateResult{}, ErrStepNotFound
	}

	from := step.Status
	fastForward := force && from == entities.StepStatusPending && to == entities.StepStatusCompleted
	if !from.CanTransitionTo(to) && !fastForward {
		return StepUpdateResult{}, ErrIllegalStepTransition
	}

	now := time.Now().UTC()
	var startedAt, completedAt *time.Time
	switch to {
	case entities.StepStatusInProgress:
		startedAt = &now
	case entities.StepStatusCompleted:
		completedAt = &now
		if fastForward {
			startedAt = &now
		}
	}

	updated, err := u.stepRepo.UpdateStatus(ctx, orderID, ordinal, from, to, startedAt, completedAt)
	if err != nil {
		return StepUpdateResult{}, err
	}
	if updated.OrderID == "" {
		return StepUpdateResult{}, ErrStepConflict
	}

	steps, err := u.stepRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return StepUpdateResult{}, err
	}

	result := StepUpdateResult{Step: updated, Progress: entities.StepProgress(steps)}
	if to == entities.StepStatusCompleted && entities.AllStepsCompleted(steps) {
		result = u.offerOrderCompletion(ctx, orderID, result)
	}
	return result, nil
}

// offerOrderCompletion handles the "all steps completed" trigger. Depending
// on catalog configuration the order completion is either forced through a
// review to completed compare-and-swap or merely flagged for the caller. A
// lost race means another actor already moved the order; that is not an
// error here.
func (u *WorkflowUseCase) offerOrderCompletion(ctx context.Context, orderID string, result StepUpdateResult) StepUpdateResult {
	if !u.catalog.AutoCompleteOrders() {
		result.OrderCompletable = true
		return result
	}

	o, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil || o.ID == "" {
		log.Printf("[workflow][usecase] auto-complete lookup failed order_id=%s err=%v", orderID, err)
		result.OrderCompletable = true
		return result
	}
	if !o.Status.CanTransitionTo(entities.OrderStatusCompleted) {
		result.OrderCompletable = true
		return result
	}

	updated, err := u.orderRepo.UpdateStatus(ctx, orderID, o.Status, entities.OrderStatusCompleted)
	if err != nil {
		log.Printf("[workflow][usecase] auto-complete failed order_id=%s err=%v", orderID, err)
		result.OrderCompletable = true
		return result
	}
	if updated.ID == "" {
		log.Printf("[workflow][usecase] auto-complete lost the race order_id=%s", orderID)
		result.OrderCompletable = true
		return result
	}

	result.OrderCompleted = true
	if u.notifier != nil {
		if err := u.notifier.OrderStatusChanged(ctx, updated, o.Status); err != nil {
			log.Printf("[workflow][usecase] notification dispatch failed order_id=%s err=%v", orderID, err)
		}
	}
	return result
}

func (u *WorkflowUseCase) requireOrder(ctx context.Context, orderID string) error {
	o, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.ID == "" {
		return ErrOrderNotFound
	}
	return nil
}
