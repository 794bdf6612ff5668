package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"copydesk/internal/domain/entities"
	"copydesk/internal/domain/pricing"
	"copydesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidOrderInput     = errors.New("invalid order input")
	ErrUnknownStatus         = errors.New("unknown order status")
	ErrIllegalTransition     = errors.New("illegal status transition")
	ErrPaymentRequired       = errors.New("payment confirmation required")
	ErrRevisionLimitExceeded = errors.New("revision limit exceeded")
	ErrTransitionConflict    = errors.New("concurrent transition lost the race")
)

// CreateOrderInput is the domain command for order creation. The selection
// fields are the inputs that produce the persisted estimate.
type CreateOrderInput struct {
	ServiceType  string
	Priority     entities.OrderPriority
	Quantity     int
	Modifiers    []string
	AddOns       []string
	DiscountCode string

	DueDate        *time.Time
	AssignedWriter string
	AssignedEditor string
}

// IOrderUseCase exposes order lifecycle operations.
//
//   - CreateOrder quotes the selection, stamps out the workflow step batch
//     from the service type template and persists order and steps together.
//   - UpdateStatus drives the status state machine under per-order
//     compare-and-swap; illegal edges and lost races never mutate state.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (entities.Order, []entities.WorkflowStep, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context, filter interfaces.OrderFilter) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, to entities.OrderStatus) (entities.Order, error)
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	catalog  interfaces.ICatalog
	notifier interfaces.INotificationDispatcher
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, catalog interfaces.ICatalog, notifier interfaces.INotificationDispatcher) *OrderUseCase {
	return &OrderUseCase{repo: repo, catalog: catalog, notifier: notifier}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, input CreateOrderInput) (entities.Order, []entities.WorkflowStep, error) {
	serviceType := strings.TrimSpace(input.ServiceType)
	if serviceType == "" {
		return entities.Order{}, nil, ErrInvalidOrderInput
	}

	rule, ok := u.catalog.Rule(serviceType)
	if !ok {
		return entities.Order{}, nil, ErrRuleNotFound
	}

	selection := entities.Selection{
		Quantity:     input.Quantity,
		Modifiers:    input.Modifiers,
		AddOns:       input.AddOns,
		DiscountCode: strings.TrimSpace(input.DiscountCode),
	}
	quote, err := pricing.Quote(rule, selection, u.catalog.VolumeTiers())
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidSelection) {
			return entities.Order{}, nil, ErrInvalidOrderInput
		}
		return entities.Order{}, nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = entities.OrderPriorityNormal
	}

	policy := u.catalog.Policy(serviceType)
	now := time.Now().UTC()
	o := entities.Order{
		ID:               uuid.NewString(),
		ServiceType:      serviceType,
		Status:           entities.OrderStatusPending,
		Priority:         priority,
		AmountCents:      quote.TotalCents,
		Quantity:         input.Quantity,
		Modifiers:        input.Modifiers,
		AddOns:           input.AddOns,
		DiscountCode:     selection.DiscountCode,
		CurrentRevisions: 0,
		RevisionLimit:    policy.RevisionLimit,
		DueDate:          input.DueDate,
		AssignedWriter:   strings.TrimSpace(input.AssignedWriter),
		AssignedEditor:   strings.TrimSpace(input.AssignedEditor),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	templates := u.catalog.StepTemplates(serviceType)
	steps := make([]entities.WorkflowStep, 0, len(templates))
	for i, tmpl := range templates {
		steps = append(steps, entities.WorkflowStep{
			OrderID:          o.ID,
			Ordinal:          i + 1,
			Name:             tmpl.Name,
			Status:           entities.StepStatusPending,
			EstimatedMinutes: tmpl.EstimatedMinutes,
		})
	}

	created, err := u.repo.Create(ctx, o, steps)
	if err != nil {
		return entities.Order{}, nil, err
	}

	log.Printf("[order][usecase] created order_id=%s service_type=%s amount_cents=%d steps=%d", created.ID, serviceType, created.AmountCents, len(steps))
	return created, steps, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) List(ctx context.Context, filter interfaces.OrderFilter) ([]entities.Order, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrUnknownStatus
	}
	return u.repo.List(ctx, filter)
}

// UpdateStatus performs one compare-and-swap transition. The current state is
// read, the requested edge is checked against the transition table, and the
// write is conditioned on the state not having changed since the read. A
// failed condition surfaces as ErrTransitionConflict and mutates nothing.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, to entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !to.Valid() {
		return entities.Order{}, ErrUnknownStatus
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	from := o.Status
	if !from.CanTransitionTo(to) {
		return entities.Order{}, ErrIllegalTransition
	}
	if from == entities.OrderStatusPending && to == entities.OrderStatusInProgress {
		if !u.catalog.Policy(o.ServiceType).NoPaymentRequired {
			return entities.Order{}, ErrPaymentRequired
		}
	}

	var updated entities.Order
	if from == entities.OrderStatusRevisionRequested && to == entities.OrderStatusInProgress {
		if o.CurrentRevisions >= o.RevisionLimit {
			return entities.Order{}, ErrRevisionLimitExceeded
		}
		updated, err = u.repo.RequestRevision(ctx, id, from, to)
	} else {
		updated, err = u.repo.UpdateStatus(ctx, id, from, to)
	}
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrTransitionConflict
	}

	u.notifyStatusChanged(ctx, updated, from)
	return updated, nil
}

func (u *OrderUseCase) notifyStatusChanged(ctx context.Context, o entities.Order, previous entities.OrderStatus) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.OrderStatusChanged(ctx, o, previous); err != nil {
		log.Printf("[order][usecase] notification dispatch failed order_id=%s err=%v", o.ID, err)
	}
}
