package usecase

import (
	"context"
	"errors"
	"testing"

	"copydesk/internal/domain/entities"
	"copydesk/internal/usecase/interfaces"
	mock_interfaces "copydesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testRule() entities.PriceRule {
	return entities.PriceRule{
		ID:                "rule-article",
		ServiceType:       "article",
		BasePriceCents:    800,
		MinUnits:          500,
		PricePerUnitCents: 12,
		Modifiers:         map[string]float64{"urgency": 1.5},
	}
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("missing service type", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, _, err := uc.CreateOrder(context.Background(), CreateOrderInput{ServiceType: "  "})
		if !errors.Is(err, ErrInvalidOrderInput) {
			t.Fatalf("expected ErrInvalidOrderInput, got %v", err)
		}
	})

	t.Run("unknown service type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalog(ctrl)
		uc := NewOrderUseCase(nil, catalog, nil)

		catalog.EXPECT().Rule("greeting_card").Return(entities.PriceRule{}, false)

		_, _, err := uc.CreateOrder(context.Background(), CreateOrderInput{ServiceType: "greeting_card"})
		if !errors.Is(err, ErrRuleNotFound) {
			t.Fatalf("expected ErrRuleNotFound, got %v", err)
		}
	})

	t.Run("invalid selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalog(ctrl)
		uc := NewOrderUseCase(nil, catalog, nil)

		catalog.EXPECT().Rule("article").Return(testRule(), true)
		catalog.EXPECT().VolumeTiers().Return(nil)

		_, _, err := uc.CreateOrder(context.Background(), CreateOrderInput{ServiceType: "article", Quantity: 1000, Modifiers: []string{"bogus"}})
		if !errors.Is(err, ErrInvalidOrderInput) {
			t.Fatalf("expected ErrInvalidOrderInput, got %v", err)
		}
	})

	t.Run("create success persists estimate and step batch together", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalog(ctrl)
		uc := NewOrderUseCase(repo, catalog, nil)

		catalog.EXPECT().Rule("article").Return(testRule(), true)
		catalog.EXPECT().VolumeTiers().Return(nil)
		catalog.EXPECT().Policy("article").Return(entities.ServicePolicy{RevisionLimit: 2})
		catalog.EXPECT().StepTemplates("article").Return([]entities.StepTemplate{
			{Name: "research", EstimatedMinutes: 60},
			{Name: "draft", EstimatedMinutes: 120},
			{Name: "proofread", EstimatedMinutes: 30},
		})

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{}), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order, steps []entities.WorkflowStep) (entities.Order, error) {
				if o.ID == "" || o.Status != entities.OrderStatusPending {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.AmountCents != 10200 {
					t.Fatalf("expected persisted estimate 10200, got %d", o.AmountCents)
				}
				if o.RevisionLimit != 2 || o.CurrentRevisions != 0 {
					t.Fatalf("unexpected revision counters: %+v", o)
				}
				if o.CreatedAt.IsZero() || o.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				if len(steps) != 3 {
					t.Fatalf("expected 3 steps in the same write, got %d", len(steps))
				}
				for i, s := range steps {
					if s.OrderID != o.ID || s.Ordinal != i+1 {
						t.Fatalf("expected contiguous ordinals on the order, got %+v", steps)
					}
					if s.Status != entities.StepStatusPending {
						t.Fatalf("expected pending steps, got %+v", s)
					}
				}
				return o, nil
			},
		)

		o, steps, err := uc.CreateOrder(context.Background(), CreateOrderInput{
			ServiceType: "article",
			Quantity:    1000,
			Modifiers:   []string{"urgency"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Priority != entities.OrderPriorityNormal {
			t.Fatalf("expected default priority, got %s", o.Priority)
		}
		if len(steps) != 3 {
			t.Fatalf("expected 3 steps, got %d", len(steps))
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("unknown target status", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "ord-1", "shipped")
		if !errors.Is(err, ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "ord-1", entities.OrderStatusCancelled)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("illegal edge leaves state unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPending}, nil)

		_, err := uc.UpdateStatus(context.Background(), "ord-1", entities.OrderStatusCompleted)
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("terminal states accept nothing", func(t *testing.T) {
		for _, status := range []entities.OrderStatus{entities.OrderStatusCompleted, entities.OrderStatusCancelled} {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIOrderRepository(ctrl)
			uc := NewOrderUseCase(repo, nil, nil)

			repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: status}, nil)

			_, err := uc.UpdateStatus(context.Background(), "ord-1", entities.OrderStatusInProgress)
			if !errors.Is(err, ErrIllegalTransition) {
				t.Fatalf("expected ErrIllegalTransition from %s, got %v", status, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("pending to in_progress requires payment unless waived", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalog(ctrl)
		uc := NewOrderUseCase(repo, catalog, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", ServiceType: "article", Status: entities.OrderStatusPending}, nil)
		catalog.EXPECT().Policy("article").Return(entities.ServicePolicy{NoPaymentRequired: false})

		_, err := uc.UpdateStatus(context.Background(), "ord-1", entities.OrderStatusInProgress)
		if !errors.Is(err, ErrPaymentRequired) {
			t.Fatalf("expected ErrPaymentRequired, got %v", err)
		}
	})

	t.Run("pending to in_progress allowed for no-payment services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalog(ctrl)
		uc := NewOrderUseCase(repo, catalog, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", ServiceType: "internal_memo", Status: entities.OrderStatusPending}, nil)
		catalog.EXPECT().Policy("internal_memo").Return(entities.ServicePolicy{NoPaymentRequired: true})
		repo.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusPending, entities.OrderStatusInProgress).
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusInProgress}, nil)

		updated, err := uc.UpdateStatus(context.Background(), "ord-1", entities.OrderStatusInProgress)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.OrderStatusInProgress {
			t.Fatalf("expected in_progress, got %s", updated.Status)
		}
	})

	t.Run("revision under the limit increments the counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewOrderUseCase(repo, nil, notifier)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{
			ID: "ord-1", Status: entities.OrderStatusRevisionRequested, CurrentRevisions: 1, RevisionLimit: 2,
		}, nil)
		repo.EXPECT().RequestRevision(gomock.Any(), "ord-1", entities.OrderStatusRevisionRequested, entities.OrderStatusInProgress).
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusInProgress, CurrentRevisions: 2, RevisionLimit: 2}, nil)
		notifier.EXPECT().OrderStatusChanged(gomock.Any(), gomock.Any(), entities.OrderStatusRevisionRequested).Return(nil)

		updated, err := uc.UpdateStatus(context.Background(), "ord-1", entities.OrderStatusInProgress)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.CurrentRevisions != 2 {
			t.Fatalf("expected incremented counter, got %d", updated.CurrentRevisions)
		}
	})

	t.Run("revision at the limit is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{
			ID: "ord-1", Status: entities.OrderStatusRevisionRequested, CurrentRevisions: 2, RevisionLimit: 2,
		}, nil)

		_, err := uc.UpdateStatus(context.Background(), "ord-1", entities.OrderStatusInProgress)
		if !errors.Is(err, ErrRevisionLimitExceeded) {
			t.Fatalf("expected ErrRevisionLimitExceeded, got %v", err)
		}
	})

	t.Run("lost race surfaces as conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusReview}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusReview, entities.OrderStatusCompleted).
			Return(entities.Order{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "ord-1", entities.OrderStatusCompleted)
		if !errors.Is(err, ErrTransitionConflict) {
			t.Fatalf("expected ErrTransitionConflict, got %v", err)
		}
	})
}

func TestOrderUseCase_List(t *testing.T) {
	t.Run("unknown status filter", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.List(context.Background(), interfaces.OrderFilter{Status: "archived"})
		if !errors.Is(err, ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
	})

	t.Run("passes filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		filter := interfaces.OrderFilter{Status: entities.OrderStatusReview, ServiceType: "article"}
		repo.EXPECT().List(gomock.Any(), filter).Return([]entities.Order{{ID: "ord-1"}}, nil)

		orders, err := uc.List(context.Background(), filter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 1 {
			t.Fatalf("expected 1 order, got %d", len(orders))
		}
	})
}
