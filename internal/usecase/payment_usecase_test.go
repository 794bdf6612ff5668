package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"copydesk/internal/domain/entities"
	mock_interfaces "copydesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_CreateAndConfirm(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix"}`)

	t.Run("invalid order id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.CreateAndConfirm(context.Background(), "  ", payload)
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, nil, gateway, nil)

		_, err := uc.CreateAndConfirm(context.Background(), "ord-1", json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("order not awaiting payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, orderRepo, gateway, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusInProgress}, nil)

		_, err := uc.CreateAndConfirm(context.Background(), "ord-1", payload)
		if !errors.Is(err, ErrOrderNotAwaitingPayment) {
			t.Fatalf("expected ErrOrderNotAwaitingPayment, got %v", err)
		}
	})

	t.Run("success records payment and confirms the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewPaymentUseCase(repo, orderRepo, gateway, notifier)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPaymentPending, AmountCents: 10200}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, enriched json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(enriched, &m); err != nil {
					t.Fatalf("expected enriched json payload: %v", err)
				}
				if m["external_reference"] != "ord-1" {
					t.Fatalf("expected external_reference ord-1, got %v", m["external_reference"])
				}
				if m["transaction_amount"] != 102.0 {
					t.Fatalf("expected amount 102.0 from the order record, got %v", m["transaction_amount"])
				}
				return "pay-9", "approved", json.RawMessage(`{"id":"pay-9","status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID != "pay-9" || p.OrderID != "ord-1" || p.Status != entities.PaymentStatusApproved {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)
		orderRepo.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusPaymentPending, entities.OrderStatusPaymentConfirmed).
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPaymentConfirmed}, nil)
		notifier.EXPECT().OrderStatusChanged(gomock.Any(), gomock.Any(), entities.OrderStatusPaymentPending).Return(nil)

		p, err := uc.CreateAndConfirm(context.Background(), "ord-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "pay-9" {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})

	t.Run("confirm transition lost the race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, orderRepo, gateway, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPaymentPending, AmountCents: 5000}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)
		orderRepo.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusPaymentPending, entities.OrderStatusPaymentConfirmed).
			Return(entities.Order{}, nil)

		_, err := uc.CreateAndConfirm(context.Background(), "ord-1", payload)
		if !errors.Is(err, ErrTransitionConflict) {
			t.Fatalf("expected ErrTransitionConflict, got %v", err)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, orderRepo, gateway, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPaymentPending, AmountCents: 5000}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.CreateAndConfirm(context.Background(), "ord-1", payload)
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})
}

func TestPaymentUseCase_Gets(t *testing.T) {
	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{}, nil)

		_, err := uc.GetByID(context.Background(), "pay-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("list by order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil, nil)

		repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.Payment{{ID: "pay-1"}}, nil)

		payments, err := uc.ListByOrderID(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(payments) != 1 {
			t.Fatalf("expected 1 payment, got %d", len(payments))
		}
	})
}
