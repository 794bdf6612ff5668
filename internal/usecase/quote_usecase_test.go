package usecase

import (
	"context"
	"errors"
	"testing"

	"copydesk/internal/domain/entities"
	mock_interfaces "copydesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_Quote(t *testing.T) {
	t.Run("invalid service type", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		_, err := uc.Quote(context.Background(), "  ", entities.Selection{Quantity: 100})
		if !errors.Is(err, ErrInvalidServiceType) {
			t.Fatalf("expected ErrInvalidServiceType, got %v", err)
		}
	})

	t.Run("rule not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalog(ctrl)
		uc := NewQuoteUseCase(catalog)

		catalog.EXPECT().Rule("haiku").Return(entities.PriceRule{}, false)

		_, err := uc.Quote(context.Background(), "haiku", entities.Selection{Quantity: 100})
		if !errors.Is(err, ErrRuleNotFound) {
			t.Fatalf("expected ErrRuleNotFound, got %v", err)
		}
	})

	t.Run("invalid selection surfaces as validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalog(ctrl)
		uc := NewQuoteUseCase(catalog)

		catalog.EXPECT().Rule("article").Return(testRule(), true)
		catalog.EXPECT().VolumeTiers().Return(nil)

		_, err := uc.Quote(context.Background(), "article", entities.Selection{Quantity: -5})
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("quote success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalog(ctrl)
		uc := NewQuoteUseCase(catalog)

		catalog.EXPECT().Rule("article").Return(testRule(), true)
		catalog.EXPECT().VolumeTiers().Return([]entities.VolumeTier{{ThresholdCents: 500000, Percent: 5}})

		q, err := uc.Quote(context.Background(), "article", entities.Selection{Quantity: 1000, Modifiers: []string{"urgency"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.TotalCents != 10200 {
			t.Fatalf("expected total 10200, got %d", q.TotalCents)
		}
	})
}
