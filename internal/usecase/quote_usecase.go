package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"copydesk/internal/domain/entities"
	"copydesk/internal/domain/pricing"
	"copydesk/internal/usecase/interfaces"
)

var (
	ErrRuleNotFound       = errors.New("price rule not found")
	ErrInvalidServiceType = errors.New("invalid service type")
	ErrInvalidQuoteInput  = errors.New("invalid quote selection")
)

// IQuoteUseCase exposes the synchronous price estimation operation. It has no
// persistence side effect and is safe to call on every input change of a
// live estimate form.

type IQuoteUseCase interface {
	Quote(ctx context.Context, serviceType string, sel entities.Selection) (entities.PriceQuote, error)
}

type QuoteUseCase struct {
	catalog interfaces.ICatalog
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(catalog interfaces.ICatalog) *QuoteUseCase {
	return &QuoteUseCase{catalog: catalog}
}

func (u *QuoteUseCase) Quote(_ context.Context, serviceType string, sel entities.Selection) (entities.PriceQuote, error) {
	serviceType = strings.TrimSpace(serviceType)
	if serviceType == "" {
		return entities.PriceQuote{}, ErrInvalidServiceType
	}

	rule, ok := u.catalog.Rule(serviceType)
	if !ok {
		return entities.PriceQuote{}, ErrRuleNotFound
	}

	quote, err := pricing.Quote(rule, sel, u.catalog.VolumeTiers())
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidSelection) {
			return entities.PriceQuote{}, fmt.Errorf("%w: %v", ErrInvalidQuoteInput, err)
		}
		return entities.PriceQuote{}, err
	}
	return quote, nil
}
