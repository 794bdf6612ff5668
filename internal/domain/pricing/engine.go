// Package pricing implements the multi-factor price estimation calculator.
//
// Quote is pure and deterministic: no I/O, no clock, no shared state. It is
// cheap enough to be recomputed on every input change of a live estimate form.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"copydesk/internal/domain/entities"
)

var (
	// ErrInvalidSelection marks bad selection input: unknown modifier/add-on
	// keys, unknown discount codes, negative quantity. Wrapped errors carry
	// the offending field.
	ErrInvalidSelection = errors.New("invalid selection")
)

// Quote evaluates rule against sel with the configured volume tiers.
//
// The calculation order is fixed:
//  1. base price
//  2. overage: max(0, quantity - minUnits) * pricePerUnit
//  3. modifier product (1 when none selected)
//  4. pre-add-on subtotal: (base + overage) * modifier product
//  5. add-on cost: flat surcharges, not multiplied
//  6. raw total: subtotal + add-ons
//  7. volume discount: highest tier whose threshold the raw total exceeds;
//     the rate applies to the amount above the threshold only
//  8. discount code: percentage of the raw total (not compounded with 7)
//  9. tax on the discounted subtotal, rounded to whole minor units
func Quote(rule entities.PriceRule, sel entities.Selection, tiers []entities.VolumeTier) (entities.PriceQuote, error) {
	if sel.Quantity < 0 {
		return entities.PriceQuote{}, fmt.Errorf("%w: negative quantity %d", ErrInvalidSelection, sel.Quantity)
	}

	base := float64(rule.BasePriceCents)

	overageUnits := sel.Quantity - rule.MinUnits
	if overageUnits < 0 {
		overageUnits = 0
	}
	overage := float64(overageUnits) * float64(rule.PricePerUnitCents)

	modifierProduct := 1.0
	for _, key := range sel.Modifiers {
		multiplier, ok := rule.Modifiers[key]
		if !ok {
			return entities.PriceQuote{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSelection, key)
		}
		modifierProduct *= multiplier
	}

	preAddon := (base + overage) * modifierProduct

	var addOnCents int64
	for _, key := range sel.AddOns {
		price, ok := rule.AddOnsCents[key]
		if !ok {
			return entities.PriceQuote{}, fmt.Errorf("%w: unknown add-on %q", ErrInvalidSelection, key)
		}
		addOnCents += price
	}

	rawTotal := preAddon + float64(addOnCents)

	volumeDiscount := volumeDiscountFor(rawTotal, tiers)

	codeDiscount := 0.0
	if sel.DiscountCode != "" {
		percent, ok := rule.DiscountCodes[sel.DiscountCode]
		if !ok {
			return entities.PriceQuote{}, fmt.Errorf("%w: unknown discount code %q", ErrInvalidSelection, sel.DiscountCode)
		}
		codeDiscount = rawTotal * percent / 100
	}

	subtotal := rawTotal - volumeDiscount - codeDiscount
	if subtotal < 0 {
		subtotal = 0
	}

	taxRate := 0.0
	if rule.TaxRatePercent != nil {
		taxRate = *rule.TaxRatePercent
	}
	tax := subtotal * taxRate / 100
	total := int64(math.Round(subtotal + tax))
	if total < 0 {
		total = 0
	}

	return entities.PriceQuote{
		RuleID:              rule.ID,
		ServiceType:         rule.ServiceType,
		BaseCents:           rule.BasePriceCents,
		OverageCents:        int64(math.Round(overage)),
		ModifierProduct:     modifierProduct,
		AddOnCents:          addOnCents,
		RawTotalCents:       int64(math.Round(rawTotal)),
		VolumeDiscountCents: int64(math.Round(volumeDiscount)),
		CodeDiscountCents:   int64(math.Round(codeDiscount)),
		SubtotalCents:       int64(math.Round(subtotal)),
		TaxCents:            int64(math.Round(tax)),
		TotalCents:          total,
	}, nil
}

// volumeDiscountFor returns the discount of the highest tier whose threshold
// the raw total strictly exceeds, or 0 when none applies. The tier rate is
// applied only to the amount above the threshold, so crossing a threshold
// never shrinks the total: the quantity guarantee of Quote depends on this.
func volumeDiscountFor(rawTotal float64, tiers []entities.VolumeTier) float64 {
	ordered := make([]entities.VolumeTier, len(tiers))
	copy(ordered, tiers)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ThresholdCents > ordered[j].ThresholdCents
	})
	for _, tier := range ordered {
		threshold := float64(tier.ThresholdCents)
		if rawTotal > threshold {
			return (rawTotal - threshold) * tier.Percent / 100
		}
	}
	return 0
}
