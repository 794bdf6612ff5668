package entities

// PriceRule is the external configuration describing how to price one service
// type. It is business data loaded from the catalog, never hard-coded in the
// engine.
//
// Monetary representation: all prices are integer minor currency units.
//
// Invariants (enforced by catalog validation):
//   - every modifier multiplier is > 0
//   - every discount-code percentage is in [0,100]
type PriceRule struct {
	ID          string `json:"id"                  validate:"required"`
	ServiceType string `json:"service_type"        validate:"required"`

	BasePriceCents    int64 `json:"base_price_cents"     validate:"min=0"`
	MinUnits          int   `json:"min_units"            validate:"min=0"`
	PricePerUnitCents int64 `json:"price_per_unit_cents" validate:"min=0"`

	// Modifiers maps a named multiplicative factor (urgency, complexity, ...)
	// to its multiplier, applied to the pre-add-on subtotal.
	Modifiers map[string]float64 `json:"modifiers,omitempty" validate:"dive,gt=0"`

	// AddOnsCents maps an optional extra to its flat, non-multiplied surcharge.
	AddOnsCents map[string]int64 `json:"add_ons_cents,omitempty" validate:"dive,min=0"`

	// DiscountCodes maps a code to a percentage subtracted from the raw total.
	DiscountCodes map[string]float64 `json:"discount_codes,omitempty" validate:"dive,min=0,max=100"`

	// TaxRatePercent is applied after all discounts. nil inherits the
	// catalog-wide default; an explicit 0 keeps the rule tax-free.
	TaxRatePercent *float64 `json:"tax_rate_percent,omitempty" validate:"omitempty,min=0"`

	// Regional marks rules whose prices vary by customer region.
	Regional bool `json:"regional"`
}

// VolumeTier is one row of the externally configured volume-discount table:
// once the raw total exceeds ThresholdCents, Percent is subtracted. Tiers are
// evaluated highest threshold first and at most one applies.
type VolumeTier struct {
	ThresholdCents int64   `json:"threshold_cents" validate:"min=0"`
	Percent        float64 `json:"percent"         validate:"min=0,max=100"`
}

// Selection carries the customer's choices for one quote.
type Selection struct {
	Quantity     int      `json:"quantity"`
	Modifiers    []string `json:"modifiers,omitempty"`
	AddOns       []string `json:"add_ons,omitempty"`
	DiscountCode string   `json:"discount_code,omitempty"`
}

// PriceQuote is the result of evaluating a PriceRule against a Selection.
// Immutable once computed; recomputed whenever inputs change.
type PriceQuote struct {
	RuleID      string `json:"rule_id"`
	ServiceType string `json:"service_type"`

	BaseCents       int64   `json:"base_cents"`
	OverageCents    int64   `json:"overage_cents"`
	ModifierProduct float64 `json:"modifier_product"`
	AddOnCents      int64   `json:"add_on_cents"`

	// RawTotalCents is the pre-discount total: (base+overage)*modifiers + add-ons.
	RawTotalCents int64 `json:"raw_total_cents"`

	VolumeDiscountCents int64 `json:"volume_discount_cents"`
	CodeDiscountCents   int64 `json:"code_discount_cents"`

	SubtotalCents int64 `json:"subtotal_cents"`
	TaxCents      int64 `json:"tax_cents"`
	TotalCents    int64 `json:"total_cents"`
}

// StepTemplate is one production step of a service type's workflow template.
// Templates are catalog data; the batch of concrete steps is stamped out from
// them at order creation.
type StepTemplate struct {
	Name             string `json:"name"              validate:"required"`
	EstimatedMinutes int    `json:"estimated_minutes" validate:"min=0"`
}

// ServicePolicy carries per-service-type lifecycle policy.
type ServicePolicy struct {
	// NoPaymentRequired lets pending to in_progress skip the payment states.
	NoPaymentRequired bool `json:"no_payment_required"`

	// RevisionLimit caps revision_requested to in_progress round trips.
	RevisionLimit int `json:"revision_limit" validate:"min=0"`
}
