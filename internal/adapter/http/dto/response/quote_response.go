package response

import "copydesk/internal/domain/entities"

// QuoteResponse is the price breakdown returned by the quote route. Every
// intermediate figure is exposed so clients can render an itemized estimate.
type QuoteResponse struct {
	RuleID      string `json:"rule_id"`
	ServiceType string `json:"service_type"`

	BaseCents       int64   `json:"base_cents"`
	OverageCents    int64   `json:"overage_cents"`
	ModifierProduct float64 `json:"modifier_product"`
	AddOnCents      int64   `json:"add_on_cents"`
	RawTotalCents   int64   `json:"raw_total_cents"`

	VolumeDiscountCents int64 `json:"volume_discount_cents"`
	CodeDiscountCents   int64 `json:"code_discount_cents"`

	SubtotalCents int64 `json:"subtotal_cents"`
	TaxCents      int64 `json:"tax_cents"`
	TotalCents    int64 `json:"total_cents"`
}

func FromQuote(q entities.PriceQuote) QuoteResponse {
	return QuoteResponse{
		RuleID:              q.RuleID,
		ServiceType:         q.ServiceType,
		BaseCents:           q.BaseCents,
		OverageCents:        q.OverageCents,
		ModifierProduct:     q.ModifierProduct,
		AddOnCents:          q.AddOnCents,
		RawTotalCents:       q.RawTotalCents,
		VolumeDiscountCents: q.VolumeDiscountCents,
		CodeDiscountCents:   q.CodeDiscountCents,
		SubtotalCents:       q.SubtotalCents,
		TaxCents:            q.TaxCents,
		TotalCents:          q.TotalCents,
	}
}
