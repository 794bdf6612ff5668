package request

import "copydesk/internal/domain/entities"

// QuoteRequest is the payload for the synchronous price estimation route.
type QuoteRequest struct {
	ServiceType  string   `json:"service_type" binding:"required"`
	Quantity     int      `json:"quantity"     binding:"min=0"`
	Modifiers    []string `json:"modifiers"`
	AddOns       []string `json:"add_ons"`
	DiscountCode string   `json:"discount_code"`
}

func (r QuoteRequest) ToSelection() entities.Selection {
	return entities.Selection{
		Quantity:     r.Quantity,
		Modifiers:    r.Modifiers,
		AddOns:       r.AddOns,
		DiscountCode: r.DiscountCode,
	}
}
