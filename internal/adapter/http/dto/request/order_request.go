package request

import (
	"time"

	"copydesk/internal/domain/entities"
	"copydesk/internal/usecase"
)

// OrderCreateRequest is the payload for order creation. The selection fields
// feed the pricing engine; the resulting estimate is persisted on the order.
type OrderCreateRequest struct {
	ServiceType  string   `json:"service_type" binding:"required"`
	Priority     string   `json:"priority"`
	Quantity     int      `json:"quantity"     binding:"min=0"`
	Modifiers    []string `json:"modifiers"`
	AddOns       []string `json:"add_ons"`
	DiscountCode string   `json:"discount_code"`

	DueDate        *time.Time `json:"due_date"`
	AssignedWriter string     `json:"assigned_writer"`
	AssignedEditor string     `json:"assigned_editor"`
}

func (r OrderCreateRequest) ToInput() usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		ServiceType:    r.ServiceType,
		Priority:       entities.OrderPriority(r.Priority),
		Quantity:       r.Quantity,
		Modifiers:      r.Modifiers,
		AddOns:         r.AddOns,
		DiscountCode:   r.DiscountCode,
		DueDate:        r.DueDate,
		AssignedWriter: r.AssignedWriter,
		AssignedEditor: r.AssignedEditor,
	}
}

// OrderStatusPatchRequest is the payload for the status transition route.
type OrderStatusPatchRequest struct {
	Status string `json:"status" binding:"required"`
}
