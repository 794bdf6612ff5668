package response

import (
	"time"

	"copydesk/internal/domain/entities"
)

type OrderResponse struct {
	OrderID     string `json:"order_id"`
	ID          string `json:"id"`
	ServiceType string `json:"service_type"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	AmountCents int64  `json:"amount_cents"`

	Quantity     int      `json:"quantity"`
	Modifiers    []string `json:"modifiers,omitempty"`
	AddOns       []string `json:"add_ons,omitempty"`
	DiscountCode string   `json:"discount_code,omitempty"`

	CurrentRevisions int `json:"current_revisions"`
	RevisionLimit    int `json:"revision_limit"`

	DueDate        *time.Time `json:"due_date,omitempty"`
	AssignedWriter string     `json:"assigned_writer,omitempty"`
	AssignedEditor string     `json:"assigned_editor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		OrderID:          o.ID,
		ID:               o.ID,
		ServiceType:      o.ServiceType,
		Status:           string(o.Status),
		Priority:         string(o.Priority),
		AmountCents:      o.AmountCents,
		Quantity:         o.Quantity,
		Modifiers:        o.Modifiers,
		AddOns:           o.AddOns,
		DiscountCode:     o.DiscountCode,
		CurrentRevisions: o.CurrentRevisions,
		RevisionLimit:    o.RevisionLimit,
		DueDate:          o.DueDate,
		AssignedWriter:   o.AssignedWriter,
		AssignedEditor:   o.AssignedEditor,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

// OrderCreatedResponse bundles the new order with its stamped-out step batch.
type OrderCreatedResponse struct {
	OrderResponse
	Steps []WorkflowStepResponse `json:"steps"`
}

func FromOrderWithSteps(o entities.Order, steps []entities.WorkflowStep) OrderCreatedResponse {
	return OrderCreatedResponse{
		OrderResponse: FromOrder(o),
		Steps:         FromWorkflowSteps(steps),
	}
}
