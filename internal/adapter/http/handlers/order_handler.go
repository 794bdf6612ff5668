package handlers

import (
	"errors"
	"log"
	"net/http"

	request "copydesk/internal/adapter/http/dto/request"
	response "copydesk/internal/adapter/http/dto/response"
	"copydesk/internal/domain/entities"
	"copydesk/internal/usecase"
	"copydesk/internal/usecase/interfaces"
	"copydesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for the order lifecycle.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder quotes the selection, persists the order with its estimate and
// stamps out the workflow step batch.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, steps, err := h.usecase.CreateOrder(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[order][handler] create failed service_type=%s err=%v", payload.ServiceType, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] create success order_id=%s amount_cents=%d steps=%d", order.ID, order.AmountCents, len(steps))

	c.JSON(http.StatusCreated, response.FromOrderWithSteps(order, steps))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	order, err := h.usecase.GetByID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[order][handler] get failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter := interfaces.OrderFilter{
		Status:      entities.OrderStatus(c.Query("status")),
		ServiceType: c.Query("service_type"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		appErr := pkg.NewDomainErrorSimple("UNKNOWN_STATUS", "Unknown order status", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	orders, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[order][handler] list failed err=%v", err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// PatchOrderStatus drives one edge of the order state machine.
func (h *OrderHandler) PatchOrderStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.OrderStatusPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateStatus(c.Request.Context(), orderID, entities.OrderStatus(payload.Status))
	if err != nil {
		log.Printf("[order][handler] status patch failed order_id=%s to=%s err=%v", orderID, payload.Status, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] status patch success order_id=%s status=%s", orderID, order.Status)

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownStatus):
		return pkg.NewDomainErrorSimple("UNKNOWN_STATUS", "Unknown order status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRuleNotFound), errors.Is(err, usecase.ErrInvalidServiceType), errors.Is(err, usecase.ErrInvalidQuoteInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Illegal status transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentRequired):
		return pkg.NewDomainErrorSimple("PAYMENT_REQUIRED", "Payment confirmation required", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrRevisionLimitExceeded):
		return pkg.NewDomainErrorSimple("REVISION_LIMIT_EXCEEDED", "Revision limit exceeded", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransitionConflict):
		return pkg.NewDomainErrorSimple("TRANSITION_CONFLICT", "Order changed concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
