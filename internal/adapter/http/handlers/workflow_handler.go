package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "copydesk/internal/adapter/http/dto/request"
	response "copydesk/internal/adapter/http/dto/response"
	"copydesk/internal/domain/entities"
	"copydesk/internal/usecase"
	"copydesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidStepPayload = pkg.NewDomainErrorSimple("INVALID_STEP_INPUT", "Invalid step payload", http.StatusBadRequest)
	errInvalidStepOrdinal = pkg.NewDomainErrorSimple("INVALID_STEP_ORDINAL", "Invalid step ordinal", http.StatusBadRequest)
)

// WorkflowHandler handles HTTP requests for the per-order production workflow.

type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

func (h *WorkflowHandler) ListSteps(c *gin.Context) {
	orderID := c.Param("order_id")

	steps, err := h.usecase.ListSteps(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[workflow][handler] list failed order_id=%s err=%v", orderID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkflowSteps(steps))
}

// PatchStepStatus drives one edge of the step sub-state machine and reports
// the resulting order progress.
func (h *WorkflowHandler) PatchStepStatus(c *gin.Context) {
	orderID := c.Param("order_id")
	ordinal, err := strconv.Atoi(c.Param("ordinal"))
	if err != nil {
		c.JSON(errInvalidStepOrdinal.HTTPStatus, errInvalidStepOrdinal.ToHTTPError())
		return
	}

	var payload request.StepStatusPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStepPayload.HTTPStatus, errInvalidStepPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.UpdateStepStatus(c.Request.Context(), orderID, ordinal, entities.StepStatus(payload.Status), payload.Force)
	if err != nil {
		log.Printf("[workflow][handler] step patch failed order_id=%s ordinal=%d to=%s err=%v", orderID, ordinal, payload.Status, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[workflow][handler] step patch success order_id=%s ordinal=%d status=%s progress=%.2f", orderID, ordinal, result.Step.Status, result.Progress)

	c.JSON(http.StatusOK, response.FromStepUpdate(result))
}

func (h *WorkflowHandler) GetProgress(c *gin.Context) {
	orderID := c.Param("order_id")

	progress, err := h.usecase.Progress(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[workflow][handler] progress failed order_id=%s err=%v", orderID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ProgressResponse{OrderID: orderID, Progress: progress})
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidStepOrdinal):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownStepStatus):
		return pkg.NewDomainErrorSimple("UNKNOWN_STEP_STATUS", "Unknown step status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStepNotFound):
		return pkg.NewDomainErrorSimple("STEP_NOT_FOUND", "Workflow step not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalStepTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_STEP_TRANSITION", "Illegal step transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrStepConflict):
		return pkg.NewDomainErrorSimple("STEP_CONFLICT", "Step changed concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
