package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"copydesk/internal/adapter/http/handlers/mocks"
	"copydesk/internal/domain/entities"
	"copydesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWorkflowRouter(uc usecase.IWorkflowUseCase) *gin.Engine {
	r := gin.New()
	h := NewWorkflowHandler(uc)
	r.GET("/v1/orders/:order_id/steps", h.ListSteps)
	r.PATCH("/v1/orders/:order_id/steps/:ordinal/status", h.PatchStepStatus)
	r.GET("/v1/orders/:order_id/progress", h.GetProgress)
	return r
}

func TestWorkflowHandler_PatchStepStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non-numeric ordinal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/steps/two/status", bytes.NewBufferString(`{"status":"in_progress"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newWorkflowRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("illegal step transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)

		uc.EXPECT().UpdateStepStatus(gomock.Any(), "ord-1", 2, entities.StepStatusCompleted, false).
			Return(usecase.StepUpdateResult{}, usecase.ErrIllegalStepTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/steps/2/status", bytes.NewBufferString(`{"status":"completed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newWorkflowRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("force flag forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)

		uc.EXPECT().UpdateStepStatus(gomock.Any(), "ord-1", 3, entities.StepStatusCompleted, true).
			Return(usecase.StepUpdateResult{
				Step:             entities.WorkflowStep{OrderID: "ord-1", Ordinal: 3, Status: entities.StepStatusCompleted},
				Progress:         1,
				OrderCompletable: true,
			}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/steps/3/status", bytes.NewBufferString(`{"status":"completed","force":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newWorkflowRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["progress"] != float64(1) || body["order_completable"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestWorkflowHandler_GetProgress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)

		uc.EXPECT().Progress(gomock.Any(), "ord-404").Return(0.0, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-404/progress", nil)
		w := httptest.NewRecorder()
		newWorkflowRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)

		uc.EXPECT().Progress(gomock.Any(), "ord-1").Return(0.5, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/progress", nil)
		w := httptest.NewRecorder()
		newWorkflowRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["progress"] != 0.5 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestWorkflowHandler_ListSteps(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkflowUseCase(ctrl)

	uc.EXPECT().ListSteps(gomock.Any(), "ord-1").Return([]entities.WorkflowStep{
		{OrderID: "ord-1", Ordinal: 1, Name: "draft", Status: entities.StepStatusCompleted},
		{OrderID: "ord-1", Ordinal: 2, Name: "edit", Status: entities.StepStatusPending},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/steps", nil)
	w := httptest.NewRecorder()
	newWorkflowRouter(uc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 || body[0]["name"] != "draft" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
