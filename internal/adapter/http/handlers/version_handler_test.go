package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"copydesk/internal/adapter/http/handlers/mocks"
	"copydesk/internal/domain/entities"
	"copydesk/internal/domain/textdiff"
	"copydesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newVersionRouter(uc usecase.IVersionUseCase) *gin.Engine {
	r := gin.New()
	h := NewVersionHandler(uc)
	r.POST("/v1/orders/:order_id/versions", h.CreateVersion)
	r.GET("/v1/orders/:order_id/versions", h.ListVersions)
	r.GET("/v1/orders/:order_id/versions/active", h.GetActiveVersion)
	r.GET("/v1/orders/:order_id/versions/compare", h.CompareVersions)
	r.PATCH("/v1/orders/:order_id/versions/:version/activate", h.ActivateVersion)
	r.GET("/v1/orders/:order_id/versions/:version/export", h.ExportVersion)
	return r
}

func TestVersionHandler_CreateVersion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/versions", bytes.NewBufferString(`{"author":"w-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newVersionRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)

		uc.EXPECT().CreateVersion(gomock.Any(), usecase.CreateVersionInput{OrderID: "ord-1", Content: "draft one", Author: "w-1"}).
			Return(entities.ContentVersion{OrderID: "ord-1", Version: 1, Content: "draft one", Author: "w-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/versions", bytes.NewBufferString(`{"content":"draft one","author":"w-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newVersionRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["version"] != float64(1) || body["is_active"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestVersionHandler_ActivateVersion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("version not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)

		uc.EXPECT().Activate(gomock.Any(), "ord-1", 9).Return(entities.ContentVersion{}, usecase.ErrVersionNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/versions/9/activate", nil)
		w := httptest.NewRecorder()
		newVersionRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)

		uc.EXPECT().Activate(gomock.Any(), "ord-1", 2).
			Return(entities.ContentVersion{OrderID: "ord-1", Version: 2, IsActive: true}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/versions/2/activate", nil)
		w := httptest.NewRecorder()
		newVersionRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["is_active"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestVersionHandler_GetActiveVersion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIVersionUseCase(ctrl)

	uc.EXPECT().LatestActive(gomock.Any(), "ord-1").Return(entities.ContentVersion{}, usecase.ErrNoActiveVersion)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/versions/active", nil)
	w := httptest.NewRecorder()
	newVersionRouter(uc).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestVersionHandler_CompareVersions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing query params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/versions/compare?from=1", nil)
		w := httptest.NewRecorder()
		newVersionRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)

		uc.EXPECT().Compare(gomock.Any(), "ord-1", 1, 2).Return([]textdiff.Change{
			{Type: textdiff.ChangeModified, Line: 1, From: "a", To: "b"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/versions/compare?from=1&to=2", nil)
		w := httptest.NewRecorder()
		newVersionRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		changes, ok := body["changes"].([]any)
		if !ok || len(changes) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestVersionHandler_ExportVersion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIVersionUseCase(ctrl)

	uc.EXPECT().Export(gomock.Any(), "ord-1", 2).Return([]byte(`{"content":"x"}`), "application/json", nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/versions/2/export", nil)
	w := httptest.NewRecorder()
	newVersionRouter(uc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
}
