package usecase

import (
	"context"
	"errors"
	"testing"

	"copydesk/internal/domain/entities"
	"copydesk/internal/domain/textdiff"
	mock_interfaces "copydesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestVersionUseCase_CreateVersion(t *testing.T) {
	t.Run("missing author or content", func(t *testing.T) {
		uc := NewVersionUseCase(nil, nil, nil, nil)
		_, err := uc.CreateVersion(context.Background(), CreateVersionInput{OrderID: "ord-1", Content: "draft"})
		if !errors.Is(err, ErrInvalidVersionInput) {
			t.Fatalf("expected ErrInvalidVersionInput, got %v", err)
		}
	})

	t.Run("quality score out of range", func(t *testing.T) {
		uc := NewVersionUseCase(nil, nil, nil, nil)
		score := 120
		_, err := uc.CreateVersion(context.Background(), CreateVersionInput{OrderID: "ord-1", Content: "draft", Author: "ana", QualityScore: &score})
		if !errors.Is(err, ErrInvalidQualityScore) {
			t.Fatalf("expected ErrInvalidQualityScore, got %v", err)
		}
	})

	t.Run("order must exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewVersionUseCase(nil, orderRepo, nil, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, nil)

		_, err := uc.CreateVersion(context.Background(), CreateVersionInput{OrderID: "missing", Content: "draft", Author: "ana"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("new versions start inactive and the repository numbers them", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContentVersionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewVersionUseCase(repo, orderRepo, nil, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ContentVersion{})).DoAndReturn(
			func(_ context.Context, v entities.ContentVersion) (entities.ContentVersion, error) {
				if v.Version != 0 || v.IsActive {
					t.Fatalf("unexpected version: %+v", v)
				}
				if v.CreatedAt.IsZero() {
					t.Fatalf("expected creation timestamp")
				}
				v.Version = 3
				return v, nil
			},
		)

		v, err := uc.CreateVersion(context.Background(), CreateVersionInput{OrderID: "ord-1", Content: "draft three", Author: " ana ", Notes: "tightened intro"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Version != 3 || v.Author != "ana" || v.Notes != "tightened intro" {
			t.Fatalf("unexpected version: %+v", v)
		}
	})
}

func TestVersionUseCase_Activate(t *testing.T) {
	t.Run("unknown version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContentVersionRepository(ctrl)
		uc := NewVersionUseCase(repo, nil, nil, nil)

		repo.EXPECT().Get(gomock.Any(), "ord-1", 7).Return(entities.ContentVersion{}, nil)

		_, err := uc.Activate(context.Background(), "ord-1", 7)
		if !errors.Is(err, ErrVersionNotFound) {
			t.Fatalf("expected ErrVersionNotFound, got %v", err)
		}
	})

	t.Run("activation is delegated atomically and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContentVersionRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewVersionUseCase(repo, nil, notifier, nil)

		repo.EXPECT().Get(gomock.Any(), "ord-1", 2).Return(entities.ContentVersion{OrderID: "ord-1", Version: 2}, nil)
		repo.EXPECT().Activate(gomock.Any(), "ord-1", 2).Return(nil)
		notifier.EXPECT().VersionActivated(gomock.Any(), gomock.Any()).Return(nil)

		v, err := uc.Activate(context.Background(), "ord-1", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !v.IsActive {
			t.Fatalf("expected active version, got %+v", v)
		}
	})

	t.Run("notifier failure does not fail activation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContentVersionRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewVersionUseCase(repo, nil, notifier, nil)

		repo.EXPECT().Get(gomock.Any(), "ord-1", 1).Return(entities.ContentVersion{OrderID: "ord-1", Version: 1}, nil)
		repo.EXPECT().Activate(gomock.Any(), "ord-1", 1).Return(nil)
		notifier.EXPECT().VersionActivated(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		if _, err := uc.Activate(context.Background(), "ord-1", 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestVersionUseCase_LatestActive(t *testing.T) {
	t.Run("no active version yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContentVersionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewVersionUseCase(repo, orderRepo, nil, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1"}, nil)
		repo.EXPECT().GetActive(gomock.Any(), "ord-1").Return(entities.ContentVersion{}, nil)

		_, err := uc.LatestActive(context.Background(), "ord-1")
		if !errors.Is(err, ErrNoActiveVersion) {
			t.Fatalf("expected ErrNoActiveVersion, got %v", err)
		}
	})
}

func TestVersionUseCase_Compare(t *testing.T) {
	t.Run("diff between versions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContentVersionRepository(ctrl)
		uc := NewVersionUseCase(repo, nil, nil, nil)

		repo.EXPECT().Get(gomock.Any(), "ord-1", 1).Return(entities.ContentVersion{OrderID: "ord-1", Version: 1, Content: "intro\nbody"}, nil)
		repo.EXPECT().Get(gomock.Any(), "ord-1", 2).Return(entities.ContentVersion{OrderID: "ord-1", Version: 2, Content: "intro\nbetter body"}, nil)

		changes, err := uc.Compare(context.Background(), "ord-1", 1, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(changes) != 1 || changes[0].Type != textdiff.ChangeModified {
			t.Fatalf("unexpected diff: %+v", changes)
		}
	})

	t.Run("cross-order comparison refused", func(t *testing.T) {
		a := entities.ContentVersion{OrderID: "ord-1", Version: 1}
		b := entities.ContentVersion{OrderID: "ord-2", Version: 1}
		if _, err := Diff(a, b); !errors.Is(err, ErrCrossOrderComparison) {
			t.Fatalf("expected ErrCrossOrderComparison, got %v", err)
		}
	})
}

func TestVersionUseCase_Export(t *testing.T) {
	t.Run("exports through the collaborator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContentVersionRepository(ctrl)
		exporter := mock_interfaces.NewMockIVersionExporter(ctrl)
		uc := NewVersionUseCase(repo, nil, nil, exporter)

		v := entities.ContentVersion{OrderID: "ord-1", Version: 2, Content: "final"}
		repo.EXPECT().Get(gomock.Any(), "ord-1", 2).Return(v, nil)
		exporter.EXPECT().Export(gomock.Any(), v).Return([]byte(`{"content":"final"}`), "application/json", nil)

		data, contentType, err := uc.Export(context.Background(), "ord-1", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contentType != "application/json" || len(data) == 0 {
			t.Fatalf("unexpected export: %s %s", contentType, data)
		}
	})
}
