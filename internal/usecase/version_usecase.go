package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"copydesk/internal/domain/entities"
	"copydesk/internal/domain/textdiff"
	"copydesk/internal/usecase/interfaces"
)

var (
	ErrVersionNotFound       = errors.New("content version not found")
	ErrInvalidVersionNumber  = errors.New("invalid version number")
	ErrInvalidVersionInput   = errors.New("invalid version input")
	ErrNoActiveVersion       = errors.New("no active version")
	ErrCrossOrderComparison  = errors.New("versions belong to different orders")
	ErrInvalidQualityScore   = errors.New("quality score out of range")
	ErrExporterNotConfigured = errors.New("version exporter not configured")
)

// CreateVersionInput is the domain command for appending a draft.
type CreateVersionInput struct {
	OrderID      string
	Content      string
	Author       string
	Notes        string
	QualityScore *int
}

// IVersionUseCase exposes the content version store.
//
// Versions are append-only and numbered per order starting at 1. New versions
// start inactive; Activate is the only mutation that toggles the active flag
// and it does so atomically across every version of the order.

type IVersionUseCase interface {
	CreateVersion(ctx context.Context, input CreateVersionInput) (entities.ContentVersion, error)
	List(ctx context.Context, orderID string) ([]entities.ContentVersion, error)
	Activate(ctx context.Context, orderID string, version int) (entities.ContentVersion, error)
	LatestActive(ctx context.Context, orderID string) (entities.ContentVersion, error)
	Compare(ctx context.Context, orderID string, fromVersion, toVersion int) ([]textdiff.Change, error)
	Export(ctx context.Context, orderID string, version int) (data []byte, contentType string, err error)
}

type VersionUseCase struct {
	repo      interfaces.IContentVersionRepository
	orderRepo interfaces.IOrderRepository
	notifier  interfaces.INotificationDispatcher
	exporter  interfaces.IVersionExporter
}

var _ IVersionUseCase = (*VersionUseCase)(nil)

func NewVersionUseCase(repo interfaces.IContentVersionRepository, orderRepo interfaces.IOrderRepository, notifier interfaces.INotificationDispatcher, exporter interfaces.IVersionExporter) *VersionUseCase {
	return &VersionUseCase{repo: repo, orderRepo: orderRepo, notifier: notifier, exporter: exporter}
}

func (u *VersionUseCase) CreateVersion(ctx context.Context, input CreateVersionInput) (entities.ContentVersion, error) {
	orderID := strings.TrimSpace(input.OrderID)
	if orderID == "" {
		return entities.ContentVersion{}, ErrInvalidOrderID
	}
	author := strings.TrimSpace(input.Author)
	if author == "" || input.Content == "" {
		return entities.ContentVersion{}, ErrInvalidVersionInput
	}
	if input.QualityScore != nil && (*input.QualityScore < 0 || *input.QualityScore > 100) {
		return entities.ContentVersion{}, ErrInvalidQualityScore
	}

	if err := u.requireOrder(ctx, orderID); err != nil {
		return entities.ContentVersion{}, err
	}

	v := entities.ContentVersion{
		OrderID:      orderID,
		Content:      input.Content,
		Author:       author,
		IsActive:     false,
		Notes:        strings.TrimSpace(input.Notes),
		QualityScore: input.QualityScore,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, v)
	if err != nil {
		return entities.ContentVersion{}, err
	}
	log.Printf("[version][usecase] created order_id=%s version=%d author=%s", orderID, created.Version, author)
	return created, nil
}

func (u *VersionUseCase) List(ctx context.Context, orderID string) ([]entities.ContentVersion, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	if err := u.requireOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

func (u *VersionUseCase) Activate(ctx context.Context, orderID string, version int) (entities.ContentVersion, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ContentVersion{}, ErrInvalidOrderID
	}
	if version < 1 {
		return entities.ContentVersion{}, ErrInvalidVersionNumber
	}

	target, err := u.repo.Get(ctx, orderID, version)
	if err != nil {
		return entities.ContentVersion{}, err
	}
	if target.OrderID == "" {
		return entities.ContentVersion{}, ErrVersionNotFound
	}

	if err := u.repo.Activate(ctx, orderID, version); err != nil {
		return entities.ContentVersion{}, err
	}
	target.IsActive = true

	if u.notifier != nil {
		if err := u.notifier.VersionActivated(ctx, target); err != nil {
			log.Printf("[version][usecase] notification dispatch failed order_id=%s version=%d err=%v", orderID, version, err)
		}
	}
	return target, nil
}

func (u *VersionUseCase) LatestActive(ctx context.Context, orderID string) (entities.ContentVersion, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ContentVersion{}, ErrInvalidOrderID
	}
	if err := u.requireOrder(ctx, orderID); err != nil {
		return entities.ContentVersion{}, err
	}

	v, err := u.repo.GetActive(ctx, orderID)
	if err != nil {
		return entities.ContentVersion{}, err
	}
	if v.OrderID == "" {
		return entities.ContentVersion{}, ErrNoActiveVersion
	}
	return v, nil
}

func (u *VersionUseCase) Compare(ctx context.Context, orderID string, fromVersion, toVersion int) ([]textdiff.Change, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	if fromVersion < 1 || toVersion < 1 {
		return nil, ErrInvalidVersionNumber
	}

	from, err := u.repo.Get(ctx, orderID, fromVersion)
	if err != nil {
		return nil, err
	}
	if from.OrderID == "" {
		return nil, ErrVersionNotFound
	}
	to, err := u.repo.Get(ctx, orderID, toVersion)
	if err != nil {
		return nil, err
	}
	if to.OrderID == "" {
		return nil, ErrVersionNotFound
	}

	return Diff(from, to)
}

// Diff compares two drafts of the same order. Comparing versions across
// orders is refused.
func Diff(from, to entities.ContentVersion) ([]textdiff.Change, error) {
	if from.OrderID != to.OrderID {
		return nil, ErrCrossOrderComparison
	}
	return textdiff.Lines(from.Content, to.Content), nil
}

func (u *VersionUseCase) Export(ctx context.Context, orderID string, version int) ([]byte, string, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, "", ErrInvalidOrderID
	}
	if version < 1 {
		return nil, "", ErrInvalidVersionNumber
	}
	if u.exporter == nil {
		return nil, "", ErrExporterNotConfigured
	}

	v, err := u.repo.Get(ctx, orderID, version)
	if err != nil {
		return nil, "", err
	}
	if v.OrderID == "" {
		return nil, "", ErrVersionNotFound
	}
	return u.exporter.Export(ctx, v)
}

func (u *VersionUseCase) requireOrder(ctx context.Context, orderID string) error {
	o, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.ID == "" {
		return ErrOrderNotFound
	}
	return nil
}
