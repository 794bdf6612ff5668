package interfaces

import (
	"context"

	"copydesk/internal/domain/entities"
)

// IContentVersionRepository abstracts DynamoDB persistence for ContentVersion.
type IContentVersionRepository interface {
	// Create persists v under the next version number for its order (1 for
	// the first) and returns it with Version set. Number allocation and the
	// insert commit together, so numbers are strictly increasing with no
	// gaps or reuse even when a creation fails or races another.
	Create(ctx context.Context, v entities.ContentVersion) (entities.ContentVersion, error)
	Get(ctx context.Context, orderID string, version int) (entities.ContentVersion, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.ContentVersion, error)

	// Activate sets is_active on the target version and clears it on every
	// other version of the order as one transaction. No intermediate state
	// with zero or two active versions is ever observable.
	Activate(ctx context.Context, orderID string, version int) error

	// GetActive returns the zero value when no version is active yet.
	GetActive(ctx context.Context, orderID string) (entities.ContentVersion, error)
}
