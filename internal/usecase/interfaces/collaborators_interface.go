package interfaces

import (
	"context"

	"copydesk/internal/domain/entities"
)

// INotificationDispatcher abstracts the external notification delivery
// (push/email/SMS) triggered on status or active-version changes. Delivery
// failures never fail the triggering operation.
type INotificationDispatcher interface {
	OrderStatusChanged(ctx context.Context, o entities.Order, previous entities.OrderStatus) error
	VersionActivated(ctx context.Context, v entities.ContentVersion) error
}

// IVersionExporter abstracts file export/format conversion of a deliverable
// draft. Implementations live outside the core.
type IVersionExporter interface {
	Export(ctx context.Context, v entities.ContentVersion) (data []byte, contentType string, err error)
}
