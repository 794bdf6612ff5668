package notify

import (
	"context"
	"log"

	"copydesk/internal/domain/entities"
	"copydesk/internal/usecase/interfaces"
)

// LogDispatcher writes notification events to the application log. It stands
// in for push/email delivery until a real channel is wired; events carry
// enough context to be forwarded by a log shipper.
type LogDispatcher struct{}

var _ interfaces.INotificationDispatcher = (*LogDispatcher)(nil)

func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

func (d *LogDispatcher) OrderStatusChanged(_ context.Context, o entities.Order, previous entities.OrderStatus) error {
	log.Printf("[notify][infrastructure] order status changed order_id=%s from=%s to=%s", o.ID, previous, o.Status)
	return nil
}

func (d *LogDispatcher) VersionActivated(_ context.Context, v entities.ContentVersion) error {
	log.Printf("[notify][infrastructure] version activated order_id=%s version=%d author=%s", v.OrderID, v.Version, v.Author)
	return nil
}
