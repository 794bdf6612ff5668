package entities

import "time"

// ContentVersion is one historical draft of the deliverable text for an order.
//
// Storage model (DynamoDB):
//   - PK: order_id
//   - SK: version (number; version 0 is reserved for the allocation counter row)
//
// Versions are append-only: creating a new version never deletes an old one,
// and version numbers are never reused or renumbered. Exactly one version per
// order has IsActive=true once activation has ever happened; only the
// transactional activate operation may toggle the flag.
type ContentVersion struct {
	OrderID string `json:"order_id"`
	Version int    `json:"version"`
	Content string `json:"content"`
	Author  string `json:"author"`

	IsActive     bool   `json:"is_active"`
	Notes        string `json:"notes,omitempty"`
	QualityScore *int   `json:"quality_score,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
