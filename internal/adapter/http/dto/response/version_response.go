package response

import (
	"time"

	"copydesk/internal/domain/entities"
	"copydesk/internal/domain/textdiff"
)

type VersionResponse struct {
	OrderID      string    `json:"order_id"`
	Version      int       `json:"version"`
	Content      string    `json:"content"`
	Author       string    `json:"author"`
	IsActive     bool      `json:"is_active"`
	Notes        string    `json:"notes,omitempty"`
	QualityScore *int      `json:"quality_score,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromVersion(v entities.ContentVersion) VersionResponse {
	return VersionResponse{
		OrderID:      v.OrderID,
		Version:      v.Version,
		Content:      v.Content,
		Author:       v.Author,
		IsActive:     v.IsActive,
		Notes:        v.Notes,
		QualityScore: v.QualityScore,
		CreatedAt:    v.CreatedAt,
	}
}

func FromVersions(versions []entities.ContentVersion) []VersionResponse {
	out := make([]VersionResponse, 0, len(versions))
	for _, v := range versions {
		out = append(out, FromVersion(v))
	}
	return out
}

type VersionChangeResponse struct {
	Type string `json:"type"`
	Line int    `json:"line"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// VersionCompareResponse is the line-level diff between two versions of the
// same order.
type VersionCompareResponse struct {
	OrderID     string                  `json:"order_id"`
	FromVersion int                     `json:"from_version"`
	ToVersion   int                     `json:"to_version"`
	Changes     []VersionChangeResponse `json:"changes"`
}

func FromVersionCompare(orderID string, fromVersion, toVersion int, changes []textdiff.Change) VersionCompareResponse {
	out := make([]VersionChangeResponse, 0, len(changes))
	for _, ch := range changes {
		out = append(out, VersionChangeResponse{
			Type: string(ch.Type),
			Line: ch.Line,
			From: ch.From,
			To:   ch.To,
		})
	}
	return VersionCompareResponse{
		OrderID:     orderID,
		FromVersion: fromVersion,
		ToVersion:   toVersion,
		Changes:     out,
	}
}
