package request

import "copydesk/internal/usecase"

// VersionCreateRequest is the payload for appending a content draft.
type VersionCreateRequest struct {
	Content      string `json:"content" binding:"required"`
	Author       string `json:"author"  binding:"required"`
	Notes        string `json:"notes"`
	QualityScore *int   `json:"quality_score"`
}

func (r VersionCreateRequest) ToInput(orderID string) usecase.CreateVersionInput {
	return usecase.CreateVersionInput{
		OrderID:      orderID,
		Content:      r.Content,
		Author:       r.Author,
		Notes:        r.Notes,
		QualityScore: r.QualityScore,
	}
}
