package export

import (
	"context"
	"encoding/json"
	"time"

	"copydesk/internal/domain/entities"
	"copydesk/internal/usecase/interfaces"
)

// JSONExporter renders a content version as a self-contained JSON document.
// Other formats (docx, pdf) plug in behind the same interface.
type JSONExporter struct{}

var _ interfaces.IVersionExporter = (*JSONExporter)(nil)

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

type exportDocument struct {
	OrderID    string `json:"order_id"`
	Version    int    `json:"version"`
	Author     string `json:"author"`
	Content    string `json:"content"`
	Notes      string `json:"notes,omitempty"`
	CreatedAt  string `json:"created_at"`
	ExportedAt string `json:"exported_at"`
}

func (e *JSONExporter) Export(_ context.Context, v entities.ContentVersion) ([]byte, string, error) {
	doc := exportDocument{
		OrderID:    v.OrderID,
		Version:    v.Version,
		Author:     v.Author,
		Content:    v.Content,
		Notes:      v.Notes,
		CreatedAt:  v.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExportedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, "", err
	}
	return b, "application/json", nil
}
