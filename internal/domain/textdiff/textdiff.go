// Package textdiff produces a deterministic, order-preserving line diff
// between two content drafts. The result is not guaranteed minimal; it is a
// stable positional comparison suitable for rendering change records.
package textdiff

import "strings"

// ChangeType classifies one change record.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeRemoved  ChangeType = "removed"
	ChangeModified ChangeType = "modified"
)

// Change is one record of the diff. Line is the 1-based position in the
// newer text for added/modified records and in the older text for removed
// records.
type Change struct {
	Type ChangeType `json:"type"`
	Line int        `json:"line"`
	From string     `json:"from,omitempty"`
	To   string     `json:"to,omitempty"`
}

// Lines compares old and new texts line by line, in order. Lines present in
// both at the same position but with different content are reported as
// modified; trailing surplus lines are added or removed.
func Lines(oldText, newText string) []Change {
	oldLines := splitLines(oldText)
	newLines := splitLines(newText)

	changes := []Change{}
	common := len(oldLines)
	if len(newLines) < common {
		common = len(newLines)
	}

	for i := 0; i < common; i++ {
		if oldLines[i] != newLines[i] {
			changes = append(changes, Change{Type: ChangeModified, Line: i + 1, From: oldLines[i], To: newLines[i]})
		}
	}
	for i := common; i < len(oldLines); i++ {
		changes = append(changes, Change{Type: ChangeRemoved, Line: i + 1, From: oldLines[i]})
	}
	for i := common; i < len(newLines); i++ {
		changes = append(changes, Change{Type: ChangeAdded, Line: i + 1, To: newLines[i]})
	}
	return changes
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
