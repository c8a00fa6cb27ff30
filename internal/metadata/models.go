package metadata

import (
	"encoding/json"
	"fmt"

	"chainnote/internal/chunk"
)

// AppTag identifies this application's transactions in ledger metadata.
const AppTag = "chainnote"

// Label is the fixed metadata label the document is attached under.
const Label = 42819

type Operation string

const (
	OperationCreate Operation = "CREATE"
	OperationUpdate Operation = "UPDATE"
	OperationDelete Operation = "DELETE"
)

// ChunkedField is a metadata string field in its ledger form: a single
// string when the value fits the budget, an ordered chunk sequence
// otherwise. It marshals to a bare JSON string or a JSON array to match
// that shape on the wire.
type ChunkedField []string

func (f ChunkedField) MarshalJSON() ([]byte, error) {
	switch len(f) {
	case 0:
		return json.Marshal("")
	case 1:
		return json.Marshal(f[0])
	default:
		return json.Marshal([]string(f))
	}
}

func (f *ChunkedField) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*f = ChunkedField{}
			return nil
		}
		*f = ChunkedField{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("chunked field must be a string or an array of strings: %w", err)
	}
	*f = ChunkedField(many)
	return nil
}

// Reconstruct returns the ordered concatenation of the chunks.
func (f ChunkedField) Reconstruct() string {
	return chunk.Reconstruct([]string(f))
}

// Document is the operation-tagged metadata attached to one note
// mutation's transaction. Built fresh per operation, never persisted
// as-is.
type Document struct {
	Operation Operation    `json:"operation"`
	NoteID    string       `json:"noteId,omitempty"`
	Title     ChunkedField `json:"title"`
	Content   ChunkedField `json:"content"`
	Category  ChunkedField `json:"category"`
	Pinned    *bool        `json:"isPinned,omitempty"`
	Timestamp string       `json:"timestamp"`
	App       string       `json:"app"`
}

// Fields exposes the chunked string fields for budget validation.
func (d Document) Fields() map[string]any {
	return map[string]any{
		"title":    []string(d.Title),
		"content":  []string(d.Content),
		"category": []string(d.Category),
	}
}
