package payload

import (
	"chainnote/internal/core"

	"github.com/jellydator/validation"
)

type NoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Pinned   bool   `json:"pinned"`
}

func (n NoteRequest) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&n.Content, validation.Required),
		validation.Field(&n.Category, validation.Length(0, 100)),
	)
}

func (n NoteRequest) ToNoteInput() core.NoteInput {
	return core.NoteInput{
		Title:    n.Title,
		Content:  n.Content,
		Category: n.Category,
		Pinned:   n.Pinned,
	}
}

// RecoverRequest re-persists a note whose ledger submission succeeded
// but whose backend write failed. The hash comes from the failed
// attempt; no new transaction is submitted.
type RecoverRequest struct {
	TxHash   string `json:"txHash"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Pinned   bool   `json:"pinned"`
}

func (rr RecoverRequest) Validate() error {
	return validation.ValidateStruct(&rr,
		validation.Field(&rr.TxHash, validation.Required, validation.Match(txHashRegex)),
		validation.Field(&rr.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&rr.Content, validation.Required),
		validation.Field(&rr.Category, validation.Length(0, 100)),
	)
}

func (rr RecoverRequest) ToNoteInput() core.NoteInput {
	return core.NoteInput{
		Title:    rr.Title,
		Content:  rr.Content,
		Category: rr.Category,
		Pinned:   rr.Pinned,
	}
}
