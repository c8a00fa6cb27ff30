package store

import "time"

// Status is a note's ledger confirmation state.
type Status string

const (
	StatusNone      Status = "NONE"
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusFailed    Status = "FAILED"
)

// Action tags a history entry with the mutation that produced it.
type Action string

const (
	ActionCreated  Action = "CREATED"
	ActionUpdated  Action = "UPDATED"
	ActionDeleted  Action = "DELETED"
	ActionPinned   Action = "PINNED"
	ActionUnpinned Action = "UNPINNED"
)

// Note is the collection element owned by the store. TxHash and Status
// are written at submission and then only by reconciliation.
type Note struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	Pinned        bool      `json:"pinned"`
	TxHash        string    `json:"txHash,omitempty"`
	Status        Status    `json:"status"`
	WalletAddress string    `json:"walletAddress,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// HistoryEntry records one completed mutation. Append-only.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Action    Action    `json:"action"`
	NoteTitle string    `json:"noteTitle"`
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
}

// Notification is a dismissible confirmation event emitted by the
// reconciliation poller.
type Notification struct {
	ID        string    `json:"id"`
	NoteID    int64     `json:"noteId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	TxHash    string    `json:"txHash"`
	Timestamp time.Time `json:"timestamp"`
}
