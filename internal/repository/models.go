package repository

import (
	"time"

	"chainnote/internal/store"
)

// NoteRecord is the persisted representation of a note. The on-chain
// metadata remains the source of truth; this row caches the latest
// local view plus the submission tracking columns.
type NoteRecord struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	Title         string    `gorm:"type:text;not null"`
	Content       string    `gorm:"type:text"`
	Category      string    `gorm:"size:120;not null;index"`
	Pinned        bool      `gorm:"not null;default:false"`
	TxHash        string    `gorm:"size:64;index"` // 64 hex chars, no 0x prefix
	Status        string    `gorm:"size:20;not null;index"`
	WalletAddress string    `gorm:"size:120;index"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TransactionRecord journals one submitted transaction. Rows are
// append-only except for the reconciliation columns.
type TransactionRecord struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	TxHash        string     `gorm:"size:64;uniqueIndex;not null"`
	NoteID        int64      `gorm:"not null;index"`
	Operation     string     `gorm:"size:20;not null"`
	Status        string     `gorm:"size:20;not null;index"`
	RetryCount    int        `gorm:"not null;default:0"`
	ErrorMessage  string     `gorm:"type:text"`
	BlockHeight   int64      `gorm:""`
	CreatedAt     time.Time  `gorm:"not null"`
	ConfirmedAt   *time.Time `gorm:""`
	LastCheckedAt *time.Time `gorm:""`
}

// HistoryRecord is one append-only activity log row.
type HistoryRecord struct {
	ID        string    `gorm:"primaryKey;autoIncrement:false;size:36"`
	Action    string    `gorm:"size:20;not null"`
	NoteTitle string    `gorm:"type:text;not null"`
	Category  string    `gorm:"size:120"`
	Timestamp time.Time `gorm:"not null;index"`
}

func (r NoteRecord) ToNote() store.Note {
	return store.Note{
		ID:            r.ID,
		Title:         r.Title,
		Content:       r.Content,
		Category:      r.Category,
		Pinned:        r.Pinned,
		TxHash:        r.TxHash,
		Status:        store.Status(r.Status),
		WalletAddress: r.WalletAddress,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func RecordFromNote(n store.Note) NoteRecord {
	return NoteRecord{
		ID:            n.ID,
		Title:         n.Title,
		Content:       n.Content,
		Category:      n.Category,
		Pinned:        n.Pinned,
		TxHash:        n.TxHash,
		Status:        string(n.Status),
		WalletAddress: n.WalletAddress,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func (r HistoryRecord) ToEntry() store.HistoryEntry {
	return store.HistoryEntry{
		ID:        r.ID,
		Action:    store.Action(r.Action),
		NoteTitle: r.NoteTitle,
		Category:  r.Category,
		Timestamp: r.Timestamp,
	}
}

func RecordFromEntry(e store.HistoryEntry) HistoryRecord {
	return HistoryRecord{
		ID:        e.ID,
		Action:    string(e.Action),
		NoteTitle: e.NoteTitle,
		Category:  e.Category,
		Timestamp: e.Timestamp,
	}
}
