package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chainnote/internal/db"
	"chainnote/internal/store"
)

var ErrNoteNotFound error = errors.New("note not found")

type NoteRepository struct {
	db Storage
}

func NewNoteRepository(db Storage) *NoteRepository {
	return &NoteRepository{
		db: db,
	}
}

func (r *NoteRepository) Migrate() error {
	err := r.db.MigrateTable(&NoteRecord{}, &TransactionRecord{}, &HistoryRecord{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// SaveNote upserts the note and returns the stored row, so a freshly
// created note comes back with its assigned identifier.
func (r *NoteRepository) SaveNote(ctx context.Context, note store.Note) (store.Note, error) {
	record := RecordFromNote(note)

	err := r.db.SaveToTable(ctx, &record)
	if err != nil {
		return store.Note{}, fmt.Errorf("save note: %w", err)
	}

	return record.ToNote(), nil
}

func (r *NoteRepository) GetNote(ctx context.Context, id int64) (store.Note, error) {
	var record NoteRecord

	err := r.db.GetOneBy(ctx, "id", id, &record)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return store.Note{}, ErrNoteNotFound
		}
		return store.Note{}, fmt.Errorf("get note by id: %w", err)
	}

	return record.ToNote(), nil
}

func (r *NoteRepository) ListNotes(ctx context.Context) ([]store.Note, error) {
	var records []NoteRecord

	err := r.db.GetWhere(ctx, &records, "1 = 1")
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return toNotes(records), nil
}

// ListPending returns notes still awaiting on-chain confirmation. Rows
// without a transaction hash have nothing to reconcile against and are
// excluded.
func (r *NoteRepository) ListPending(ctx context.Context) ([]store.Note, error) {
	var records []NoteRecord

	err := r.db.GetWhere(ctx, &records, "status = ? AND tx_hash <> ''", string(store.StatusPending))
	if err != nil {
		return nil, fmt.Errorf("list pending notes: %w", err)
	}

	return toNotes(records), nil
}

func (r *NoteRepository) SearchNotes(ctx context.Context, term string) ([]store.Note, error) {
	var records []NoteRecord

	pattern := "%" + term + "%"
	err := r.db.GetWhere(ctx, &records,
		"title ILIKE ? OR content ILIKE ? OR category ILIKE ?", pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}

	return toNotes(records), nil
}

func (r *NoteRepository) DeleteNote(ctx context.Context, id int64) error {
	err := r.db.DeleteBy(ctx, &NoteRecord{}, "id", id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("delete note: %w", err)
	}

	return nil
}

// UpdateSubmission records the outcome of a transaction submission for
// an already persisted note.
func (r *NoteRepository) UpdateSubmission(ctx context.Context, id int64, txHash string, status store.Status) error {
	fields := map[string]any{
		"tx_hash": txHash,
		"status":  string(status),
	}

	err := r.db.UpdateFields(ctx, &NoteRecord{}, "id", id, fields)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("update submission: %w", err)
	}

	return nil
}

func (r *NoteRepository) UpdateStatus(ctx context.Context, id int64, status store.Status) error {
	err := r.db.UpdateFields(ctx, &NoteRecord{}, "id", id, map[string]any{"status": string(status)})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("update status: %w", err)
	}

	return nil
}

func (r *NoteRepository) SaveHistory(ctx context.Context, entry store.HistoryEntry) error {
	record := RecordFromEntry(entry)

	err := r.db.SaveToTable(ctx, &record)
	if err != nil {
		return fmt.Errorf("save history: %w", err)
	}

	return nil
}

func (r *NoteRepository) ListHistory(ctx context.Context) ([]store.HistoryEntry, error) {
	var records []HistoryRecord

	err := r.db.GetWhere(ctx, &records, "1 = 1")
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	entries := make([]store.HistoryEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, record.ToEntry())
	}

	return entries, nil
}

func (r *NoteRepository) SaveTransaction(ctx context.Context, record TransactionRecord) error {
	err := r.db.SaveToTable(ctx, &record)
	if err != nil {
		return fmt.Errorf("save transaction: %w", err)
	}

	return nil
}

func (r *NoteRepository) ListPendingTransactions(ctx context.Context) ([]TransactionRecord, error) {
	var records []TransactionRecord

	err := r.db.GetWhere(ctx, &records, "status = ?", string(store.StatusPending))
	if err != nil {
		return nil, fmt.Errorf("list pending transactions: %w", err)
	}

	return records, nil
}

func (r *NoteRepository) ConfirmTransaction(ctx context.Context, txHash string, blockHeight int64, confirmedAt time.Time) error {
	fields := map[string]any{
		"status":       string(store.StatusConfirmed),
		"block_height": blockHeight,
		"confirmed_at": confirmedAt,
	}

	err := r.db.UpdateFields(ctx, &TransactionRecord{}, "tx_hash", txHash, fields)
	if err != nil {
		return fmt.Errorf("confirm transaction: %w", err)
	}

	return nil
}

func (r *NoteRepository) FailTransaction(ctx context.Context, txHash string, reason string) error {
	fields := map[string]any{
		"status":        string(store.StatusFailed),
		"error_message": reason,
	}

	err := r.db.UpdateFields(ctx, &TransactionRecord{}, "tx_hash", txHash, fields)
	if err != nil {
		return fmt.Errorf("fail transaction: %w", err)
	}

	return nil
}

// TouchTransaction bumps the retry counter after an inconclusive check.
func (r *NoteRepository) TouchTransaction(ctx context.Context, txHash string, retryCount int, checkedAt time.Time) error {
	fields := map[string]any{
		"retry_count":     retryCount,
		"last_checked_at": checkedAt,
	}

	err := r.db.UpdateFields(ctx, &TransactionRecord{}, "tx_hash", txHash, fields)
	if err != nil {
		return fmt.Errorf("touch transaction: %w", err)
	}

	return nil
}

func toNotes(records []NoteRecord) []store.Note {
	notes := make([]store.Note, 0, len(records))
	for _, record := range records {
		notes = append(notes, record.ToNote())
	}
	return notes
}
