package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chainnote/internal/chunk"
	"chainnote/internal/lifecycle"
	"chainnote/internal/metadata"
	"chainnote/internal/metrics"
	"chainnote/internal/repository"
	"chainnote/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNoteNotFound error = errors.New("note not found")

var timeNow = time.Now

// NotesService orchestrates note mutations: every create, update and
// delete runs the transaction lifecycle first and persists only once a
// transaction hash exists. Reads come from the owned in-memory view.
type NotesService struct {
	logs        *zap.SugaredLogger
	repo        Backend
	executor    Executor
	notes       *store.NoteStore
	watcher     Watcher
	pinOnLedger bool
}

func NewNotesService(
	logger *zap.SugaredLogger,
	repo Backend,
	executor Executor,
	notes *store.NoteStore,
	watcher Watcher,
	pinOnLedger bool,
) *NotesService {
	return &NotesService{
		logs:        logger,
		repo:        repo,
		executor:    executor,
		notes:       notes,
		watcher:     watcher,
		pinOnLedger: pinOnLedger,
	}
}

// Restore loads the persisted view at boot and resumes polling when
// pending notes survived a restart.
func (s *NotesService) Restore(ctx context.Context) error {
	persisted, err := s.repo.ListNotes(ctx)
	if err != nil {
		return fmt.Errorf("restore notes: %w", err)
	}
	s.notes.ReplaceAll(persisted)

	s.logs.Infow("note view restored", "count", len(persisted))

	s.watcher.EnsurePolling()
	return nil
}

// CreateNote anchors a new note on the ledger and persists it as
// PENDING under the returned transaction hash.
func (s *NotesService) CreateNote(ctx context.Context, walletAddress string, input NoteInput) (store.Note, error) {
	pinned := input.Pinned
	result, err := s.executor.Execute(ctx, metadata.NoteInput{
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
		Pinned:   &pinned,
	}, metadata.OperationCreate, walletAddress)
	metrics.ObserveLifecycle("create", outcomeLabel(err))
	if err != nil {
		return store.Note{}, fmt.Errorf("execute create: %w", err)
	}

	now := timeNow().UTC()
	note := store.Note{
		Title:         input.Title,
		Content:       input.Content,
		Category:      categoryOrDefault(input.Category),
		Pinned:        input.Pinned,
		TxHash:        result.TxHash,
		Status:        store.StatusPending,
		WalletAddress: walletAddress,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	saved, err := s.repo.SaveNote(ctx, note)
	if err != nil {
		return store.Note{}, fmt.Errorf("persist note for tx %s: %w: %w", result.TxHash, err, lifecycle.ErrBackend)
	}

	s.journal(ctx, result.TxHash, saved.ID, metadata.OperationCreate, now)
	s.record(ctx, saved, store.ActionCreated)
	s.watcher.EnsurePolling()

	return saved, nil
}

// UpdateNote re-anchors an existing note with new content.
func (s *NotesService) UpdateNote(ctx context.Context, walletAddress string, id int64, input NoteInput) (store.Note, error) {
	existing, err := s.getNote(ctx, id)
	if err != nil {
		return store.Note{}, err
	}

	pinned := input.Pinned
	result, err := s.executor.Execute(ctx, metadata.NoteInput{
		ID:       id,
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
		Pinned:   &pinned,
	}, metadata.OperationUpdate, walletAddress)
	metrics.ObserveLifecycle("update", outcomeLabel(err))
	if err != nil {
		return store.Note{}, fmt.Errorf("execute update: %w", err)
	}

	now := timeNow().UTC()
	updated := existing
	updated.Title = input.Title
	updated.Content = input.Content
	updated.Category = categoryOrDefault(input.Category)
	updated.Pinned = input.Pinned
	updated.TxHash = result.TxHash
	updated.Status = store.StatusPending
	updated.WalletAddress = walletAddress
	updated.UpdatedAt = now

	saved, err := s.repo.SaveNote(ctx, updated)
	if err != nil {
		return store.Note{}, fmt.Errorf("persist note for tx %s: %w: %w", result.TxHash, err, lifecycle.ErrBackend)
	}

	s.journal(ctx, result.TxHash, saved.ID, metadata.OperationUpdate, now)
	s.record(ctx, saved, store.ActionUpdated)
	s.watcher.EnsurePolling()

	return saved, nil
}

// DeleteNote anchors a deletion marker on the ledger, then removes the
// note from the backend and the view. The marker keeps title and
// category for the audit trail.
func (s *NotesService) DeleteNote(ctx context.Context, walletAddress string, id int64) error {
	existing, err := s.getNote(ctx, id)
	if err != nil {
		return err
	}

	result, err := s.executor.Execute(ctx, metadata.NoteInput{
		ID:       id,
		Title:    existing.Title,
		Category: existing.Category,
	}, metadata.OperationDelete, walletAddress)
	metrics.ObserveLifecycle("delete", outcomeLabel(err))
	if err != nil {
		return fmt.Errorf("execute delete: %w", err)
	}

	if err := s.repo.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("delete note for tx %s: %w: %w", result.TxHash, err, lifecycle.ErrBackend)
	}

	s.journal(ctx, result.TxHash, id, metadata.OperationDelete, timeNow().UTC())
	s.notes.RemoveNote(existing, store.ActionDeleted)
	s.persistHistory(ctx, existing, store.ActionDeleted)

	return nil
}

// TogglePin flips the pinned flag. Deployment decides whether the flip
// is itself anchored on the ledger or stays a backend-only mutation.
func (s *NotesService) TogglePin(ctx context.Context, walletAddress string, id int64) (store.Note, error) {
	existing, err := s.getNote(ctx, id)
	if err != nil {
		return store.Note{}, err
	}

	toggled := existing
	toggled.Pinned = !existing.Pinned
	toggled.UpdatedAt = timeNow().UTC()

	action := store.ActionPinned
	if !toggled.Pinned {
		action = store.ActionUnpinned
	}

	if s.pinOnLedger {
		pinned := toggled.Pinned
		result, err := s.executor.Execute(ctx, metadata.NoteInput{
			ID:       id,
			Title:    existing.Title,
			Content:  existing.Content,
			Category: existing.Category,
			Pinned:   &pinned,
		}, metadata.OperationUpdate, walletAddress)
		metrics.ObserveLifecycle("toggle_pin", outcomeLabel(err))
		if err != nil {
			return store.Note{}, fmt.Errorf("execute pin toggle: %w", err)
		}

		toggled.TxHash = result.TxHash
		toggled.Status = store.StatusPending
		s.journal(ctx, result.TxHash, id, metadata.OperationUpdate, toggled.UpdatedAt)
	}

	saved, err := s.repo.SaveNote(ctx, toggled)
	if err != nil {
		return store.Note{}, fmt.Errorf("persist pin toggle: %w: %w", err, lifecycle.ErrBackend)
	}

	s.record(ctx, saved, action)
	if s.pinOnLedger {
		s.watcher.EnsurePolling()
	}

	return saved, nil
}

// RetryTransaction runs a brand-new lifecycle execution for a note
// whose previous submission failed. The failed journal row is never
// mutated; the note simply gets a fresh hash and goes back to PENDING.
func (s *NotesService) RetryTransaction(ctx context.Context, walletAddress string, id int64) (store.Note, error) {
	existing, err := s.getNote(ctx, id)
	if err != nil {
		return store.Note{}, err
	}

	pinned := existing.Pinned
	result, err := s.executor.Execute(ctx, metadata.NoteInput{
		ID:       id,
		Title:    existing.Title,
		Content:  existing.Content,
		Category: existing.Category,
		Pinned:   &pinned,
	}, metadata.OperationUpdate, walletAddress)
	metrics.ObserveLifecycle("retry", outcomeLabel(err))
	if err != nil {
		return store.Note{}, fmt.Errorf("execute retry: %w", err)
	}

	now := timeNow().UTC()
	if err := s.repo.UpdateSubmission(ctx, id, result.TxHash, store.StatusPending); err != nil {
		return store.Note{}, fmt.Errorf("persist retry for tx %s: %w: %w", result.TxHash, err, lifecycle.ErrBackend)
	}

	s.journal(ctx, result.TxHash, id, metadata.OperationUpdate, now)
	s.notes.ApplyResolved(id, store.StatusPending, result.TxHash)
	s.watcher.EnsurePolling()

	existing.TxHash = result.TxHash
	existing.Status = store.StatusPending
	return existing, nil
}

// RecoverPersist re-persists a note under an already-obtained hash
// after a persist failure, without touching the ledger again.
func (s *NotesService) RecoverPersist(ctx context.Context, walletAddress string, txHash string, input NoteInput) (store.Note, error) {
	now := timeNow().UTC()
	note := store.Note{
		Title:         input.Title,
		Content:       input.Content,
		Category:      categoryOrDefault(input.Category),
		Pinned:        input.Pinned,
		TxHash:        txHash,
		Status:        store.StatusPending,
		WalletAddress: walletAddress,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	saved, err := s.repo.SaveNote(ctx, note)
	if err != nil {
		return store.Note{}, fmt.Errorf("recover persist for tx %s: %w: %w", txHash, err, lifecycle.ErrBackend)
	}

	s.journal(ctx, txHash, saved.ID, metadata.OperationCreate, now)
	s.record(ctx, saved, store.ActionCreated)
	s.watcher.EnsurePolling()

	return saved, nil
}

// ListNotes returns the owned view, pinned-first then newest-first.
func (s *NotesService) ListNotes() []store.Note {
	return s.notes.Notes()
}

func (s *NotesService) GetNote(ctx context.Context, id int64) (store.Note, error) {
	return s.getNote(ctx, id)
}

func (s *NotesService) SearchNotes(ctx context.Context, keyword string) ([]store.Note, error) {
	found, err := s.repo.SearchNotes(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	return found, nil
}

func (s *NotesService) PendingNotes(ctx context.Context) ([]store.Note, error) {
	pending, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending notes: %w", err)
	}
	return pending, nil
}

func (s *NotesService) History() []store.HistoryEntry {
	return s.notes.History()
}

func (s *NotesService) Notifications() []store.Notification {
	return s.notes.Notifications()
}

func (s *NotesService) DismissNotification(id string) {
	s.notes.DismissNotification(id)
}

func (s *NotesService) getNote(ctx context.Context, id int64) (store.Note, error) {
	note, err := s.repo.GetNote(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return store.Note{}, ErrNoteNotFound
		}
		return store.Note{}, fmt.Errorf("get note: %w", err)
	}
	return note, nil
}

// record applies the optimistic store mutation and persists the
// matching history row. History persistence is best effort; the
// in-memory log stays authoritative for the session.
func (s *NotesService) record(ctx context.Context, note store.Note, action store.Action) {
	s.notes.ApplyOptimistic(note, action)
	s.persistHistory(ctx, note, action)
}

func (s *NotesService) persistHistory(ctx context.Context, note store.Note, action store.Action) {
	entry := store.HistoryEntry{
		ID:        uuid.NewString(),
		Action:    action,
		NoteTitle: note.Title,
		Category:  note.Category,
		Timestamp: timeNow().UTC(),
	}
	if err := s.repo.SaveHistory(ctx, entry); err != nil {
		s.logs.Errorw("persist history entry", "action", action, "error", err)
	}
}

func (s *NotesService) journal(ctx context.Context, txHash string, noteID int64, op metadata.Operation, at time.Time) {
	record := repository.TransactionRecord{
		TxHash:    txHash,
		NoteID:    noteID,
		Operation: string(op),
		Status:    string(store.StatusPending),
		CreatedAt: at,
	}
	if err := s.repo.SaveTransaction(ctx, record); err != nil {
		s.logs.Errorw("journal transaction", "tx_hash", txHash, "error", err)
	}
}

func categoryOrDefault(category string) string {
	if category == "" {
		return "Personal"
	}
	return category
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "submitted"
	case errors.Is(err, lifecycle.ErrUserDeclined):
		return "user_declined"
	case errors.Is(err, lifecycle.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, lifecycle.ErrWalletNotConnected):
		return "wallet_not_connected"
	case errors.Is(err, lifecycle.ErrTimeout):
		return "timeout"
	case errors.Is(err, lifecycle.ErrBackend):
		return "backend"
	case errors.Is(err, lifecycle.ErrNetwork):
		return "network"
	default:
		var sizeErr *chunk.ChunkSizeError
		if errors.As(err, &sizeErr) || errors.Is(err, chunk.ErrBudgetTooSmall) {
			return "chunk_size"
		}
		return "error"
	}
}
