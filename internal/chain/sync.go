package chain

import (
	"context"
	"sync"
	"time"

	"chainnote/internal/store"

	"go.uber.org/zap"
)

// SyncWorker folds provider-confirmed transaction statuses into the
// repository on a fixed schedule, so the in-memory reconciliation view
// reads an authoritative backend. Pending rows that outlive the timeout
// or exhaust their retries are marked failed along with their note.
type SyncWorker struct {
	logs       *zap.SugaredLogger
	status     StatusSource
	journal    Journal
	interval   time.Duration
	timeout    time.Duration
	maxRetries int

	mu      sync.Mutex
	stopCh  chan struct{}
	running bool
}

func NewSyncWorker(logs *zap.SugaredLogger, status StatusSource, journal Journal, interval, timeout time.Duration, maxRetries int) *SyncWorker {
	return &SyncWorker{
		logs:       logs,
		status:     status,
		journal:    journal,
		interval:   interval,
		timeout:    timeout,
		maxRetries: maxRetries,
	}
}

func (w *SyncWorker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}
	w.running = true
	w.stopCh = make(chan struct{})

	go w.run(ctx, w.stopCh)
}

func (w *SyncWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	w.running = false
	close(w.stopCh)
}

func (w *SyncWorker) run(ctx context.Context, stop <-chan struct{}) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Sync(ctx)
		}
	}
}

// Sync runs one reconciliation pass over the pending journal rows.
func (w *SyncWorker) Sync(ctx context.Context) {
	pending, err := w.journal.ListPendingTransactions(ctx)
	if err != nil {
		w.logs.Errorw("list pending transactions", "error", err)
		return
	}

	if len(pending) == 0 {
		return
	}

	var confirmed, failed, expired int
	now := time.Now().UTC()

	for _, record := range pending {
		switch {
		case now.After(record.CreatedAt.Add(w.timeout)):
			w.fail(ctx, record.TxHash, record.NoteID, "transaction expired, timeout exceeded")
			expired++

		case record.RetryCount >= w.maxRetries:
			w.fail(ctx, record.TxHash, record.NoteID, "max retry count exceeded")
			failed++

		default:
			status, err := w.status.TxStatus(ctx, record.TxHash)
			if err != nil {
				w.logs.Errorw("transaction status check", "tx_hash", record.TxHash, "error", err)
				w.touch(ctx, record.TxHash, record.RetryCount+1, now)
				continue
			}

			if status.State != TxStateConfirmed {
				w.touch(ctx, record.TxHash, record.RetryCount+1, now)
				continue
			}

			if err := w.journal.ConfirmTransaction(ctx, record.TxHash, status.BlockHeight, now); err != nil {
				w.logs.Errorw("confirm transaction", "tx_hash", record.TxHash, "error", err)
				continue
			}
			if err := w.journal.UpdateStatus(ctx, record.NoteID, store.StatusConfirmed); err != nil {
				w.logs.Errorw("update note status", "note_id", record.NoteID, "error", err)
				continue
			}

			w.logs.Infow("transaction confirmed",
				"tx_hash", record.TxHash, "block_height", status.BlockHeight)
			confirmed++
		}
	}

	w.logs.Infow("transaction sync completed",
		"confirmed", confirmed, "failed", failed, "expired", expired)
}

func (w *SyncWorker) fail(ctx context.Context, txHash string, noteID int64, reason string) {
	if err := w.journal.FailTransaction(ctx, txHash, reason); err != nil {
		w.logs.Errorw("fail transaction", "tx_hash", txHash, "error", err)
		return
	}
	if err := w.journal.UpdateStatus(ctx, noteID, store.StatusFailed); err != nil {
		w.logs.Errorw("update note status", "note_id", noteID, "error", err)
	}

	w.logs.Warnw("transaction marked failed", "tx_hash", txHash, "reason", reason)
}

func (w *SyncWorker) touch(ctx context.Context, txHash string, retryCount int, checkedAt time.Time) {
	if err := w.journal.TouchTransaction(ctx, txHash, retryCount, checkedAt); err != nil {
		w.logs.Errorw("touch transaction", "tx_hash", txHash, "error", err)
	}
}
