package poller

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"chainnote/internal/metrics"
	"chainnote/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Poller reconciles locally-known pending notes against the
// authoritative note source. It is Idle when nothing is pending and
// Active while an interval loop runs; a tick that finds zero pending
// notes stops the loop so a quiescent system performs no polling.
type Poller struct {
	logs      *zap.SugaredLogger
	source    NoteSource
	notes     *store.NoteStore
	notifiers []Notifier
	interval  time.Duration

	mu      sync.Mutex
	stopCh  chan struct{}
	polling bool

	// inFlight serializes the tick against itself; an overlapping tick
	// no-ops.
	inFlight atomic.Bool

	pendingMu       sync.Mutex
	previousPending map[int64]struct{}
}

func NewPoller(
	logger *zap.SugaredLogger,
	source NoteSource,
	notes *store.NoteStore,
	interval time.Duration,
	notifiers ...Notifier,
) *Poller {
	return &Poller{
		logs:            logger,
		source:          source,
		notes:           notes,
		notifiers:       notifiers,
		interval:        interval,
		previousPending: make(map[int64]struct{}),
	}
}

// Start transitions Idle to Active: one immediate check, then interval
// ticks. Calling Start while Active is a no-op.
func (p *Poller) Start() {
	p.mu.Lock()
	if p.polling {
		p.mu.Unlock()
		return
	}
	p.polling = true
	p.stopCh = make(chan struct{})
	stop := p.stopCh
	p.mu.Unlock()

	p.logs.Infow("reconciliation polling started", "interval", p.interval)
	go p.run(stop)
}

// Stop cancels the interval loop. An in-flight tick is allowed to
// finish. Safe to call from any state.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// IsPolling reports whether the interval loop is running.
func (p *Poller) IsPolling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.polling
}

// ForceCheck runs one tick immediately, regardless of state.
func (p *Poller) ForceCheck(ctx context.Context) {
	p.tick(ctx)
}

// EnsurePolling auto-starts the loop when the store holds at least one
// pending note with a hash. This makes the poller self-healing after a
// restart where pending notes already exist.
func (p *Poller) EnsurePolling() {
	pending := p.notes.PendingIDs()
	if len(pending) == 0 || p.IsPolling() {
		return
	}

	p.pendingMu.Lock()
	p.previousPending = pending
	p.pendingMu.Unlock()

	p.logs.Infow("pending notes detected, starting poller", "count", len(pending))
	p.Start()
}

func (p *Poller) run(stop chan struct{}) {
	p.tick(context.Background())

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.tick(context.Background())
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.logs.Debugw("skipping poll tick, previous tick still in progress")
		return
	}
	defer p.inFlight.Store(false)

	metrics.IncPollTick()

	fresh, err := p.source.ListNotes(ctx)
	if err != nil {
		// abandon the tick without touching the pending set; the next
		// interval retries
		p.logs.Errorw("fetching notes failed, abandoning tick", "error", err)
		metrics.IncPollError()
		return
	}

	byID := make(map[int64]store.Note, len(fresh))
	currentPending := make(map[int64]struct{})
	for _, n := range fresh {
		byID[n.ID] = n
		if n.Status == store.StatusPending && n.TxHash != "" {
			currentPending[n.ID] = struct{}{}
		}
	}

	p.pendingMu.Lock()
	previous := p.previousPending
	p.previousPending = currentPending
	p.pendingMu.Unlock()

	for id := range previous {
		if _, still := currentPending[id]; still {
			continue
		}
		resolved, ok := byID[id]
		if !ok {
			continue
		}

		p.notes.ApplyResolved(resolved.ID, resolved.Status, resolved.TxHash)

		if resolved.Status == store.StatusConfirmed {
			p.emitConfirmation(resolved)
		} else {
			p.logs.Warnw("transaction resolved unsuccessfully",
				"note_id", resolved.ID,
				"status", resolved.Status,
				"tx_hash", resolved.TxHash)
		}
	}

	metrics.SetPendingNotes(len(currentPending))

	if len(currentPending) == 0 {
		p.logs.Infow("no pending transactions remain, stopping poller")
		p.mu.Lock()
		p.stopLocked()
		p.mu.Unlock()
	}
}

func (p *Poller) emitConfirmation(note store.Note) {
	notification := store.Notification{
		ID:        uuid.NewString(),
		NoteID:    note.ID,
		Title:     note.Title,
		Message:   fmt.Sprintf("Note %q confirmed on the ledger", note.Title),
		TxHash:    note.TxHash,
		Timestamp: time.Now().UTC(),
	}

	p.logs.Infow("note confirmed",
		"note_id", note.ID,
		"title", note.Title,
		"tx_hash", note.TxHash)

	p.notes.AddNotification(notification)
	for _, n := range p.notifiers {
		n.Notify(notification)
	}
	metrics.IncNotification()
}

func (p *Poller) stopLocked() {
	if !p.polling {
		return
	}
	p.polling = false
	close(p.stopCh)
	p.stopCh = nil
	p.logs.Infow("reconciliation polling stopped")
}
