package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// NoteStore owns the in-memory note view, the activity history and the
// active notifications. Writer discipline: the notes service applies
// optimistic mutations, the reconciliation poller applies resolved
// statuses; both converge on repository-sourced truth, so last writer
// wins on a given note id.
type NoteStore struct {
	mu            sync.RWMutex
	notes         map[int64]Note
	history       []HistoryEntry
	notifications []Notification
}

func NewNoteStore() *NoteStore {
	return &NoteStore{
		notes: make(map[int64]Note),
	}
}

// ReplaceAll swaps the whole view for a freshly fetched authoritative
// list.
func (s *NoteStore) ReplaceAll(notes []Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = make(map[int64]Note, len(notes))
	for _, n := range notes {
		s.notes[n.ID] = n
	}
}

// ApplyOptimistic upserts a note after a successful submission and
// appends the matching history entry. Idempotent per note id.
func (s *NoteStore) ApplyOptimistic(note Note, action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes[note.ID] = note
	s.appendHistoryLocked(note, action)
}

// RemoveNote drops a deleted note from the view and records the
// deletion.
func (s *NoteStore) RemoveNote(note Note, action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.notes, note.ID)
	s.appendHistoryLocked(note, action)
}

// ApplyResolved updates only status and hash of a note already in the
// view; the poller uses this so a confirmation never clobbers newer
// content edits.
func (s *NoteStore) ApplyResolved(id int64, status Status, txHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[id]
	if !ok {
		return
	}
	note.Status = status
	if txHash != "" {
		note.TxHash = txHash
	}
	s.notes[id] = note
}

// Notes returns the view sorted pinned-first, newest-first.
func (s *NoteStore) Notes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Note, 0, len(s.notes))
	for _, n := range s.notes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// PendingIDs returns the ids of notes awaiting confirmation, the working
// set the poller diffs between ticks.
func (s *NoteStore) PendingIDs() map[int64]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pending := make(map[int64]struct{})
	for id, n := range s.notes {
		if n.Status == StatusPending && n.TxHash != "" {
			pending[id] = struct{}{}
		}
	}
	return pending
}

// History returns the activity log newest-first.
func (s *NoteStore) History() []HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// AddNotification records a dismissible notification, skipping
// duplicates by id.
func (s *NoteStore) AddNotification(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.notifications {
		if existing.ID == n.ID {
			return
		}
	}
	s.notifications = append(s.notifications, n)
}

// DismissNotification drops a notification by id.
func (s *NoteStore) DismissNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
}

// Notifications returns the active notifications oldest-first.
func (s *NoteStore) Notifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func (s *NoteStore) appendHistoryLocked(note Note, action Action) {
	s.history = append(s.history, HistoryEntry{
		ID:        uuid.NewString(),
		Action:    action,
		NoteTitle: note.Title,
		Category:  note.Category,
		Timestamp: time.Now().UTC(),
	})
}
