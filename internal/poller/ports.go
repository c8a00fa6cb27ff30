package poller

import (
	"context"

	"chainnote/internal/store"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name NoteSource . NoteSource
type NoteSource interface {
	// ListNotes returns the authoritative note list. Every tick fetches
	// fresh state; the poller never diffs against a cached snapshot.
	ListNotes(ctx context.Context) ([]store.Note, error)
}

//counterfeiter:generate -o fake -fake-name Notifier . Notifier
type Notifier interface {
	Notify(notification store.Notification)
}
