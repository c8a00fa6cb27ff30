package core

import (
	"context"

	"chainnote/internal/lifecycle"
	"chainnote/internal/metadata"
	"chainnote/internal/repository"
	"chainnote/internal/store"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Backend . Backend
type Backend interface {
	SaveNote(ctx context.Context, note store.Note) (store.Note, error)
	GetNote(ctx context.Context, id int64) (store.Note, error)
	ListNotes(ctx context.Context) ([]store.Note, error)
	ListPending(ctx context.Context) ([]store.Note, error)
	SearchNotes(ctx context.Context, term string) ([]store.Note, error)
	DeleteNote(ctx context.Context, id int64) error
	UpdateSubmission(ctx context.Context, id int64, txHash string, status store.Status) error
	SaveTransaction(ctx context.Context, record repository.TransactionRecord) error
	SaveHistory(ctx context.Context, entry store.HistoryEntry) error
	ListHistory(ctx context.Context) ([]store.HistoryEntry, error)
}

//counterfeiter:generate -o fake -fake-name Executor . Executor
type Executor interface {
	Execute(ctx context.Context, note metadata.NoteInput, op metadata.Operation, walletAddress string) (lifecycle.Result, error)
}

//counterfeiter:generate -o fake -fake-name Watcher . Watcher
type Watcher interface {
	EnsurePolling()
	ForceCheck(ctx context.Context)
}
