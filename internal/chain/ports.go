package chain

import (
	"context"
	"time"

	"chainnote/internal/repository"
	"chainnote/internal/store"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name StatusSource . StatusSource
type StatusSource interface {
	TxStatus(ctx context.Context, txHash string) (TxStatus, error)
}

//counterfeiter:generate -o fake -fake-name Journal . Journal
type Journal interface {
	ListPendingTransactions(ctx context.Context) ([]repository.TransactionRecord, error)
	ConfirmTransaction(ctx context.Context, txHash string, blockHeight int64, confirmedAt time.Time) error
	FailTransaction(ctx context.Context, txHash string, reason string) error
	TouchTransaction(ctx context.Context, txHash string, retryCount int, checkedAt time.Time) error
	UpdateStatus(ctx context.Context, id int64, status store.Status) error
}
