package handler

import (
	"context"
	"net/http"

	"chainnote/internal/chain"
	"chainnote/internal/core"
	"chainnote/internal/store"
	pkgjwt "chainnote/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name NoteService . NoteService
type NoteService interface {
	CreateNote(ctx context.Context, walletAddress string, input core.NoteInput) (store.Note, error)
	UpdateNote(ctx context.Context, walletAddress string, id int64, input core.NoteInput) (store.Note, error)
	DeleteNote(ctx context.Context, walletAddress string, id int64) error
	TogglePin(ctx context.Context, walletAddress string, id int64) (store.Note, error)
	RetryTransaction(ctx context.Context, walletAddress string, id int64) (store.Note, error)
	RecoverPersist(ctx context.Context, walletAddress string, txHash string, input core.NoteInput) (store.Note, error)
	ListNotes() []store.Note
	GetNote(ctx context.Context, id int64) (store.Note, error)
	SearchNotes(ctx context.Context, keyword string) ([]store.Note, error)
	PendingNotes(ctx context.Context) ([]store.Note, error)
	History() []store.HistoryEntry
	Notifications() []store.Notification
	DismissNotification(id string)
}

//counterfeiter:generate -o fake -fake-name StatusSource . StatusSource
type StatusSource interface {
	TxStatus(ctx context.Context, txHash string) (chain.TxStatus, error)
}

//counterfeiter:generate -o fake -fake-name SessionIssuer . SessionIssuer
type SessionIssuer interface {
	Generate(data pkgjwt.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
}

//counterfeiter:generate -o fake -fake-name WalletBridge . WalletBridge
type WalletBridge interface {
	Handle(w http.ResponseWriter, r *http.Request) error
	Connected() (string, bool)
}
