package lifecycle

import (
	"context"

	"chainnote/internal/metadata"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Builder . Builder
type Builder interface {
	// BuildSelfPayment constructs a transaction paying a nominal amount
	// to the given address with the document attached as metadata.
	BuildSelfPayment(ctx context.Context, walletAddress string, doc metadata.Document) (UnsignedTx, error)
}

//counterfeiter:generate -o fake -fake-name Signer . Signer
type Signer interface {
	SignTransaction(ctx context.Context, unsigned UnsignedTx) (SignedTx, error)
}

//counterfeiter:generate -o fake -fake-name Submitter . Submitter
type Submitter interface {
	Submit(ctx context.Context, signed SignedTx) (string, error)
}
