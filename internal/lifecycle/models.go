package lifecycle

import "chainnote/internal/metadata"

// UnsignedTx is the signable artifact produced by the ledger builder,
// hex-encoded CBOR as browser wallets expect it. Opaque to this package.
type UnsignedTx string

// SignedTx is the witness-carrying artifact returned by the signer.
type SignedTx string

// State names one step of the strictly forward execution.
type State string

const (
	StateBuilding             State = "BUILDING"
	StateConstructingArtifact State = "CONSTRUCTING_ARTIFACT"
	StateAwaitingSignature    State = "AWAITING_SIGNATURE"
	StateSubmitted            State = "SUBMITTED"
)

// Result is what a successful execution yields. Confirmation is never
// observed here; it belongs to the reconciliation poller.
type Result struct {
	TxHash   string
	Document metadata.Document
}
