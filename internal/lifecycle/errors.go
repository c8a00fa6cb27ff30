package lifecycle

import "errors"

// Error taxonomy for the build/sign/submit path. Handlers classify these
// with errors.Is to pick status codes and user-facing wording.
var (
	// ErrWalletNotConnected means no signing capability is available for
	// the session.
	ErrWalletNotConnected error = errors.New("wallet not connected")

	// ErrUserDeclined means the user cancelled signing. Recoverable by
	// re-invoking with fresh user action; never retried automatically.
	ErrUserDeclined error = errors.New("user declined to sign the transaction")

	// ErrInsufficientFunds is fatal for the attempt until the wallet is
	// funded.
	ErrInsufficientFunds error = errors.New("insufficient funds")

	// ErrNetwork covers provider/chain reachability failures. Retryable
	// with a fresh execution.
	ErrNetwork error = errors.New("chain provider unreachable")

	// ErrTimeout means a bounded wait on signing or submission elapsed.
	// The user may still complete the action out-of-band; the result is
	// ignored by this execution.
	ErrTimeout error = errors.New("transaction step timed out")

	// ErrBackend means note persistence failed after a successful ledger
	// submission. The ledger transaction is not undone; recovery is to
	// re-persist with the already-obtained hash, never to resubmit.
	ErrBackend error = errors.New("backend persistence failed after submission")
)
