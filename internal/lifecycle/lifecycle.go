package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chainnote/internal/metadata"

	"go.uber.org/zap"
)

// Lifecycle drives one note mutation through build, sign and submit
// against an injected wallet capability. Each Execute is a fresh,
// independent instance; a retry is a new call, never a mutation of a
// previous execution's record.
type Lifecycle struct {
	logs          *zap.SugaredLogger
	assembler     *metadata.Assembler
	builder       Builder
	signer        Signer
	submitter     Submitter
	signTimeout   time.Duration
	submitTimeout time.Duration
}

func NewLifecycle(
	logger *zap.SugaredLogger,
	assembler *metadata.Assembler,
	builder Builder,
	signer Signer,
	submitter Submitter,
	signTimeout time.Duration,
	submitTimeout time.Duration,
) *Lifecycle {
	return &Lifecycle{
		logs:          logger,
		assembler:     assembler,
		builder:       builder,
		signer:        signer,
		submitter:     submitter,
		signTimeout:   signTimeout,
		submitTimeout: submitTimeout,
	}
}

// Execute runs the steps strictly in order and returns as soon as a
// transaction hash is obtained. Confirmation of the submitted hash is
// observed by the poller, not here. Nothing is persisted by this method;
// all-or-nothing persistence is the caller's job and must happen only
// after a hash exists.
func (l *Lifecycle) Execute(ctx context.Context, note metadata.NoteInput, op metadata.Operation, walletAddress string) (Result, error) {
	if walletAddress == "" {
		return Result{}, ErrWalletNotConnected
	}

	l.logs.Infow("transaction lifecycle started",
		"state", StateBuilding,
		"operation", op,
		"note_id", note.ID)

	doc, err := l.assembler.Assemble(note, op)
	if err != nil {
		// structural failure, terminal, no signer interaction
		return Result{}, fmt.Errorf("assemble metadata: %w", err)
	}

	l.logs.Infow("metadata document assembled",
		"state", StateConstructingArtifact,
		"operation", op)

	unsigned, err := l.builder.BuildSelfPayment(ctx, walletAddress, doc)
	if err != nil {
		return Result{}, fmt.Errorf("build transaction: %w", classify(err))
	}

	l.logs.Infow("awaiting wallet signature",
		"state", StateAwaitingSignature,
		"operation", op,
		"sign_timeout", l.signTimeout)

	signCtx, cancelSign := context.WithTimeout(ctx, l.signTimeout)
	defer cancelSign()

	signed, err := l.signer.SignTransaction(signCtx, unsigned)
	if err != nil {
		if errors.Is(err, ErrUserDeclined) {
			l.logs.Infow("signature declined by user", "operation", op, "note_id", note.ID)
			return Result{}, fmt.Errorf("sign transaction: %w", ErrUserDeclined)
		}
		return Result{}, fmt.Errorf("sign transaction: %w", classify(err))
	}

	submitCtx, cancelSubmit := context.WithTimeout(ctx, l.submitTimeout)
	defer cancelSubmit()

	txHash, err := l.submitter.Submit(submitCtx, signed)
	if err != nil {
		return Result{}, fmt.Errorf("submit transaction: %w", classify(err))
	}

	l.logs.Infow("transaction submitted",
		"state", StateSubmitted,
		"operation", op,
		"note_id", note.ID,
		"tx_hash", txHash)

	return Result{TxHash: txHash, Document: doc}, nil
}

// classify folds transport-level failures into the package taxonomy.
// Errors already carrying a taxonomy sentinel pass through untouched.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUserDeclined),
		errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrWalletNotConnected),
		errors.Is(err, ErrTimeout),
		errors.Is(err, ErrNetwork),
		errors.Is(err, ErrBackend):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	default:
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
}
