package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"chainnote/internal/lifecycle"
	"chainnote/internal/metadata"
	"chainnote/internal/metrics"

	"go.uber.org/zap"
)

const (
	lovelaceUnit = "lovelace"
	// rough envelope size used for fee estimation before signing
	baseTxSize = 512
	// outputs below this are rejected by the ledger
	minOutputLovelace = 1_000_000
)

type apiError struct {
	StatusCode int
	Message    string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("provider responded %d: %s", e.StatusCode, e.Message)
}

// Provider is a chain-data API client in the Blockfrost style:
// project-id header auth, JSON everywhere except transaction submission.
// It satisfies the build and submit capabilities of the transaction
// lifecycle and serves status lookups for reconciliation.
type Provider struct {
	logs      *zap.SugaredLogger
	baseURL   string
	projectID string
	client    *http.Client
	cache     *StatusCache
}

func NewProvider(logs *zap.SugaredLogger, baseURL, projectID string, cache *StatusCache) *Provider {
	return &Provider{
		logs:      logs,
		baseURL:   strings.TrimRight(baseURL, "/"),
		projectID: projectID,
		client:    &http.Client{},
		cache:     cache,
	}
}

// BuildSelfPayment assembles an unsigned transaction that pays the
// wallet's own address back to itself, carrying the note document as
// metadata under the configured label.
func (p *Provider) BuildSelfPayment(ctx context.Context, walletAddress string, doc metadata.Document) (lifecycle.UnsignedTx, error) {
	defer metrics.ObserveProvider("utxos", time.Now())

	var utxos []utxo
	err := p.get(ctx, "/addresses/"+walletAddress+"/utxos", &utxos)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			// an unused address holds nothing to spend
			return "", fmt.Errorf("address %q holds no funds: %w", walletAddress, lifecycle.ErrInsufficientFunds)
		}
		return "", p.classify(err)
	}

	var params protocolParams
	if err := p.get(ctx, "/epochs/latest/parameters", &params); err != nil {
		return "", p.classify(err)
	}

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal metadata document: %w", err)
	}

	fee := params.MinFeeB + params.MinFeeA*int64(baseTxSize+len(docJSON))

	inputs, total := selectInputs(utxos, fee+minOutputLovelace)
	if total < fee+minOutputLovelace {
		return "", fmt.Errorf("wallet balance %d below fee %d plus minimum output: %w",
			total, fee, lifecycle.ErrInsufficientFunds)
	}

	envelope := txEnvelope{
		Inputs: inputs,
		Outputs: []txOutput{
			{Address: walletAddress, Lovelace: total - fee},
		},
		Fee: fee,
		Metadata: map[string]any{
			strconv.Itoa(metadata.Label): doc,
		},
	}

	raw, err := json.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("marshal transaction envelope: %w", err)
	}

	return lifecycle.UnsignedTx(raw), nil
}

// Submit posts the signed artifact and returns the transaction hash
// assigned by the chain.
func (p *Provider) Submit(ctx context.Context, signed lifecycle.SignedTx) (string, error) {
	defer metrics.ObserveProvider("submit", time.Now())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/tx/submit", bytes.NewReader([]byte(signed)))
	if err != nil {
		return "", fmt.Errorf("build submit request: %w", err)
	}
	req.Header.Set("project_id", p.projectID)
	req.Header.Set("Content-Type", "application/cbor")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", p.classify(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read submit response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", p.classify(toAPIError(resp.StatusCode, body))
	}

	var txHash string
	if err := json.Unmarshal(body, &txHash); err != nil {
		return "", fmt.Errorf("decode submit response: %w", err)
	}

	p.logs.Infow("transaction submitted", "tx_hash", txHash)
	return txHash, nil
}

// TxStatus reports whether the transaction has landed on chain. A hash
// the provider has never seen counts as still pending; submission already
// succeeded, so the transaction is in flight until it appears in a block.
func (p *Provider) TxStatus(ctx context.Context, txHash string) (TxStatus, error) {
	if status, ok := p.cache.Get(ctx, txHash); ok {
		return status, nil
	}

	defer metrics.ObserveProvider("tx_status", time.Now())

	var info txInfo
	err := p.get(ctx, "/txs/"+txHash, &info)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return TxStatus{State: TxStatePending}, nil
		}
		return TxStatus{}, p.classify(err)
	}

	var latest blockInfo
	if err := p.get(ctx, "/blocks/latest", &latest); err != nil {
		return TxStatus{}, p.classify(err)
	}

	status := TxStatus{
		State:         TxStateConfirmed,
		BlockHeight:   info.BlockHeight,
		Confirmations: latest.Height - info.BlockHeight + 1,
	}

	p.cache.Set(ctx, txHash, status)

	return status, nil
}

func (p *Provider) get(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("project_id", p.projectID)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return toAPIError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// classify folds transport and API failures into the lifecycle error
// taxonomy so callers never see provider-specific error shapes.
func (p *Provider) classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("provider call timed out: %w", lifecycle.ErrTimeout)
	}

	var apiErr *apiError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusBadRequest && isFundsError(apiErr.Message):
			return fmt.Errorf("%s: %w", apiErr.Message, lifecycle.ErrInsufficientFunds)
		case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
			return fmt.Errorf("provider rejected project id: %w", lifecycle.ErrBackend)
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("provider rate limit hit: %w", lifecycle.ErrNetwork)
		default:
			return fmt.Errorf("%s: %w", apiErr.Message, lifecycle.ErrNetwork)
		}
	}

	return fmt.Errorf("provider unreachable: %w", lifecycle.ErrNetwork)
}

func isFundsError(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "insufficient") ||
		strings.Contains(lower, "valuenotconserved") ||
		strings.Contains(lower, "badinputs")
}

func toAPIError(code int, body []byte) error {
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return &apiError{StatusCode: code, Message: parsed.Message}
	}
	return &apiError{StatusCode: code, Message: strings.TrimSpace(string(body))}
}

// selectInputs accumulates UTxOs until the target is covered. Order is
// taken as the provider returns it.
func selectInputs(utxos []utxo, target int64) ([]txInput, int64) {
	var inputs []txInput
	var total int64

	for _, u := range utxos {
		var lovelace int64
		for _, a := range u.Amount {
			if a.Unit == lovelaceUnit {
				v, err := strconv.ParseInt(a.Quantity, 10, 64)
				if err != nil {
					continue
				}
				lovelace = v
			}
		}
		if lovelace == 0 {
			continue
		}

		inputs = append(inputs, txInput{
			TxHash:      u.TxHash,
			OutputIndex: u.OutputIndex,
			Lovelace:    lovelace,
		})
		total += lovelace

		if total >= target {
			break
		}
	}

	return inputs, total
}
