package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"chainnote/internal/lifecycle"
	"chainnote/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	frameHello        = "hello"
	frameSignRequest  = "sign_request"
	frameSignResponse = "sign_response"
	frameDecline      = "decline"
	frameNotification = "notification"

	notifyTimeout = 5 * time.Second
)

type frame struct {
	Type          string          `json:"type"`
	RequestID     string          `json:"requestId,omitempty"`
	WalletAddress string          `json:"walletAddress,omitempty"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	Reason        string          `json:"reason,omitempty"`
}

type signOutcome struct {
	signed   lifecycle.SignedTx
	declined bool
	reason   string
}

// Bridge carries sign requests to the browser wallet over a websocket
// and confirmation notifications back to it. One wallet connection is
// active at a time; a new connection replaces the previous one.
type Bridge struct {
	logs *zap.SugaredLogger

	mu      sync.RWMutex
	conn    *websocket.Conn
	address string

	pendingMu sync.Mutex
	pending   map[string]chan signOutcome
}

func NewBridge(logs *zap.SugaredLogger) *Bridge {
	return &Bridge{
		logs:    logs,
		pending: make(map[string]chan signOutcome),
	}
}

// Connected reports the currently attached wallet address.
func (b *Bridge) Connected() (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.address, b.conn != nil
}

// Handle upgrades the request and serves the wallet connection until
// the client disconnects. The first frame must be a hello carrying the
// wallet address.
func (b *Bridge) Handle(w http.ResponseWriter, r *http.Request) error {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return fmt.Errorf("accept wallet connection: %w", err)
	}

	ctx := r.Context()

	var hello frame
	if err := wsjson.Read(ctx, conn, &hello); err != nil {
		conn.Close(websocket.StatusProtocolError, "expected hello frame")
		return fmt.Errorf("read hello frame: %w", err)
	}
	if hello.Type != frameHello || hello.WalletAddress == "" {
		conn.Close(websocket.StatusProtocolError, "expected hello frame")
		return fmt.Errorf("first frame %q is not a hello", hello.Type)
	}

	b.attach(conn, hello.WalletAddress)
	defer b.detach(conn)

	b.logs.Infow("wallet connected", "wallet_address", hello.WalletAddress)

	for {
		var f frame
		if err := wsjson.Read(ctx, conn, &f); err != nil {
			b.logs.Infow("wallet disconnected", "wallet_address", hello.WalletAddress)
			return nil
		}

		switch f.Type {
		case frameSignResponse:
			var signed string
			if err := json.Unmarshal(f.Payload, &signed); err != nil {
				b.logs.Errorw("malformed sign response", "request_id", f.RequestID, "error", err)
				continue
			}
			b.resolve(f.RequestID, signOutcome{signed: lifecycle.SignedTx(signed)})

		case frameDecline:
			b.resolve(f.RequestID, signOutcome{declined: true, reason: f.Reason})

		default:
			b.logs.Warnw("unexpected wallet frame", "type", f.Type)
		}
	}
}

// SignTransaction forwards the unsigned artifact to the connected
// wallet and waits for the signed artifact or a decline. The wait is
// bounded by ctx; the caller classifies cancellation.
func (b *Bridge) SignTransaction(ctx context.Context, unsigned lifecycle.UnsignedTx) (lifecycle.SignedTx, error) {
	b.mu.RLock()
	conn := b.conn
	b.mu.RUnlock()

	if conn == nil {
		return "", lifecycle.ErrWalletNotConnected
	}

	requestID := uuid.NewString()
	waiter := make(chan signOutcome, 1)

	b.pendingMu.Lock()
	b.pending[requestID] = waiter
	b.pendingMu.Unlock()
	defer func() {
		b.pendingMu.Lock()
		delete(b.pending, requestID)
		b.pendingMu.Unlock()
	}()

	payload, err := json.Marshal(string(unsigned))
	if err != nil {
		return "", fmt.Errorf("marshal sign request: %w", err)
	}

	request := frame{
		Type:      frameSignRequest,
		RequestID: requestID,
		Payload:   payload,
	}
	if err := wsjson.Write(ctx, conn, request); err != nil {
		return "", fmt.Errorf("send sign request: %w", lifecycle.ErrWalletNotConnected)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case outcome := <-waiter:
		if outcome.declined {
			b.logs.Infow("wallet declined signature", "request_id", requestID, "reason", outcome.reason)
			return "", lifecycle.ErrUserDeclined
		}
		return outcome.signed, nil
	}
}

// Notify pushes a confirmation notification to the wallet client.
// Best effort: a dropped frame costs nothing, the note list endpoint
// remains authoritative.
func (b *Bridge) Notify(n store.Notification) {
	b.mu.RLock()
	conn := b.conn
	b.mu.RUnlock()

	if conn == nil {
		return
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := wsjson.Write(ctx, conn, frame{Type: frameNotification, Payload: payload}); err != nil {
		b.logs.Warnw("notification push failed", "note_id", n.NoteID, "error", err)
	}
}

func (b *Bridge) attach(conn *websocket.Conn, address string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn != nil {
		b.conn.Close(websocket.StatusPolicyViolation, "replaced by a new wallet connection")
	}
	b.conn = conn
	b.address = address
}

func (b *Bridge) detach(conn *websocket.Conn) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// only clear if a newer connection has not replaced this one
	if b.conn == conn {
		b.conn = nil
		b.address = ""
	}
}

func (b *Bridge) resolve(requestID string, outcome signOutcome) {
	b.pendingMu.Lock()
	waiter, ok := b.pending[requestID]
	b.pendingMu.Unlock()

	if !ok {
		b.logs.Warnw("sign response for unknown request", "request_id", requestID)
		return
	}

	waiter <- outcome
}
