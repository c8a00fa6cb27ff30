package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"chainnote/internal/chunk"
	"chainnote/internal/core"
	"chainnote/internal/http/handler/middleware"
	"chainnote/internal/http/payload"
	"chainnote/internal/lifecycle"
	pkgjwt "chainnote/pkg/jwt"

	"go.uber.org/zap"
)

var (
	ListNotes           = "GET /api/notes"
	CreateNote          = "POST /api/notes"
	GetNote             = "GET /api/notes/{id}"
	UpdateNote          = "PUT /api/notes/{id}"
	DeleteNote          = "DELETE /api/notes/{id}"
	NoteStatus          = "GET /api/notes/{id}/status"
	PendingNotes        = "GET /api/notes/pending"
	SearchNotes         = "GET /api/notes/search"
	TogglePin           = "PATCH /api/notes/{id}/toggle-pin"
	RetryNote           = "POST /api/notes/{id}/retry"
	RecoverNote         = "POST /api/notes/recover"
	GetHistory          = "GET /api/history"
	GetNotifications    = "GET /api/notifications"
	DismissNotification = "DELETE /api/notifications/{id}"
	WalletSession       = "POST /api/wallet/session"
	WalletStatus        = "GET /api/wallet/status"
	WalletBridgeWS      = "GET /api/wallet/bridge"
)

type NotesHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	notes            NoteService
	status           StatusSource
	sessions         SessionIssuer
	bridge           WalletBridge
	sessionTTL       time.Duration
	network          string
	explorerBase     string
}

func NewNotesHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	noteService NoteService,
	statusSource StatusSource,
	sessionIssuer SessionIssuer,
	bridge WalletBridge,
	sessionTTL time.Duration,
	network string,
	explorerBase string,
) *NotesHandler {
	return &NotesHandler{
		logs:             logger,
		requestValidator: requestValidator,
		notes:            noteService,
		status:           statusSource,
		sessions:         sessionIssuer,
		bridge:           bridge,
		sessionTTL:       sessionTTL,
		network:          network,
		explorerBase:     explorerBase,
	}
}

func (h *NotesHandler) HandleListNotes(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	h.respond(w, map[string]any{"notes": h.notes.ListNotes()}, http.StatusOK, requestId)
}

func (h *NotesHandler) HandleGetNote(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, ok := h.noteID(w, r, GetNote, requestId)
	if !ok {
		return
	}

	note, err := h.notes.GetNote(r.Context(), id)
	if err != nil {
		h.respondError(w, "Could not retrieve note", err, GetNote, requestId)
		return
	}

	h.respond(w, map[string]any{"note": note}, http.StatusOK, requestId)
}

func (h *NotesHandler) HandleCreateNote(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	address, ok := h.walletAddress(w, r, CreateNote, requestId)
	if !ok {
		return
	}

	var noteReq payload.NoteRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &noteReq); err != nil {
		h.respond(w, Response{
			Message: "Could not create note",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateNote,
			"request_id", requestId)
		return
	}

	note, err := h.notes.CreateNote(r.Context(), address, noteReq.ToNoteInput())
	if err != nil {
		h.respondError(w, "Could not create note", err, CreateNote, requestId)
		return
	}

	h.logs.Infow("note submitted",
		"note_id", note.ID,
		"tx_hash", note.TxHash,
		"handler", CreateNote,
		"request_id", requestId)

	h.respond(w, map[string]any{"note": note}, http.StatusCreated, requestId)
}

func (h *NotesHandler) HandleUpdateNote(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	address, ok := h.walletAddress(w, r, UpdateNote, requestId)
	if !ok {
		return
	}

	id, ok := h.noteID(w, r, UpdateNote, requestId)
	if !ok {
		return
	}

	var noteReq payload.NoteRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &noteReq); err != nil {
		h.respond(w, Response{
			Message: "Could not update note",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateNote,
			"request_id", requestId)
		return
	}

	note, err := h.notes.UpdateNote(r.Context(), address, id, noteReq.ToNoteInput())
	if err != nil {
		h.respondError(w, "Could not update note", err, UpdateNote, requestId)
		return
	}

	h.respond(w, map[string]any{"note": note}, http.StatusOK, requestId)
}

func (h *NotesHandler) HandleDeleteNote(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	address, ok := h.walletAddress(w, r, DeleteNote, requestId)
	if !ok {
		return
	}

	id, ok := h.noteID(w, r, DeleteNote, requestId)
	if !ok {
		return
	}

	if err := h.notes.DeleteNote(r.Context(), address, id); err != nil {
		h.respondError(w, "Could not delete note", err, DeleteNote, requestId)
		return
	}

	h.respond(w, Response{Message: "Note deleted"}, http.StatusOK, requestId)
}

func (h *NotesHandler) HandleTogglePin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	address, ok := h.walletAddress(w, r, TogglePin, requestId)
	if !ok {
		return
	}

	id, ok := h.noteID(w, r, TogglePin, requestId)
	if !ok {
		return
	}

	note, err := h.notes.TogglePin(r.Context(), address, id)
	if err != nil {
		h.respondError(w, "Could not toggle pin", err, TogglePin, requestId)
		return
	}

	h.respond(w, map[string]any{"note": note}, http.StatusOK, requestId)
}

func (h *NotesHandler) HandleRetryNote(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	address, ok := h.walletAddress(w, r, RetryNote, requestId)
	if !ok {
		return
	}

	id, ok := h.noteID(w, r, RetryNote, requestId)
	if !ok {
		return
	}

	note, err := h.notes.RetryTransaction(r.Context(), address, id)
	if err != nil {
		h.respondError(w, "Could not retry transaction", err, RetryNote, requestId)
		return
	}

	h.logs.Infow("transaction resubmitted",
		"note_id", note.ID,
		"tx_hash", note.TxHash,
		"handler", RetryNote,
		"request_id", requestId)

	h.respond(w, map[string]any{"note": note}, http.StatusOK, requestId)
}

func (h *NotesHandler) HandleRecoverNote(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	address, ok := h.walletAddress(w, r, RecoverNote, requestId)
	if !ok {
		return
	}

	var recoverReq payload.RecoverRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &recoverReq); err != nil {
		h.respond(w, Response{
			Message: "Could not recover note",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", RecoverNote,
			"request_id", requestId)
		return
	}

	note, err := h.notes.RecoverPersist(r.Context(), address, recoverReq.TxHash, recoverReq.ToNoteInput())
	if err != nil {
		h.respondError(w, "Could not recover note", err, RecoverNote, requestId)
		return
	}

	h.respond(w, map[string]any{"note": note}, http.StatusCreated, requestId)
}

func (h *NotesHandler) HandleNoteStatus(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, ok := h.noteID(w, r, NoteStatus, requestId)
	if !ok {
		return
	}

	note, err := h.notes.GetNote(r.Context(), id)
	if err != nil {
		h.respondError(w, "Could not retrieve note status", err, NoteStatus, requestId)
		return
	}

	resp := map[string]any{
		"noteId": note.ID,
		"txHash": note.TxHash,
		"status": note.Status,
	}

	if note.TxHash != "" {
		txStatus, err := h.status.TxStatus(r.Context(), note.TxHash)
		if err != nil {
			h.respondError(w, "Could not retrieve note status", err, NoteStatus, requestId)
			return
		}
		resp["chain"] = txStatus
		resp["explorerUrl"] = fmt.Sprintf("%s/transaction/%s", h.explorerBase, note.TxHash)
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *NotesHandler) HandlePendingNotes(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	notes, err := h.notes.PendingNotes(r.Context())
	if err != nil {
		h.respondError(w, "Could not retrieve pending notes", err, PendingNotes, requestId)
		return
	}

	h.respond(w, map[string]any{"notes": notes}, http.StatusOK, requestId)
}

func (h *NotesHandler) HandleSearchNotes(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	keyword := r.URL.Query().Get("keyword")
	if keyword == "" {
		h.respond(w, Response{
			Message: "Could not search notes",
			Error:   "keyword query parameter is required",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("missing keyword parameter", "handler", SearchNotes, "request_id", requestId)
		return
	}

	notes, err := h.notes.SearchNotes(r.Context(), keyword)
	if err != nil {
		h.respondError(w, "Could not search notes", err, SearchNotes, requestId)
		return
	}

	h.respond(w, map[string]any{"notes": notes}, http.StatusOK, requestId)
}

func (h *NotesHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	h.respond(w, map[string]any{"history": h.notes.History()}, http.StatusOK, requestId)
}

func (h *NotesHandler) HandleGetNotifications(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	h.respond(w, map[string]any{"notifications": h.notes.Notifications()}, http.StatusOK, requestId)
}

func (h *NotesHandler) HandleDismissNotification(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id := r.PathValue("id")
	if id == "" {
		h.respond(w, Response{
			Message: "Could not dismiss notification",
			Error:   "notification id is required",
		}, http.StatusBadRequest,
			requestId)
		return
	}

	h.notes.DismissNotification(id)
	h.respond(w, Response{Message: "Notification dismissed"}, http.StatusOK, requestId)
}

func (h *NotesHandler) HandleWalletSession(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var sessionReq payload.WalletSessionRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &sessionReq); err != nil {
		h.respond(w, Response{
			Message: "Could not open wallet session",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", WalletSession,
			"request_id", requestId)
		return
	}

	token := h.sessions.Generate(pkgjwt.TokenInfo{
		Subject:    sessionReq.WalletAddress,
		Network:    h.network,
		Expiration: h.sessionTTL,
	})

	signed, err := h.sessions.Sign(token)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not open wallet session",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to sign session token",
			"error", err,
			"handler", WalletSession,
			"request_id", requestId)
		return
	}

	h.logs.Infow("wallet session opened",
		"wallet_address", sessionReq.WalletAddress,
		"handler", WalletSession,
		"request_id", requestId)

	h.respond(w, map[string]string{"token": signed}, http.StatusOK, requestId)
}

func (h *NotesHandler) HandleWalletStatus(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	address, connected := h.bridge.Connected()
	h.respond(w, map[string]any{
		"connected":     connected,
		"walletAddress": address,
	}, http.StatusOK, requestId)
}

func (h *NotesHandler) HandleWalletBridge(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if err := h.bridge.Handle(w, r); err != nil {
		// the connection may already be hijacked; just log
		h.logs.Errorw("wallet bridge session ended with error",
			"error", err,
			"handler", WalletBridgeWS,
			"request_id", requestId)
	}
}

// respondError maps the lifecycle error taxonomy onto HTTP status
// codes. Declines are reported as a cancellation without blame; a
// backend failure after submission carries the recovery hint.
func (h *NotesHandler) respondError(w http.ResponseWriter, message string, err error, route string, requestId string) {
	resp := Response{
		Message: message,
		Error:   err.Error(),
	}
	httpCode := http.StatusInternalServerError

	var sizeErr *chunk.ChunkSizeError
	switch {
	case errors.Is(err, core.ErrNoteNotFound):
		httpCode = http.StatusNotFound
		resp.Message = "Note not found"
	case errors.As(err, &sizeErr), errors.Is(err, chunk.ErrBudgetTooSmall):
		httpCode = http.StatusUnprocessableEntity
		resp.Message = "Note is too large for on-chain metadata"
	case errors.Is(err, lifecycle.ErrUserDeclined):
		httpCode = http.StatusConflict
		resp.Message = "Transaction was cancelled"
		resp.Error = "signing was cancelled before submission"
	case errors.Is(err, lifecycle.ErrInsufficientFunds):
		httpCode = http.StatusPaymentRequired
		resp.Message = "Wallet has insufficient funds"
	case errors.Is(err, lifecycle.ErrWalletNotConnected):
		httpCode = http.StatusUnauthorized
		resp.Message = "Wallet is not connected"
	case errors.Is(err, lifecycle.ErrTimeout):
		httpCode = http.StatusGatewayTimeout
		resp.Message = "Transaction timed out"
	case errors.Is(err, lifecycle.ErrNetwork):
		httpCode = http.StatusBadGateway
		resp.Message = "Chain provider is unreachable"
	case errors.Is(err, lifecycle.ErrBackend):
		httpCode = http.StatusInternalServerError
		resp.Message = "Note was submitted but could not be saved; recover it with the transaction hash"
	default:
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *NotesHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func (h *NotesHandler) noteID(w http.ResponseWriter, r *http.Request, route string, requestId string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "note id must be a number",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid note id parameter",
			"id", r.PathValue("id"),
			"handler", route,
			"request_id", requestId)
		return 0, false
	}
	return id, true
}

func (h *NotesHandler) walletAddress(w http.ResponseWriter, r *http.Request, route string, requestId string) (string, bool) {
	address, ok := r.Context().Value(middleware.WalletKey).(string)
	if !ok || address == "" {
		h.respond(w, Response{
			Message: "Wallet session required",
			Error:   "no wallet address bound to this request",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing wallet address in request context",
			"handler", route,
			"request_id", requestId)
		return "", false
	}
	return address, true
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}
