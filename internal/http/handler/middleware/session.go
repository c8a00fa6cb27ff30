package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	pkgjwt "chainnote/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SessionVerifier . SessionVerifier
type SessionVerifier interface {
	Validate(token string) (jwt.MapClaims, error)
}

// SessionMiddleware guards mutating note routes: requests must carry a
// wallet session token whose subject becomes the request's wallet
// address.
type SessionMiddleware struct {
	logs     *zap.SugaredLogger
	verifier SessionVerifier
}

func NewSessionMiddleware(logger *zap.SugaredLogger, verifier SessionVerifier) *SessionMiddleware {
	return &SessionMiddleware{
		logs:     logger,
		verifier: verifier,
	}
}

func (m *SessionMiddleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ""
		if id, ok := r.Context().Value(RequestIDKey).(string); ok {
			requestID = id
		}

		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			m.reject(w, "wallet session token is required")
			m.logs.Errorw("missing session token", "path", r.URL.Path, "request_id", requestID)
			return
		}

		claims, err := m.verifier.Validate(token)
		if err != nil {
			m.reject(w, "wallet session is not valid")
			m.logs.Errorw("session token rejected", "error", err, "path", r.URL.Path, "request_id", requestID)
			return
		}

		address, err := pkgjwt.WalletAddress(claims)
		if err != nil {
			m.reject(w, "wallet session is not valid")
			m.logs.Errorw("session token has no wallet address", "error", err, "path", r.URL.Path, "request_id", requestID)
			return
		}

		ctx := context.WithValue(r.Context(), WalletKey, address)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *SessionMiddleware) reject(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
