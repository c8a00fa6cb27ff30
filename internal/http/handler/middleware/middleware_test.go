package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"chainnote/internal/http/handler/middleware"
	"chainnote/internal/http/handler/middleware/fake"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Middleware", func() {
	var (
		w    *httptest.ResponseRecorder
		req  *http.Request
		next http.Handler

		seenRequestID string
		seenWallet    string
		nextCalled    bool
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		seenRequestID = ""
		seenWallet = ""
		nextCalled = false

		next = http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			nextCalled = true
			if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
				seenRequestID = id
			}
			if addr, ok := r.Context().Value(middleware.WalletKey).(string); ok {
				seenWallet = addr
			}
		})
	})

	Describe("RequestID", func() {
		var mw *middleware.RequestIDMiddleware

		BeforeEach(func() {
			mw = middleware.NewRequestIDMiddleware()
			req = httptest.NewRequest("GET", "/api/notes", nil)
		})

		JustBeforeEach(func() {
			mw.RequestID(next).ServeHTTP(w, req)
		})

		When("the request carries no id", func() {
			It("should generate one and echo it back", func() {
				Expect(seenRequestID).NotTo(BeEmpty())
				Expect(w.Header().Get("X-Request-ID")).To(Equal(seenRequestID))
			})
		})

		When("the request carries an id", func() {
			BeforeEach(func() {
				req.Header.Set("X-Request-ID", "req-42")
			})

			It("should keep the caller's id", func() {
				Expect(seenRequestID).To(Equal("req-42"))
			})
		})
	})

	Describe("Logging", func() {
		var mw *middleware.LoggingMiddleware

		BeforeEach(func() {
			mw = middleware.NewLoggingMiddleware(zap.NewNop().Sugar())
			req = httptest.NewRequest("GET", "/api/notes", nil)
		})

		It("should pass the request through", func() {
			mw.Logging(next).ServeHTTP(w, req)
			Expect(nextCalled).To(BeTrue())
			Expect(w.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("Session", func() {
		var (
			mw           *middleware.SessionMiddleware
			fakeVerifier *fake.SessionVerifier
		)

		BeforeEach(func() {
			fakeVerifier = new(fake.SessionVerifier)
			mw = middleware.NewSessionMiddleware(zap.NewNop().Sugar(), fakeVerifier)
			req = httptest.NewRequest("POST", "/api/notes", nil)
		})

		JustBeforeEach(func() {
			mw.Session(next).ServeHTTP(w, req)
		})

		When("the token is valid", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Bearer good-token")
				fakeVerifier.ValidateReturns(jwt.MapClaims{"sub": "addr_test1qzowner"}, nil)
			})

			It("should bind the wallet address to the context", func() {
				Expect(nextCalled).To(BeTrue())
				Expect(seenWallet).To(Equal("addr_test1qzowner"))
				Expect(fakeVerifier.ValidateArgsForCall(0)).To(Equal("good-token"))
			})
		})

		When("the token is missing", func() {
			It("should return 401 without calling the handler", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(nextCalled).To(BeFalse())
				Expect(fakeVerifier.ValidateCallCount()).To(Equal(0))
			})
		})

		When("the token is rejected", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Bearer bad-token")
				fakeVerifier.ValidateReturns(nil, errors.New("token is not valid"))
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(nextCalled).To(BeFalse())
			})
		})

		When("the claims carry no wallet address", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Bearer good-token")
				fakeVerifier.ValidateReturns(jwt.MapClaims{}, nil)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(nextCalled).To(BeFalse())
			})
		})
	})
})
