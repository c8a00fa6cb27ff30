package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"chainnote/internal/chain"
	"chainnote/internal/chunk"
	"chainnote/internal/core"
	"chainnote/internal/http/handler"
	"chainnote/internal/http/handler/fake"
	"chainnote/internal/http/handler/middleware"
	"chainnote/internal/lifecycle"
	"chainnote/internal/store"
	pkgjwt "chainnote/pkg/jwt"

	jwtlib "github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("NotesHandler", func() {
	var (
		nh            *handler.NotesHandler
		fakeService   *fake.NoteService
		fakeValidator *fake.RequestValidator
		fakeStatus    *fake.StatusSource
		fakeIssuer    *fake.SessionIssuer
		fakeBridge    *fake.WalletBridge
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		walletAddr    string
		fakeErr       error
	)

	withWallet := func(r *http.Request) *http.Request {
		return r.WithContext(context.WithValue(r.Context(), middleware.WalletKey, walletAddr))
	}

	BeforeEach(func() {
		walletAddr = "addr_test1qznotesowner"
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.NoteService)
		fakeValidator = new(fake.RequestValidator)
		fakeStatus = new(fake.StatusSource)
		fakeIssuer = new(fake.SessionIssuer)
		fakeBridge = new(fake.WalletBridge)

		fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		nh = handler.NewNotesHandler(
			fakeLogger,
			fakeValidator,
			fakeService,
			fakeStatus,
			fakeIssuer,
			fakeBridge,
			time.Hour,
			"preview",
			"https://preview.cardanoscan.io")
	})

	Describe("HandleCreateNote", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"title":"Groceries","content":"milk and eggs","category":"Personal"}`)
			req = withWallet(httptest.NewRequest("POST", "/api/notes", body))
			req.Header.Set("Content-Type", "application/json")

			fakeService.CreateNoteReturns(store.Note{
				ID:     7,
				Title:  "Groceries",
				TxHash: "aa11",
				Status: store.StatusPending,
			}, nil)
		})

		JustBeforeEach(func() {
			nh.HandleCreateNote(w, req)
		})

		When("the note is anchored successfully", func() {
			It("should return 201 with the pending note", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(w.Body.String()).To(ContainSubstring("aa11"))

				Expect(fakeService.CreateNoteCallCount()).To(Equal(1))
				_, argAddr, argInput := fakeService.CreateNoteArgsForCall(0)
				Expect(argAddr).To(Equal(walletAddr))
				Expect(argInput.Title).To(Equal("Groceries"))
				Expect(argInput.Category).To(Equal("Personal"))
			})
		})

		When("no wallet session is bound to the request", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/api/notes", strings.NewReader(`{}`))
			})

			It("should return 401 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.CreateNoteCallCount()).To(Equal(0))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.CreateNoteCallCount()).To(Equal(0))
			})
		})

		When("the user cancels signing", func() {
			BeforeEach(func() {
				fakeService.CreateNoteReturns(store.Note{}, lifecycle.ErrUserDeclined)
			})

			It("should return 409 with neutral cancellation wording", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
				Expect(w.Body.String()).To(ContainSubstring("cancelled"))
				Expect(w.Body.String()).NotTo(ContainSubstring("declined"))
			})
		})

		When("the note exceeds the metadata size limit", func() {
			BeforeEach(func() {
				fakeService.CreateNoteReturns(store.Note{}, &chunk.ChunkSizeError{Field: "c0", Index: 0, Bytes: 70})
			})

			It("should return 422", func() {
				Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
				Expect(w.Body.String()).To(ContainSubstring("too large"))
			})
		})

		When("the wallet has insufficient funds", func() {
			BeforeEach(func() {
				fakeService.CreateNoteReturns(store.Note{}, lifecycle.ErrInsufficientFunds)
			})

			It("should return 402", func() {
				Expect(w.Code).To(Equal(http.StatusPaymentRequired))
			})
		})

		When("no wallet is connected to the bridge", func() {
			BeforeEach(func() {
				fakeService.CreateNoteReturns(store.Note{}, lifecycle.ErrWalletNotConnected)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("signing times out", func() {
			BeforeEach(func() {
				fakeService.CreateNoteReturns(store.Note{}, lifecycle.ErrTimeout)
			})

			It("should return 504", func() {
				Expect(w.Code).To(Equal(http.StatusGatewayTimeout))
			})
		})

		When("the chain provider is unreachable", func() {
			BeforeEach(func() {
				fakeService.CreateNoteReturns(store.Note{}, lifecycle.ErrNetwork)
			})

			It("should return 502", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
			})
		})

		When("persistence fails after submission", func() {
			BeforeEach(func() {
				fakeService.CreateNoteReturns(store.Note{}, lifecycle.ErrBackend)
			})

			It("should return 500 with the recovery hint", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("recover"))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.CreateNoteReturns(store.Note{}, fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleGetNote", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/notes/7", nil)
			req.SetPathValue("id", "7")
			fakeService.GetNoteReturns(store.Note{ID: 7, Title: "Groceries"}, nil)
		})

		JustBeforeEach(func() {
			nh.HandleGetNote(w, req)
		})

		When("the note exists", func() {
			It("should return 200 with the note", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("Groceries"))
				_, argID := fakeService.GetNoteArgsForCall(0)
				Expect(argID).To(Equal(int64(7)))
			})
		})

		When("the note does not exist", func() {
			BeforeEach(func() {
				fakeService.GetNoteReturns(store.Note{}, core.ErrNoteNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the id is not a number", func() {
			BeforeEach(func() {
				req.SetPathValue("id", "abc")
			})

			It("should return 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.GetNoteCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleUpdateNote", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"title":"Groceries","content":"milk only","category":"Personal"}`)
			req = withWallet(httptest.NewRequest("PUT", "/api/notes/7", body))
			req.SetPathValue("id", "7")
			fakeService.UpdateNoteReturns(store.Note{ID: 7, TxHash: "bb22", Status: store.StatusPending}, nil)
		})

		JustBeforeEach(func() {
			nh.HandleUpdateNote(w, req)
		})

		When("the update is anchored successfully", func() {
			It("should return 200 with the refreshed note", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("bb22"))
				_, argAddr, argID, argInput := fakeService.UpdateNoteArgsForCall(0)
				Expect(argAddr).To(Equal(walletAddr))
				Expect(argID).To(Equal(int64(7)))
				Expect(argInput.Content).To(Equal("milk only"))
			})
		})

		When("the note does not exist", func() {
			BeforeEach(func() {
				fakeService.UpdateNoteReturns(store.Note{}, core.ErrNoteNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleDeleteNote", func() {
		BeforeEach(func() {
			req = withWallet(httptest.NewRequest("DELETE", "/api/notes/7", nil))
			req.SetPathValue("id", "7")
		})

		JustBeforeEach(func() {
			nh.HandleDeleteNote(w, req)
		})

		When("the delete marker is anchored", func() {
			It("should return 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, argAddr, argID := fakeService.DeleteNoteArgsForCall(0)
				Expect(argAddr).To(Equal(walletAddr))
				Expect(argID).To(Equal(int64(7)))
			})
		})

		When("the lifecycle fails", func() {
			BeforeEach(func() {
				fakeService.DeleteNoteReturns(lifecycle.ErrUserDeclined)
			})

			It("should return 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Describe("HandleTogglePin", func() {
		BeforeEach(func() {
			req = withWallet(httptest.NewRequest("PATCH", "/api/notes/7/toggle-pin", nil))
			req.SetPathValue("id", "7")
			fakeService.TogglePinReturns(store.Note{ID: 7, Pinned: true}, nil)
		})

		JustBeforeEach(func() {
			nh.HandleTogglePin(w, req)
		})

		It("should return 200 with the flipped flag", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"pinned":true`))
			Expect(fakeService.TogglePinCallCount()).To(Equal(1))
		})
	})

	Describe("HandleRetryNote", func() {
		BeforeEach(func() {
			req = withWallet(httptest.NewRequest("POST", "/api/notes/7/retry", nil))
			req.SetPathValue("id", "7")
			fakeService.RetryTransactionReturns(store.Note{ID: 7, TxHash: "cc33", Status: store.StatusPending}, nil)
		})

		JustBeforeEach(func() {
			nh.HandleRetryNote(w, req)
		})

		When("the retry submits a fresh transaction", func() {
			It("should return 200 with the new hash", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("cc33"))
				_, argAddr, argID := fakeService.RetryTransactionArgsForCall(0)
				Expect(argAddr).To(Equal(walletAddr))
				Expect(argID).To(Equal(int64(7)))
			})
		})

		When("the wallet declines again", func() {
			BeforeEach(func() {
				fakeService.RetryTransactionReturns(store.Note{}, lifecycle.ErrUserDeclined)
			})

			It("should return 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Describe("HandleRecoverNote", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"txHash":"` + strings.Repeat("ab", 32) + `","title":"Groceries","content":"milk"}`)
			req = withWallet(httptest.NewRequest("POST", "/api/notes/recover", body))
			fakeService.RecoverPersistReturns(store.Note{ID: 7, TxHash: strings.Repeat("ab", 32)}, nil)
		})

		JustBeforeEach(func() {
			nh.HandleRecoverNote(w, req)
		})

		It("should re-persist under the existing hash", func() {
			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(fakeService.RecoverPersistCallCount()).To(Equal(1))
			_, argAddr, argHash, argInput := fakeService.RecoverPersistArgsForCall(0)
			Expect(argAddr).To(Equal(walletAddr))
			Expect(argHash).To(Equal(strings.Repeat("ab", 32)))
			Expect(argInput.Title).To(Equal("Groceries"))
		})
	})

	Describe("HandleNoteStatus", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/notes/7/status", nil)
			req.SetPathValue("id", "7")
		})

		JustBeforeEach(func() {
			nh.HandleNoteStatus(w, req)
		})

		When("the note has a transaction hash", func() {
			BeforeEach(func() {
				fakeService.GetNoteReturns(store.Note{ID: 7, TxHash: "aa11", Status: store.StatusPending}, nil)
				fakeStatus.TxStatusReturns(chain.TxStatus{
					State:         chain.TxStateConfirmed,
					BlockHeight:   100,
					Confirmations: 6,
				}, nil)
			})

			It("should return the chain status and explorer link", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("CONFIRMED"))
				Expect(w.Body.String()).To(ContainSubstring("https://preview.cardanoscan.io/transaction/aa11"))
				_, argHash := fakeStatus.TxStatusArgsForCall(0)
				Expect(argHash).To(Equal("aa11"))
			})
		})

		When("the note was never submitted", func() {
			BeforeEach(func() {
				fakeService.GetNoteReturns(store.Note{ID: 7, Status: store.StatusNone}, nil)
			})

			It("should skip the chain lookup", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeStatus.TxStatusCallCount()).To(Equal(0))
			})
		})

		When("the chain lookup fails", func() {
			BeforeEach(func() {
				fakeService.GetNoteReturns(store.Note{ID: 7, TxHash: "aa11"}, nil)
				fakeStatus.TxStatusReturns(chain.TxStatus{}, lifecycle.ErrNetwork)
			})

			It("should return 502", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
			})
		})
	})

	Describe("HandleSearchNotes", func() {
		JustBeforeEach(func() {
			nh.HandleSearchNotes(w, req)
		})

		When("a keyword is provided", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/notes/search?keyword=milk", nil)
				fakeService.SearchNotesReturns([]store.Note{{ID: 7, Title: "Groceries"}}, nil)
			})

			It("should return matching notes", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("Groceries"))
				_, argKeyword := fakeService.SearchNotesArgsForCall(0)
				Expect(argKeyword).To(Equal("milk"))
			})
		})

		When("the keyword is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/notes/search", nil)
			})

			It("should return 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.SearchNotesCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandlePendingNotes", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/notes/pending", nil)
			fakeService.PendingNotesReturns([]store.Note{{ID: 7, Status: store.StatusPending}}, nil)
		})

		JustBeforeEach(func() {
			nh.HandlePendingNotes(w, req)
		})

		It("should return the pending notes", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("PENDING"))
		})
	})

	Describe("HandleListNotes", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/notes", nil)
			fakeService.ListNotesReturns([]store.Note{{ID: 1}, {ID: 2}})
		})

		JustBeforeEach(func() {
			nh.HandleListNotes(w, req)
		})

		It("should return the in-memory view", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			var response map[string][]store.Note
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response["notes"]).To(HaveLen(2))
		})
	})

	Describe("HandleGetHistory", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/history", nil)
			fakeService.HistoryReturns([]store.HistoryEntry{{Action: store.ActionCreated, NoteTitle: "Groceries"}})
		})

		JustBeforeEach(func() {
			nh.HandleGetHistory(w, req)
		})

		It("should return the activity log", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("CREATED"))
		})
	})

	Describe("notifications", func() {
		When("listing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/notifications", nil)
				fakeService.NotificationsReturns([]store.Notification{{ID: "n-1", Title: "Groceries"}})
				nh.HandleGetNotifications(w, req)
			})

			It("should return pending notifications", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("n-1"))
			})
		})

		When("dismissing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("DELETE", "/api/notifications/n-1", nil)
				req.SetPathValue("id", "n-1")
				nh.HandleDismissNotification(w, req)
			})

			It("should forward the id to the service", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeService.DismissNotificationCallCount()).To(Equal(1))
				Expect(fakeService.DismissNotificationArgsForCall(0)).To(Equal("n-1"))
			})
		})
	})

	Describe("HandleWalletSession", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"walletAddress":"` + walletAddr + `"}`)
			req = httptest.NewRequest("POST", "/api/wallet/session", body)
			fakeIssuer.GenerateReturns(jwtlib.NewWithClaims(jwtlib.SigningMethodHS512, jwtlib.MapClaims{}))
			fakeIssuer.SignReturns("session-token", nil)
		})

		JustBeforeEach(func() {
			nh.HandleWalletSession(w, req)
		})

		When("the address is valid", func() {
			It("should issue a session token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string]string
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["token"]).To(Equal("session-token"))

				argInfo := fakeIssuer.GenerateArgsForCall(0)
				Expect(argInfo).To(Equal(pkgjwt.TokenInfo{
					Subject:    walletAddr,
					Network:    "preview",
					Expiration: time.Hour,
				}))
			})
		})

		When("signing the token fails", func() {
			BeforeEach(func() {
				fakeIssuer.SignReturns("", fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return 400 without issuing a token", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeIssuer.GenerateCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleWalletStatus", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/wallet/status", nil)
			fakeBridge.ConnectedReturns(walletAddr, true)
		})

		JustBeforeEach(func() {
			nh.HandleWalletStatus(w, req)
		})

		It("should report the bridge connection", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"connected":true`))
			Expect(w.Body.String()).To(ContainSubstring(walletAddr))
		})
	})
})
