package wallet_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"chainnote/internal/lifecycle"
	"chainnote/internal/store"
	"chainnote/internal/wallet"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

type testFrame struct {
	Type          string          `json:"type"`
	RequestID     string          `json:"requestId,omitempty"`
	WalletAddress string          `json:"walletAddress,omitempty"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	Reason        string          `json:"reason,omitempty"`
}

var _ = Describe("Bridge", func() {
	var (
		bridge *wallet.Bridge
		server *httptest.Server
		ctx    context.Context
	)

	BeforeEach(func() {
		bridge = wallet.NewBridge(zap.NewNop().Sugar())
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = bridge.Handle(w, r)
		}))
		ctx = context.Background()
	})

	AfterEach(func() {
		server.Close()
	})

	connectWallet := func(address string) *websocket.Conn {
		conn, _, err := websocket.Dial(ctx, server.URL, nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(wsjson.Write(ctx, conn, testFrame{
			Type:          "hello",
			WalletAddress: address,
		})).To(Succeed())

		Eventually(func() bool {
			_, ok := bridge.Connected()
			return ok
		}, time.Second, 5*time.Millisecond).Should(BeTrue())

		return conn
	}

	When("no wallet is connected", func() {
		It("should refuse to sign", func() {
			_, err := bridge.SignTransaction(ctx, lifecycle.UnsignedTx("unsigned"))
			Expect(err).To(MatchError(lifecycle.ErrWalletNotConnected))
		})

		It("should report no connection", func() {
			_, ok := bridge.Connected()
			Expect(ok).To(BeFalse())
		})
	})

	When("a wallet is connected", func() {
		var conn *websocket.Conn

		BeforeEach(func() {
			conn = connectWallet("addr_test1qz0gxyz")
		})

		AfterEach(func() {
			conn.Close(websocket.StatusNormalClosure, "")
		})

		It("should expose the wallet address", func() {
			address, ok := bridge.Connected()
			Expect(ok).To(BeTrue())
			Expect(address).To(Equal("addr_test1qz0gxyz"))
		})

		It("should round-trip a sign request", func() {
			done := make(chan struct{})
			go func() {
				defer GinkgoRecover()
				defer close(done)

				var request testFrame
				Expect(wsjson.Read(ctx, conn, &request)).To(Succeed())
				Expect(request.Type).To(Equal("sign_request"))

				var unsigned string
				Expect(json.Unmarshal(request.Payload, &unsigned)).To(Succeed())
				Expect(unsigned).To(Equal("unsigned-envelope"))

				payload, err := json.Marshal("signed-envelope")
				Expect(err).NotTo(HaveOccurred())
				Expect(wsjson.Write(ctx, conn, testFrame{
					Type:      "sign_response",
					RequestID: request.RequestID,
					Payload:   payload,
				})).To(Succeed())
			}()

			signed, err := bridge.SignTransaction(ctx, lifecycle.UnsignedTx("unsigned-envelope"))
			Expect(err).NotTo(HaveOccurred())
			Expect(signed).To(Equal(lifecycle.SignedTx("signed-envelope")))
			Eventually(done).Should(BeClosed())
		})

		It("should surface a decline as user declined", func() {
			go func() {
				defer GinkgoRecover()

				var request testFrame
				Expect(wsjson.Read(ctx, conn, &request)).To(Succeed())
				Expect(wsjson.Write(ctx, conn, testFrame{
					Type:      "decline",
					RequestID: request.RequestID,
					Reason:    "user cancelled in wallet",
				})).To(Succeed())
			}()

			_, err := bridge.SignTransaction(ctx, lifecycle.UnsignedTx("unsigned"))
			Expect(err).To(MatchError(lifecycle.ErrUserDeclined))
		})

		It("should give up when the wallet never answers", func() {
			signCtx, cancel := context.WithTimeout(ctx, 30*time.Millisecond)
			defer cancel()

			_, err := bridge.SignTransaction(signCtx, lifecycle.UnsignedTx("unsigned"))
			Expect(err).To(MatchError(context.DeadlineExceeded))
		})

		It("should push notifications to the wallet client", func() {
			bridge.Notify(store.Notification{
				ID:      "n1",
				NoteID:  7,
				Title:   "groceries",
				Message: "confirmed on chain",
				TxHash:  "deadbeef",
			})

			var pushed testFrame
			Expect(wsjson.Read(ctx, conn, &pushed)).To(Succeed())
			Expect(pushed.Type).To(Equal("notification"))

			var notification store.Notification
			Expect(json.Unmarshal(pushed.Payload, &notification)).To(Succeed())
			Expect(notification.NoteID).To(Equal(int64(7)))
			Expect(notification.TxHash).To(Equal("deadbeef"))
		})
	})

	When("a second wallet connects", func() {
		It("should replace the first connection", func() {
			first := connectWallet("addr_test1first")
			defer first.Close(websocket.StatusNormalClosure, "")

			second := connectWallet("addr_test1second")
			defer second.Close(websocket.StatusNormalClosure, "")

			Eventually(func() string {
				address, _ := bridge.Connected()
				return address
			}, time.Second, 5*time.Millisecond).Should(Equal("addr_test1second"))
		})
	})
})
