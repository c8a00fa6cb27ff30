package chain_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"chainnote/internal/chain"
	"chainnote/internal/lifecycle"
	"chainnote/internal/metadata"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Provider", func() {
	var (
		server   *httptest.Server
		mux      *http.ServeMux
		provider *chain.Provider
		ctx      context.Context
		doc      metadata.Document
	)

	BeforeEach(func() {
		mux = http.NewServeMux()
		server = httptest.NewServer(mux)
		provider = chain.NewProvider(zap.NewNop().Sugar(), server.URL, "preview-project-id", nil)
		ctx = context.Background()

		doc = metadata.Document{
			Operation: metadata.OperationCreate,
			Title:     metadata.ChunkedField{"groceries"},
			Content:   metadata.ChunkedField{"milk and eggs"},
			Category:  metadata.ChunkedField{"Personal"},
			Timestamp: "2026-08-29T10:00:00Z",
			App:       metadata.AppTag,
		}
	})

	AfterEach(func() {
		server.Close()
	})

	serveJSON := func(pattern string, status int, body any) {
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			defer GinkgoRecover()
			w.WriteHeader(status)
			Expect(json.NewEncoder(w).Encode(body)).To(Succeed())
		})
	}

	Describe("BuildSelfPayment", func() {
		const address = "addr_test1qz0gxyz"

		When("the wallet has funds", func() {
			var seenProjectID string

			BeforeEach(func() {
				mux.HandleFunc("/addresses/"+address+"/utxos", func(w http.ResponseWriter, r *http.Request) {
					defer GinkgoRecover()
					seenProjectID = r.Header.Get("project_id")
					Expect(json.NewEncoder(w).Encode([]map[string]any{
						{
							"tx_hash":      "aa11",
							"output_index": 0,
							"amount":       []map[string]string{{"unit": "lovelace", "quantity": "5000000"}},
						},
						{
							"tx_hash":      "bb22",
							"output_index": 1,
							"amount":       []map[string]string{{"unit": "lovelace", "quantity": "3000000"}},
						},
					})).To(Succeed())
				})
				serveJSON("/epochs/latest/parameters", http.StatusOK, map[string]any{
					"min_fee_a": 44,
					"min_fee_b": 155381,
				})
			})

			It("should build a self-payment carrying the labeled document", func() {
				unsigned, err := provider.BuildSelfPayment(ctx, address, doc)
				Expect(err).NotTo(HaveOccurred())
				Expect(seenProjectID).To(Equal("preview-project-id"))

				var envelope struct {
					Inputs []struct {
						TxHash   string `json:"txHash"`
						Lovelace int64  `json:"lovelace"`
					} `json:"inputs"`
					Outputs []struct {
						Address  string `json:"address"`
						Lovelace int64  `json:"lovelace"`
					} `json:"outputs"`
					Fee      int64                        `json:"fee"`
					Metadata map[string]metadata.Document `json:"metadata"`
				}
				Expect(json.Unmarshal([]byte(unsigned), &envelope)).To(Succeed())

				Expect(envelope.Inputs).To(HaveLen(1))
				Expect(envelope.Inputs[0].TxHash).To(Equal("aa11"))
				Expect(envelope.Outputs).To(HaveLen(1))
				Expect(envelope.Outputs[0].Address).To(Equal(address))
				Expect(envelope.Fee).To(BeNumerically(">", 0))
				Expect(envelope.Outputs[0].Lovelace).To(Equal(int64(5000000) - envelope.Fee))

				labeled, ok := envelope.Metadata["42819"]
				Expect(ok).To(BeTrue())
				Expect(labeled.Operation).To(Equal(metadata.OperationCreate))
				Expect(labeled.Title.Reconstruct()).To(Equal("groceries"))
			})
		})

		When("the address holds nothing", func() {
			BeforeEach(func() {
				serveJSON("/addresses/"+address+"/utxos", http.StatusNotFound, map[string]any{
					"status_code": 404, "error": "Not Found", "message": "The requested component has not been found.",
				})
			})

			It("should classify as insufficient funds", func() {
				_, err := provider.BuildSelfPayment(ctx, address, doc)
				Expect(err).To(MatchError(lifecycle.ErrInsufficientFunds))
			})
		})

		When("the balance cannot cover fee plus minimum output", func() {
			BeforeEach(func() {
				serveJSON("/addresses/"+address+"/utxos", http.StatusOK, []map[string]any{
					{
						"tx_hash":      "aa11",
						"output_index": 0,
						"amount":       []map[string]string{{"unit": "lovelace", "quantity": "100000"}},
					},
				})
				serveJSON("/epochs/latest/parameters", http.StatusOK, map[string]any{
					"min_fee_a": 44,
					"min_fee_b": 155381,
				})
			})

			It("should classify as insufficient funds", func() {
				_, err := provider.BuildSelfPayment(ctx, address, doc)
				Expect(err).To(MatchError(lifecycle.ErrInsufficientFunds))
			})
		})
	})

	Describe("Submit", func() {
		When("submission succeeds", func() {
			BeforeEach(func() {
				mux.HandleFunc("/tx/submit", func(w http.ResponseWriter, r *http.Request) {
					defer GinkgoRecover()
					Expect(r.Method).To(Equal(http.MethodPost))
					Expect(r.Header.Get("Content-Type")).To(Equal("application/cbor"))
					Expect(json.NewEncoder(w).Encode("deadbeef00")).To(Succeed())
				})
			})

			It("should return the assigned hash", func() {
				hash, err := provider.Submit(ctx, lifecycle.SignedTx("signed-artifact"))
				Expect(err).NotTo(HaveOccurred())
				Expect(hash).To(Equal("deadbeef00"))
			})
		})

		When("the ledger rejects the transaction for value reasons", func() {
			BeforeEach(func() {
				serveJSON("/tx/submit", http.StatusBadRequest, map[string]any{
					"status_code": 400, "error": "Bad Request",
					"message": "ValueNotConservedUTxO",
				})
			})

			It("should classify as insufficient funds", func() {
				_, err := provider.Submit(ctx, lifecycle.SignedTx("signed"))
				Expect(err).To(MatchError(lifecycle.ErrInsufficientFunds))
			})
		})

		When("the project id is rejected", func() {
			BeforeEach(func() {
				serveJSON("/tx/submit", http.StatusForbidden, map[string]any{
					"status_code": 403, "error": "Forbidden", "message": "Invalid project token.",
				})
			})

			It("should classify as a backend failure", func() {
				_, err := provider.Submit(ctx, lifecycle.SignedTx("signed"))
				Expect(err).To(MatchError(lifecycle.ErrBackend))
			})
		})

		When("the provider rate limits", func() {
			BeforeEach(func() {
				serveJSON("/tx/submit", http.StatusTooManyRequests, map[string]any{
					"status_code": 429, "error": "Too Many Requests", "message": "Usage is over limit.",
				})
			})

			It("should classify as a network failure", func() {
				_, err := provider.Submit(ctx, lifecycle.SignedTx("signed"))
				Expect(err).To(MatchError(lifecycle.ErrNetwork))
			})
		})

		When("the provider is unreachable", func() {
			It("should classify as a network failure", func() {
				server.Close()
				_, err := provider.Submit(ctx, lifecycle.SignedTx("signed"))
				Expect(err).To(MatchError(lifecycle.ErrNetwork))
			})
		})
	})

	Describe("TxStatus", func() {
		const hash = "deadbeef00"

		When("the transaction is on chain", func() {
			BeforeEach(func() {
				serveJSON("/txs/"+hash, http.StatusOK, map[string]any{
					"hash": hash, "block": "blockhash", "block_height": 120, "block_time": 1756461600,
				})
				serveJSON("/blocks/latest", http.StatusOK, map[string]any{
					"hash": "tip", "height": 125, "time": 1756461700,
				})
			})

			It("should report confirmed with a confirmation depth", func() {
				status, err := provider.TxStatus(ctx, hash)
				Expect(err).NotTo(HaveOccurred())
				Expect(status.State).To(Equal(chain.TxStateConfirmed))
				Expect(status.BlockHeight).To(Equal(int64(120)))
				Expect(status.Confirmations).To(Equal(int64(6)))
			})
		})

		When("the provider has not seen the hash", func() {
			BeforeEach(func() {
				serveJSON("/txs/"+hash, http.StatusNotFound, map[string]any{
					"status_code": 404, "error": "Not Found", "message": "The requested component has not been found.",
				})
			})

			It("should report still pending", func() {
				status, err := provider.TxStatus(ctx, hash)
				Expect(err).NotTo(HaveOccurred())
				Expect(status.State).To(Equal(chain.TxStatePending))
			})
		})

		When("the provider errors", func() {
			BeforeEach(func() {
				serveJSON("/txs/"+hash, http.StatusInternalServerError, map[string]any{
					"status_code": 500, "error": "Internal Server Error", "message": "upstream out of sync",
				})
			})

			It("should classify as a network failure", func() {
				_, err := provider.TxStatus(ctx, hash)
				Expect(err).To(MatchError(lifecycle.ErrNetwork))
			})
		})
	})
})
