package chain_test

import (
	"context"
	"errors"
	"time"

	"chainnote/internal/chain"
	"chainnote/internal/chain/fake"
	"chainnote/internal/repository"
	"chainnote/internal/store"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("SyncWorker", func() {
	var (
		worker      *chain.SyncWorker
		fakeStatus  *fake.StatusSource
		fakeJournal *fake.Journal
		ctx         context.Context
	)

	freshRecord := func(hash string, noteID int64) repository.TransactionRecord {
		return repository.TransactionRecord{
			TxHash:    hash,
			NoteID:    noteID,
			Operation: "CREATE",
			Status:    "PENDING",
			CreatedAt: time.Now().UTC(),
		}
	}

	BeforeEach(func() {
		fakeStatus = new(fake.StatusSource)
		fakeJournal = new(fake.Journal)
		ctx = context.Background()

		worker = chain.NewSyncWorker(zap.NewNop().Sugar(), fakeStatus, fakeJournal,
			10*time.Millisecond, 10*time.Minute, 5)
	})

	Describe("Sync", func() {
		When("a pending transaction is confirmed on chain", func() {
			BeforeEach(func() {
				fakeJournal.ListPendingTransactionsReturns(
					[]repository.TransactionRecord{freshRecord("aa11", 7)}, nil)
				fakeStatus.TxStatusReturns(chain.TxStatus{
					State: chain.TxStateConfirmed, BlockHeight: 120, Confirmations: 3,
				}, nil)
			})

			It("should confirm the journal row and the note", func() {
				worker.Sync(ctx)

				Expect(fakeJournal.ConfirmTransactionCallCount()).To(Equal(1))
				_, hash, height, _ := fakeJournal.ConfirmTransactionArgsForCall(0)
				Expect(hash).To(Equal("aa11"))
				Expect(height).To(Equal(int64(120)))

				Expect(fakeJournal.UpdateStatusCallCount()).To(Equal(1))
				_, noteID, status := fakeJournal.UpdateStatusArgsForCall(0)
				Expect(noteID).To(Equal(int64(7)))
				Expect(status).To(Equal(store.StatusConfirmed))
			})
		})

		When("a transaction is still unseen by the provider", func() {
			BeforeEach(func() {
				fakeJournal.ListPendingTransactionsReturns(
					[]repository.TransactionRecord{freshRecord("aa11", 7)}, nil)
				fakeStatus.TxStatusReturns(chain.TxStatus{State: chain.TxStatePending}, nil)
			})

			It("should only bump the retry counter", func() {
				worker.Sync(ctx)

				Expect(fakeJournal.ConfirmTransactionCallCount()).To(BeZero())
				Expect(fakeJournal.FailTransactionCallCount()).To(BeZero())

				Expect(fakeJournal.TouchTransactionCallCount()).To(Equal(1))
				_, hash, retries, _ := fakeJournal.TouchTransactionArgsForCall(0)
				Expect(hash).To(Equal("aa11"))
				Expect(retries).To(Equal(1))
			})
		})

		When("a pending transaction outlived the timeout", func() {
			BeforeEach(func() {
				record := freshRecord("old11", 3)
				record.CreatedAt = time.Now().UTC().Add(-time.Hour)
				fakeJournal.ListPendingTransactionsReturns(
					[]repository.TransactionRecord{record}, nil)
			})

			It("should fail the transaction and the note without a status check", func() {
				worker.Sync(ctx)

				Expect(fakeStatus.TxStatusCallCount()).To(BeZero())

				Expect(fakeJournal.FailTransactionCallCount()).To(Equal(1))
				_, hash, reason := fakeJournal.FailTransactionArgsForCall(0)
				Expect(hash).To(Equal("old11"))
				Expect(reason).To(ContainSubstring("expired"))

				_, noteID, status := fakeJournal.UpdateStatusArgsForCall(0)
				Expect(noteID).To(Equal(int64(3)))
				Expect(status).To(Equal(store.StatusFailed))
			})
		})

		When("a transaction exhausted its retries", func() {
			BeforeEach(func() {
				record := freshRecord("tired", 4)
				record.RetryCount = 5
				fakeJournal.ListPendingTransactionsReturns(
					[]repository.TransactionRecord{record}, nil)
			})

			It("should fail it with a retry reason", func() {
				worker.Sync(ctx)

				Expect(fakeJournal.FailTransactionCallCount()).To(Equal(1))
				_, _, reason := fakeJournal.FailTransactionArgsForCall(0)
				Expect(reason).To(ContainSubstring("retry"))
			})
		})

		When("the status lookup fails", func() {
			BeforeEach(func() {
				fakeJournal.ListPendingTransactionsReturns(
					[]repository.TransactionRecord{freshRecord("aa11", 7)}, nil)
				fakeStatus.TxStatusReturns(chain.TxStatus{}, errors.New("provider down"))
			})

			It("should bump the retry counter and move on", func() {
				worker.Sync(ctx)

				Expect(fakeJournal.TouchTransactionCallCount()).To(Equal(1))
				Expect(fakeJournal.FailTransactionCallCount()).To(BeZero())
			})
		})

		When("the journal listing fails", func() {
			BeforeEach(func() {
				fakeJournal.ListPendingTransactionsReturns(nil, errors.New("backend down"))
			})

			It("should abandon the pass", func() {
				worker.Sync(ctx)

				Expect(fakeStatus.TxStatusCallCount()).To(BeZero())
			})
		})
	})

	Describe("Start", func() {
		It("should sync on the schedule until stopped", func() {
			fakeJournal.ListPendingTransactionsReturns(nil, nil)

			worker.Start(ctx)
			defer worker.Stop()

			Eventually(fakeJournal.ListPendingTransactionsCallCount, time.Second, 5*time.Millisecond).
				Should(BeNumerically(">=", 2))
		})

		It("should be safe to start twice and stop twice", func() {
			worker.Start(ctx)
			worker.Start(ctx)
			worker.Stop()
			worker.Stop()
		})
	})
})
