package poller_test

import (
	"context"
	"errors"
	"time"

	"chainnote/internal/poller"
	"chainnote/internal/poller/fake"
	"chainnote/internal/store"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Poller", func() {
	var (
		fakeSource   *fake.NoteSource
		fakeNotifier *fake.Notifier
		notes        *store.NoteStore
		p            *poller.Poller
		ctx          context.Context
	)

	pendingNote := func(id int64, title string) store.Note {
		return store.Note{ID: id, Title: title, Status: store.StatusPending, TxHash: "hash"}
	}
	confirmedNote := func(id int64, title string) store.Note {
		return store.Note{ID: id, Title: title, Status: store.StatusConfirmed, TxHash: "hash"}
	}

	BeforeEach(func() {
		fakeSource = new(fake.NoteSource)
		fakeNotifier = new(fake.Notifier)
		notes = store.NewNoteStore()
		ctx = context.Background()

		p = poller.NewPoller(zap.NewNop().Sugar(), fakeSource, notes, 10*time.Millisecond, fakeNotifier)
	})

	AfterEach(func() {
		p.Stop()
	})

	When("a previously pending note is now confirmed", func() {
		BeforeEach(func() {
			notes.ApplyOptimistic(pendingNote(7, "note seven"), store.ActionCreated)
			fakeSource.ListNotesReturns([]store.Note{confirmedNote(7, "note seven")}, nil)

			p.EnsurePolling()
			// the tick resolves the only pending note, so self-stop marks
			// the tick complete
			Eventually(p.IsPolling, time.Second, 5*time.Millisecond).Should(BeFalse())
		})

		It("should emit exactly one notification carrying title and hash", func() {
			Expect(fakeNotifier.NotifyCallCount()).To(Equal(1))
			n := fakeNotifier.NotifyArgsForCall(0)
			Expect(n.NoteID).To(Equal(int64(7)))
			Expect(n.Title).To(Equal("note seven"))
			Expect(n.TxHash).To(Equal("hash"))
		})

		It("should update the store's copy in place", func() {
			stored := notes.Notes()
			Expect(stored).To(HaveLen(1))
			Expect(stored[0].Status).To(Equal(store.StatusConfirmed))
		})

		It("should record a dismissible notification in the store", func() {
			Expect(notes.Notifications()).To(HaveLen(1))
		})

		It("should not notify again on a later forced check", func() {
			p.ForceCheck(ctx)
			Expect(fakeNotifier.NotifyCallCount()).To(Equal(1))
		})
	})

	When("a previously pending note resolved as failed", func() {
		BeforeEach(func() {
			notes.ApplyOptimistic(pendingNote(3, "doomed"), store.ActionCreated)
			failed := store.Note{ID: 3, Title: "doomed", Status: store.StatusFailed, TxHash: "hash"}
			fakeSource.ListNotesReturns([]store.Note{failed}, nil)

			p.EnsurePolling()
			Eventually(p.IsPolling, time.Second, 5*time.Millisecond).Should(BeFalse())
		})

		It("should update the store but emit no confirmation", func() {
			Expect(fakeNotifier.NotifyCallCount()).To(BeZero())
			Expect(notes.Notes()[0].Status).To(Equal(store.StatusFailed))
		})
	})

	When("the fetch fails", func() {
		BeforeEach(func() {
			notes.ApplyOptimistic(pendingNote(1, "one"), store.ActionCreated)
			fakeSource.ListNotesReturns(nil, errors.New("backend down"))

			p.EnsurePolling()
			Eventually(fakeSource.ListNotesCallCount, time.Second, 5*time.Millisecond).Should(BeNumerically(">=", 2))
		})

		It("should keep polling through persistent failures", func() {
			Expect(p.IsPolling()).To(BeTrue())
			Expect(fakeNotifier.NotifyCallCount()).To(BeZero())
		})

		It("should retain the pending set and resolve once the fetch recovers", func() {
			fakeSource.ListNotesReturns([]store.Note{confirmedNote(1, "one")}, nil)

			Eventually(fakeNotifier.NotifyCallCount, time.Second, 5*time.Millisecond).Should(Equal(1))
			Eventually(p.IsPolling, time.Second, 5*time.Millisecond).Should(BeFalse())
		})
	})

	Describe("EnsurePolling", func() {
		It("does nothing when no note is pending", func() {
			fakeSource.ListNotesReturns([]store.Note{}, nil)
			p.EnsurePolling()
			Expect(p.IsPolling()).To(BeFalse())
			Expect(fakeSource.ListNotesCallCount()).To(BeZero())
		})

		It("starts the loop when a pending note with a hash exists", func() {
			notes.ApplyOptimistic(pendingNote(2, "two"), store.ActionCreated)
			fakeSource.ListNotesReturns([]store.Note{pendingNote(2, "two")}, nil)

			p.EnsurePolling()
			Expect(p.IsPolling()).To(BeTrue())
			Eventually(fakeSource.ListNotesCallCount, time.Second, 5*time.Millisecond).Should(BeNumerically(">=", 2))
		})

		It("ignores pending notes without a hash", func() {
			notes.ApplyOptimistic(store.Note{ID: 5, Status: store.StatusPending}, store.ActionCreated)
			p.EnsurePolling()
			Expect(p.IsPolling()).To(BeFalse())
		})
	})

	Describe("convergence", func() {
		It("eventually produces exactly one notification per note and stops", func() {
			notes.ApplyOptimistic(pendingNote(1, "a"), store.ActionCreated)
			notes.ApplyOptimistic(pendingNote(2, "b"), store.ActionCreated)

			// note 1 confirms on the first tick, note 2 on a later one
			fakeSource.ListNotesReturnsOnCall(0, []store.Note{confirmedNote(1, "a"), pendingNote(2, "b")}, nil)
			fakeSource.ListNotesReturns([]store.Note{confirmedNote(1, "a"), confirmedNote(2, "b")}, nil)

			p.EnsurePolling()

			Eventually(p.IsPolling, time.Second, 5*time.Millisecond).Should(BeFalse())
			Expect(fakeNotifier.NotifyCallCount()).To(Equal(2))

			seen := map[int64]int{}
			for i := 0; i < fakeNotifier.NotifyCallCount(); i++ {
				seen[fakeNotifier.NotifyArgsForCall(i).NoteID]++
			}
			Expect(seen).To(Equal(map[int64]int{1: 1, 2: 1}))
		})
	})

	Describe("Stop", func() {
		It("is safe to call repeatedly and from idle", func() {
			p.Stop()
			p.Stop()
			Expect(p.IsPolling()).To(BeFalse())
		})
	})
})
