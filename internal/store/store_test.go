package store_test

import (
	"time"

	"chainnote/internal/store"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NoteStore", func() {
	var s *store.NoteStore

	BeforeEach(func() {
		s = store.NewNoteStore()
	})

	Describe("ApplyOptimistic", func() {
		It("inserts the note and appends exactly one history entry", func() {
			s.ApplyOptimistic(store.Note{
				ID:       1,
				Title:    "first",
				Category: "Work",
				Status:   store.StatusPending,
				TxHash:   "hash1",
			}, store.ActionCreated)

			Expect(s.Notes()).To(HaveLen(1))

			history := s.History()
			Expect(history).To(HaveLen(1))
			Expect(history[0].Action).To(Equal(store.ActionCreated))
			Expect(history[0].NoteTitle).To(Equal("first"))
		})

		It("is idempotent on the note view for the same id", func() {
			note := store.Note{ID: 1, Title: "first"}
			s.ApplyOptimistic(note, store.ActionCreated)
			note.Title = "renamed"
			s.ApplyOptimistic(note, store.ActionUpdated)

			notes := s.Notes()
			Expect(notes).To(HaveLen(1))
			Expect(notes[0].Title).To(Equal("renamed"))
			Expect(s.History()).To(HaveLen(2))
		})
	})

	Describe("ApplyResolved", func() {
		BeforeEach(func() {
			s.ApplyOptimistic(store.Note{
				ID:      7,
				Title:   "pending note",
				Status:  store.StatusPending,
				TxHash:  "hash7",
				Content: "draft",
			}, store.ActionCreated)
		})

		It("updates status without touching content", func() {
			s.ApplyResolved(7, store.StatusConfirmed, "hash7")

			notes := s.Notes()
			Expect(notes[0].Status).To(Equal(store.StatusConfirmed))
			Expect(notes[0].Content).To(Equal("draft"))
		})

		It("does not append history", func() {
			s.ApplyResolved(7, store.StatusConfirmed, "hash7")
			Expect(s.History()).To(HaveLen(1))
		})

		It("ignores unknown ids", func() {
			s.ApplyResolved(99, store.StatusConfirmed, "x")
			Expect(s.Notes()).To(HaveLen(1))
		})
	})

	Describe("PendingIDs", func() {
		It("includes only pending notes that carry a hash", func() {
			s.ApplyOptimistic(store.Note{ID: 1, Status: store.StatusPending, TxHash: "a"}, store.ActionCreated)
			s.ApplyOptimistic(store.Note{ID: 2, Status: store.StatusConfirmed, TxHash: "b"}, store.ActionCreated)
			s.ApplyOptimistic(store.Note{ID: 3, Status: store.StatusPending}, store.ActionCreated)

			pending := s.PendingIDs()
			Expect(pending).To(HaveLen(1))
			Expect(pending).To(HaveKey(int64(1)))
		})
	})

	Describe("Notes ordering", func() {
		It("sorts pinned first, then newest first", func() {
			now := time.Now()
			s.ApplyOptimistic(store.Note{ID: 1, Title: "old", CreatedAt: now.Add(-time.Hour)}, store.ActionCreated)
			s.ApplyOptimistic(store.Note{ID: 2, Title: "new", CreatedAt: now}, store.ActionCreated)
			s.ApplyOptimistic(store.Note{ID: 3, Title: "pinned", Pinned: true, CreatedAt: now.Add(-2 * time.Hour)}, store.ActionCreated)

			notes := s.Notes()
			Expect(notes[0].Title).To(Equal("pinned"))
			Expect(notes[1].Title).To(Equal("new"))
			Expect(notes[2].Title).To(Equal("old"))
		})
	})

	Describe("RemoveNote", func() {
		It("drops the note and records the deletion", func() {
			note := store.Note{ID: 4, Title: "doomed", Category: "Misc"}
			s.ApplyOptimistic(note, store.ActionCreated)
			s.RemoveNote(note, store.ActionDeleted)

			Expect(s.Notes()).To(BeEmpty())

			history := s.History()
			Expect(history).To(HaveLen(2))
			Expect(history[0].Action).To(Equal(store.ActionDeleted))
		})
	})

	Describe("notifications", func() {
		It("deduplicates by id and supports dismissal", func() {
			n := store.Notification{ID: "n1", NoteID: 1, Title: "t"}
			s.AddNotification(n)
			s.AddNotification(n)
			Expect(s.Notifications()).To(HaveLen(1))

			s.DismissNotification("n1")
			Expect(s.Notifications()).To(BeEmpty())
		})
	})
})
