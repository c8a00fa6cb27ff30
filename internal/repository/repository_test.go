package repository_test

import (
	"context"
	"errors"
	"time"

	"chainnote/internal/db"
	"chainnote/internal/repository"
	"chainnote/internal/repository/fake"
	"chainnote/internal/store"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NoteRepository", func() {
	var (
		repo        *repository.NoteRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewNoteRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.Migrate()
		})

		When("migration succeeds", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(nil)
			})

			It("should migrate the note and history tables", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(3))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.NoteRecord{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.TransactionRecord{}))
				Expect(tables[2]).To(BeAssignableToTypeOf(&repository.HistoryRecord{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("SaveNote", func() {
		var (
			note  store.Note
			saved store.Note
			err   error
		)

		BeforeEach(func() {
			note = store.Note{
				Title:    "groceries",
				Content:  "milk and eggs",
				Category: "Personal",
				Status:   store.StatusPending,
			}
		})

		JustBeforeEach(func() {
			saved, err = repo.SaveNote(ctx, note)
		})

		When("save succeeds", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableStub = func(ctx context.Context, record any) error {
					rec := record.(*repository.NoteRecord)
					rec.ID = 42
					return nil
				}
			})

			It("should return the stored note with its assigned id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(saved.ID).To(Equal(int64(42)))
				Expect(saved.Title).To(Equal("groceries"))

				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(1))
				_, arg := fakeStorage.SaveToTableArgsForCall(0)
				Expect(arg).To(BeAssignableToTypeOf(&repository.NoteRecord{}))
			})
		})

		When("save fails", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetNote", func() {
		var (
			note store.Note
			err  error
		)

		JustBeforeEach(func() {
			note, err = repo.GetNote(ctx, 7)
		})

		When("the note exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					rec := dest.(*repository.NoteRecord)
					*rec = repository.NoteRecord{ID: 7, Title: "found", Status: "CONFIRMED"}
					return nil
				}
			})

			It("should return the note", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(note.ID).To(Equal(int64(7)))
				Expect(note.Status).To(Equal(store.StatusConfirmed))

				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(int64(7)))
			})
		})

		When("the note does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return note not found", func() {
				Expect(err).To(MatchError(repository.ErrNoteNotFound))
			})
		})

		When("the database fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListPending", func() {
		var (
			notes []store.Note
			err   error
		)

		JustBeforeEach(func() {
			notes, err = repo.ListPending(ctx)
		})

		When("pending notes exist", func() {
			BeforeEach(func() {
				fakeStorage.GetWhereStub = func(ctx context.Context, dest any, query string, args ...any) error {
					recs := dest.(*[]repository.NoteRecord)
					*recs = []repository.NoteRecord{
						{ID: 1, Status: "PENDING", TxHash: "aa"},
						{ID: 2, Status: "PENDING", TxHash: "bb"},
					}
					return nil
				}
			})

			It("should query for pending rows with a hash", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(notes).To(HaveLen(2))

				_, _, query, args := fakeStorage.GetWhereArgsForCall(0)
				Expect(query).To(ContainSubstring("status = ?"))
				Expect(query).To(ContainSubstring("tx_hash <> ''"))
				Expect(args).To(ConsistOf("PENDING"))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeStorage.GetWhereReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SearchNotes", func() {
		It("should match against title, content and category", func() {
			fakeStorage.GetWhereReturns(nil)

			_, err := repo.SearchNotes(ctx, "milk")
			Expect(err).NotTo(HaveOccurred())

			_, _, query, args := fakeStorage.GetWhereArgsForCall(0)
			Expect(query).To(ContainSubstring("title ILIKE ?"))
			Expect(query).To(ContainSubstring("content ILIKE ?"))
			Expect(query).To(ContainSubstring("category ILIKE ?"))
			Expect(args).To(ConsistOf("%milk%", "%milk%", "%milk%"))
		})
	})

	Describe("DeleteNote", func() {
		When("the note exists", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(nil)
			})

			It("should delete by id", func() {
				Expect(repo.DeleteNote(ctx, 3)).To(Succeed())

				_, model, col, val := fakeStorage.DeleteByArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.NoteRecord{}))
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(int64(3)))
			})
		})

		When("the note does not exist", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(db.ErrNotFound)
			})

			It("should return note not found", func() {
				Expect(repo.DeleteNote(ctx, 3)).To(MatchError(repository.ErrNoteNotFound))
			})
		})
	})

	Describe("UpdateSubmission", func() {
		When("the update succeeds", func() {
			BeforeEach(func() {
				fakeStorage.UpdateFieldsReturns(nil)
			})

			It("should write the hash and status columns", func() {
				Expect(repo.UpdateSubmission(ctx, 5, "deadbeef", store.StatusPending)).To(Succeed())

				_, _, col, val, fields := fakeStorage.UpdateFieldsArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(int64(5)))
				Expect(fields).To(Equal(map[string]any{
					"tx_hash": "deadbeef",
					"status":  "PENDING",
				}))
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateFieldsReturns(db.ErrNotFound)
			})

			It("should return note not found", func() {
				Expect(repo.UpdateSubmission(ctx, 5, "deadbeef", store.StatusPending)).
					To(MatchError(repository.ErrNoteNotFound))
			})
		})
	})

	Describe("UpdateStatus", func() {
		It("should write only the status column", func() {
			fakeStorage.UpdateFieldsReturns(nil)

			Expect(repo.UpdateStatus(ctx, 9, store.StatusConfirmed)).To(Succeed())

			_, _, _, _, fields := fakeStorage.UpdateFieldsArgsForCall(0)
			Expect(fields).To(Equal(map[string]any{"status": "CONFIRMED"}))
		})
	})

	Describe("transaction journal", func() {
		It("should persist a journal row", func() {
			fakeStorage.SaveToTableReturns(nil)

			record := repository.TransactionRecord{
				TxHash:    "deadbeef",
				NoteID:    4,
				Operation: "CREATE",
				Status:    "PENDING",
			}
			Expect(repo.SaveTransaction(ctx, record)).To(Succeed())

			_, arg := fakeStorage.SaveToTableArgsForCall(0)
			Expect(arg).To(BeAssignableToTypeOf(&repository.TransactionRecord{}))
		})

		It("should list only pending rows", func() {
			fakeStorage.GetWhereReturns(nil)

			_, err := repo.ListPendingTransactions(ctx)
			Expect(err).NotTo(HaveOccurred())

			_, dest, query, args := fakeStorage.GetWhereArgsForCall(0)
			Expect(dest).To(BeAssignableToTypeOf(&[]repository.TransactionRecord{}))
			Expect(query).To(Equal("status = ?"))
			Expect(args).To(ConsistOf("PENDING"))
		})

		It("should confirm by hash with block height", func() {
			fakeStorage.UpdateFieldsReturns(nil)

			now := time.Now().UTC()
			Expect(repo.ConfirmTransaction(ctx, "deadbeef", 120, now)).To(Succeed())

			_, _, col, val, fields := fakeStorage.UpdateFieldsArgsForCall(0)
			Expect(col).To(Equal("tx_hash"))
			Expect(val).To(Equal("deadbeef"))
			Expect(fields).To(HaveKeyWithValue("status", "CONFIRMED"))
			Expect(fields).To(HaveKeyWithValue("block_height", int64(120)))
		})

		It("should fail by hash with a reason", func() {
			fakeStorage.UpdateFieldsReturns(nil)

			Expect(repo.FailTransaction(ctx, "deadbeef", "expired")).To(Succeed())

			_, _, _, _, fields := fakeStorage.UpdateFieldsArgsForCall(0)
			Expect(fields).To(HaveKeyWithValue("status", "FAILED"))
			Expect(fields).To(HaveKeyWithValue("error_message", "expired"))
		})
	})

	Describe("history", func() {
		var entry store.HistoryEntry

		BeforeEach(func() {
			entry = store.HistoryEntry{
				ID:        uuid.NewString(),
				Action:    store.ActionCreated,
				NoteTitle: "groceries",
				Category:  "Personal",
				Timestamp: time.Now().UTC(),
			}
		})

		It("should persist an entry", func() {
			fakeStorage.SaveToTableReturns(nil)

			Expect(repo.SaveHistory(ctx, entry)).To(Succeed())

			_, arg := fakeStorage.SaveToTableArgsForCall(0)
			Expect(arg).To(BeAssignableToTypeOf(&repository.HistoryRecord{}))
		})

		It("should list entries back in store form", func() {
			fakeStorage.GetWhereStub = func(ctx context.Context, dest any, query string, args ...any) error {
				recs := dest.(*[]repository.HistoryRecord)
				*recs = []repository.HistoryRecord{repository.RecordFromEntry(entry)}
				return nil
			}

			entries, err := repo.ListHistory(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Action).To(Equal(store.ActionCreated))
			Expect(entries[0].NoteTitle).To(Equal("groceries"))
		})
	})
})
