package metadata

import (
	"fmt"
	"strconv"
	"time"

	"chainnote/internal/chunk"
)

// defaultCategory backfills notes created without an explicit category.
const defaultCategory = "Personal"

var timeNow = time.Now

// NoteInput is the note shape the assembler consumes. ID is zero for
// CREATE, set for UPDATE and DELETE.
type NoteInput struct {
	ID       int64
	Title    string
	Content  string
	Category string
	Pinned   *bool
}

type Assembler struct {
	budget int
}

func NewAssembler(budget int) *Assembler {
	return &Assembler{budget: budget}
}

// Assemble builds the validated metadata document for one note mutation.
// Every string field passes through the chunker at the assembler's budget
// and the whole document is validated before it is returned; nothing is
// ever submitted unvalidated.
func (a *Assembler) Assemble(note NoteInput, op Operation) (Document, error) {
	doc := Document{
		Operation: op,
		Timestamp: timeNow().UTC().Format(time.RFC3339),
		App:       AppTag,
		Pinned:    note.Pinned,
	}

	if note.ID != 0 {
		doc.NoteID = strconv.FormatInt(note.ID, 10)
	}

	content := note.Content
	if op == OperationDelete {
		// a delete carries identity plus title/category for audit;
		// content is not required
		content = ""
	}

	category := note.Category
	if category == "" {
		category = defaultCategory
	}

	var err error
	if doc.Title, err = a.chunkField(note.Title); err != nil {
		return Document{}, fmt.Errorf("chunk title: %w", err)
	}
	if doc.Content, err = a.chunkField(content); err != nil {
		return Document{}, fmt.Errorf("chunk content: %w", err)
	}
	if doc.Category, err = a.chunkField(category); err != nil {
		return Document{}, fmt.Errorf("chunk category: %w", err)
	}

	if err := chunk.Validate(doc.Fields(), a.budget); err != nil {
		return Document{}, fmt.Errorf("validate metadata document: %w", err)
	}

	return doc, nil
}

func (a *Assembler) chunkField(value string) (ChunkedField, error) {
	chunks, err := chunk.Chunk(value, a.budget)
	if err != nil {
		return nil, err
	}
	return ChunkedField(chunks), nil
}
