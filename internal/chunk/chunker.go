package chunk

import (
	"errors"
	"fmt"
)

// DefaultBudget is the ledger's per-string metadata limit in bytes.
const DefaultBudget = 64

// minBudget is the size of the largest UTF-8 code point. A smaller budget
// cannot hold every code point and is a configuration error, never a
// truncation.
const minBudget = 4

var ErrBudgetTooSmall error = errors.New("chunk budget below minimum of 4 bytes")

// ChunkSizeError reports the first field whose value cannot satisfy the
// byte budget. Index is -1 for scalar fields.
type ChunkSizeError struct {
	Field string
	Index int
	Bytes int
}

func (e *ChunkSizeError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("chunk %d in field %q exceeds %d bytes: %d bytes", e.Index, e.Field, DefaultBudget, e.Bytes)
	}
	return fmt.Sprintf("field %q exceeds %d bytes: %d bytes", e.Field, DefaultBudget, e.Bytes)
}

// ByteLength returns the UTF-8 encoded length of s.
func ByteLength(s string) int {
	return len(s)
}

// Chunk splits s into substrings of at most budget bytes each. Splitting
// iterates whole code points, so every chunk is itself valid UTF-8 and the
// ordered concatenation of the chunks is exactly s. An empty input yields
// an empty slice.
func Chunk(s string, budget int) ([]string, error) {
	if budget < minBudget {
		return nil, fmt.Errorf("%w: got %d", ErrBudgetTooSmall, budget)
	}

	if s == "" {
		return []string{}, nil
	}

	if len(s) <= budget {
		return []string{s}, nil
	}

	var chunks []string
	current := ""
	for _, r := range s {
		cp := string(r)
		if len(current)+len(cp) <= budget {
			current += cp
			continue
		}
		if current != "" {
			chunks = append(chunks, current)
		}
		current = cp
	}
	if current != "" {
		chunks = append(chunks, current)
	}

	return chunks, nil
}

// Reconstruct joins chunks back into the original string. A one element
// slice round-trips the common unsplit case.
func Reconstruct(chunks []string) string {
	out := ""
	for _, c := range chunks {
		out += c
	}
	return out
}

// Validate walks every field of a chunked document and fails on the first
// value over budget. Slice values are checked element by element, scalar
// values as a whole.
func Validate(fields map[string]any, budget int) error {
	if budget < minBudget {
		return fmt.Errorf("%w: got %d", ErrBudgetTooSmall, budget)
	}

	for key, value := range fields {
		switch v := value.(type) {
		case []string:
			for i, c := range v {
				if len(c) > budget {
					return &ChunkSizeError{Field: key, Index: i, Bytes: len(c)}
				}
			}
		case string:
			if len(v) > budget {
				return &ChunkSizeError{Field: key, Index: -1, Bytes: len(v)}
			}
		}
	}

	return nil
}
