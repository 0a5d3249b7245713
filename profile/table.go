package profile

import (
	"errors"
	"fmt"
	"math/big"
)

// Configuration errors reported by New and ScaleTable.Validate. They mark a
// broken language module, not bad user input.
var (
	ErrTableEmpty         = errors.New("scale table is empty")
	ErrTableNotDescending = errors.New("scale table is not strictly descending")
	ErrTableNoZero        = errors.New("scale table has no zero entry")
	ErrTableNoUnit        = errors.New("scale table has no unit entry")
	ErrTableNegative      = errors.New("scale table has a negative magnitude")
	ErrMissingHook        = errors.New("required hook is not set")
	ErrMissingWord        = errors.New("required word is not set")
	ErrScaleOutOfRange    = errors.New("no scale word for group index")
)

// ScaleEntry pairs a magnitude with the word a language uses for it.
type ScaleEntry struct {
	Value *big.Int
	Word  string
}

// ScaleTable is a language's magnitude vocabulary, ordered strictly
// descending with a final zero entry. The greedy engine matches the first
// entry whose magnitude does not exceed the remaining value, so ordering
// is load-bearing: Validate rejects anything else.
type ScaleTable []ScaleEntry

// NewScaleTable validates entries and returns them as a ScaleTable.
func NewScaleTable(entries []ScaleEntry) (ScaleTable, error) {
	t := ScaleTable(entries)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the table invariants: non-empty, strictly descending,
// no negative magnitudes, last entry is magnitude zero.
func (t ScaleTable) Validate() error {
	if len(t) == 0 {
		return ErrTableEmpty
	}
	for i, e := range t {
		if e.Value == nil {
			return fmt.Errorf("%w: entry %d has nil magnitude", ErrTableNotDescending, i)
		}
		if e.Value.Sign() < 0 {
			return fmt.Errorf("%w: entry %d (%s)", ErrTableNegative, i, e.Value)
		}
		if i > 0 && t[i-1].Value.Cmp(e.Value) <= 0 {
			return fmt.Errorf("%w: entry %d (%s) does not decrease from %s",
				ErrTableNotDescending, i, e.Value, t[i-1].Value)
		}
	}
	if t[len(t)-1].Value.Sign() != 0 {
		return ErrTableNoZero
	}
	return nil
}

// WordFor returns the word for an exact magnitude, or "" when the table has
// no entry for it.
func (t ScaleTable) WordFor(v *big.Int) string {
	for _, e := range t {
		if e.Value.Cmp(v) == 0 {
			return e.Word
		}
	}
	return ""
}

// Entry builds a scale entry from an int64 magnitude. It is a convenience
// for language modules whose vocabulary stays within int64 range; larger
// magnitudes construct their big.Int directly.
func Entry(value int64, word string) ScaleEntry {
	return ScaleEntry{Value: big.NewInt(value), Word: word}
}
