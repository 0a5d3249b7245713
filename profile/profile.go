// Package profile defines the language-profile contract shared by the
// conversion engines.
//
// A Profile bundles everything a language contributes to number-to-words
// conversion: its scale vocabulary, its merge or segment hooks, and the
// words for zero, the negative sign and the decimal separator. Profiles are
// immutable after construction and safe to share across any number of
// concurrent conversions.
//
// Construction goes through New, which validates the configuration and
// rejects broken language modules up front: a scale table that is not
// strictly descending, a table without a zero entry, or a strategy whose
// required hooks are missing. These are programmer errors in a language
// module, never user-input errors, and they are reported at construction
// rather than at call time.
package profile

import (
	"fmt"
	"math/big"
)

// Strategy selects which conversion engine a profile drives.
type Strategy int

const (
	// Greedy decomposes against a descending scale table and merges the
	// resulting word tree with the Combine hook.
	Greedy Strategy = iota

	// Segment splits the number into fixed-width digit groups and converts
	// each group through the SegmentWords/ScaleWord/JoinSegments hooks.
	Segment
)

// DecimalMode selects how the fractional digit string is read.
type DecimalMode int

const (
	// GroupedDecimal reads leading zero digits one word each and the
	// remaining digits as a single integer ("3.05" -> "three point zero five",
	// "3.14" -> "three point fourteen").
	GroupedDecimal DecimalMode = iota

	// PerDigitDecimal reads every fractional digit independently, including
	// internal zeros ("3.14" -> "three point one four").
	PerDigitDecimal
)

// WordSet is a transient (word, value) pair produced during greedy
// decomposition and consumed by the Combine hook. The engine guarantees
// Value is never nil.
type WordSet struct {
	Word  string
	Value *big.Int
}

// Part is one converted digit group handed to the JoinSegments hook,
// highest group first. Scale is empty for the units group.
type Part struct {
	Index int    // scale level, 0 = units
	Value int64  // numeric value of the group
	Words string // group text from SegmentWords
	Scale string // scale word from ScaleWord, "" for index 0
}

// CombineFunc merges two adjacent word sets during greedy reduction.
// When following.Value > preceding.Value the pair is a multiplication,
// otherwise an addition. An empty result word means "drop this segment
// silently"; engines must tolerate it.
type CombineFunc func(preceding, following WordSet) WordSet

// SegmentWordsFunc converts one digit group to text. seg is in [0, 999]
// for standard grouping, [0, 99] above the units group for South Asian
// grouping. scaleIndex is the group's scale level (0 = units).
type SegmentWordsFunc func(seg int64, scaleIndex int) string

// ScaleWordFunc returns the scale word for a group index >= 1. seg is the
// group's value, letting languages pluralize or gender the scale word.
// An index beyond the language's vocabulary must return an error wrapping
// ErrScaleOutOfRange.
type ScaleWordFunc func(scaleIndex int, seg int64) (string, error)

// JoinFunc assembles converted groups into the final integer phrase.
// full is the complete integer being converted, for cross-group rules
// such as implicit-one suppression.
type JoinFunc func(parts []Part, full *big.Int) string

// CleanupFunc is an optional final cosmetic pass over the output string.
// It must be idempotent: Cleanup(Cleanup(s)) == Cleanup(s).
type CleanupFunc func(s string) string

// Profile is an immutable per-language configuration. Build one with New;
// a zero-value Profile is rejected by both engines.
type Profile struct {
	// Code is the language tag ("en", "az", "en-in").
	Code string
	// Name is the language's English name, for listings.
	Name string

	Strategy Strategy

	// Table is the descending scale table, required for Greedy.
	Table ScaleTable
	// Combine is the merge hook, required for Greedy.
	Combine CombineFunc

	// SegmentWords, ScaleWord and JoinSegments are required for Segment.
	SegmentWords SegmentWordsFunc
	ScaleWord    ScaleWordFunc
	JoinSegments JoinFunc

	// Ones maps a single digit to its word. Required for PerDigitDecimal
	// and for grouped decimal leading zeros (index 0).
	Ones [10]string

	Zero       string
	Negative   string
	DecimalSep string

	DecimalMode DecimalMode

	// SouthAsian selects 3-then-2 digit grouping (lakh/crore) for the
	// Segment strategy.
	SouthAsian bool

	// Cleanup is the optional final cosmetic pass. Must be idempotent.
	Cleanup CleanupFunc
}

// New validates cfg and returns an immutable copy. The returned profile is
// safe for concurrent use.
func New(cfg Profile) (*Profile, error) {
	if cfg.Code == "" {
		return nil, fmt.Errorf("profile: %w: Code", ErrMissingWord)
	}
	if cfg.Zero == "" {
		return nil, fmt.Errorf("profile %s: %w: Zero", cfg.Code, ErrMissingWord)
	}

	switch cfg.Strategy {
	case Greedy:
		if err := cfg.Table.Validate(); err != nil {
			return nil, fmt.Errorf("profile %s: %w", cfg.Code, err)
		}
		if cfg.Table.WordFor(big.NewInt(1)) == "" {
			// Greedy decomposition emits a unit leaf for every bare
			// multiplier; without one the phrase loses its "one" silently.
			return nil, fmt.Errorf("profile %s: %w", cfg.Code, ErrTableNoUnit)
		}
		if cfg.Combine == nil {
			return nil, fmt.Errorf("profile %s: %w: Combine", cfg.Code, ErrMissingHook)
		}
	case Segment:
		if cfg.SegmentWords == nil {
			return nil, fmt.Errorf("profile %s: %w: SegmentWords", cfg.Code, ErrMissingHook)
		}
		if cfg.ScaleWord == nil {
			return nil, fmt.Errorf("profile %s: %w: ScaleWord", cfg.Code, ErrMissingHook)
		}
		if cfg.JoinSegments == nil {
			return nil, fmt.Errorf("profile %s: %w: JoinSegments", cfg.Code, ErrMissingHook)
		}
	default:
		return nil, fmt.Errorf("profile %s: unknown strategy %d", cfg.Code, cfg.Strategy)
	}

	if cfg.DecimalMode == PerDigitDecimal {
		for d, w := range cfg.Ones {
			if w == "" {
				return nil, fmt.Errorf("profile %s: %w: Ones[%d] (per-digit decimal mode)",
					cfg.Code, ErrMissingWord, d)
			}
		}
	}

	p := cfg
	return &p, nil
}

// MustNew is New for statically known language modules; it panics on a
// configuration error.
func MustNew(cfg Profile) *Profile {
	p, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return p
}
