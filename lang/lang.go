// Package lang holds the built-in language profiles.
//
// Each language is a data file: word tables plus the hook functions that
// parametrize one of the two conversion engines. Greedy languages
// (Azerbaijani, French) supply a descending scale table and a Combine rule;
// segment languages (English, Indian English, German) supply the
// SegmentWords/ScaleWord/JoinSegments hooks. No language carries any
// mutable state, so every profile is shared process-wide.
//
// Adding a language means adding one file in this package and listing the
// profile in All. The profile is validated at package init; a malformed
// table or a missing hook fails the program immediately rather than
// producing wrong words later.
package lang

import (
	"math/big"

	"github.com/forzagreen/n2words-sub002/profile"
)

var bigOne = big.NewInt(1)

// All returns every built-in profile, in listing order.
func All() []*profile.Profile {
	return []*profile.Profile{
		English(),
		IndianEnglish(),
		Azerbaijani(),
		German(),
		French(),
	}
}

// English returns the English (short scale) profile.
func English() *profile.Profile { return english }

// IndianEnglish returns the Indian English (lakh/crore) profile.
func IndianEnglish() *profile.Profile { return indianEnglish }

// Azerbaijani returns the Azerbaijani profile.
func Azerbaijani() *profile.Profile { return azerbaijani }

// German returns the German profile.
func German() *profile.Profile { return german }

// French returns the French profile.
func French() *profile.Profile { return french }
