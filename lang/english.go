// English short-scale vocabulary and segment hooks.
package lang

import (
	"fmt"

	"github.com/forzagreen/n2words-sub002/profile"
	"github.com/forzagreen/n2words-sub002/segment"
)

var enBelowTwenty = [20]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
}

// enTens is indexed by tens digit; indexes 0 and 1 are unused.
var enTens = [10]string{
	"", "", "twenty", "thirty", "forty", "fifty",
	"sixty", "seventy", "eighty", "ninety",
}

// enScales is indexed by base-1000 group level. Index 0 is unused.
// Decillion (10^33) keeps the short scale ahead of the largest magnitudes
// language tables use.
var enScales = []string{
	"", "thousand", "million", "billion", "trillion", "quadrillion",
	"quintillion", "sextillion", "septillion", "octillion", "nonillion",
	"decillion",
}

// enSegmentWords writes a group in [1, 999]: hundreds with an explicit
// multiplier, tens and ones hyphenated ("three hundred forty-two").
func enSegmentWords(seg int64, _ int) string {
	var out string
	if h := seg / 100; h > 0 {
		out = enBelowTwenty[h] + " hundred"
	}
	r := seg % 100
	switch {
	case r == 0:
	case r < 20:
		if out != "" {
			out += " "
		}
		out += enBelowTwenty[r]
	default:
		if out != "" {
			out += " "
		}
		out += enTens[r/10]
		if o := r % 10; o > 0 {
			out += "-" + enBelowTwenty[o]
		}
	}
	return out
}

func enScaleWord(scaleIndex int, _ int64) (string, error) {
	if scaleIndex >= len(enScales) {
		return "", fmt.Errorf("lang: en: %w %d", profile.ErrScaleOutOfRange, scaleIndex)
	}
	return enScales[scaleIndex], nil
}

var english = profile.MustNew(profile.Profile{
	Code:     "en",
	Name:     "English",
	Strategy: profile.Segment,

	SegmentWords: enSegmentWords,
	ScaleWord:    enScaleWord,
	JoinSegments: segment.JoinSpace,

	Ones: [10]string{"zero", "one", "two", "three", "four",
		"five", "six", "seven", "eight", "nine"},

	Zero:       "zero",
	Negative:   "minus",
	DecimalSep: "point",

	DecimalMode: profile.GroupedDecimal,
})

// enInScales is indexed by South Asian group level (3-then-2 digits).
// Index 0 is unused.
var enInScales = []string{
	"", "thousand", "lakh", "crore", "arab", "kharab", "nil", "padma", "shankh",
}

func enInScaleWord(scaleIndex int, _ int64) (string, error) {
	if scaleIndex >= len(enInScales) {
		return "", fmt.Errorf("lang: en-in: %w %d", profile.ErrScaleOutOfRange, scaleIndex)
	}
	return enInScales[scaleIndex], nil
}

// Indian English shares the English digit vocabulary but groups by
// lakh/crore and reads decimal digits individually, the prevailing
// South Asian convention.
var indianEnglish = profile.MustNew(profile.Profile{
	Code:     "en-in",
	Name:     "Indian English",
	Strategy: profile.Segment,

	SouthAsian: true,

	SegmentWords: enSegmentWords,
	ScaleWord:    enInScaleWord,
	JoinSegments: segment.JoinSpace,

	Ones: [10]string{"zero", "one", "two", "three", "four",
		"five", "six", "seven", "eight", "nine"},

	Zero:       "zero",
	Negative:   "minus",
	DecimalSep: "point",

	DecimalMode: profile.PerDigitDecimal,
})
