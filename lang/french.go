// French vocabulary, greedy merge rule and plural cleanup.
package lang

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/forzagreen/n2words-sub002/profile"
)

// frTable keeps the vigesimal irregularities as data: 70 and 90 decompose
// over soixante/quatre-vingts plus teens, 17–19 are compound entries.
var frTable = profile.ScaleTable{
	profile.Entry(1_000_000_000_000, "billion"),
	profile.Entry(1_000_000_000, "milliard"),
	profile.Entry(1_000_000, "million"),
	profile.Entry(1_000, "mille"),
	profile.Entry(100, "cent"),
	profile.Entry(80, "quatre-vingts"),
	profile.Entry(60, "soixante"),
	profile.Entry(50, "cinquante"),
	profile.Entry(40, "quarante"),
	profile.Entry(30, "trente"),
	profile.Entry(20, "vingt"),
	profile.Entry(19, "dix-neuf"),
	profile.Entry(18, "dix-huit"),
	profile.Entry(17, "dix-sept"),
	profile.Entry(16, "seize"),
	profile.Entry(15, "quinze"),
	profile.Entry(14, "quatorze"),
	profile.Entry(13, "treize"),
	profile.Entry(12, "douze"),
	profile.Entry(11, "onze"),
	profile.Entry(10, "dix"),
	profile.Entry(9, "neuf"),
	profile.Entry(8, "huit"),
	profile.Entry(7, "sept"),
	profile.Entry(6, "six"),
	profile.Entry(5, "cinq"),
	profile.Entry(4, "quatre"),
	profile.Entry(3, "trois"),
	profile.Entry(2, "deux"),
	profile.Entry(1, "un"),
	profile.Entry(0, "zéro"),
}

var (
	frHundred = big.NewInt(100)
	frMillion = big.NewInt(1_000_000)
	frEighty  = big.NewInt(80)
	frSixty   = big.NewInt(60)
	frEleven  = big.NewInt(11)
)

// frCombine merges with French conjunction and pluralization rules:
// "un" drops before cent and mille but stays before million, additions
// below one hundred hyphenate, 21/31/41/51/61 and 71 take "et".
func frCombine(prev, next profile.WordSet) profile.WordSet {
	if next.Value.Cmp(prev.Value) > 0 {
		// Multiplication.
		value := new(big.Int).Mul(prev.Value, next.Value)
		if prev.Value.Cmp(bigOne) == 0 {
			if next.Value.Cmp(frMillion) < 0 {
				return profile.WordSet{Word: next.Word, Value: value}
			}
			return profile.WordSet{Word: "un " + next.Word, Value: value}
		}
		word := prev.Word
		if next.Value.Cmp(frMillion) >= 0 {
			// million is a noun, so a final multiplied cent keeps its
			// plural: deux cents millions.
			word = frCentsRe.ReplaceAllString(word, "$1 cents")
			word += " " + next.Word + "s" // deux millions, trois milliards
		} else {
			// quatre-vingts drops its s before a numeral adjective:
			// quatre-vingt mille.
			if strings.HasSuffix(word, "vingts") {
				word = strings.TrimSuffix(word, "s")
			}
			word += " " + next.Word
		}
		return profile.WordSet{Word: word, Value: value}
	}

	// Addition.
	value := new(big.Int).Add(prev.Value, next.Value)
	below100 := prev.Value.Cmp(frHundred) < 0

	if below100 && prev.Value.Cmp(frEighty) != 0 &&
		(next.Value.Cmp(bigOne) == 0 ||
			(next.Value.Cmp(frEleven) == 0 && prev.Value.Cmp(frSixty) == 0)) {
		return profile.WordSet{Word: prev.Word + " et " + next.Word, Value: value}
	}
	if below100 {
		return profile.WordSet{Word: prev.Word + "-" + next.Word, Value: value}
	}
	return profile.WordSet{Word: prev.Word + " " + next.Word, Value: value}
}

var (
	// quatre-vingts loses its plural s when another numeral follows by
	// hyphen: "quatre-vingts-un" -> "quatre-vingt-un".
	frVingtsRe = regexp.MustCompile(`vingts-`)

	// A final multiplied cent pluralizes: "deux cent" -> "deux cents".
	frCentsRe = regexp.MustCompile(`(deux|trois|quatre|cinq|six|sept|huit|neuf) cent$`)
)

func frCleanup(s string) string {
	s = frVingtsRe.ReplaceAllString(s, "vingt-")
	return frCentsRe.ReplaceAllString(s, "$1 cents")
}

var french = profile.MustNew(profile.Profile{
	Code:     "fr",
	Name:     "French",
	Strategy: profile.Greedy,

	Table:   frTable,
	Combine: frCombine,

	Ones: [10]string{"zéro", "un", "deux", "trois", "quatre",
		"cinq", "six", "sept", "huit", "neuf"},

	Zero:       "zéro",
	Negative:   "moins",
	DecimalSep: "virgule",

	DecimalMode: profile.GroupedDecimal,

	Cleanup: frCleanup,
})
