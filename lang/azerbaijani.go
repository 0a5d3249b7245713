// Azerbaijani vocabulary and greedy merge rule.
package lang

import (
	"math/big"

	"github.com/forzagreen/n2words-sub002/greedy"
	"github.com/forzagreen/n2words-sub002/profile"
)

// azTable lists named magnitudes from kvintilyon down to sıfır. Azerbaijani
// marks no teens: 11 is "on bir", so the table needs only tens, ones and
// the named powers of ten.
var azTable = profile.ScaleTable{
	profile.Entry(1_000_000_000_000_000_000, "kvintilyon"),
	profile.Entry(1_000_000_000_000_000, "kvadrilyon"),
	profile.Entry(1_000_000_000_000, "trilyon"),
	profile.Entry(1_000_000_000, "milyard"),
	profile.Entry(1_000_000, "milyon"),
	profile.Entry(1_000, "min"),
	profile.Entry(100, "yüz"),
	profile.Entry(90, "doxsan"),
	profile.Entry(80, "səksən"),
	profile.Entry(70, "yetmiş"),
	profile.Entry(60, "altmış"),
	profile.Entry(50, "əlli"),
	profile.Entry(40, "qırx"),
	profile.Entry(30, "otuz"),
	profile.Entry(20, "iyirmi"),
	profile.Entry(10, "on"),
	profile.Entry(9, "doqquz"),
	profile.Entry(8, "səkkiz"),
	profile.Entry(7, "yeddi"),
	profile.Entry(6, "altı"),
	profile.Entry(5, "beş"),
	profile.Entry(4, "dörd"),
	profile.Entry(3, "üç"),
	profile.Entry(2, "iki"),
	profile.Entry(1, "bir"),
	profile.Entry(0, "sıfır"),
}

var azMillion = big.NewInt(1_000_000)

// azCombine implements the Turkic implicit-one rule: "bir" is dropped
// before yüz and min ("yüz", "min"), kept before milyon and above
// ("bir milyon").
func azCombine(prev, next profile.WordSet) profile.WordSet {
	if next.Value.Cmp(prev.Value) > 0 {
		value := new(big.Int).Mul(prev.Value, next.Value)
		if prev.Value.Cmp(bigOne) == 0 && next.Value.Cmp(azMillion) < 0 {
			return profile.WordSet{Word: next.Word, Value: value}
		}
		return profile.WordSet{Word: prev.Word + " " + next.Word, Value: value}
	}
	return greedy.DefaultCombine(prev, next)
}

var azerbaijani = profile.MustNew(profile.Profile{
	Code:     "az",
	Name:     "Azerbaijani",
	Strategy: profile.Greedy,

	Table:   azTable,
	Combine: azCombine,

	Ones: [10]string{"sıfır", "bir", "iki", "üç", "dörd",
		"beş", "altı", "yeddi", "səkkiz", "doqquz"},

	Zero:       "sıfır",
	Negative:   "mənfi",
	DecimalSep: "vergül",

	DecimalMode: profile.PerDigitDecimal,
})
