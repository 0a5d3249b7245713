// German vocabulary and segment hooks.
package lang

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/forzagreen/n2words-sub002/profile"
)

// deOnes is the unit stem used inside compounds; the standalone form of 1
// is "eins", the pre-scale form "ein"/"eine". Handled in deSegmentWords
// and deJoin.
var deOnes = [10]string{
	"", "ein", "zwei", "drei", "vier", "fünf", "sechs", "sieben", "acht", "neun",
}

var deTeens = [10]string{
	"zehn", "elf", "zwölf", "dreizehn", "vierzehn",
	"fünfzehn", "sechzehn", "siebzehn", "achtzehn", "neunzehn",
}

var deTens = [10]string{
	"", "", "zwanzig", "dreißig", "vierzig", "fünfzig",
	"sechzig", "siebzig", "achtzig", "neunzig",
}

// deScaleNames holds singular/plural pairs per group level. tausend
// compounds with its group, Million and above stand alone and pluralize.
var deScaleNames = [][2]string{
	2: {"Million", "Millionen"},
	3: {"Milliarde", "Milliarden"},
	4: {"Billion", "Billionen"},
	5: {"Billiarde", "Billiarden"},
	6: {"Trillion", "Trillionen"},
}

// deSegmentWords writes a group as one compound word: hundreds, then units
// before tens joined with "und" ("dreihundertfünfundvierzig"). A bare 1 in
// the units group reads "eins", before a scale word "ein".
func deSegmentWords(seg int64, scaleIndex int) string {
	var b strings.Builder
	if h := seg / 100; h > 0 {
		b.WriteString(deOnes[h])
		b.WriteString("hundert")
	}
	r := seg % 100
	switch {
	case r == 0:
	case r == 1:
		if scaleIndex == 0 {
			b.WriteString("eins")
		} else {
			b.WriteString("ein")
		}
	case r < 10:
		b.WriteString(deOnes[r])
	case r < 20:
		b.WriteString(deTeens[r-10])
	default:
		if o := r % 10; o > 0 {
			b.WriteString(deOnes[o])
			b.WriteString("und")
		}
		b.WriteString(deTens[r/10])
	}
	return b.String()
}

func deScaleWord(scaleIndex int, seg int64) (string, error) {
	if scaleIndex == 1 {
		return "tausend", nil
	}
	if scaleIndex >= len(deScaleNames) || deScaleNames[scaleIndex][0] == "" {
		return "", fmt.Errorf("lang: de: %w %d", profile.ErrScaleOutOfRange, scaleIndex)
	}
	if seg == 1 {
		return deScaleNames[scaleIndex][0], nil
	}
	return deScaleNames[scaleIndex][1], nil
}

// deJoin compounds the tausend group and the units group into one word and
// keeps Million and above as separate words: 2300095 reads
// "zwei Millionen dreihunderttausendfünfundneunzig".
func deJoin(parts []profile.Part, _ *big.Int) string {
	var b strings.Builder
	for _, part := range parts {
		switch {
		case part.Index >= 2:
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			if part.Value == 1 {
				b.WriteString("eine")
			} else {
				b.WriteString(part.Words)
			}
			b.WriteByte(' ')
			b.WriteString(part.Scale)
		case part.Index == 1:
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(part.Words)
			b.WriteString(part.Scale)
		default:
			// Units glue onto a preceding tausend compound; after a
			// Million-word they start a new word.
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "tausend") {
				b.WriteByte(' ')
			}
			b.WriteString(part.Words)
		}
	}
	return b.String()
}

var german = profile.MustNew(profile.Profile{
	Code:     "de",
	Name:     "German",
	Strategy: profile.Segment,

	SegmentWords: deSegmentWords,
	ScaleWord:    deScaleWord,
	JoinSegments: deJoin,

	Ones: [10]string{"null", "eins", "zwei", "drei", "vier",
		"fünf", "sechs", "sieben", "acht", "neun"},

	Zero:       "null",
	Negative:   "minus",
	DecimalSep: "Komma",

	DecimalMode: profile.PerDigitDecimal,
})
