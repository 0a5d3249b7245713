// Numeric-input normalization: raw values become a sign/integer/decimal
// triple before any engine runs.
package n2words

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/forzagreen/n2words-sub002/internal/chunk"
)

// Input is the normalized form every conversion consumes: a sign flag, a
// non-negative arbitrary-precision integer part, and the decimal digits as
// written (leading zeros are significant).
type Input struct {
	Negative bool
	Int      *big.Int
	Frac     string
}

// FromInt64 normalizes an int64.
func FromInt64(n int64) Input {
	in := Input{Int: big.NewInt(n)}
	if n < 0 {
		in.Negative = true
		in.Int.Neg(in.Int)
	}
	return in
}

// FromBig normalizes a big integer. The argument is copied, not retained.
func FromBig(n *big.Int) Input {
	in := Input{Int: new(big.Int).Abs(n)}
	in.Negative = n.Sign() < 0
	return in
}

// ParseNumber normalizes a numeric string: optional +/- sign, integer
// digits, and an optional fractional part after a dot or comma. A missing
// integer part (".5") reads as zero. Negative zero ("-0.0") loses its
// sign. Anything else is rejected with a descriptive error.
func ParseNumber(s string) (Input, error) {
	orig := s
	s = strings.TrimSpace(s)
	if s == "" {
		return Input{}, fmt.Errorf("n2words: empty input")
	}

	in := Input{}
	switch s[0] {
	case '-':
		in.Negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole := s
	if idx := strings.IndexAny(s, ".,"); idx >= 0 {
		whole = s[:idx]
		in.Frac = s[idx+1:]
		if in.Frac == "" || !chunk.IsDigits(in.Frac) {
			return Input{}, fmt.Errorf("n2words: bad fractional part in %q", orig)
		}
	}

	if whole == "" {
		whole = "0"
	}
	n, err := chunk.FromDigits(whole)
	if err != nil {
		return Input{}, fmt.Errorf("n2words: bad integer part in %q", orig)
	}
	in.Int = n

	// "-0.0" carries no sign worth speaking.
	if in.Negative && in.Int.Sign() == 0 && allZeros(in.Frac) {
		in.Negative = false
	}
	return in, nil
}

func allZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

// formatFloat renders a float without exponent notation so ParseNumber can
// consume it.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
