// Orchestration: sign prefix, integer phrase, decimal phrase, cleanup.
package n2words

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/forzagreen/n2words-sub002/greedy"
	"github.com/forzagreen/n2words-sub002/internal/chunk"
	"github.com/forzagreen/n2words-sub002/profile"
	"github.com/forzagreen/n2words-sub002/segment"
)

const growOutput = 96 // estimated bytes for a full conversion

// ConvertInput writes a normalized number as words under p. The integer
// phrase comes from the profile's engine; the fractional digits are read
// in the profile's decimal mode; sign and separator wrap the result
// without touching engine internals. The final pass trims, collapses
// whitespace, and applies the profile's cleanup hook.
func ConvertInput(p *profile.Profile, in Input) (string, error) {
	if p == nil {
		return "", fmt.Errorf("n2words: nil profile")
	}
	if in.Int == nil {
		return "", fmt.Errorf("n2words: nil integer part")
	}
	if in.Frac != "" && !chunk.IsDigits(in.Frac) {
		return "", fmt.Errorf("n2words: fractional part %q is not all digits", in.Frac)
	}

	// Zero with no decimals is the zero word, whatever the engine or
	// decimal mode.
	if in.Int.Sign() == 0 && in.Frac == "" {
		return cleanup(p, p.Zero), nil
	}

	intWords, err := integerWords(p, in.Int)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(growOutput)

	if in.Negative {
		if p.Negative == "" {
			return "", fmt.Errorf("n2words: %s: %w: Negative", p.Code, profile.ErrMissingWord)
		}
		b.WriteString(p.Negative)
		b.WriteByte(' ')
	}
	b.WriteString(intWords)

	if in.Frac != "" {
		if p.DecimalSep == "" {
			return "", fmt.Errorf("n2words: %s: %w: DecimalSep", p.Code, profile.ErrMissingWord)
		}
		fracWords, err := decimalWords(p, in.Frac)
		if err != nil {
			return "", err
		}
		b.WriteByte(' ')
		b.WriteString(p.DecimalSep)
		b.WriteByte(' ')
		b.WriteString(fracWords)
	}

	return cleanup(p, b.String()), nil
}

// integerWords dispatches to the profile's engine.
func integerWords(p *profile.Profile, n *big.Int) (string, error) {
	switch p.Strategy {
	case profile.Greedy:
		return greedy.Convert(n, p)
	case profile.Segment:
		return segment.Convert(n, p)
	default:
		return "", fmt.Errorf("n2words: %s: unknown strategy %d", p.Code, p.Strategy)
	}
}

// decimalWords reads the fractional digit string in the profile's decimal
// mode. Grouped mode reads each leading zero individually and the rest as
// one integer; per-digit mode reads every digit through the ones table.
func decimalWords(p *profile.Profile, frac string) (string, error) {
	words := make([]string, 0, len(frac))

	switch p.DecimalMode {
	case profile.PerDigitDecimal:
		for i := 0; i < len(frac); i++ {
			d := frac[i] - '0'
			if p.Ones[d] == "" {
				return "", fmt.Errorf("n2words: %s: %w: Ones[%d]", p.Code, profile.ErrMissingWord, d)
			}
			words = append(words, p.Ones[d])
		}

	case profile.GroupedDecimal:
		zeros, rest := chunk.LeadingZeros(frac)
		zeroWord := p.Ones[0]
		if zeroWord == "" {
			zeroWord = p.Zero
		}
		for i := 0; i < zeros; i++ {
			words = append(words, zeroWord)
		}
		if rest != "" {
			n, err := chunk.FromDigits(rest)
			if err != nil {
				return "", err
			}
			w, err := integerWords(p, n)
			if err != nil {
				return "", err
			}
			words = append(words, w)
		}

	default:
		return "", fmt.Errorf("n2words: %s: unknown decimal mode %d", p.Code, p.DecimalMode)
	}

	return strings.Join(words, " "), nil
}

// cleanup is the final cosmetic pass: collapse whitespace runs, trim, then
// the profile's own idempotent hook.
func cleanup(p *profile.Profile, s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if p.Cleanup != nil {
		s = p.Cleanup(s)
	}
	return s
}
