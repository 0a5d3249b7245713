// Package n2words converts numbers into their written-word form in a
// target natural language.
//
// The package provides one public entry point plus a profile registry:
//
//   - Convert turns a number (integer, big integer, or decimal string)
//     into words for a registered language.
//   - ConvertInput is the lower-level orchestrator for callers that
//     already hold a normalized sign/integer/decimal triple.
//   - ParseNumber normalizes a numeric string into that triple.
//   - Register adds a custom language profile; Languages lists codes.
//
// Two engines do the work, selected per language by its profile: a greedy
// scale-table decomposer (package greedy) and a fixed-width digit-group
// converter (package segment). Both are pure functions over immutable
// profiles, so all conversions are safe for concurrent use.
//
// Known limitations:
//
//   - Output is only as complete as a language's scale vocabulary; numbers
//     beyond it return a configuration error naming the missing scale.
//   - Decimal strings keep at most the digits given; no rounding happens.
//   - Words are never parsed back into numbers.
package n2words

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/forzagreen/n2words-sub002/lang"
	"github.com/forzagreen/n2words-sub002/profile"
)

// registry maps language codes to profiles. Built-ins are added at init;
// Register may add more during program setup. Reads after setup are
// lock-free because profiles are immutable.
var registry = make(map[string]*profile.Profile)

func init() {
	for _, p := range lang.All() {
		Register(p)
	}
}

// Register adds a profile under its code, replacing any previous profile
// with the same code. Register is meant for program setup and is not safe
// to call concurrently with conversions.
func Register(p *profile.Profile) {
	registry[strings.ToLower(p.Code)] = p
}

// Profile returns the registered profile for a language code.
func Profile(code string) (*profile.Profile, error) {
	p, ok := registry[strings.ToLower(code)]
	if !ok {
		return nil, fmt.Errorf("n2words: unknown language %q", code)
	}
	return p, nil
}

// Languages returns the registered language codes, sorted.
func Languages() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Convert writes value as words in the given language. value may be an
// int, int64, uint64, *big.Int, float64, or a numeric string with an
// optional sign and a dot or comma decimal separator.
func Convert(langCode string, value any) (string, error) {
	p, err := Profile(langCode)
	if err != nil {
		return "", err
	}
	in, err := normalizeValue(value)
	if err != nil {
		return "", err
	}
	return ConvertInput(p, in)
}

// MustConvert is Convert for statically known inputs; it panics on error.
func MustConvert(langCode string, value any) string {
	s, err := Convert(langCode, value)
	if err != nil {
		panic(err)
	}
	return s
}

func normalizeValue(value any) (Input, error) {
	switch v := value.(type) {
	case int:
		return FromInt64(int64(v)), nil
	case int64:
		return FromInt64(v), nil
	case uint64:
		return Input{Int: new(big.Int).SetUint64(v)}, nil
	case *big.Int:
		return FromBig(v), nil
	case float64:
		return ParseNumber(formatFloat(v))
	case string:
		return ParseNumber(v)
	default:
		return Input{}, fmt.Errorf("n2words: unsupported value type %T", value)
	}
}
