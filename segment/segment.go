// Package segment implements fixed-width digit-group conversion.
//
// Where the greedy engine walks a scale table, this engine hard-codes the
// "groups of N digits" structure that almost all languages share and routes
// every language-specific decision through the profile's hooks: SegmentWords
// for the group text, ScaleWord for the group's scale name, JoinSegments for
// final assembly. Standard grouping is base-1000; South Asian grouping takes
// three digits for the units group and two for every group above it.
//
// The engine is purely functional and safe for concurrent use.
package segment

import (
	"fmt"
	"math/big"

	"github.com/forzagreen/n2words-sub002/internal/chunk"
	"github.com/forzagreen/n2words-sub002/profile"
)

// Convert writes a non-negative integer as words through p's segment hooks.
// Zero returns the profile's zero word. A group index beyond the profile's
// scale vocabulary surfaces as a configuration error identifying the index,
// never as a silently empty scale word.
func Convert(n *big.Int, p *profile.Profile) (string, error) {
	switch {
	case p.SegmentWords == nil:
		return "", fmt.Errorf("segment: %w: SegmentWords", profile.ErrMissingHook)
	case p.ScaleWord == nil:
		return "", fmt.Errorf("segment: %w: ScaleWord", profile.ErrMissingHook)
	case p.JoinSegments == nil:
		return "", fmt.Errorf("segment: %w: JoinSegments", profile.ErrMissingHook)
	}
	if n.Sign() < 0 {
		return "", fmt.Errorf("segment: negative value %s", n)
	}
	if n.Sign() == 0 {
		return p.Zero, nil
	}

	// Fast path: below the first grouping boundary a single hook call
	// suffices, with no big.Int division at all.
	if n.IsInt64() {
		if v := n.Int64(); v < 1000 {
			return p.SegmentWords(v, 0), nil
		}
	}

	segs := chunk.Split(n, p.SouthAsian)

	parts := make([]profile.Part, 0, len(segs))
	for idx := len(segs) - 1; idx >= 0; idx-- {
		seg := segs[idx]
		if seg == 0 {
			continue
		}
		part := profile.Part{
			Index: idx,
			Value: seg,
			Words: p.SegmentWords(seg, idx),
		}
		if idx >= 1 {
			scale, err := p.ScaleWord(idx, seg)
			if err != nil {
				return "", fmt.Errorf("segment: %s: %w", p.Code, err)
			}
			part.Scale = scale
		}
		parts = append(parts, part)
	}

	return p.JoinSegments(parts, n), nil
}

// JoinSpace is the assembly rule most languages start from: each group's
// text followed by its scale word, all separated by single spaces.
func JoinSpace(parts []profile.Part, full *big.Int) string {
	var out []byte
	for _, part := range parts {
		if part.Words == "" && part.Scale == "" {
			continue
		}
		if len(out) > 0 {
			out = append(out, ' ')
		}
		if part.Words != "" {
			out = append(out, part.Words...)
		}
		if part.Scale != "" {
			if part.Words != "" {
				out = append(out, ' ')
			}
			out = append(out, part.Scale...)
		}
	}
	return string(out)
}
