// Package greedy implements scale decomposition by greedy table matching.
//
// Decompose matches a number against a descending scale table, always
// taking the largest magnitude that fits, and builds a tree of word-value
// leaves. Reduce folds the tree back into a single word set through a
// language's Combine hook. The round trip is value-preserving: the reduced
// value always equals the original input, whatever the hook does to the
// words.
//
// The engine is purely functional and safe for concurrent use.
package greedy

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/forzagreen/n2words-sub002/profile"
)

var bigOne = big.NewInt(1)

// Node is one vertex of a decomposition tree: either a leaf word set or an
// ordered group of child nodes. Groups appear when a multiplier greater
// than one is itself decomposed ("two" before "hundred").
type Node struct {
	Leaf  profile.WordSet
	Group []Node
}

// IsLeaf reports whether n is a leaf word set.
func (n Node) IsLeaf() bool { return n.Group == nil }

func leaf(word string, value *big.Int) Node {
	return Node{Leaf: profile.WordSet{Word: word, Value: value}}
}

// Decompose breaks a non-negative integer into a tree of scale leaves using
// the table. Zero decomposes to the table's zero leaf in a single pass.
// The table must satisfy profile.ScaleTable.Validate and carry a unit
// entry; a table that cannot cover n is a configuration error, not a
// runtime condition.
func Decompose(n *big.Int, table profile.ScaleTable) (Node, error) {
	if len(table) == 0 {
		return Node{}, fmt.Errorf("greedy: %w", profile.ErrTableEmpty)
	}
	if n.Sign() < 0 {
		return Node{}, fmt.Errorf("greedy: negative value %s", n)
	}

	entry, ok := match(n, table)
	if !ok {
		return Node{}, fmt.Errorf("greedy: %w (no entry <= %s)", profile.ErrTableNoZero, n)
	}

	if entry.Value.Sign() == 0 {
		if n.Sign() != 0 {
			return Node{}, fmt.Errorf("greedy: %w (nothing below %s but zero)",
				profile.ErrTableNoUnit, n)
		}
		// The single zero-leaf pass.
		return leaf(entry.Word, new(big.Int)), nil
	}

	// Head covers the matched scale and its multiplier.
	var head Node
	mult := new(big.Int).Quo(n, entry.Value)
	switch {
	case entry.Value.Cmp(bigOne) == 0:
		// The unit entry needs no multiplier leaf.
		head = leaf(entry.Word, big.NewInt(1))
	case mult.Cmp(bigOne) == 0:
		one := table.WordFor(bigOne)
		if one == "" {
			return Node{}, fmt.Errorf("greedy: %w", profile.ErrTableNoUnit)
		}
		head = Node{Group: []Node{
			leaf(one, big.NewInt(1)),
			leaf(entry.Word, entry.Value),
		}}
	default:
		sub, err := Decompose(mult, table)
		if err != nil {
			return Node{}, err
		}
		head = Node{Group: []Node{sub, leaf(entry.Word, entry.Value)}}
	}

	rem := new(big.Int).Mod(n, entry.Value)
	if rem.Sign() == 0 {
		return head, nil
	}

	// The remainder nests as its own group so reduction folds it into a
	// single word set before merging it with the head.
	tail, err := Decompose(rem, table)
	if err != nil {
		return Node{}, err
	}
	return Node{Group: []Node{head, tail}}, nil
}

// match returns the first table entry whose magnitude does not exceed n.
// The table is descending, so this is the largest applicable scale.
func match(n *big.Int, table profile.ScaleTable) (profile.ScaleEntry, bool) {
	for _, e := range table {
		if e.Value.Cmp(n) <= 0 {
			return e, true
		}
	}
	return profile.ScaleEntry{}, false
}

// Reduce folds a decomposition tree into a single word set by merging
// adjacent elements left to right with combine, descending into nested
// groups first. The list shrinks by one element per merge, so termination
// is structural.
func Reduce(n Node, combine profile.CombineFunc) (profile.WordSet, error) {
	if combine == nil {
		return profile.WordSet{}, fmt.Errorf("greedy: %w: Combine", profile.ErrMissingHook)
	}
	return reduce(n, combine)
}

func reduce(n Node, combine profile.CombineFunc) (profile.WordSet, error) {
	if n.IsLeaf() {
		ws := n.Leaf
		if ws.Value == nil {
			return profile.WordSet{}, fmt.Errorf("greedy: leaf %q has nil value", ws.Word)
		}
		return ws, nil
	}
	if len(n.Group) == 0 {
		return profile.WordSet{}, fmt.Errorf("greedy: empty decomposition group")
	}

	acc, err := reduce(n.Group[0], combine)
	if err != nil {
		return profile.WordSet{}, err
	}
	for _, child := range n.Group[1:] {
		next, err := reduce(child, combine)
		if err != nil {
			return profile.WordSet{}, err
		}
		acc = combine(acc, next)
		if acc.Value == nil {
			return profile.WordSet{}, fmt.Errorf("greedy: Combine returned nil value")
		}
	}
	return acc, nil
}

// DefaultCombine is the policy new profiles may start from: a larger
// following value multiplies, anything else adds, and words join with a
// single space. An empty word on either side drops that side's word.
func DefaultCombine(preceding, following profile.WordSet) profile.WordSet {
	value := new(big.Int)
	if following.Value.Cmp(preceding.Value) > 0 {
		value.Mul(preceding.Value, following.Value)
	} else {
		value.Add(preceding.Value, following.Value)
	}

	var word string
	switch {
	case preceding.Word == "":
		word = following.Word
	case following.Word == "":
		word = preceding.Word
	default:
		word = preceding.Word + " " + following.Word
	}
	return profile.WordSet{Word: word, Value: value}
}

// Convert runs the full greedy pipeline for a profile: decompose, reduce,
// trim. Zero returns the profile's zero word directly.
func Convert(n *big.Int, p *profile.Profile) (string, error) {
	if p.Combine == nil {
		return "", fmt.Errorf("greedy: %w: Combine", profile.ErrMissingHook)
	}
	if n.Sign() == 0 {
		return p.Zero, nil
	}
	node, err := Decompose(n, p.Table)
	if err != nil {
		return "", err
	}
	ws, err := Reduce(node, p.Combine)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(ws.Word), nil
}
