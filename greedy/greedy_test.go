package greedy

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forzagreen/n2words-sub002/profile"
)

// toyTable is the English-like table used throughout the engine tests:
// ones, teens, tens, hundred, thousand, zero.
func toyTable(t *testing.T) profile.ScaleTable {
	t.Helper()

	entries := []profile.ScaleEntry{
		profile.Entry(1000, "thousand"),
		profile.Entry(100, "hundred"),
	}
	tens := []string{"ninety", "eighty", "seventy", "sixty", "fifty", "forty", "thirty", "twenty"}
	for i, w := range tens {
		entries = append(entries, profile.Entry(int64(90-10*i), w))
	}
	teens := []string{"nineteen", "eighteen", "seventeen", "sixteen", "fifteen",
		"fourteen", "thirteen", "twelve", "eleven", "ten"}
	for i, w := range teens {
		entries = append(entries, profile.Entry(int64(19-i), w))
	}
	onesWords := []string{"nine", "eight", "seven", "six", "five", "four", "three", "two", "one"}
	for i, w := range onesWords {
		entries = append(entries, profile.Entry(int64(9-i), w))
	}
	entries = append(entries, profile.Entry(0, "zero"))

	tbl, err := profile.NewScaleTable(entries)
	require.NoError(t, err)
	return tbl
}

// toyCombine suppresses the explicit "one" multiplier below one hundred,
// the way English does.
func toyCombine(prev, next profile.WordSet) profile.WordSet {
	if prev.Value.Cmp(big.NewInt(1)) == 0 && next.Value.Cmp(big.NewInt(100)) < 0 {
		return next
	}
	return DefaultCombine(prev, next)
}

func toyProfile(t *testing.T) *profile.Profile {
	t.Helper()
	p, err := profile.New(profile.Profile{
		Code:     "xx",
		Name:     "Toy",
		Strategy: profile.Greedy,
		Table:    toyTable(t),
		Combine:  toyCombine,
		Zero:     "zero",
		Negative: "minus",
	})
	require.NoError(t, err)
	return p
}

func TestConvertScenarios(t *testing.T) {
	t.Parallel()

	p := toyProfile(t)

	cases := []struct {
		input int64
		want  string
	}{
		{0, "zero"},
		{1, "one"},
		{7, "seven"},
		{13, "thirteen"},
		{20, "twenty"},
		{23, "twenty three"},
		{99, "ninety nine"},
		{100, "one hundred"},
		{101, "one hundred one"},
		{300, "three hundred"},
		{342, "three hundred forty two"},
		{1000, "one thousand"},
		{1001, "one thousand one"},
		{8640, "eight thousand six hundred forty"},
		{999999, "nine hundred ninety nine thousand nine hundred ninety nine"},
	}

	for _, tt := range cases {
		got, err := Convert(big.NewInt(tt.input), p)
		require.NoError(t, err, "Convert(%d)", tt.input)
		assert.Equal(t, tt.want, got, "Convert(%d)", tt.input)
	}
}

// A profile that suppresses "one" before every round magnitude, the way
// Turkic languages omit it before hundred and thousand.
func TestConvertImplicitOneSuppression(t *testing.T) {
	t.Parallel()

	table := toyTable(t)
	combine := func(prev, next profile.WordSet) profile.WordSet {
		if prev.Value.Cmp(big.NewInt(1)) == 0 {
			return profile.WordSet{Word: next.Word, Value: next.Value}
		}
		return DefaultCombine(prev, next)
	}
	p, err := profile.New(profile.Profile{
		Code: "yy", Strategy: profile.Greedy, Table: table, Combine: combine, Zero: "zero",
	})
	require.NoError(t, err)

	got, err := Convert(big.NewInt(100), p)
	require.NoError(t, err)
	assert.Equal(t, "hundred", got)

	got, err = Convert(big.NewInt(1000), p)
	require.NoError(t, err)
	assert.Equal(t, "thousand", got)

	got, err = Convert(big.NewInt(2100), p)
	require.NoError(t, err)
	assert.Equal(t, "two thousand hundred", got)
}

func TestDecomposeTree(t *testing.T) {
	t.Parallel()

	table := toyTable(t)

	node, err := Decompose(big.NewInt(23), table)
	require.NoError(t, err)

	want := Node{Group: []Node{
		{Group: []Node{
			{Leaf: profile.WordSet{Word: "one", Value: big.NewInt(1)}},
			{Leaf: profile.WordSet{Word: "twenty", Value: big.NewInt(20)}},
		}},
		{Leaf: profile.WordSet{Word: "three", Value: big.NewInt(3)}},
	}}
	if diff := cmp.Diff(want, node, cmp.Comparer(func(a, b *big.Int) bool {
		return (a == nil) == (b == nil) && (a == nil || a.Cmp(b) == 0)
	})); diff != "" {
		t.Errorf("Decompose(23) tree mismatch (-want +got):\n%s", diff)
	}
}

func TestDecomposeZero(t *testing.T) {
	t.Parallel()

	node, err := Decompose(new(big.Int), toyTable(t))
	require.NoError(t, err)
	require.True(t, node.IsLeaf())
	assert.Equal(t, "zero", node.Leaf.Word)
	assert.Equal(t, 0, node.Leaf.Value.Sign())
}

func TestDecomposeNegative(t *testing.T) {
	t.Parallel()

	_, err := Decompose(big.NewInt(-5), toyTable(t))
	assert.Error(t, err)
}

func TestDecomposeMissingZeroEntry(t *testing.T) {
	t.Parallel()

	// Bypass NewScaleTable to simulate a broken language module.
	table := profile.ScaleTable{
		profile.Entry(100, "hundred"),
		profile.Entry(10, "ten"),
	}
	_, err := Decompose(big.NewInt(5), table)
	assert.ErrorIs(t, err, profile.ErrTableNoZero)

	_, err = Decompose(big.NewInt(5), nil)
	assert.ErrorIs(t, err, profile.ErrTableEmpty)
}

func TestDecomposeMissingUnitEntry(t *testing.T) {
	t.Parallel()

	// Valid per Validate, but unusable for greedy decomposition: without
	// a unit entry the remainder 2 would fall through to the zero entry
	// and a bare ten would get an empty multiplier word.
	table := profile.ScaleTable{
		profile.Entry(10, "ten"),
		profile.Entry(0, "zero"),
	}
	require.NoError(t, table.Validate())

	_, err := Decompose(big.NewInt(2), table)
	assert.ErrorIs(t, err, profile.ErrTableNoUnit)

	_, err = Decompose(big.NewInt(10), table)
	assert.ErrorIs(t, err, profile.ErrTableNoUnit)
}

func TestReduceMissingCombine(t *testing.T) {
	t.Parallel()

	node, err := Decompose(big.NewInt(42), toyTable(t))
	require.NoError(t, err)
	_, err = Reduce(node, nil)
	assert.ErrorIs(t, err, profile.ErrMissingHook)
}

// TestReduceReconstruction feeds random integers through decompose+reduce
// with the default combine policy and checks the reduced value equals the
// input. This is the engine's correctness contract.
func TestReduceReconstruction(t *testing.T) {
	t.Parallel()

	table := toyTable(t)
	rng := rand.New(rand.NewSource(1))

	check := func(n *big.Int) {
		node, err := Decompose(n, table)
		require.NoError(t, err)
		ws, err := Reduce(node, DefaultCombine)
		require.NoError(t, err)
		require.NotNil(t, ws.Value)
		if ws.Value.Cmp(n) != 0 {
			t.Fatalf("reduce(decompose(%s)) = %s (word %q)", n, ws.Value, ws.Word)
		}
	}

	for i := int64(0); i <= 2000; i++ {
		check(big.NewInt(i))
	}
	for i := 0; i < 2000; i++ {
		check(big.NewInt(rng.Int63n(999_999)))
	}
}

func TestDefaultCombine(t *testing.T) {
	t.Parallel()

	ws := func(w string, v int64) profile.WordSet {
		return profile.WordSet{Word: w, Value: big.NewInt(v)}
	}

	got := DefaultCombine(ws("two", 2), ws("hundred", 100))
	assert.Equal(t, "two hundred", got.Word)
	assert.Equal(t, int64(200), got.Value.Int64())

	got = DefaultCombine(ws("twenty", 20), ws("three", 3))
	assert.Equal(t, "twenty three", got.Word)
	assert.Equal(t, int64(23), got.Value.Int64())

	// An empty word means the segment is dropped silently.
	got = DefaultCombine(ws("", 100), ws("five", 5))
	assert.Equal(t, "five", got.Word)
	assert.Equal(t, int64(105), got.Value.Int64())

	got = DefaultCombine(ws("forty", 40), ws("", 2))
	assert.Equal(t, "forty", got.Word)
	assert.Equal(t, int64(42), got.Value.Int64())
}

func TestConvertTrimsOutput(t *testing.T) {
	t.Parallel()

	p := toyProfile(t)
	got, err := Convert(big.NewInt(23), p)
	require.NoError(t, err)
	assert.Equal(t, got, strings.TrimSpace(got))
}
