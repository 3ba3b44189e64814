package ewah

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setAll(positions ...uint64) *Bitmap {
	b := New()
	for _, p := range positions {
		b.Set(p)
	}
	return b
}

func TestScenarioOneSmallSets(t *testing.T) {
	a := setAll(0, 2, 64, 1<<30)
	b := setAll(1, 3, 64, 1<<30)

	require.Equal(t, []uint64{64, 1 << 30}, And(a, b).Positions())
	require.Equal(t, []uint64{0, 1, 2, 3, 64, 1 << 30}, Or(a, b).Positions())
	require.Equal(t, []uint64{0, 1, 2, 3}, Xor(a, b).Positions())
}

func TestScenarioTwoContiguousRunThenNot(t *testing.T) {
	b := New()
	for i := uint64(0); i <= 184; i++ {
		b.Set(i)
	}
	require.Equal(t, uint64(185), b.Cardinality())
	b.Not()
	require.Equal(t, uint64(0), b.Cardinality())
	require.Equal(t, uint64(185), b.LengthInBits())
}

func TestScenarioThreeSingleUnsetBitThenNot(t *testing.T) {
	b := New()
	b.SetLength(1, false)
	b.Not()
	require.Equal(t, uint64(1), b.Cardinality())
	require.Equal(t, uint64(1), b.LengthInBits())
}

func TestScenarioFourSetLengthDefaultTrue(t *testing.T) {
	b := New()
	b.Set(4)
	b.SetLength(6, true)
	require.Equal(t, []uint64{4, 5}, b.Positions())
	require.Equal(t, uint64(6), b.LengthInBits())
}

func TestScenarioFiveLongContiguousRun(t *testing.T) {
	b := New()
	const start = 9_434_560
	const end = 9_435_159 // inclusive, 600 positions
	for i := uint64(start); i <= end; i++ {
		b.Set(i)
	}
	require.Equal(t, uint64(600), b.Cardinality())
	require.Equal(t, b.Positions(), collectViaIterator(b))
}

func TestScenarioSixAndOfManySparseBitmaps(t *testing.T) {
	const n = 1024
	bitmaps := make([]*Bitmap, n)
	for k := 0; k < n; k++ {
		slot := uint64((k + 2*k*k) % 1024)
		bitmaps[k] = setWithinLength(slot, 1024)
	}
	result := bitmaps[0]
	for _, b := range bitmaps[1:] {
		result = And(result, b)
	}
	require.Equal(t, uint64(0), result.Cardinality())
}

func setWithinLength(pos, length uint64) *Bitmap {
	b := New()
	b.Set(pos)
	b.SetLength(length, false)
	return b
}

func TestScenarioSevenIntersectionOfOverlappingRuns(t *testing.T) {
	a := New()
	for i := uint64(39_935); i <= 40_100; i++ {
		a.Set(i)
	}
	b := New()
	for i := uint64(39_935); i <= 39_999; i++ {
		b.Set(i)
	}
	b.Set(270_000)

	inter := And(a, b)
	require.Equal(t, uint64(65), inter.Cardinality())
	require.True(t, Intersects(a, b))
}

func collectViaIterator(b *Bitmap) []uint64 {
	it := b.Iterator()
	var out []uint64
	for it.Next() {
		out = append(out, it.Position())
	}
	return out
}
