package ewah

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureCount = 2000

func ascendingFixture(seed int64, spread int) []uint64 {
	r := rand.New(rand.NewSource(seed))
	nums := make([]uint64, fixtureCount)
	var bit uint64
	for i := range nums {
		bit += uint64(r.Intn(spread) + 1)
		nums[i] = bit
	}
	return nums
}

func TestSetThenGetAllAscendingPositions(t *testing.T) {
	nums := ascendingFixture(1, 1000)
	b := New()
	for _, n := range nums {
		require.True(t, b.Set(n), "setting %d", n)
	}
	for _, n := range nums {
		require.True(t, b.Get(n), "expected %d set", n)
	}
}

func TestSetRejectsNonAscending(t *testing.T) {
	b := New()
	require.True(t, b.Set(10))
	require.False(t, b.Set(5))
	require.False(t, b.Set(10))
	require.True(t, b.Get(10))
}

func TestGetBeyondLengthIsFalse(t *testing.T) {
	b := New()
	require.True(t, b.Set(5))
	require.False(t, b.Get(1000))
}

func TestCardinalityMatchesPositionsSet(t *testing.T) {
	nums := ascendingFixture(2, 500)
	b := New()
	for _, n := range nums {
		b.Set(n)
	}
	require.Equal(t, uint64(len(nums)), b.Cardinality())
}

func TestCardinalityOverLongRun(t *testing.T) {
	b := New()
	require.True(t, b.Set(0))
	require.True(t, b.Set(1_000_000))
	require.Equal(t, uint64(2), b.Cardinality())
}

func TestCloneIsIndependent(t *testing.T) {
	b := New()
	b.Set(1)
	b.Set(200)
	clone := b.Clone()
	require.True(t, b.Equal(clone))

	b.Set(300)
	require.False(t, b.Equal(clone))
	require.False(t, clone.Get(300))
}

func TestSetLengthInStepsKeepsSameBits(t *testing.T) {
	a := New()
	a.Set(0)
	a.SetLength(128, false)

	b := New()
	b.Set(0)
	b.SetLength(64, false)
	b.SetLength(128, false)

	require.True(t, a.Get(0))
	require.True(t, b.Get(0))
	require.Equal(t, a.Cardinality(), b.Cardinality())
}

func TestHashConsistentWithEqual(t *testing.T) {
	a := New()
	a.Set(5)
	b := a.Clone()
	require.Equal(t, a.Hash(), b.Hash())
}

func TestSetLengthExtendsWithZeros(t *testing.T) {
	b := New()
	b.Set(3)
	require.True(t, b.SetLength(200, false))
	require.Equal(t, uint64(200), b.LengthInBits())
	for i := uint64(4); i < 200; i++ {
		require.False(t, b.Get(i), "bit %d should be unset", i)
	}
}

func TestSetLengthExtendsWithOnes(t *testing.T) {
	b := New()
	b.Set(3)
	require.True(t, b.SetLength(200, true))
	for i := uint64(4); i < 200; i++ {
		require.True(t, b.Get(i), "bit %d should be set", i)
	}
}

func TestSetLengthRefusesToShrink(t *testing.T) {
	b := New()
	b.SetLength(500, false)
	require.False(t, b.SetLength(10, false))
	require.Equal(t, uint64(500), b.LengthInBits())
}

func TestNotFlipsEveryBit(t *testing.T) {
	b := New()
	nums := ascendingFixture(3, 10)
	for _, n := range nums {
		b.Set(n)
	}
	length := b.LengthInBits()
	card := b.Cardinality()

	b.Not()
	require.Equal(t, length, b.LengthInBits())
	require.Equal(t, length-card, b.Cardinality())

	for _, n := range nums {
		require.False(t, b.Get(n))
	}
}

func TestNotTwiceIsIdentity(t *testing.T) {
	b := New()
	nums := ascendingFixture(4, 37)
	for _, n := range nums {
		b.Set(n)
	}
	before := b.Clone()
	b.Not()
	b.Not()
	require.True(t, before.Equal(b))
}

func TestFromPositionsRequiresAscending(t *testing.T) {
	_, err := FromPositions([]uint64{1, 2, 2})
	require.Error(t, err)

	b, err := FromPositions([]uint64{1, 2, 100})
	require.NoError(t, err)
	require.Equal(t, uint64(3), b.Cardinality())
}

func TestAddPartialWordStaysLiteralUnderNegation(t *testing.T) {
	b := New()
	require.True(t, b.Add(0, 30)) // all-zero but only 30 bits significant
	require.Equal(t, uint64(30), b.LengthInBits())
	require.Equal(t, uint64(0), b.Cardinality())

	b.Not()
	require.Equal(t, uint64(30), b.Cardinality())
	for i := uint64(0); i < 30; i++ {
		require.True(t, b.Get(i))
	}
}

func TestAddRejectsSecondPartialWord(t *testing.T) {
	b := New()
	require.True(t, b.Add(1, 10))
	require.False(t, b.Add(1, 10))
}

func TestSetLengthFalseKeepsTailWordSettable(t *testing.T) {
	b := New()
	b.Set(3)
	require.True(t, b.SetLength(70, false))
	require.True(t, b.Set(70))
	require.True(t, b.Get(3))
	require.True(t, b.Get(70))
	require.False(t, b.Get(69))
}

func TestStringDoesNotPanic(t *testing.T) {
	b := New()
	b.Set(1)
	b.Set(1000)
	require.NotEmpty(t, b.String())
}
