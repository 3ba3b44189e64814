package ewah

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteToReadFromRoundTrip(t *testing.T) {
	nums := ascendingFixture(99, 800)
	b := New()
	for _, n := range nums {
		b.Set(n)
	}

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	out := New()
	_, err = out.ReadFrom(&buf)
	require.NoError(t, err)
	require.True(t, b.Equal(out))
}

func TestMarshalUnmarshalBinaryRoundTrip(t *testing.T) {
	b := New()
	b.Set(1)
	b.Set(70)
	b.Set(4000)

	data, err := b.MarshalBinary()
	require.NoError(t, err)

	out := New()
	require.NoError(t, out.UnmarshalBinary(data))
	require.True(t, b.Equal(out))
}

func TestReadFromRejectsTruncatedStream(t *testing.T) {
	b := New()
	b.Set(1)
	b.Set(70)
	data, err := b.MarshalBinary()
	require.NoError(t, err)

	out := New()
	err = out.UnmarshalBinary(data[:len(data)-3])
	require.Error(t, err)
}

func TestReadFromRejectsCorruptHeader(t *testing.T) {
	out := New()
	err := out.UnmarshalBinary(make([]byte, headerSize))
	require.Error(t, err)
}
