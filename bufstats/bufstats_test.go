package bufstats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wirebyte/bytebuf"
)

func TestRecorderCountsWrites(t *testing.T) {
	require := require.New(t)

	rec := NewRecorder()
	b := Wrap(bytebuf.New(), rec)

	require.NoError(b.WriteBool(true))
	require.NoError(b.WriteByte(0x42))
	require.NoError(b.WriteShort(0x0102))
	require.NoError(b.WriteMedium(0x030405))
	require.NoError(b.WriteBytes([]byte{1, 2, 3, 4, 5}))

	require.EqualValues(5, rec.Writes())
	require.EqualValues(5, rec.MaxWriteSize())
	require.InDelta(2.4, rec.MeanWriteSize(), 0.01)

	// the wrapped buffer behaves like the plain one
	require.Equal(12, b.ReadableBytes())
	v, err := b.ReadBool()
	require.NoError(err)
	require.True(v)
}

func TestRecorderTracksGrowth(t *testing.T) {
	require := require.New(t)

	rec := NewRecorder()
	b := Wrap(bytebuf.New(), rec)

	// first write on a zero capacity buffer must reallocate
	require.NoError(b.WriteByte(1))
	require.EqualValues(1, rec.Growths())
	require.EqualValues(b.Cap(), rec.MaxCapacity())

	// a write that fits does not count as growth
	require.NoError(b.WriteByte(2))
	require.EqualValues(1, rec.Growths())
}

func TestRecorderIgnoresFailedWrites(t *testing.T) {
	require := require.New(t)

	rec := NewRecorder()
	ro := Wrap(bytebuf.NewFromBytes([]byte{1}).AsReadOnly(), rec)

	require.ErrorIs(ro.WriteByte(1), bytebuf.ErrReadOnly)
	require.ErrorIs(ro.WriteBytes([]byte{1, 2}), bytebuf.ErrReadOnly)
	require.EqualValues(0, rec.Writes())
	require.EqualValues(0, rec.Growths())
}

func TestRecorderReset(t *testing.T) {
	require := require.New(t)

	rec := NewRecorder()
	b := Wrap(bytebuf.New(), rec)

	require.NoError(b.WriteShort(7))
	require.EqualValues(1, rec.Writes())

	rec.Reset()
	require.EqualValues(0, rec.Writes())
	require.EqualValues(0, rec.Growths())
}
