package count

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf_StoresNegation(t *testing.T) {
	assert.Equal(t, int64(0), Of64(0).AsNegated())
	assert.Equal(t, int64(-123), Of64(123).AsNegated())
	assert.Equal(t, int16(-14), Of16(14).AsNegated())
}

func TestOf_NegativePanics(t *testing.T) {
	assert.Panics(t, func() { Of64(-1) })
	assert.Panics(t, func() { Negated[int16](1) })
}

func TestMax_OneExtraValue(t *testing.T) {
	assert.Equal(t, uint64(128), Max[int8]().Uint64())
	assert.Equal(t, uint64(32768), Max[int16]().Uint64())
	assert.Equal(t, uint64(1<<31), Max[int32]().Uint64())
	assert.Equal(t, uint64(1<<63), Max[int64]().Uint64())

	assert.Equal(t, int8(math.MinInt8), Max[int8]().AsNegated())
	assert.Equal(t, Offset(127), Max[int8]().MaxOffset())
	assert.Equal(t, Offset(math.MaxInt64), Max[int64]().MaxOffset())
}

func TestMaxOffsetAndContains(t *testing.T) {
	for v := int64(0); v < 40; v++ {
		c := Of64(v)
		assert.Equal(t, v-1, c.MaxOffset(), "count %d", v)
		for o := int64(-3); o < v+3; o++ {
			assert.Equal(t, o >= 0 && o < v, c.Contains(o), "count %d offset %d", v, o)
		}
	}
}

func TestFromInt(t *testing.T) {
	c, err := FromInt[int8](128)
	require.NoError(t, err)
	assert.Equal(t, Max[int8](), c)

	_, err = FromInt[int8](129)
	require.ErrorIs(t, err, ErrTooHigh)

	_, err = FromInt[int16](-1)
	require.ErrorIs(t, err, ErrNegative)

	c, err = FromInt[int16](32767)
	require.NoError(t, err)
	assert.Equal(t, 32767, c.Int())

	c, err = FromInt[int64](math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxInt), c.Uint64())
}

func TestOrdering(t *testing.T) {
	assert.True(t, Of16(3).Less(Of16(4)))
	assert.False(t, Of16(4).Less(Of16(4)))
	assert.False(t, Max[int16]().Less(Of16(32767)))
	assert.Equal(t, -1, Of64(0).Compare(Of64(1)))
	assert.Equal(t, 0, Of64(7).Compare(Of64(7)))
	assert.Equal(t, 1, Max[int64]().Compare(Of64(math.MaxInt64)))
}

func TestDoubleOrMax(t *testing.T) {
	assert.Equal(t, Of64(1), Of64(0).DoubleOrMax(Of64(1)))
	assert.Equal(t, Of64(246), Of64(123).DoubleOrMax(Of64(2)))
	assert.Equal(t, Of64(2), Of64(0).DoubleOrMax(Of64(2)))
	assert.Equal(t, Of64(10), Of64(3).DoubleOrMax(Of64(10)))

	// 8-bit: 64 doubles exactly to Max, anything above saturates.
	assert.Equal(t, Max[int8](), Of8(64).DoubleOrMax(Of8(1)))
	for v := int8(65); v < math.MaxInt8; v++ {
		assert.Equal(t, Max[int8](), Of8(v).DoubleOrMax(Of8(1)), "value %d", v)
	}
	assert.Equal(t, Max[int8](), Max[int8]().DoubleOrMax(Of8(1)))
	assert.Equal(t, Max[int16](), Of16(16385).DoubleOrMax(Of16(2)))
	assert.Equal(t, Max[int64](), Max[int64]().DoubleOrMax(Of64(2)))
}

func TestIncDec(t *testing.T) {
	assert.Equal(t, Of16(1), Of16(0).Inc())
	assert.Equal(t, Max[int8](), Of8(127).Inc())
	assert.Panics(t, func() { Max[int8]().Inc() })

	assert.Equal(t, Of8(127), Max[int8]().Dec())
	assert.Panics(t, func() { Of64(0).Dec() })
}

func TestAdd(t *testing.T) {
	c, err := Of8(0).Add(128)
	require.NoError(t, err)
	assert.Equal(t, Max[int8](), c)

	_, err = Of8(1).Add(128)
	require.ErrorIs(t, err, ErrTooHigh)

	c, err = Max[int8]().Add(-128)
	require.NoError(t, err)
	assert.True(t, c.IsZero())

	_, err = Of8(3).Add(-4)
	require.ErrorIs(t, err, ErrNegative)

	c, err = Of64(10).Add(-3)
	require.NoError(t, err)
	assert.Equal(t, Of64(7), c)
}

func TestWiden(t *testing.T) {
	assert.Equal(t, Of64(128), Widen(Max[int8]()))
	assert.Equal(t, Of64(14), Widen(Of16(14)))
	assert.Equal(t, Of64(0), Widen(Count32{}))
}

func TestIntOverflowPanics(t *testing.T) {
	assert.Panics(t, func() { _ = Max[int64]().Int() })
	assert.Equal(t, "9223372036854775808", Max[int64]().String())
	assert.Equal(t, "32768", Max[int16]().String())
}
