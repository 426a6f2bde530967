package alloc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memcore/core/count"
)

func TestAllocation_NewIsEmpty(t *testing.T) {
	a := New[string, int64]()
	assert.True(t, a.Capacity().IsZero())
	assert.Empty(t, a.Slice(count.Of64(0)))

	// Releasing an empty allocation is a no-op.
	require.NoError(t, a.MutCapacity(count.Of64(0)))
}

func TestAllocation_MutCapacity(t *testing.T) {
	var a Allocation64[int]

	require.NoError(t, a.MutCapacity(count.Of64(4)))
	assert.Equal(t, count.Of64(4), a.Capacity())
	for i := range 4 {
		require.NoError(t, a.WriteUninitialized(int64(i), i*10))
	}

	// Growing keeps the prefix.
	require.NoError(t, a.MutCapacity(count.Of64(9)))
	assert.Equal(t, count.Of64(9), a.Capacity())
	assert.Equal(t, []int{0, 10, 20, 30}, a.Slice(count.Of64(4)))

	// Same capacity is a no-op.
	require.NoError(t, a.MutCapacity(count.Of64(9)))
	assert.Equal(t, count.Of64(9), a.Capacity())

	// Shrinking keeps what fits.
	require.NoError(t, a.MutCapacity(count.Of64(2)))
	assert.Equal(t, []int{0, 10}, a.Slice(count.Of64(2)))

	require.NoError(t, a.MutCapacity(count.Of64(0)))
	assert.True(t, a.Capacity().IsZero())
}

func TestAllocation_WriteAndReadDestructively(t *testing.T) {
	var a Allocation16[*int]
	require.NoError(t, a.MutCapacity(count.Of16(3)))

	v := 7
	require.NoError(t, a.WriteUninitialized(1, &v))

	got, err := a.ReadDestructively(1)
	require.NoError(t, err)
	assert.Same(t, &v, got)

	// The slot no longer references the value.
	assert.Nil(t, a.Slice(count.Of16(3))[1])
}

func TestAllocation_InvalidOffset(t *testing.T) {
	var a Allocation8[byte]
	require.NoError(t, a.MutCapacity(count.Of8(4)))

	for _, off := range []int64{-1, 4, 100} {
		err := a.WriteUninitialized(off, 1)
		require.ErrorIs(t, err, ErrInvalidOffset, "write offset %d", off)

		_, err = a.ReadDestructively(off)
		require.ErrorIs(t, err, ErrInvalidOffset, "read offset %d", off)
	}

	var empty Allocation64[int]
	require.ErrorIs(t, empty.WriteUninitialized(0, 1), ErrInvalidOffset)
}

func TestAllocation_GrowDoubles(t *testing.T) {
	var a Allocation64[uint32]
	want := []int64{2, 4, 8, 16, 32}
	for _, w := range want {
		require.NoError(t, a.Grow())
		assert.Equal(t, count.Of64(w), a.Capacity())
	}
	require.NoError(t, a.MutCapacity(count.Of64(0)))
}

func TestAllocation_GrowSaturatesThenFails(t *testing.T) {
	var a Allocation8[byte]
	require.NoError(t, a.MutCapacity(count.Of8(100)))

	require.NoError(t, a.Grow())
	assert.Equal(t, count.Max[int8](), a.Capacity())

	err := a.Grow()
	require.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, count.Max[int8](), a.Capacity(), "capacity unchanged on failure")
}

func TestAllocation_OutOfMemoryLeavesCapacity(t *testing.T) {
	var a Allocation64[[1 << 20]byte]
	require.NoError(t, a.MutCapacity(count.Of64(1)))

	err := a.MutCapacity(count.Of64(math.MaxInt64))
	require.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, count.Of64(1), a.Capacity())

	err = a.MutCapacity(count.Max[int64]())
	require.ErrorIs(t, err, ErrOutOfMemory)

	require.NoError(t, a.MutCapacity(count.Of64(0)))
}

func TestAllocation_SlicePastCapacityPanics(t *testing.T) {
	var a Allocation64[int]
	require.NoError(t, a.MutCapacity(count.Of64(2)))
	assert.Panics(t, func() { a.Slice(count.Of64(3)) })
}

func TestHeap_AllocRefusesHugeLengths(t *testing.T) {
	_, err := Heap[uint64]{}.Alloc(math.MaxInt / 4)
	require.ErrorIs(t, err, ErrOutOfMemory)
}
