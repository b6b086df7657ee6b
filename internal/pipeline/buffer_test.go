package pipeline

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// take reads up to n samples.
func take[T any](b *RingBuffer[T], n int) []T {
	dst := make([]T, n)
	return dst[:b.ReadInto(dst)]
}

func TestRingBuffer_FIFO(t *testing.T) {
	b := NewRingBuffer[complex128](4)
	b.Write([]complex128{1, 2, 3})
	assert.Equal(t, 3, b.Available())

	assert.Equal(t, []complex128{1, 2}, take(b, 2))
	b.Write([]complex128{4, 5, 6}) // wraps
	assert.Len(t, b.data, 4)
	assert.Equal(t, []complex128{3, 4, 5, 6}, take(b, 10))
	assert.Equal(t, 0, b.Available())
}

func TestRingBuffer_GrowPreservesOrder(t *testing.T) {
	b := NewRingBuffer[int](4)
	b.Write([]int{0, 1, 2})
	take(b, 2)
	b.Write([]int{3, 4, 5}) // wrapped: 2 3 4 5
	b.Write([]int{6, 7, 8}) // grows

	assert.GreaterOrEqual(t, len(b.data), 7)
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8}, take(b, 100))
}

func TestRingBuffer_ReadInto(t *testing.T) {
	b := NewRingBuffer[float64](3)
	b.Write([]float64{1, 2, 3})
	take(b, 1)
	b.Write([]float64{4})

	dst := make([]float64, 5)
	n := b.ReadInto(dst)
	require.Equal(t, 3, n)
	assert.Equal(t, []float64{2, 3, 4}, dst[:n])
	assert.Equal(t, 0, b.ReadInto(dst))
}

func TestRingBuffer_PartialRead(t *testing.T) {
	b := NewRingBuffer[int](2)
	b.Write([]int{7, 8})
	assert.Equal(t, []int{7}, take(b, 1))
	assert.Equal(t, 1, b.Available())
	assert.Equal(t, []int{8}, take(b, 5))
}

func TestRingBuffer_EmptyAndDegenerate(t *testing.T) {
	b := NewRingBuffer[int](0)
	assert.Len(t, b.data, 1)
	assert.Empty(t, take(b, 3))
	assert.Equal(t, 0, b.ReadInto(nil))

	b.Write(nil)
	b.Write([]int{1, 2, 3})
	b.Clear()
	assert.Equal(t, 0, b.Available())
	assert.Empty(t, take(b, 1))
}

func TestRingBuffer_Concurrent(t *testing.T) {
	b := NewRingBuffer[int](16)
	const writers, perWriter = 4, 1000

	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWriter {
				b.Write([]int{i})
			}
		}()
	}
	wg.Wait()
	assert.Len(t, take(b, writers*perWriter+1), writers*perWriter)
}
