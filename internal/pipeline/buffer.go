// Package pipeline provides the sample FIFO that sits between fixed-size
// block generation and arbitrary-size reads.
package pipeline

import (
	"sync"
)

// RingBuffer is a growable circular FIFO of samples.
// It is safe for concurrent use.
type RingBuffer[T any] struct {
	data     []T
	size     int
	readPos  int
	writePos int
	mu       sync.Mutex
}

// NewRingBuffer creates a ring buffer with the given initial capacity.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	return &RingBuffer[T]{data: make([]T, max(capacity, minCapacity))}
}

// Write appends samples, growing the buffer if they do not fit.
func (b *RingBuffer[T]) Write(samples []T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(samples) == 0 {
		return
	}
	if b.size+len(samples) > len(b.data) {
		b.grow(b.size + len(samples))
	}

	// At most two copies: up to the end of storage, then from the start.
	n := copy(b.data[b.writePos:], samples)
	copy(b.data, samples[n:])
	b.writePos = (b.writePos + len(samples)) % len(b.data)
	b.size += len(samples)
}

// ReadInto moves up to len(dst) samples into dst and returns the count.
func (b *RingBuffer[T]) ReadInto(dst []T) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.peekLocked(dst)
	b.readPos = (b.readPos + n) % len(b.data)
	b.size -= n
	return n
}

func (b *RingBuffer[T]) peekLocked(dst []T) int {
	n := min(len(dst), b.size)
	if n == 0 {
		return 0
	}
	end := b.readPos + n
	if end <= len(b.data) {
		copy(dst, b.data[b.readPos:end])
	} else {
		k := copy(dst, b.data[b.readPos:])
		copy(dst[k:n], b.data[:n-k])
	}
	return n
}

// Available returns the number of buffered samples.
func (b *RingBuffer[T]) Available() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Clear drops all buffered samples.
func (b *RingBuffer[T]) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.size = 0
	b.readPos = 0
	b.writePos = 0
}

// grow reallocates to at least need, unwrapping the contents to the front.
func (b *RingBuffer[T]) grow(need int) {
	capacity := len(b.data)
	for capacity < need {
		capacity *= bufferGrowthFactor
	}
	data := make([]T, capacity)
	b.peekLocked(data)

	b.data = data
	b.readPos = 0
	b.writePos = b.size
}
