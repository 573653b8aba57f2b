// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring provides a fixed-capacity FIFO queue that overwrites its
// oldest item when full.
package ring

import "code.hybscloud.com/tagged"

// Ring is a bounded FIFO queue. Pushing into a full Ring evicts the oldest
// item. A Ring is not safe for concurrent use.
type Ring[T any] struct {
	buf   []T
	read  int
	write int
	size  int
}

// New creates a Ring holding at most capacity items. Panics if capacity < 1.
func New[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		panic(capacity)
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

// Push appends v. When the Ring is full the oldest item is overwritten and
// returned; otherwise the result is empty.
func (r *Ring[T]) Push(v T) tagged.Maybe[T] {
	evicted := tagged.None[T]()
	if r.size == len(r.buf) {
		evicted = tagged.Some(r.buf[r.write])
	}
	r.buf[r.write] = v
	r.write = r.advance(r.write)
	if r.size == len(r.buf) {
		r.read = r.write
	} else {
		r.size++
	}
	return evicted
}

// Pop removes and returns the front item. Popping an empty Ring is a no-op
// that returns an empty Maybe.
func (r *Ring[T]) Pop() tagged.Maybe[T] {
	if r.size == 0 {
		return tagged.None[T]()
	}
	out := tagged.Some(r.buf[r.read])
	var zero T
	r.buf[r.read] = zero
	r.read = r.advance(r.read)
	r.size--
	return out
}

// Front returns the front item without removing it.
func (r *Ring[T]) Front() tagged.Maybe[T] {
	if r.size == 0 {
		return tagged.None[T]()
	}
	return tagged.Some(r.buf[r.read])
}

// Len returns the number of queued items.
func (r *Ring[T]) Len() int { return r.size }

// Cap returns the capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Empty reports whether the Ring holds no items.
func (r *Ring[T]) Empty() bool { return r.size == 0 }

// Reset drops every item.
func (r *Ring[T]) Reset() {
	clear(r.buf)
	r.read, r.write, r.size = 0, 0, 0
}

func (r *Ring[T]) advance(i int) int {
	i++
	if i == len(r.buf) {
		i = 0
	}
	return i
}
