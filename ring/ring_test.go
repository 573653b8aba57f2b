// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPush(t *testing.T) {
	r := New[int](2)

	evicted := r.Push(1)
	require.False(t, evicted.HasValue())
	require.Equal(t, 1, r.Len())

	front := r.Front()
	require.Equal(t, 1, front.MustGet())
}

func TestOverflow(t *testing.T) {
	r := New[int](2)

	var evicted []int
	for i := 0; i < r.Cap()+1; i++ {
		m := r.Push(i)
		if v, ok := m.Get(); ok {
			evicted = append(evicted, v)
		}
	}
	require.Equal(t, []int{0}, evicted)
	require.Equal(t, 2, r.Len())

	expected := 1
	for !r.Empty() {
		m := r.Pop()
		require.Equal(t, expected, m.MustGet())
		expected++
	}
	require.Equal(t, 3, expected)
}

func TestEmptyPop(t *testing.T) {
	r := New[int](2)

	m := r.Pop()
	require.False(t, m.HasValue())
	require.True(t, r.Empty())

	front := r.Front()
	require.False(t, front.HasValue())

	r.Push(1)
	front = r.Front()
	require.Equal(t, 1, front.MustGet())
}

func TestWrapAround(t *testing.T) {
	const N = 3
	r := New[string](N)
	for round := 0; round < 4; round++ {
		r.Push("a")
		r.Push("b")
		a, b := r.Pop(), r.Pop()
		require.Equal(t, "a", a.MustGet())
		require.Equal(t, "b", b.MustGet())
		require.True(t, r.Empty())
	}
}

func TestReset(t *testing.T) {
	r := New[int](4)
	for i := range 4 {
		r.Push(i)
	}
	r.Reset()
	require.True(t, r.Empty())
	r.Push(9)
	front := r.Front()
	require.Equal(t, 9, front.MustGet())
}

func TestNewPanicsOnZeroCapacity(t *testing.T) {
	require.Panics(t, func() { New[int](0) })
}
