// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagged_test

import (
	"testing"

	"code.hybscloud.com/tagged"
)

// BenchmarkMaybeTake measures a move between two Maybes.
func BenchmarkMaybeTake(b *testing.B) {
	m := tagged.Some(1)
	for b.Loop() {
		n := m.Take()
		m.MoveFrom(&n)
	}
}

// BenchmarkMaybeSwap measures swapping two populated Maybes.
func BenchmarkMaybeSwap(b *testing.B) {
	x, y := tagged.Some(1), tagged.Some(2)
	for b.Loop() {
		x.Swap(&y)
	}
}

// BenchmarkMaybeChain measures a chain of ten Now steps.
func BenchmarkMaybeChain(b *testing.B) {
	inc := func(x int) tagged.Maybe[int] { return tagged.Some(x + 1) }
	for b.Loop() {
		m := tagged.Some(0)
		for range 10 {
			m = tagged.Now(m, inc)
		}
		_ = m.MustGet()
	}
}

// BenchmarkEitherChain measures a chain of ten AndThenEither steps.
func BenchmarkEitherChain(b *testing.B) {
	inc := func(x int) tagged.Either[int, string] { return tagged.Left[int, string](x + 1) }
	for b.Loop() {
		e := tagged.Left[int, string](0)
		for range 10 {
			e = tagged.AndThenEither(e, inc)
		}
		_ = e.Value()
	}
}

// BenchmarkEitherShortCircuit measures a chain that fails at the first step.
func BenchmarkEitherShortCircuit(b *testing.B) {
	inc := func(x int) tagged.Either[int, string] { return tagged.Left[int, string](x + 1) }
	for b.Loop() {
		e := tagged.Right[int]("stop")
		for range 10 {
			e = tagged.AndThenEither(e, inc)
		}
		_ = e.Err()
	}
}
