// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagged

import "fmt"

// Side names the live alternative of an Either.
type Side uint8

const (
	// ValueSide is the left alternative: the value of a Result.
	ValueSide Side = iota
	// ErrorSide is the right alternative: the error of a Result.
	ErrorSide
)

func (s Side) String() string {
	if s == ValueSide {
		return "value"
	}
	return "error"
}

// Either holds exactly one of a Left value (L) or a Right value (R).
//
// Left is the value side and Right the error side; chaining is biased
// toward Left. An Either is never empty: the zero value reads as a Left
// holding the zero L. That zero L was never constructed, so no hook runs
// for it.
//
// Assignment always destroys the old alternative before constructing the
// new one, whether or not the side changes.
type Either[L, R any] struct {
	storage Storage[L, R]
	side    Side
	// owned is set while the live alternative was constructed and not yet
	// destroyed or moved out.
	owned bool
}

// Left creates an Either holding a Left (value) alternative.
func Left[L, R any](v L) Either[L, R] {
	var e Either[L, R]
	e.constructLeft(v)
	return e
}

// Right creates an Either holding a Right (error) alternative.
func Right[L, R any](v R) Either[L, R] {
	var e Either[L, R]
	e.constructRight(v)
	return e
}

func (e *Either[L, R]) constructLeft(v L) {
	e.storage.ConstructA(v)
	e.side = ValueSide
	e.owned = true
}

func (e *Either[L, R]) constructRight(v R) {
	e.storage.ConstructB(v)
	e.side = ErrorSide
	e.owned = true
}

// release gives up the live alternative without running its hook.
func (e *Either[L, R]) release() {
	e.owned = false
	if e.side == ValueSide {
		e.storage.releaseA()
		return
	}
	e.storage.releaseB()
}

// Side reports the live alternative.
func (e Either[L, R]) Side() Side {
	return e.side
}

// HasValue reports whether the Left alternative is live.
func (e Either[L, R]) HasValue() bool {
	return e.side == ValueSide
}

// IsLeft returns true if this is a Left value.
func (e Either[L, R]) IsLeft() bool {
	return e.side == ValueSide
}

// IsRight returns true if this is a Right value.
func (e Either[L, R]) IsRight() bool {
	return e.side == ErrorSide
}

// Value returns the Left value.
// Panics with ErrBadValueAccess if the Right alternative is live.
func (e Either[L, R]) Value() L {
	if e.side != ValueSide {
		panic(ErrBadValueAccess)
	}
	return *e.storage.A()
}

// Err returns the Right value.
// Panics with ErrBadErrorAccess if the Left alternative is live.
func (e Either[L, R]) Err() R {
	if e.side != ErrorSide {
		panic(ErrBadErrorAccess)
	}
	return *e.storage.B()
}

// TryValue returns the Left value, or ErrBadValueAccess.
func (e Either[L, R]) TryValue() (L, error) {
	if e.side != ValueSide {
		var zero L
		return zero, ErrBadValueAccess
	}
	return *e.storage.A(), nil
}

// TryErr returns the Right value, or ErrBadErrorAccess.
func (e Either[L, R]) TryErr() (R, error) {
	if e.side != ErrorSide {
		var zero R
		return zero, ErrBadErrorAccess
	}
	return *e.storage.B(), nil
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[L, R]) GetLeft() (L, bool) {
	if e.side == ValueSide {
		return *e.storage.A(), true
	}
	var zero L
	return zero, false
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[L, R]) GetRight() (R, bool) {
	if e.side == ErrorSide {
		return *e.storage.B(), true
	}
	var zero R
	return zero, false
}

// Clone copies the live alternative. The other alternative stays zero.
// Cloning an Either that owns nothing yields another one on the same side.
func (e Either[L, R]) Clone() Either[L, R] {
	if !e.owned {
		return Either[L, R]{side: e.side}
	}
	if e.side == ValueSide {
		return Left[L, R](clone(e.storage.A()))
	}
	return Right[L](clone(e.storage.B()))
}

// String formats e as Left(v) or Right(v).
func (e Either[L, R]) String() string {
	if e.side == ValueSide {
		return fmt.Sprintf("Left(%v)", *e.storage.A())
	}
	return fmt.Sprintf("Right(%v)", *e.storage.B())
}

// Drop destroys the live alternative. e must not be used afterwards.
// Dropping a zero, dropped or moved-from Either runs no hook.
func (e *Either[L, R]) Drop() {
	if !e.owned {
		return
	}
	e.owned = false
	if e.side == ValueSide {
		e.storage.DestroyA()
		return
	}
	e.storage.DestroyB()
}

// SetLeft replaces the live alternative with a Left value.
func (e *Either[L, R]) SetLeft(v L) {
	e.Drop()
	e.constructLeft(v)
}

// SetRight replaces the live alternative with a Right value.
func (e *Either[L, R]) SetRight(v R) {
	e.Drop()
	e.constructRight(v)
}

// CopyFrom makes e a copy of that.
// The copy is made before the old alternative is destroyed, so a panicking
// Clone hook leaves e unchanged.
func (e *Either[L, R]) CopyFrom(that *Either[L, R]) {
	if e == that {
		return
	}
	if !that.owned {
		e.Drop()
		e.side = that.side
		return
	}
	if that.side == ValueSide {
		e.SetLeft(clone(that.storage.A()))
		return
	}
	e.SetRight(clone(that.storage.B()))
}

// MoveFrom moves the live alternative of that into e.
// that keeps its side with a zeroed payload it no longer owns: no hook runs
// for it, and a later Drop of that is a no-op.
func (e *Either[L, R]) MoveFrom(that *Either[L, R]) {
	if e == that {
		return
	}
	if !that.owned {
		e.Drop()
		e.side = that.side
		return
	}
	if that.side == ValueSide {
		v := *that.storage.A()
		that.release()
		e.SetLeft(v)
		return
	}
	v := *that.storage.B()
	that.release()
	e.SetRight(v)
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.side == ValueSide {
		return onLeft(*e.storage.A())
	}
	return onRight(*e.storage.B())
}

// AndThenEither sequences two Either computations.
// fn runs once with the Left value; a Right short-circuits and is carried
// over unchanged without calling fn.
func AndThenEither[L, R, U any](e Either[L, R], fn func(L) Either[U, R]) Either[U, R] {
	if e.side == ValueSide {
		return fn(*e.storage.A())
	}
	return Right[U](*e.storage.B())
}

// OrElseEither is the Right-side dual of AndThenEither.
// fn runs once with the Right value; a Left is carried over unchanged
// without calling fn.
func OrElseEither[L, R, F any](e Either[L, R], fn func(R) Either[L, F]) Either[L, F] {
	if e.side == ErrorSide {
		return fn(*e.storage.B())
	}
	return Left[L, F](*e.storage.A())
}

// MapEither applies a function to the Left value.
func MapEither[L, R, U any](e Either[L, R], f func(L) U) Either[U, R] {
	if e.side == ValueSide {
		return Left[U, R](f(*e.storage.A()))
	}
	return Right[U](*e.storage.B())
}

// MapErrEither applies a function to the Right value.
func MapErrEither[L, R, F any](e Either[L, R], f func(R) F) Either[L, F] {
	if e.side == ErrorSide {
		return Right[L](f(*e.storage.B()))
	}
	return Left[L, F](*e.storage.A())
}
