// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagged

// Result is the outcome of an operation: a value of type T on success or an
// error of type E on failure. It is an Either with the value on the Left.
//
// Result[Void, E] is an outcome whose success carries no data; only the
// failure alternative stores anything.
type Result[T, E any] = Either[T, E]

// Ok creates a successful Result.
func Ok[T, E any](v T) Result[T, E] {
	return Left[T, E](v)
}

// Err creates a failed Result.
func Err[T, E any](e E) Result[T, E] {
	return Right[T](e)
}

// Done creates a successful Result that carries no value.
func Done[E any]() Result[Void, E] {
	return Left[Void, E](Void{})
}

// Success carries a value on its way into a Result.
type Success[T any] struct {
	v T
}

// Succeed wraps v as a success.
func Succeed[T any](v T) Success[T] {
	return Success[T]{v: v}
}

// Value returns the wrapped value.
func (s Success[T]) Value() T {
	return s.v
}

// Failure carries an error on its way into a Result.
type Failure[E any] struct {
	e E
}

// Fail wraps e as a failure.
func Fail[E any](e E) Failure[E] {
	return Failure[E]{e: e}
}

// Value returns the wrapped error.
func (f Failure[E]) Value() E {
	return f.e
}

// FromSuccess moves the payload of s into the value side of a new Either.
// The error type is given explicitly: FromSuccess[string](Succeed(0)).
func FromSuccess[R, L any](s Success[L]) Either[L, R] {
	return Left[L, R](s.v)
}

// FromFailure moves the payload of f into the error side of a new Either.
// The value type is given explicitly: FromFailure[int](Fail("bad")).
func FromFailure[L, R any](f Failure[R]) Either[L, R] {
	return Right[L](f.e)
}
