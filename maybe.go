// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagged

import "fmt"

// NothingT is the type of the [Nothing] marker.
type NothingT struct{}

// Nothing marks the absence of a value. Assigning it empties a Maybe.
var Nothing NothingT

// Maybe holds either one value of type T or nothing.
//
// The zero value is empty. A Maybe owns its payload: dropping a populated
// Maybe through Reset, Assign(Nothing) or the assignment methods runs the
// payload's Destroy hook exactly once. Copies go through Clone; Take and
// MoveFrom relocate the payload without running any hook.
//
// A Maybe is a single-owner value. Concurrent use must be synchronized by
// the caller. Do not copy a populated Maybe with plain assignment when the
// payload has hooks; use Clone or Take so ownership stays unambiguous.
type Maybe[T any] struct {
	storage Storage[T, Void]
	has     bool
}

// Some creates a populated Maybe.
func Some[T any](v T) Maybe[T] {
	var m Maybe[T]
	m.construct(v)
	return m
}

// None creates an empty Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

func (m *Maybe[T]) construct(v T) {
	m.storage.ConstructA(v)
	m.has = true
}

// destroy clears the flag before running the hook so a panicking hook
// leaves the Maybe empty.
func (m *Maybe[T]) destroy() {
	m.has = false
	m.storage.DestroyA()
}

// release empties m without running the hook. The payload now lives elsewhere.
func (m *Maybe[T]) release() {
	m.has = false
	m.storage.releaseA()
}

// HasValue reports whether m holds a value.
func (m *Maybe[T]) HasValue() bool {
	return m.has
}

// Ptr returns a pointer to the live payload, or nil when m is empty.
// It does not check anything beyond the flag; the pointer stays valid until
// the next operation that empties or relocates the payload.
func (m *Maybe[T]) Ptr() *T {
	if !m.has {
		return nil
	}
	return m.storage.A()
}

// Get returns the value and true, or zero and false.
func (m *Maybe[T]) Get() (T, bool) {
	if m.has {
		return *m.storage.A(), true
	}
	var zero T
	return zero, false
}

// MustGet returns the value. Panics with ErrEmpty if m is empty.
func (m *Maybe[T]) MustGet() T {
	if !m.has {
		panic(ErrEmpty)
	}
	return *m.storage.A()
}

// ValueOr returns the value, or def if m is empty.
func (m *Maybe[T]) ValueOr(def T) T {
	if m.has {
		return *m.storage.A()
	}
	return def
}

// Clone returns an independent copy of m.
// The payload is copied through its Clone hook when it has one.
func (m *Maybe[T]) Clone() Maybe[T] {
	if !m.has {
		return Maybe[T]{}
	}
	return Some(clone(m.storage.A()))
}

// Take moves the payload into a new Maybe.
// m is always empty afterwards, whether or not it held a value.
func (m *Maybe[T]) Take() Maybe[T] {
	if !m.has {
		return Maybe[T]{}
	}
	out := Some(*m.storage.A())
	m.release()
	return out
}

// CopyFrom makes m a copy of that.
//
// When both hold values the old payload of m is destroyed and replaced.
// The copy is made before the live slot is touched, so a panicking Clone
// hook leaves m unchanged. When that is empty, m is reset.
func (m *Maybe[T]) CopyFrom(that *Maybe[T]) {
	if m == that {
		return
	}
	switch {
	case m.has && that.has:
		v := clone(that.storage.A())
		m.destroy()
		m.construct(v)
	case that.has:
		m.construct(clone(that.storage.A()))
	default:
		m.Reset()
	}
}

// MoveFrom moves the payload of that into m and empties that.
// When both hold values the old payload of m is destroyed first.
// When that is empty, m is reset.
func (m *Maybe[T]) MoveFrom(that *Maybe[T]) {
	if m == that {
		return
	}
	switch {
	case m.has && that.has:
		v := *that.storage.A()
		that.release()
		m.destroy()
		m.construct(v)
	case that.has:
		m.construct(*that.storage.A())
		that.release()
	default:
		m.Reset()
	}
}

// Assign empties m. It is the assignment form of the Nothing marker.
func (m *Maybe[T]) Assign(NothingT) {
	m.Reset()
}

// Reset destroys the payload if present. Resetting an empty Maybe is a no-op.
func (m *Maybe[T]) Reset() {
	if m.has {
		m.destroy()
	}
}

// Swap exchanges the contents of m and that.
// Two populated sides exchange payloads in place; a single populated side
// relocates its payload to the other. No hooks run.
func (m *Maybe[T]) Swap(that *Maybe[T]) {
	switch {
	case m.has && that.has:
		a, b := m.storage.A(), that.storage.A()
		*a, *b = *b, *a
	case m.has:
		that.construct(*m.storage.A())
		m.release()
	case that.has:
		m.construct(*that.storage.A())
		that.release()
	}
}

// AndThen calls fn with the payload when m holds a value.
// It returns m so side-effecting steps can be chained.
func (m *Maybe[T]) AndThen(fn func(*T)) *Maybe[T] {
	if m.has {
		fn(m.storage.A())
	}
	return m
}

// OrElse calls fn when m is empty. It returns m.
func (m *Maybe[T]) OrElse(fn func()) *Maybe[T] {
	if !m.has {
		fn()
	}
	return m
}

// String formats m as Some(v) or None.
func (m *Maybe[T]) String() string {
	if m.has {
		return fmt.Sprintf("Some(%v)", *m.storage.A())
	}
	return "None"
}

// Now consumes m: when it holds a value, the value is moved into fn and
// fn's result is returned. An empty m yields an empty Maybe[U] and fn is
// not called.
func Now[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if !m.has {
		return None[U]()
	}
	return fn(*m.storage.A())
}

// AndThenMaybe calls fn with a pointer to the payload of m and returns its
// result. An empty m yields an empty Maybe[U] and fn is not called.
func AndThenMaybe[T, U any](m *Maybe[T], fn func(*T) Maybe[U]) Maybe[U] {
	if !m.has {
		return None[U]()
	}
	return fn(m.storage.A())
}

// OrElseMaybe returns fn() when m is empty, and a copy of m otherwise.
func OrElseMaybe[T any](m *Maybe[T], fn func() Maybe[T]) Maybe[T] {
	if !m.has {
		return fn()
	}
	return m.Clone()
}

// MapMaybe applies f to the value of m.
func MapMaybe[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if !m.has {
		return None[U]()
	}
	return Some(f(*m.storage.A()))
}
