// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagged

// Void is the payload of an alternative that carries no data.
type Void = struct{}

// Destroyer is implemented by payloads that release resources when a
// container drops them. Destroy runs exactly once per constructed payload.
type Destroyer interface {
	Destroy()
}

// Cloner is implemented by payloads whose copy is not a plain value copy.
// Containers call Clone wherever they copy a live payload.
type Cloner[T any] interface {
	Clone() T
}

// Storage holds at most one of two payload kinds.
//
// Storage records nothing about which kind is live. The owning container
// tracks that and must pair every Construct with exactly one Destroy of the
// same kind. Accessors never check: reading a kind that is not live returns
// whatever the slot holds, normally its zero value.
//
// Go has no unions, so both slots occupy memory. A zero-size kind such as
// [Void] costs nothing.
type Storage[A, B any] struct {
	a A
	b B
}

// ConstructA places v in the A slot. No payload may be live in the storage.
func (s *Storage[A, B]) ConstructA(v A) { s.a = v }

// ConstructB places v in the B slot. No payload may be live in the storage.
func (s *Storage[A, B]) ConstructB(v B) { s.b = v }

// DestroyA destroys the live A payload and zeroes its slot.
func (s *Storage[A, B]) DestroyA() {
	destroy(&s.a)
	var zero A
	s.a = zero
}

// DestroyB destroys the live B payload and zeroes its slot.
func (s *Storage[A, B]) DestroyB() {
	destroy(&s.b)
	var zero B
	s.b = zero
}

// A returns the A slot.
func (s *Storage[A, B]) A() *A { return &s.a }

// B returns the B slot.
func (s *Storage[A, B]) B() *B { return &s.b }

// releaseA zeroes the A slot without running Destroy.
// Used when ownership of the payload has moved elsewhere.
func (s *Storage[A, B]) releaseA() {
	var zero A
	s.a = zero
}

// releaseB zeroes the B slot without running Destroy.
func (s *Storage[A, B]) releaseB() {
	var zero B
	s.b = zero
}

// destroy runs the Destroy hook of *p when its type has one.
// The pointer method set covers value receivers; the second assertion
// covers payloads that are themselves pointers.
func destroy[T any](p *T) {
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
		return
	}
	if d, ok := any(*p).(Destroyer); ok {
		d.Destroy()
	}
}

// clone copies *p through its Clone hook, or by value without one.
func clone[T any](p *T) T {
	if c, ok := any(p).(Cloner[T]); ok {
		return c.Clone()
	}
	if c, ok := any(*p).(Cloner[T]); ok {
		return c.Clone()
	}
	return *p
}
