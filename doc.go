// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tagged provides sum-type containers for Go: an optional value
// ([Maybe]), a two-way disjoint union ([Either]) and an operation outcome
// ([Result]).
//
// All containers share one storage discipline. [Storage] holds at most one
// of two payload kinds and trusts its caller completely; each container
// tracks which kind is live and pairs every construction with exactly one
// destruction.
//
// # Payload Lifecycle
//
// Go values need no destructors, but payloads that own resources can opt in
// to lifecycle hooks discovered by interface assertion:
//
//   - [Destroyer]: Destroy runs exactly once when a container drops a payload
//   - [Cloner]: Clone runs wherever a container copies a payload
//
// Moves (Take, MoveFrom, Swap) relocate a payload without running any hook.
//
// # Maybe
//
// Construction and state:
//
//   - [Some], [None]: Constructors; the zero value is empty
//   - [Nothing]: Marker accepted by [Maybe.Assign] to empty a Maybe
//   - [Maybe.HasValue]: Reports the flag
//   - [Maybe.Ptr]: Unchecked fast path; nil when empty
//   - [Maybe.Get], [Maybe.MustGet], [Maybe.ValueOr]: Checked accessors
//
// Value semantics:
//
//   - [Maybe.Clone]: Copy
//   - [Maybe.Take]: Move; the source always ends empty
//   - [Maybe.CopyFrom], [Maybe.MoveFrom]: Assignment
//   - [Maybe.Reset], [Maybe.Swap]
//
// Chaining:
//
//   - [Now]: Consume a Maybe into a continuation returning a Maybe
//   - [AndThenMaybe], [OrElseMaybe]: Continuations returning a Maybe
//   - [Maybe.AndThen], [Maybe.OrElse]: Side-effecting continuations; return the receiver
//   - [MapMaybe]: Functor map
//
// # Either and Result
//
// [Either] holds a Left (value) or a Right (error) and is never empty.
// [Result] is an alias with success/failure naming.
//
//   - [Left], [Right], [Ok], [Err], [Done]: Constructors
//   - [Succeed], [Fail]: Wrappers converted by [FromSuccess] and [FromFailure]
//   - [Either.Value], [Either.Err]: Checked accessors; panic with
//     [ErrBadValueAccess] / [ErrBadErrorAccess] on the wrong side
//   - [Either.TryValue], [Either.TryErr], [Either.GetLeft], [Either.GetRight]: Non-panicking variants
//   - [Either.CopyFrom], [Either.MoveFrom], [Either.SetLeft], [Either.SetRight]:
//     Assignment; always destroy the old alternative first
//   - [Either.Drop]: Destroy the live alternative
//   - [AndThenEither]: Chain on the value; errors short-circuit unchanged
//   - [OrElseEither]: Chain on the error; values pass through unchanged
//   - [MatchEither], [MapEither], [MapErrEither]
//
// # Example
//
//	func parse(s string) tagged.Result[int, string] {
//		n, err := strconv.Atoi(s)
//		if err != nil {
//			return tagged.FromFailure[int](tagged.Fail("bad"))
//		}
//		return tagged.FromSuccess[string](tagged.Succeed(n))
//	}
//
//	r := tagged.AndThenEither(parse("21"), func(n int) tagged.Result[int, string] {
//		return tagged.Ok[int, string](n * 2)
//	})
//	// r.Value() == 42
//
// Containers are single-owner values with no internal locking.
package tagged
