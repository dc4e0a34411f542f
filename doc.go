// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package conslist provides a scoped, intrusive, singly-linked list of
// non-owning value references.
//
// A call frame links a reference to a value it owns for exactly the dynamic
// extent of a continuation. Code nested inside the continuation sees every
// value linked by its callers, most recent first, and the link is removed
// before the linking call returns, however it returns. The list never owns,
// copies or frees the values. Typical uses are diagnostic, visitor and
// context stacks threaded through recursive code.
//
// # Cons
//
// [With] and [List.Cons] link a value, run a continuation, and unlink the
// value on every exit path, including panics and [runtime.Goexit]:
//
//	var l conslist.List[string]
//	a, b := "a", "b"
//	l.Cons(&a, func(l *conslist.List[string]) error {
//		return l.Cons(&b, func(l *conslist.List[string]) error {
//			fmt.Println(l.Debug()) // [b, a]
//			return nil
//		})
//	})
//	// l is empty again
//
// Nesting is LIFO by construction: an outer unlink cannot run until every
// inner continuation, including its own unlink, has finished.
//
// # Access
//
//   - [List.Head]: Copy of the most recent value
//   - [List.HeadMut]: Most recent value by reference
//   - [List.HeadRef]: Checked [Ref] to the most recent value
//   - [List.Len]: Nesting depth
//   - [List.All], [List.AllMut]: Range-over-func traversals
//   - [List.Cursor], [List.CursorMut]: Explicit cursors
//   - [List.Debug]: [Dbg] formatting view
//
// # Storage
//
// Links live in a per-list slot arena indexed by nesting depth. Each link is
// stamped with a monotonically increasing epoch and vacated when its
// registering call returns. Arena capacity is reused, so steady-state cons,
// head and cursor operations do not allocate.
//
// # Contract Checks
//
// Held references ([Ref], [Cursor], [CursorMut], [Dbg]) validate the epoch of
// the link they point at on every access and panic with [ErrStaleReference]
// once that link is gone. Linking while a range loop over the same list is
// active panics with [ErrBorrowed].
//
// # Confinement
//
// A List and everything obtained from it belong to a single goroutine; no
// operation synchronizes. Three layers enforce this:
//
//   - A List embeds a noCopy marker, so go vet rejects copies.
//   - The conslistvet analyzer reports go statements and channel sends that
//     would hand a list, cursor, reference or debug view to another goroutine.
//   - Built with -tags conslistdebug, every accessor checks that it runs on
//     the goroutine that first used the list and panics with
//     [ErrForeignGoroutine] otherwise.
package conslist
