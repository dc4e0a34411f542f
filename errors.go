// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conslist

import "errors"

// Contract violations are reported by panicking with one of these values.
// None of them is a transient condition; recover only to report.
var (
	// ErrStaleReference is raised when a Ref, Cursor or Dbg is used after the
	// call that linked its value has returned.
	ErrStaleReference = errors.New("conslist: stale reference")

	// ErrBorrowed is raised by Cons while a range loop over the list is active.
	ErrBorrowed = errors.New("conslist: list borrowed by an active traversal")

	// ErrNilValue is raised when a nil value reference is linked.
	ErrNilValue = errors.New("conslist: nil value")

	// ErrForeignGoroutine is raised, in conslistdebug builds, when a list is
	// used from a goroutine other than the one that first used it.
	ErrForeignGoroutine = errors.New("conslist: list used outside its owning goroutine")
)
