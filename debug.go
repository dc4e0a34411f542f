// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conslist

import (
	"fmt"
	"io"
)

// Dbg formats the values of a list, most recent first, as a bracketed,
// comma-separated sequence. Each element is formatted with the verb and
// flags Dbg itself is formatted with:
//
//	fmt.Sprintf("%v", l.Debug())  // [c, b, a]
//	fmt.Sprintf("%q", l.Debug())  // ["c", "b", "a"]
//
// A Dbg is valid only while the head it was taken at is still linked.
// Afterwards String panics with [ErrStaleReference]; fmt recovers the same
// panic from Format and prints it in place of the list.
type Dbg[T any] struct {
	list  *List[T]
	index int
	epoch uint64
}

// Debug returns a formatting view of l at its current head.
func (l *List[T]) Debug() Dbg[T] {
	l.owner.check()
	d := Dbg[T]{list: l, index: l.top()}
	if d.index >= 0 {
		d.epoch = l.slots[d.index].epoch
	}
	return d
}

// Format implements [fmt.Formatter].
func (d Dbg[T]) Format(f fmt.State, verb rune) {
	d.check()
	io.WriteString(f, "[")
	if l := d.list; l != nil {
		format := fmt.FormatString(f, verb)
		sep := false
		l.walk(func(v *T) bool {
			if sep {
				io.WriteString(f, ", ")
			}
			sep = true
			fmt.Fprintf(f, format, *v)
			return true
		})
	}
	io.WriteString(f, "]")
}

// String implements [fmt.Stringer] as the %v rendering.
func (d Dbg[T]) String() string {
	d.check()
	return fmt.Sprint(d)
}

func (d Dbg[T]) check() {
	l := d.list
	if l == nil {
		return
	}
	if d.index != l.top() || (d.index >= 0 && !l.live(d.index, d.epoch)) {
		panic(ErrStaleReference)
	}
}
