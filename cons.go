// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conslist

// Cons is bracketed: push → cont → release, where release is deferred so it
// runs on normal return, on panic and on runtime.Goexit alike. An outer
// release cannot run before every inner bracket has released, which keeps
// nesting LIFO without any bookkeeping beyond the slot index.

// With links v as the new head of l, runs cont, and unlinks v before
// returning cont's result or propagating its panic.
//
// v must not be used through any other reference while cont runs.
// After With returns, l is exactly as it was before the call.
func With[T, O any](l *List[T], v *T, cont func(*List[T]) O) O {
	m := l.push(v)
	defer l.release(m)
	return cont(l)
}

// Cons links v as the new head of l for the duration of cont and returns
// cont's error. It is [With] for continuations that only report failure.
func (l *List[T]) Cons(v *T, cont func(*List[T]) error) error {
	m := l.push(v)
	defer l.release(m)
	return cont(l)
}

// mark identifies the slot a push created.
type mark struct {
	index int
	epoch uint64
}

func (l *List[T]) push(v *T) mark {
	l.owner.check()
	if v == nil {
		panic(ErrNilValue)
	}
	if l.borrows > 0 {
		panic(ErrBorrowed)
	}
	l.epoch++
	l.slots = append(l.slots, slot[T]{value: v, next: l.top(), epoch: l.epoch})
	return mark{index: l.top(), epoch: l.epoch}
}

// release restores l to the state it had before the push that produced m.
// Slots at or above m are vacated so no reference to a caller value
// outlives its registering call.
func (l *List[T]) release(m mark) {
	if m.index < len(l.slots) {
		clear(l.slots[m.index:])
		l.slots = l.slots[:m.index]
	}
}
