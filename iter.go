// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conslist

import "iter"

// All returns the linked values from most to least recently linked.
//
// The sequence is lazy and may be ranged over any number of times; each range
// reflects the list as it is when the loop starts. The list is borrowed for
// the whole loop: calling Cons or With on it from the loop body panics with
// [ErrBorrowed].
func (l *List[T]) All() iter.Seq[T] {
	l.owner.check()
	return func(yield func(T) bool) {
		l.walk(func(v *T) bool { return yield(*v) })
	}
}

// AllMut is like [List.All] but yields the values by reference.
func (l *List[T]) AllMut() iter.Seq[*T] {
	l.owner.check()
	return l.walk
}

// walk does not check the owner: iter.Pull runs it on a coroutine of the
// owning goroutine. All, AllMut and Debug check when the view is taken.
func (l *List[T]) walk(yield func(*T) bool) {
	l.borrows++
	defer l.unborrow()
	for i := l.top(); i >= 0; i = l.slots[i].next {
		if !yield(l.slots[i].value) {
			return
		}
	}
}

func (l *List[T]) unborrow() {
	l.borrows--
}

// Cursor returns a cursor positioned at the head of l.
func (l *List[T]) Cursor() Cursor[T] {
	l.owner.check()
	return Cursor[T]{c: l.cursorAt(l.top())}
}

// CursorMut returns a cursor positioned at the head of l that yields
// values by reference.
func (l *List[T]) CursorMut() CursorMut[T] {
	l.owner.check()
	return CursorMut[T]{c: l.cursorAt(l.top())}
}

// Cursor is an explicit single-pass traversal, most recent value first.
// Once Next reports false it keeps reporting false. The zero Cursor is
// exhausted.
type Cursor[T any] struct {
	c cursor[T]
}

// Next returns the value under the cursor and advances it.
// Returns (zero, false) when the traversal is exhausted.
// Panics with [ErrStaleReference] if the value under the cursor has been
// unlinked since the cursor reached it.
func (c *Cursor[T]) Next() (T, bool) {
	v, ok := c.c.next()
	if !ok {
		var zero T
		return zero, false
	}
	return *v, true
}

// CursorMut is a [Cursor] yielding values by reference.
type CursorMut[T any] struct {
	c cursor[T]
}

// Next returns the value under the cursor by reference and advances it.
// See [Cursor.Next].
func (c *CursorMut[T]) Next() (*T, bool) {
	return c.c.next()
}

// cursor is the shared traversal state. A nil list marks the terminal state.
type cursor[T any] struct {
	list  *List[T]
	index int
	epoch uint64
}

func (l *List[T]) cursorAt(i int) cursor[T] {
	if i < 0 {
		return cursor[T]{}
	}
	return cursor[T]{list: l, index: i, epoch: l.slots[i].epoch}
}

func (c *cursor[T]) next() (*T, bool) {
	l := c.list
	if l == nil {
		return nil, false
	}
	l.owner.check()
	if !l.live(c.index, c.epoch) {
		panic(ErrStaleReference)
	}
	s := l.slots[c.index]
	*c = l.cursorAt(s.next)
	return s.value, true
}
