// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conslist

// Head returns a copy of the most recently linked value.
// Returns (zero, false) if no value is linked.
func (l *List[T]) Head() (T, bool) {
	l.owner.check()
	if i := l.top(); i >= 0 {
		return *l.slots[i].value, true
	}
	var zero T
	return zero, false
}

// HeadMut returns the most recently linked value by reference.
// Returns (nil, false) if no value is linked.
//
// The pointer is the caller's own; it must not be retained past the
// continuation it was obtained in. Use [List.HeadRef] when it has to be held.
func (l *List[T]) HeadMut() (*T, bool) {
	l.owner.check()
	if i := l.top(); i >= 0 {
		return l.slots[i].value, true
	}
	return nil, false
}

// HeadRef returns a checked reference to the most recently linked value.
// Returns (Ref{}, false) if no value is linked.
func (l *List[T]) HeadRef() (Ref[T], bool) {
	l.owner.check()
	i := l.top()
	if i < 0 {
		return Ref[T]{}, false
	}
	return Ref[T]{list: l, index: i, epoch: l.slots[i].epoch}, true
}

// Ref is a held reference to a linked value, valid until the call that
// linked the value returns. Every access validates the slot epoch.
//
// The zero Ref is never valid.
type Ref[T any] struct {
	list  *List[T]
	index int
	epoch uint64
}

// Get returns the referenced value.
// Panics with [ErrStaleReference] if the value has been unlinked.
func (r Ref[T]) Get() *T {
	v, ok := r.TryGet()
	if !ok {
		panic(ErrStaleReference)
	}
	return v
}

// TryGet returns (value, true) while the value is linked,
// or (nil, false) once it has been unlinked.
func (r Ref[T]) TryGet() (*T, bool) {
	if r.list == nil {
		return nil, false
	}
	r.list.owner.check()
	if !r.list.live(r.index, r.epoch) {
		return nil, false
	}
	return r.list.slots[r.index].value, true
}

// Valid reports whether the referenced value is still linked.
func (r Ref[T]) Valid() bool {
	_, ok := r.TryGet()
	return ok
}
