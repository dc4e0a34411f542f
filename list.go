// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conslist

// slot is one link of the chain. It references a caller-owned value and
// the slot that was head before it was pushed.
//
// A slot with epoch 0 is vacant; live slots carry the list epoch current
// at the time of their push.
type slot[T any] struct {
	value *T
	next  int
	epoch uint64
}

// List is an intrusive, non-owning LIFO chain of value references.
//
// Values are linked with [With] or [List.Cons] for exactly the dynamic extent
// of the continuation they run, so nested code sees every value registered by
// its callers, most recent first.
//
// The zero value is an empty list ready to use. A List must not be copied
// after first use and must stay on the goroutine that uses it first.
type List[T any] struct {
	_ noCopy

	slots   []slot[T]
	epoch   uint64
	borrows int
	owner   owner
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len reports the number of values currently linked.
func (l *List[T]) Len() int {
	l.owner.check()
	return len(l.slots)
}

// top returns the index of the head slot, or -1 when the list is empty.
func (l *List[T]) top() int {
	return len(l.slots) - 1
}

// live reports whether slot i is still linked with the given epoch.
func (l *List[T]) live(i int, epoch uint64) bool {
	return i >= 0 && i < len(l.slots) && l.slots[i].epoch == epoch
}

// noCopy makes go vet's copylocks check reject copies of a List.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
