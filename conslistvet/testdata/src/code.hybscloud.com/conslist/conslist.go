// Stub package for testing
package conslist

type List[T any] struct{}

func New[T any]() *List[T] { return &List[T]{} }

func (l *List[T]) Len() int                                   { return 0 }
func (l *List[T]) Cons(v *T, cont func(*List[T]) error) error { return cont(l) }
func (l *List[T]) Head() (T, bool)                            { var zero T; return zero, false }
func (l *List[T]) HeadRef() (Ref[T], bool)                    { return Ref[T]{}, false }
func (l *List[T]) Cursor() Cursor[T]                          { return Cursor[T]{} }
func (l *List[T]) CursorMut() CursorMut[T]                    { return CursorMut[T]{} }
func (l *List[T]) Debug() Dbg[T]                              { return Dbg[T]{} }

type Cursor[T any] struct{}

func (c *Cursor[T]) Next() (T, bool) { var zero T; return zero, false }

type CursorMut[T any] struct{}

func (c *CursorMut[T]) Next() (*T, bool) { return nil, false }

type Ref[T any] struct{}

func (r Ref[T]) Get() *T { return nil }

type Dbg[T any] struct{}

func (d Dbg[T]) String() string { return "[]" }
