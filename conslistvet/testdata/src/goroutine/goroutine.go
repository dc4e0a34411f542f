// Package goroutine contains test fixtures for go statements.
package goroutine

import "code.hybscloud.com/conslist"

var shared conslist.List[int]

func consume(l *conslist.List[int]) {}

func run(f func()) { f() }

type visitor struct {
	stack *conslist.List[string]
	depth int
}

type walker struct {
	v     visitor
	trail conslist.List[int]
}

// ===== SHOULD REPORT =====

func badCaptureList(l *conslist.List[int]) {
	go func() { // want `goroutine captures conslist.List "l"`
		_ = l.Len()
	}()
}

func badCaptureListOnce(l *conslist.List[int]) {
	go func() { // want `goroutine captures conslist.List "l"`
		_ = l.Len()
		_, _ = l.Head()
	}()
}

func badCaptureValueList() {
	var l conslist.List[string]
	go func() { // want `goroutine captures conslist.List "l"`
		_ = l.Len()
	}()
}

func badCaptureGlobal() {
	go func() { // want `goroutine captures conslist.List "shared"`
		_ = shared.Len()
	}()
}

func badCaptureCursor(l *conslist.List[int]) {
	c := l.Cursor()
	go func() { // want `goroutine captures conslist.Cursor "c"`
		c.Next()
	}()
}

func badCaptureCursorMut(l *conslist.List[int]) {
	c := l.CursorMut()
	go func() { // want `goroutine captures conslist.CursorMut "c"`
		c.Next()
	}()
}

func badCaptureRef(l *conslist.List[int]) {
	r, _ := l.HeadRef()
	go func() { // want `goroutine captures conslist.Ref "r"`
		_ = r.Get()
	}()
}

func badCaptureDbg(l *conslist.List[int]) {
	d := l.Debug()
	go func() { // want `goroutine captures conslist.Dbg "d"`
		_ = d.String()
	}()
}

func badNestedClosure(l *conslist.List[int]) {
	go func() { // want `goroutine captures conslist.List "l"`
		f := func() int { return l.Len() }
		_ = f()
	}()
}

func badArgument(l *conslist.List[int]) {
	go consume(l) // want `conslist.List passed to goroutine`
}

func badLiteralArgument(l *conslist.List[int]) {
	go func(l *conslist.List[int]) {}(l) // want `conslist.List passed to goroutine`
}

func badCallbackArgument(l *conslist.List[int]) {
	go run(func() { // want `goroutine captures conslist.List "l"`
		_ = l.Len()
	})
}

func badMethod(l *conslist.List[int]) {
	go l.Len() // want `goroutine runs method Len of conslist.List`
}

func badCaptureField(v *visitor) {
	go func() { // want `goroutine captures conslist.List "v.stack"`
		_ = v.stack.Len()
	}()
}

func badCaptureNestedField(w walker) {
	go func() { // want `goroutine captures conslist.List "w.v.stack"`
		_ = w.v.stack.Len()
		_ = w.v.stack.Len()
	}()
}

func badCaptureValueField(w *walker) {
	go func() { // want `goroutine captures conslist.List "w.trail"`
		_ = w.trail.Len()
	}()
}

// ===== SHOULD NOT REPORT =====

func goodCaptureUnconfinedField(v *visitor) {
	go func() {
		_ = v.depth
	}()
}

func goodFieldOfLocal() {
	go func() {
		var v visitor
		_ = v.stack.Len()
	}()
}

func goodOwnList() {
	go func() {
		var l conslist.List[int]
		v := 1
		_ = l.Cons(&v, func(*conslist.List[int]) error { return nil })
	}()
}

func goodCopiedValue(l *conslist.List[int]) {
	h, _ := l.Head()
	go func() {
		_ = h
	}()
}

func goodParameterInsideGoroutine() {
	go func() {
		f := func(l *conslist.List[int]) int { return l.Len() }
		_ = f
	}()
}

func goodSameGoroutine(l *conslist.List[int]) {
	func() {
		_ = l.Len()
	}()
}
