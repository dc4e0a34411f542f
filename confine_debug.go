// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build conslistdebug

package conslist

import "github.com/petermattis/goid"

// owner binds a list to the goroutine that uses it first. Every accessor
// that hands out a view, read-only ones included, checks the binding.
type owner struct {
	id int64
}

func (o *owner) check() {
	g := goid.Get()
	if o.id == 0 {
		o.id = g
		return
	}
	if o.id != g {
		panic(ErrForeignGoroutine)
	}
}
