// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !conslistdebug

package conslist

// owner confines a list to one goroutine. Release builds rely on the
// conslistvet analyzer and compile the check away; build with
// -tags conslistdebug to check at run time.
type owner struct{}

func (*owner) check() {}
