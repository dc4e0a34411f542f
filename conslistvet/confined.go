// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conslistvet

import (
	"go/types"
	"strings"
)

// confinedSet holds fully qualified type names ("importpath.Name").
type confinedSet map[string]bool

func defaultConfined() confinedSet {
	s := make(confinedSet)
	for _, name := range []string{"List", "Cursor", "CursorMut", "Ref", "Dbg"} {
		s[ConslistPath+"."+name] = true
	}
	return s
}

// with adds the comma-separated type names in names to s.
func (s confinedSet) with(names string) confinedSet {
	for part := range strings.SplitSeq(names, ",") {
		part = strings.TrimSpace(part)
		if i := strings.LastIndexByte(part, '.'); i > 0 && i < len(part)-1 {
			s[part] = true
		}
	}
	return s
}

// match reports whether t, or the type t points to, is confined. Generic
// types match through their origin. The returned name is qualified by
// package name for diagnostics.
func (s confinedSet) match(t types.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	t = types.Unalias(t)
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}
	n, ok := t.(*types.Named)
	if !ok {
		return "", false
	}
	obj := n.Origin().Obj()
	if obj.Pkg() == nil || !s[obj.Pkg().Path()+"."+obj.Name()] {
		return "", false
	}
	return obj.Pkg().Name() + "." + obj.Name(), true
}
