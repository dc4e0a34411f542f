// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conslistvet

import (
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"
)

const ignoreDirective = "conslistvet:ignore"

type ignoreEntry struct {
	pos  token.Pos
	used bool
}

// ignoreMap indexes ignore directives by file name and line.
type ignoreMap map[string]map[int]*ignoreEntry

// buildIgnores scans the comments of every file in the pass.
//
// Supported formats:
//   - //conslistvet:ignore
//   - //conslistvet:ignore - reason
func buildIgnores(pass *analysis.Pass) ignoreMap {
	m := make(ignoreMap)
	for _, file := range pass.Files {
		for _, cg := range file.Comments {
			for _, c := range cg.List {
				if !isIgnoreComment(c.Text) {
					continue
				}
				pos := pass.Fset.Position(c.Pos())
				lines := m[pos.Filename]
				if lines == nil {
					lines = make(map[int]*ignoreEntry)
					m[pos.Filename] = lines
				}
				lines[pos.Line] = &ignoreEntry{pos: c.Pos()}
			}
		}
	}
	return m
}

func isIgnoreComment(text string) bool {
	text = strings.TrimSpace(strings.TrimPrefix(text, "//"))
	rest, ok := strings.CutPrefix(text, ignoreDirective)
	if !ok {
		return false
	}
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// shouldIgnore reports whether a directive sits on line or the line above,
// marking it used.
func (m ignoreMap) shouldIgnore(filename string, line int) bool {
	lines := m[filename]
	for _, l := range []int{line, line - 1} {
		if e := lines[l]; e != nil {
			e.used = true
			return true
		}
	}
	return false
}

func (m ignoreMap) unused() []*ignoreEntry {
	var out []*ignoreEntry
	for _, lines := range m {
		for _, e := range lines {
			if !e.used {
				out = append(out, e)
			}
		}
	}
	return out
}
