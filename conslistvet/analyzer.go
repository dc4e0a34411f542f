// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package conslistvet provides a go/analysis based analyzer that reports
// conslist values escaping the goroutine that owns them.
//
// A conslist.List, and every Cursor, CursorMut, Ref and Dbg taken from it,
// is confined to one goroutine. The analyzer reports:
//
//   - go statements whose function literal captures a confined value
//   - go statements that pass a confined value as an argument
//   - go statements that run a method of a confined value
//   - channel sends of a confined value
//
// A finding can be suppressed with a //conslistvet:ignore comment on the
// same or the preceding line.
package conslistvet

import (
	"errors"
	"flag"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// ConslistPath is the import path of the package whose types are confined
// by default.
const ConslistPath = "code.hybscloud.com/conslist"

// Flags for the analyzer.
var (
	extraConfined string
	checkSends    bool
)

func init() {
	Analyzer.Flags.StringVar(&extraConfined, "confined", "",
		"comma-separated list of additional confined types (e.g., example.com/pkg.Type)")
	Analyzer.Flags.BoolVar(&checkSends, "sends", true, "report channel sends of confined values")
}

// Analyzer reports conslist values handed to other goroutines.
var Analyzer = &analysis.Analyzer{
	Name:     "conslistvet",
	Doc:      "reports conslist lists, cursors, references and debug views shared with other goroutines",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
	Flags:    flag.FlagSet{},
}

var errNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, errNoInspector
	}

	c := &checker{
		pass:     pass,
		confined: defaultConfined().with(extraConfined),
		ignores:  buildIgnores(pass),
	}

	nodeFilter := []ast.Node{
		(*ast.GoStmt)(nil),
		(*ast.SendStmt)(nil),
	}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.GoStmt:
			c.checkGoStmt(n)
		case *ast.SendStmt:
			if checkSends {
				c.checkSendStmt(n)
			}
		}
	})

	c.reportUnusedIgnores()
	return nil, nil
}

type checker struct {
	pass     *analysis.Pass
	confined confinedSet
	ignores  ignoreMap
}

func (c *checker) report(node ast.Node, format string, args ...any) {
	pos := c.pass.Fset.Position(node.Pos())
	if c.ignores.shouldIgnore(pos.Filename, pos.Line) {
		return
	}
	c.pass.Reportf(node.Pos(), format, args...)
}

func (c *checker) checkGoStmt(stmt *ast.GoStmt) {
	call := stmt.Call

	switch fun := call.Fun.(type) {
	case *ast.FuncLit:
		c.checkCaptures(stmt, fun)
	case *ast.SelectorExpr:
		if sel, ok := c.pass.TypesInfo.Selections[fun]; ok && sel.Kind() == types.MethodVal {
			if name, ok := c.confined.match(c.pass.TypesInfo.TypeOf(fun.X)); ok {
				c.report(stmt, "goroutine runs method %s of %s", fun.Sel.Name, name)
			}
		}
	}

	for _, arg := range call.Args {
		if lit, ok := arg.(*ast.FuncLit); ok {
			c.checkCaptures(stmt, lit)
			continue
		}
		if name, ok := c.confined.match(c.pass.TypesInfo.TypeOf(arg)); ok {
			c.report(arg, "%s passed to goroutine", name)
		}
	}
}

// checkCaptures reports variables declared outside lit that lit refers to
// and whose type is confined, along with field selections rooted at such
// variables whose field type is confined. Each is reported once per statement.
func (c *checker) checkCaptures(stmt *ast.GoStmt, lit *ast.FuncLit) {
	seen := make(map[string]bool)
	ast.Inspect(lit.Body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Ident:
			v := c.capturedVar(lit, n)
			if v == nil {
				return true
			}
			if name, ok := c.confined.match(v.Type()); ok && !seen[v.Name()] {
				seen[v.Name()] = true
				c.report(stmt, "goroutine captures %s %q", name, v.Name())
			}
		case *ast.SelectorExpr:
			sel, ok := c.pass.TypesInfo.Selections[n]
			if !ok || sel.Kind() != types.FieldVal || c.capturedVar(lit, rootIdent(n)) == nil {
				return true
			}
			if name, ok := c.confined.match(sel.Type()); ok {
				path := types.ExprString(n)
				if !seen[path] {
					seen[path] = true
					c.report(stmt, "goroutine captures %s %q", name, path)
				}
			}
		}
		return true
	})
}

// capturedVar returns the variable id refers to if it is declared outside lit.
func (c *checker) capturedVar(lit *ast.FuncLit, id *ast.Ident) *types.Var {
	if id == nil {
		return nil
	}
	v, ok := c.pass.TypesInfo.Uses[id].(*types.Var)
	if !ok || v.IsField() {
		return nil
	}
	if v.Pos() >= lit.Pos() && v.Pos() < lit.End() {
		return nil
	}
	return v
}

// rootIdent returns the identifier at the root of a selector chain such as
// v.a.b, or nil when the chain is rooted at a call or other expression.
func rootIdent(e ast.Expr) *ast.Ident {
	for {
		switch x := e.(type) {
		case *ast.Ident:
			return x
		case *ast.SelectorExpr:
			e = x.X
		case *ast.ParenExpr:
			e = x.X
		case *ast.StarExpr:
			e = x.X
		default:
			return nil
		}
	}
}

func (c *checker) checkSendStmt(stmt *ast.SendStmt) {
	if name, ok := c.confined.match(c.pass.TypesInfo.TypeOf(stmt.Value)); ok {
		c.report(stmt, "%s sent on channel", name)
	}
}

func (c *checker) reportUnusedIgnores() {
	for _, e := range c.ignores.unused() {
		c.pass.Reportf(e.pos, "unused conslistvet:ignore directive")
	}
}
