package ast

import (
	"strings"
)

// FileString returns the canonical text of f. Parsing it again yields
// a File that is Equal to f.
func FileString(f *File) string {
	ctx := newShowContext()
	ctx.showFile(f)
	return ctx.String()
}

func FuncString(f *Func) string {
	ctx := newShowContext()
	ctx.showFunc(f)
	return ctx.String()
}

func StmtString(stmt Stmt) string {
	ctx := newShowContext()
	ctx.showStmt(stmt)
	return ctx.String()
}

func ExprString(expr Expr) string {
	ctx := newShowContext()
	ctx.showExprWalker(expr)
	return ctx.String()
}

type showContext struct {
	*strings.Builder
	indent    int
	indentStr string
}

func newShowContext() *showContext {
	return &showContext{
		Builder:   &strings.Builder{},
		indentStr: "    ",
		indent:    0,
	}
}

func (ctx *showContext) currentIndent() string {
	return strings.Repeat(ctx.indentStr, ctx.indent)
}

func (ctx *showContext) showFile(f *File) {
	for i, fn := range f.Funcs {
		if i > 0 {
			ctx.WriteString("\n")
		}
		ctx.showFunc(fn)
		ctx.WriteString("\n")
	}
}

func (ctx *showContext) showFunc(f *Func) {
	ctx.WriteString(ctx.currentIndent())
	ctx.WriteString("fn ")
	ctx.WriteString(f.Name)
	ctx.WriteString("(")
	ctx.WriteString(strings.Join(f.ParamNames(), ", "))
	ctx.WriteString(") {")
	if len(f.Body) == 0 {
		ctx.WriteString("}")
		return
	}
	ctx.WriteString("\n")
	ctx.indent++
	for _, stmt := range f.Body {
		ctx.WriteString(ctx.currentIndent())
		ctx.showStmt(stmt)
		ctx.WriteString("\n")
	}
	ctx.indent--
	ctx.WriteString(ctx.currentIndent())
	ctx.WriteString("}")
}

func (ctx *showContext) showStmt(stmt Stmt) {
	switch stmt := stmt.(type) {
	case *Return:
		ctx.WriteString("return ")
		ctx.showExprWalker(stmt.Value)
	case *Assign:
		ctx.WriteString(stmt.Name)
		ctx.WriteString(" = ")
		ctx.showExprWalker(stmt.Value)
	case *Discard:
		ctx.showExprWalker(stmt.Value)
	default:
		panic("unhandled statement " + stmt.Describe())
	}
}

func (ctx *showContext) showExprWalker(expr Expr) {
	if expr == nil {
		ctx.WriteString("nil")
		return
	}
	switch expr := expr.(type) {
	case AtomicExpr:
		ctx.WriteString(expr.CanonicalSyntax())
	case *Apply:
		ctx.WriteString("(")
		ctx.showExprWalker(expr.Head)
		for _, arg := range expr.Args {
			ctx.WriteString(" ")
			ctx.showExprWalker(arg)
		}
		ctx.WriteString(")")
	default:
		ctx.WriteString("(" + expr.Describe() + ")")
	}
}
