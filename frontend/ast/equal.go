package ast

import "slices"

// Equal reports whether a and b have the same structure, ignoring positions.
// Nodes whose hashes differ are rejected without walking them.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Hash() != b.Hash() {
		return false
	}
	return equal(a, b)
}

func equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch a := a.(type) {
	case *File:
		b, ok := b.(*File)
		return ok && slices.EqualFunc(a.Funcs, b.Funcs, func(x, y *Func) bool { return equal(x, y) })
	case *Func:
		b, ok := b.(*Func)
		return ok &&
			a.Name == b.Name &&
			slices.Equal(a.ParamNames(), b.ParamNames()) &&
			slices.EqualFunc(a.Body, b.Body, func(x, y Stmt) bool { return equal(x, y) })
	case *Param:
		b, ok := b.(*Param)
		return ok && a.Name == b.Name
	case *Return:
		b, ok := b.(*Return)
		return ok && equal(a.Value, b.Value)
	case *Assign:
		b, ok := b.(*Assign)
		return ok && a.Name == b.Name && equal(a.Value, b.Value)
	case *Discard:
		b, ok := b.(*Discard)
		return ok && equal(a.Value, b.Value)
	case *Literal:
		b, ok := b.(*Literal)
		return ok && a.Value == b.Value
	case *Ident:
		b, ok := b.(*Ident)
		return ok && a.Name == b.Name
	case *Apply:
		b, ok := b.(*Apply)
		return ok &&
			equal(a.Head, b.Head) &&
			slices.EqualFunc(a.Args, b.Args, func(x, y Expr) bool { return equal(x, y) })
	default:
		panic("unhandled node " + a.Describe())
	}
}
