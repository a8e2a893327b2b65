package backend

import (
	"fmt"

	"github.com/cottand/zed/frontend/ast"
	"github.com/cottand/zed/frontend/ilerr"
)

// execBody runs the statements of fn in frame until one of them returns
func (in *Interpreter) execBody(fn *ast.Func, frame *Env) (Value, error) {
	for _, stmt := range fn.Body {
		switch stmt := stmt.(type) {
		case *ast.Return:
			return in.Eval(stmt.Value, frame)
		case *ast.Assign:
			v, err := in.Eval(stmt.Value, frame)
			if err != nil {
				return nil, err
			}
			frame.Set(stmt.Name, v)
		case *ast.Discard:
			if _, err := in.Eval(stmt.Value, frame); err != nil {
				return nil, err
			}
		default:
			panic(fmt.Sprintf("unexpected statement type %T", stmt))
		}
	}
	return Absent, nil
}

// Eval evaluates expr in env.
// The head of an application is evaluated first, then its arguments from left to right.
func (in *Interpreter) Eval(expr ast.Expr, env *Env) (Value, error) {
	switch expr := expr.(type) {
	case *ast.Literal:
		return Int(expr.Value), nil
	case *ast.Ident:
		v, ok := env.Get(expr.Name)
		if !ok {
			return nil, ilerr.New(ilerr.NewUnboundName{Positioner: ast.RangeOf(expr), Name: expr.Name})
		}
		return v, nil
	case *ast.Apply:
		head, err := in.Eval(expr.Head, env)
		if err != nil {
			return nil, err
		}
		args := make([]Value, len(expr.Args))
		for i, arg := range expr.Args {
			if args[i], err = in.Eval(arg, env); err != nil {
				return nil, err
			}
		}
		callee, ok := head.(Callable)
		if !ok {
			return nil, ilerr.New(ilerr.NewNotCallable{
				Positioner: ast.RangeOf(expr.Head),
				Kind:       expr.Head.Describe(),
				Value:      head.String(),
			})
		}
		return in.call(ast.RangeOf(expr), callee, args)
	default:
		panic(fmt.Sprintf("unexpected expression type %T", expr))
	}
}
