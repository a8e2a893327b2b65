package backend

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cottand/zed/frontend/ast"
)

// Value is the result of evaluating an expression.
//
// The following values exist:
//
//	Int:      64-bit signed integer
//	Bool:     boolean
//	*Closure: user function, closed over the module frame
//	*Builtin: function implemented in Go
//	Absent:   the value of a function that ends without returning, shown as ~
type Value interface {
	String() string
	valueNode()
}

// Callable is implemented by the values that can be applied to arguments
type Callable interface {
	Value
	// CallName names the callable in diagnostics
	CallName() string
	// ParamCount is the number of arguments the callable expects
	ParamCount() int
}

var (
	_ Value    = Int(0)
	_ Value    = Bool(false)
	_ Value    = Absent
	_ Callable = (*Closure)(nil)
	_ Callable = (*Builtin)(nil)
)

type Int int64

func (Int) valueNode()       {}
func (v Int) String() string { return strconv.FormatInt(int64(v), 10) }

type Bool bool

func (Bool) valueNode()       {}
func (v Bool) String() string { return strconv.FormatBool(bool(v)) }

type absent struct{}

func (absent) valueNode()     {}
func (absent) String() string { return "~" }

// Absent stands for no value: the result of a function whose body ends without a return,
// and of parameters left unbound under ilerr.ArityLenient
var Absent Value = absent{}

// Closure is a function declared in a file, together with the frame it was declared in
type Closure struct {
	Func *ast.Func
	Env  *Env
}

func (*Closure) valueNode() {}
func (c *Closure) String() string {
	return fmt.Sprintf("fn %s(%s)", c.Func.Name, strings.Join(c.Func.ParamNames(), ", "))
}
func (c *Closure) CallName() string { return c.Func.Name }
func (c *Closure) ParamCount() int  { return len(c.Func.Params) }

// Builtin is a function provided by the runtime.
// Fn is only ever called with exactly Arity arguments.
type Builtin struct {
	Name  string
	Arity int
	Fn    func(call *Call) (Value, error)
}

func (*Builtin) valueNode()         {}
func (b *Builtin) String() string   { return "builtin " + b.Name }
func (b *Builtin) CallName() string { return b.Name }
func (b *Builtin) ParamCount() int  { return b.Arity }

// Kind names the kind of v, like int or function
func Kind(v Value) string {
	switch v.(type) {
	case Int:
		return "int"
	case Bool:
		return "bool"
	case Callable:
		return "function"
	case absent:
		return "absent"
	}
	return fmt.Sprintf("%T", v)
}

// Equal compares ints and bools by value, and functions by identity
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Int, Bool, absent:
		return a == b
	case *Closure:
		other, ok := b.(*Closure)
		return ok && a == other
	case *Builtin:
		other, ok := b.(*Builtin)
		return ok && a == other
	}
	return false
}
