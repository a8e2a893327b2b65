package backend

import (
	"io"
	"log/slog"
	"os"

	"github.com/cottand/zed/frontend/ast"
	"github.com/cottand/zed/frontend/ilerr"
	"github.com/cottand/zed/internal/log"
	"github.com/cottand/zed/util"
	"github.com/pkg/errors"
)

// DefaultMaxCallDepth bounds the nesting of function calls when Interpreter.MaxCallDepth is zero
const DefaultMaxCallDepth = 10_000

// Interpreter evaluates files by walking their AST.
// Types are never consulted: every check happens on values, as they are computed.
type Interpreter struct {
	// Stdout receives the output of builtins like print
	Stdout io.Writer
	// Arity decides what happens when a function is called with the wrong number of arguments
	Arity        ilerr.ArityPolicy
	MaxCallDepth int

	// calls holds the names of the functions currently being called, innermost last
	calls util.Stack[string]

	*slog.Logger
}

func NewInterpreter(stdout io.Writer) *Interpreter {
	return &Interpreter{
		Stdout:       stdout,
		MaxCallDepth: DefaultMaxCallDepth,
		Logger:       ast.ExprLogger(log.DefaultLogger).With("section", "eval"),
	}
}

// Call is a single invocation of a Builtin
type Call struct {
	Interp *Interpreter
	// Name is the name of the builtin being called
	Name string
	// At is the range of the application, or the zero range if there is none
	At   ast.Range
	Args []Value
}

// Int returns argument i, or an ilerr.NewBadOperand if it is not an Int
func (c *Call) Int(i int) (int64, error) {
	v, ok := c.Args[i].(Int)
	if !ok {
		return 0, c.BadOperand(i, "an int")
	}
	return int64(v), nil
}

// Bool returns argument i, or an ilerr.NewBadOperand if it is not a Bool
func (c *Call) Bool(i int) (bool, error) {
	v, ok := c.Args[i].(Bool)
	if !ok {
		return false, c.BadOperand(i, "a bool")
	}
	return bool(v), nil
}

func (c *Call) BadOperand(i int, expected string) error {
	return ilerr.New(ilerr.NewBadOperand{
		Positioner: c.At,
		Builtin:    c.Name,
		Index:      i,
		Expected:   expected,
		Value:      c.Args[i].String(),
	})
}

// Run binds every function of file in a new module frame under root,
// and calls the function named entry without arguments.
func (in *Interpreter) Run(file *ast.File, root *Env, entry string) (Value, error) {
	in.init()
	module := root.Child()
	for _, fn := range file.Funcs {
		module.Set(fn.Name, &Closure{Func: fn, Env: module})
	}
	entryFn, ok := file.Lookup(entry)
	if !ok {
		return nil, ilerr.New(ilerr.NewMissingEntry{Positioner: ast.RangeOf(file), Name: entry})
	}
	in.Debug("running", "entry", entry, "functions", len(file.Funcs))
	entryValue, _ := module.Get(entryFn.Name)
	return in.call(ast.RangeOf(entryFn), entryValue.(Callable), nil)
}

// Call applies callee to args, like an application in source code would
func (in *Interpreter) Call(callee Value, args []Value) (Value, error) {
	in.init()
	callable, ok := callee.(Callable)
	if !ok {
		return nil, ilerr.New(ilerr.NewNotCallable{Positioner: ast.Range{}, Kind: Kind(callee), Value: callee.String()})
	}
	return in.call(ast.Range{}, callable, args)
}

func (in *Interpreter) init() {
	if in.Logger == nil {
		in.Logger = ast.ExprLogger(log.DefaultLogger).With("section", "eval")
	}
	if in.Stdout == nil {
		in.Stdout = os.Stdout
	}
	if in.MaxCallDepth <= 0 {
		in.MaxCallDepth = DefaultMaxCallDepth
	}
}

// call is the single invocation path for closures and builtins
func (in *Interpreter) call(at ast.Range, callee Callable, args []Value) (Value, error) {
	args, err := in.matchArity(at, callee, args)
	if err != nil {
		return nil, err
	}
	switch callee := callee.(type) {
	case *Builtin:
		return callee.Fn(&Call{Interp: in, Name: callee.Name, At: at, Args: args})
	case *Closure:
		return in.callClosure(at, callee, args)
	}
	return nil, errors.Errorf("unexpected callable %T", callee)
}

// matchArity applies the arity policy to args
func (in *Interpreter) matchArity(at ast.Range, callee Callable, args []Value) ([]Value, error) {
	expected := callee.ParamCount()
	if len(args) == expected {
		return args, nil
	}
	if in.Arity != ilerr.ArityLenient {
		return nil, ilerr.New(ilerr.NewArityMismatch{
			Positioner: at,
			Name:       callee.CallName(),
			Expected:   expected,
			Got:        len(args),
		})
	}
	caller, _ := in.calls.Peek()
	in.Warn("wrong number of arguments", "callee", callee.CallName(), "caller", caller, "expected", expected, "got", len(args))
	if len(args) > expected {
		return args[:expected], nil
	}
	padded := make([]Value, expected)
	copy(padded, args)
	for i := len(args); i < expected; i++ {
		padded[i] = Absent
	}
	return padded, nil
}

func (in *Interpreter) callClosure(at ast.Range, closure *Closure, args []Value) (Value, error) {
	name := closure.Func.Name
	if in.calls.Len() >= in.MaxCallDepth {
		return nil, ilerr.New(ilerr.NewCallDepthExceeded{Positioner: at, Name: name, Depth: in.MaxCallDepth})
	}
	in.calls.Push(name)
	defer in.calls.Pop()

	frame := closure.Env.Child()
	for i, param := range closure.Func.Params {
		frame.Set(param.Name, args[i])
	}
	in.Debug("call", "function", name, "depth", in.calls.Len())

	result, err := in.execBody(closure.Func, frame)
	if err != nil {
		if ilerr.Is(err, ilerr.CallDepthExceeded) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "in call to %s", name)
	}
	return result, nil
}
