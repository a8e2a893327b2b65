package zed

import (
	"fmt"
	"math"

	"github.com/cottand/zed/backend"
	"github.com/cottand/zed/frontend/ilerr"
	"github.com/cottand/zed/frontend/types"
)

// Builtin is a name available to every program, with its type scheme and its runtime value
type Builtin struct {
	Name   string
	Scheme types.Type
	Value  backend.Value
}

var (
	schemeVarA = types.Con("a")

	intBinaryScheme  = types.Fn([]types.Type{types.Int, types.Int}, types.Int)
	intUnaryScheme   = types.Fn([]types.Type{types.Int}, types.Int)
	intCompareScheme = types.Fn([]types.Type{types.Int, types.Int}, types.Bool)
	boolBinaryScheme = types.Fn([]types.Type{types.Bool, types.Bool}, types.Bool)
	equalityScheme   = types.NewScheme([]string{schemeVarA.Name}, types.Fn([]types.Type{schemeVarA, schemeVarA}, types.Bool))
	identityScheme   = types.NewScheme([]string{schemeVarA.Name}, types.Fn([]types.Type{schemeVarA}, schemeVarA))
)

// largest int64 whose square fits in an int64
const maxSqrtInt64 = 3037000499

var builtins = []Builtin{
	intBinary("+", func(_ *backend.Call, x, y int64) (int64, error) { return x + y, nil }),
	intBinary("-", func(_ *backend.Call, x, y int64) (int64, error) { return x - y, nil }),
	intBinary("*", func(_ *backend.Call, x, y int64) (int64, error) { return x * y, nil }),
	intBinary("/", func(call *backend.Call, x, y int64) (int64, error) {
		if y == 0 {
			return 0, divisionByZero(call)
		}
		return x / y, nil
	}),
	intBinary("%", func(call *backend.Call, x, y int64) (int64, error) {
		if y == 0 {
			return 0, divisionByZero(call)
		}
		return x % y, nil
	}),
	intBinary("**", func(call *backend.Call, base, exp int64) (int64, error) {
		if exp < 0 {
			return 0, call.BadOperand(1, "a non-negative int")
		}
		result := int64(1)
		for exp > 0 {
			if exp&1 == 1 {
				result *= base
			}
			base *= base
			exp >>= 1
		}
		return result, nil
	}),
	intBinary("min", func(_ *backend.Call, x, y int64) (int64, error) { return min(x, y), nil }),
	intBinary("max", func(_ *backend.Call, x, y int64) (int64, error) { return max(x, y), nil }),

	intUnary("neg", func(_ *backend.Call, x int64) (int64, error) { return -x, nil }),
	intUnary("abs", func(_ *backend.Call, x int64) (int64, error) {
		if x < 0 {
			return -x, nil
		}
		return x, nil
	}),
	intUnary("sqrt", func(call *backend.Call, x int64) (int64, error) {
		if x < 0 {
			return 0, call.BadOperand(0, "a non-negative int")
		}
		root := int64(math.Sqrt(float64(x)))
		for root*root > x {
			root--
		}
		for root+1 <= maxSqrtInt64 && (root+1)*(root+1) <= x {
			root++
		}
		return root, nil
	}),

	intCompare("<", func(x, y int64) bool { return x < y }),
	intCompare(">", func(x, y int64) bool { return x > y }),
	intCompare("<=", func(x, y int64) bool { return x <= y }),
	intCompare(">=", func(x, y int64) bool { return x >= y }),

	fixed("==", equalityScheme, 2, func(call *backend.Call) (backend.Value, error) {
		return backend.Bool(backend.Equal(call.Args[0], call.Args[1])), nil
	}),
	fixed("!=", equalityScheme, 2, func(call *backend.Call) (backend.Value, error) {
		return backend.Bool(!backend.Equal(call.Args[0], call.Args[1])), nil
	}),

	fixed("not", types.Fn([]types.Type{types.Bool}, types.Bool), 1, func(call *backend.Call) (backend.Value, error) {
		x, err := call.Bool(0)
		if err != nil {
			return nil, err
		}
		return backend.Bool(!x), nil
	}),
	boolBinary("and", func(x, y bool) bool { return x && y }),
	boolBinary("or", func(x, y bool) bool { return x || y }),
	{Name: "true", Scheme: types.Bool, Value: backend.Bool(true)},
	{Name: "false", Scheme: types.Bool, Value: backend.Bool(false)},

	fixed("id", identityScheme, 1, func(call *backend.Call) (backend.Value, error) {
		return call.Args[0], nil
	}),
	fixed("print", identityScheme, 1, func(call *backend.Call) (backend.Value, error) {
		if _, err := fmt.Fprintln(call.Interp.Stdout, call.Args[0].String()); err != nil {
			return nil, err
		}
		return call.Args[0], nil
	}),
}

// Builtins returns every builtin, in a fixed order
func Builtins() []Builtin {
	out := make([]Builtin, len(builtins))
	copy(out, builtins)
	return out
}

// TypeEnv returns the schemes of every builtin, by name
func TypeEnv() map[string]types.Type {
	env := make(map[string]types.Type, len(builtins))
	for _, b := range builtins {
		env[b.Name] = b.Scheme
	}
	return env
}

// RootEnv returns a new root frame binding every builtin
func RootEnv() *backend.Env {
	env := backend.NewRootEnv()
	for _, b := range builtins {
		env.Set(b.Name, b.Value)
	}
	return env
}

func fixed(name string, scheme types.Type, arity int, fn func(call *backend.Call) (backend.Value, error)) Builtin {
	return Builtin{
		Name:   name,
		Scheme: scheme,
		Value:  &backend.Builtin{Name: name, Arity: arity, Fn: fn},
	}
}

func intBinary(name string, op func(call *backend.Call, x, y int64) (int64, error)) Builtin {
	return fixed(name, intBinaryScheme, 2, func(call *backend.Call) (backend.Value, error) {
		x, err := call.Int(0)
		if err != nil {
			return nil, err
		}
		y, err := call.Int(1)
		if err != nil {
			return nil, err
		}
		result, err := op(call, x, y)
		if err != nil {
			return nil, err
		}
		return backend.Int(result), nil
	})
}

func intUnary(name string, op func(call *backend.Call, x int64) (int64, error)) Builtin {
	return fixed(name, intUnaryScheme, 1, func(call *backend.Call) (backend.Value, error) {
		x, err := call.Int(0)
		if err != nil {
			return nil, err
		}
		result, err := op(call, x)
		if err != nil {
			return nil, err
		}
		return backend.Int(result), nil
	})
}

func intCompare(name string, op func(x, y int64) bool) Builtin {
	return fixed(name, intCompareScheme, 2, func(call *backend.Call) (backend.Value, error) {
		x, err := call.Int(0)
		if err != nil {
			return nil, err
		}
		y, err := call.Int(1)
		if err != nil {
			return nil, err
		}
		return backend.Bool(op(x, y)), nil
	})
}

func boolBinary(name string, op func(x, y bool) bool) Builtin {
	return fixed(name, boolBinaryScheme, 2, func(call *backend.Call) (backend.Value, error) {
		x, err := call.Bool(0)
		if err != nil {
			return nil, err
		}
		y, err := call.Bool(1)
		if err != nil {
			return nil, err
		}
		return backend.Bool(op(x, y)), nil
	})
}

func divisionByZero(call *backend.Call) error {
	return ilerr.New(ilerr.NewDivisionByZero{Positioner: call.At, Builtin: call.Name})
}
