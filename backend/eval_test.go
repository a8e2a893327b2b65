package backend_test

import (
	"bytes"
	"testing"

	"github.com/cottand/zed/backend"
	"github.com/cottand/zed/frontend/ilerr"
	"github.com/cottand/zed/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoot(out *bytes.Buffer) *backend.Env {
	root := backend.NewRootEnv()
	root.Set("+", &backend.Builtin{Name: "+", Arity: 2, Fn: func(call *backend.Call) (backend.Value, error) {
		a, err := call.Int(0)
		if err != nil {
			return nil, err
		}
		b, err := call.Int(1)
		if err != nil {
			return nil, err
		}
		return backend.Int(a + b), nil
	}})
	root.Set("print", &backend.Builtin{Name: "print", Arity: 1, Fn: func(call *backend.Call) (backend.Value, error) {
		out.WriteString(call.Args[0].String() + "\n")
		return call.Args[0], nil
	}})
	return root
}

func testRun(t *testing.T, src string, policy ilerr.ArityPolicy) (backend.Value, string, error) {
	t.Helper()
	f, errs := parser.ParseToAST(nil, src)
	require.False(t, errs.HasError(), "parse failed: %v", errs.Err())
	out := &bytes.Buffer{}
	in := backend.NewInterpreter(out)
	in.Arity = policy
	v, err := in.Run(f, testRoot(out), "main")
	return v, out.String(), err
}

func TestEvalLiteral(t *testing.T) {
	v, _, err := testRun(t, `fn main() { return 1 }`, ilerr.ArityStrict)
	require.NoError(t, err)
	assert.Equal(t, backend.Int(1), v)
}

func TestEvalBuiltin(t *testing.T) {
	v, _, err := testRun(t, `fn main() { return (+ 1 41) }`, ilerr.ArityStrict)
	require.NoError(t, err)
	assert.Equal(t, backend.Int(42), v)
}

func TestEvalReturnStopsBody(t *testing.T) {
	v, out, err := testRun(t, `
fn main() {
    (print 1)
    return 2
    (print 3)
}`, ilerr.ArityStrict)
	require.NoError(t, err)
	assert.Equal(t, backend.Int(2), v)
	assert.Equal(t, "1\n", out)
}

func TestEvalNoReturnIsAbsent(t *testing.T) {
	v, _, err := testRun(t, `fn main() { x = 1 }`, ilerr.ArityStrict)
	require.NoError(t, err)
	assert.Equal(t, backend.Absent, v)
}

func TestEvalLocalsShadowParams(t *testing.T) {
	v, _, err := testRun(t, `
fn inc(x) {
    x = (+ x 1)
    return x
}
fn main() {
    x = 10
    y = (inc x)
    return (+ x y)
}`, ilerr.ArityStrict)
	require.NoError(t, err)
	assert.Equal(t, backend.Int(21), v)
}

func TestEvalClosuresSeeModuleFunctions(t *testing.T) {
	v, _, err := testRun(t, `
fn main() { return ((pick) 5) }
fn pick() { return twice }
fn twice(n) { return (+ n n) }
`, ilerr.ArityStrict)
	require.NoError(t, err)
	assert.Equal(t, backend.Int(10), v)
}

func TestEvalCallersFramesAreNotVisible(t *testing.T) {
	_, _, err := testRun(t, `
fn main() {
    secret = 1
    return (peek)
}
fn peek() { return secret }
`, ilerr.ArityStrict)
	require.Error(t, err)
	assert.True(t, ilerr.Is(err, ilerr.UnboundName))
	assert.Contains(t, err.Error(), "in call to peek")
}

func TestEvalArgumentOrder(t *testing.T) {
	_, out, err := testRun(t, `
fn main() { return (+ (print 1) (print 2)) }
`, ilerr.ArityStrict)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		code ilerr.ErrCode
	}{
		{"unbound name", `fn main() { return nope }`, ilerr.UnboundName},
		{"literal head", `fn main() { return (1 2) }`, ilerr.NotCallable},
		{"too many arguments", `fn id(x) { return x } fn main() { return (id 1 2) }`, ilerr.ArityMismatch},
		{"too few builtin arguments", `fn main() { return (+ 1) }`, ilerr.ArityMismatch},
		{"bad operand", `fn f() { return 1 } fn main() { return (+ f 1) }`, ilerr.BadOperand},
		{"unbounded recursion", `fn main() { return (main) }`, ilerr.CallDepthExceeded},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, _, err := testRun(t, c.src, ilerr.ArityStrict)
			require.Error(t, err)
			assert.Nil(t, v)
			assert.True(t, ilerr.Is(err, c.code), "expected E%03d, got %v", c.code, err)
		})
	}
}

func TestEvalMissingEntry(t *testing.T) {
	_, _, err := testRun(t, `fn other() { return 1 }`, ilerr.ArityStrict)
	require.Error(t, err)
	assert.True(t, ilerr.Is(err, ilerr.MissingEntry))
}

func TestEvalLenientArity(t *testing.T) {
	t.Run("excess arguments are dropped", func(t *testing.T) {
		v, _, err := testRun(t, `fn id(x) { return x } fn main() { return (id 1 2) }`, ilerr.ArityLenient)
		require.NoError(t, err)
		assert.Equal(t, backend.Int(1), v)
	})
	t.Run("missing arguments are absent", func(t *testing.T) {
		v, _, err := testRun(t, `fn snd(x, y) { return y } fn main() { return (snd 1) }`, ilerr.ArityLenient)
		require.NoError(t, err)
		assert.Equal(t, backend.Absent, v)
	})
	t.Run("absent operands are rejected by builtins", func(t *testing.T) {
		_, _, err := testRun(t, `fn main() { return (+ 1) }`, ilerr.ArityLenient)
		require.Error(t, err)
		assert.True(t, ilerr.Is(err, ilerr.BadOperand))
	})
}

func TestCall(t *testing.T) {
	f, errs := parser.ParseToAST(nil, `fn main() { return 1 }`)
	require.False(t, errs.HasError())
	in := backend.NewInterpreter(&bytes.Buffer{})
	root := testRoot(&bytes.Buffer{})

	plus, _ := root.Get("+")
	v, err := in.Call(plus, []backend.Value{backend.Int(2), backend.Int(3)})
	require.NoError(t, err)
	assert.Equal(t, backend.Int(5), v)

	_, err = in.Call(backend.Int(2), nil)
	assert.True(t, ilerr.Is(err, ilerr.NotCallable))

	v, err = in.Run(f, root, "main")
	require.NoError(t, err)
	assert.Equal(t, backend.Int(1), v)
}
