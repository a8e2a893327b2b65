package ilerr

import (
	"fmt"
	"go/token"
	"testing"

	"github.com/cottand/zed/frontend/ast"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSource struct {
	fSet *token.FileSet
	src  []byte
}

func (s testSource) FileSet() *token.FileSet { return s.fSet }
func (s testSource) Source() []byte          { return s.src }

func newTestSource(src string) (testSource, *token.File) {
	fSet := token.NewFileSet()
	file := fSet.AddFile("test.zed", -1, len(src))
	file.SetLinesForContent([]byte(src))
	return testSource{fSet: fSet, src: []byte(src)}, file
}

func TestFormatWithCodeAndSource(t *testing.T) {
	src, file := newTestSource("fn main() {\n\treturn (f x)\n}\n")
	// x is at offset 23, line 2 column 12
	err := New(NewUnboundName{Positioner: ast.Range{PosStart: file.Pos(23), PosEnd: file.Pos(24)}, Name: "x"})

	formatted := FormatWithCodeAndSource(err, src)
	assert.Equal(t, "test.zed:2:12: (E005) name 'x' is not bound in any enclosing scope\n"+
		"     return (f x)\n"+
		"               ^", formatted)
}

func TestFormatWithoutPosition(t *testing.T) {
	src, _ := newTestSource("")
	err := New(NewMissingEntry{Positioner: ast.Range{}, Name: "main"})

	assert.Equal(t, "(E008) entry function 'main' is not declared", FormatWithCodeAndSource(err, src))
	assert.Equal(t, FormatWithCode(err), FormatWithCodeAndSource(err, nil))
}

func TestIsSeesThroughWrapping(t *testing.T) {
	err := New(NewDivisionByZero{Positioner: ast.Range{}, Builtin: "/"})
	wrapped := errors.Wrapf(errors.Wrapf(err, "in call to %s", "inner"), "in call to %s", "main")

	assert.True(t, Is(wrapped, DivisionByZero))
	assert.False(t, Is(wrapped, BadOperand))
	assert.False(t, Is(fmt.Errorf("plain"), DivisionByZero))
	assert.Equal(t, "in call to main: in call to inner: division by zero in '/'", wrapped.Error())
}

func TestErrorsCollection(t *testing.T) {
	var errs *Errors
	assert.False(t, errs.HasError())
	assert.Nil(t, errs.Err())
	assert.Nil(t, errs.Merge(nil))

	errs = errs.With(New(NewUndefinedVariable{Positioner: ast.Range{}, Name: "a"}))
	errs = errs.Merge(new(Errors).With(New(NewUndefinedVariable{Positioner: ast.Range{}, Name: "b"})))
	require.Len(t, errs.Errors(), 2)
	assert.True(t, Is(errs.Err(), UndefinedVariable))
	assert.Contains(t, errs.Err().Error(), "'b' is not defined")
}

func TestArityPolicyText(t *testing.T) {
	for _, p := range []ArityPolicy{ArityStrict, ArityLenient} {
		text, err := p.MarshalText()
		require.NoError(t, err)
		var parsed ArityPolicy
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, p, parsed)
	}

	parsed, err := ParseArityPolicy("")
	require.NoError(t, err)
	assert.Equal(t, ArityStrict, parsed)

	_, err = ParseArityPolicy("loose")
	assert.ErrorContains(t, err, "unknown arity policy")
	assert.Equal(t, "ArityPolicy(7)", ArityPolicy(7).String())
}
