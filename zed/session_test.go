package zed

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRemembersDeclarations(t *testing.T) {
	out := &bytes.Buffer{}
	s := NewSession(DefaultConfig(), out)

	shown, err := s.Input(`fn double(x) { return (+ x x) }`)
	require.NoError(t, err)
	assert.Equal(t, "defined double", shown)

	shown, err = s.Input(`(double 21)`)
	require.NoError(t, err)
	assert.Equal(t, "42 : int", shown)

	shown, err = s.Input(`(print (double 2))`)
	require.NoError(t, err)
	assert.Equal(t, "4\n", out.String())
	assert.Equal(t, "4 : int", shown)

	types, err := s.Types()
	require.NoError(t, err)
	assert.Equal(t, "double: (int) -> int\n", types)

	s.Reset()
	types, err = s.Types()
	require.NoError(t, err)
	assert.Empty(t, types)
}

func TestSessionRejectsBadInput(t *testing.T) {
	s := NewSession(DefaultConfig(), &bytes.Buffer{})

	_, err := s.Input(`fn broken( {`)
	assert.Error(t, err)

	_, err = s.Input(`(+ 1`)
	assert.Error(t, err)

	_, err = s.Input(`(missing 1)`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(E005)")

	types, err := s.Types()
	require.NoError(t, err)
	assert.Empty(t, types, "failed declarations are not remembered")

	shown, err := s.Input("   ")
	assert.NoError(t, err)
	assert.Empty(t, shown)
}

func TestIncomplete(t *testing.T) {
	assert.True(t, Incomplete(`fn main() {`))
	assert.True(t, Incomplete(`(+ 1 (* 2`))
	assert.False(t, Incomplete(`fn main() { return 1 }`))
	assert.False(t, Incomplete(`x = 1`))
	assert.False(t, Incomplete(``))
}
