package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvGetWalksParents(t *testing.T) {
	root := NewRootEnv()
	root.Set("x", Int(1))
	child := root.Child().Child()

	v, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, Int(1), v)

	_, ok = child.Get("y")
	assert.False(t, ok)
}

func TestEnvSetShadowsWithoutMutatingParent(t *testing.T) {
	root := NewRootEnv()
	root.Set("x", Int(1))
	child := root.Child()
	child.Set("x", Int(2))

	v, _ := child.Get("x")
	assert.Equal(t, Int(2), v)
	v, _ = root.Get("x")
	assert.Equal(t, Int(1), v)
	assert.Same(t, root, child.Parent())
}

func TestEnvNames(t *testing.T) {
	env := NewRootEnv().Child()
	env.Set("b", Int(1))
	env.Set("a", Bool(true))
	env.Parent().Set("c", Int(3))

	assert.Equal(t, []string{"a", "b"}, env.Names())
}

func TestValueStrings(t *testing.T) {
	assert.Equal(t, "-3", Int(-3).String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "~", Absent.String())
	assert.Equal(t, "builtin +", (&Builtin{Name: "+"}).String())
}

func TestValueEqual(t *testing.T) {
	b := &Builtin{Name: "f"}
	assert.True(t, Equal(Int(1), Int(1)))
	assert.False(t, Equal(Int(1), Int(2)))
	assert.False(t, Equal(Int(1), Bool(true)))
	assert.True(t, Equal(Bool(false), Bool(false)))
	assert.True(t, Equal(b, b))
	assert.False(t, Equal(b, &Builtin{Name: "f"}))
	assert.True(t, Equal(Absent, Absent))
}
