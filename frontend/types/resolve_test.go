package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveUnlinkedVariableIsItself(t *testing.T) {
	f := NewFresher()
	c := NewConstraints()
	c.Link(f.Fresh(), Int)

	for range 10 {
		v := f.Fresh()
		assert.True(t, Equal(v, c.Resolve(v)))
	}
}

func TestResolveThroughChain(t *testing.T) {
	f := NewFresher()
	c := NewConstraints()
	a, b, d := f.Fresh(), f.Fresh(), f.Fresh()

	c.Link(a, b)
	c.Link(b, d)
	c.Link(Int, d)

	assert.True(t, Equal(Int, c.Resolve(a)))
	assert.True(t, Equal(Int, c.Resolve(b)))
	assert.True(t, Equal(Int, c.Resolve(d)))
}

func TestResolveRebuildsConstructors(t *testing.T) {
	f := NewFresher()
	c := NewConstraints()
	p, r := f.Fresh(), f.Fresh()
	c.Link(p, Int)

	assert.Equal(t, "(int) -> unknown", Display(c.Resolve(Fn([]Type{p}, r))))
}

func TestResolveCycleIsUnresolved(t *testing.T) {
	f := NewFresher()
	c := NewConstraints()
	a, b, d := f.Fresh(), f.Fresh(), f.Fresh()

	c.Link(a, b)
	c.Link(b, d)
	c.Link(d, a)

	for _, v := range []Type{a, b, d} {
		resolved, exhausted := c.ResolveWithin(v, DefaultMaxResolveDepth)
		assert.False(t, exhausted)
		assert.True(t, resolved.IsVar())
		assert.True(t, Equal(v, resolved))
	}
}

func TestResolveSelfReferentialFunction(t *testing.T) {
	f := NewFresher()
	c := NewConstraints()
	v := f.Fresh()
	c.Link(v, Fn([]Type{v}, Int))

	resolved := c.Resolve(v)
	assert.Equal(t, "(unknown) -> int", Display(resolved))
}

func TestResolveCycleWithEscape(t *testing.T) {
	f := NewFresher()
	c := NewConstraints()
	a, b := f.Fresh(), f.Fresh()

	c.Link(a, b)
	c.Link(b, a)
	c.Link(b, Bool)

	assert.True(t, Equal(Bool, c.Resolve(a)))
}

func TestResolveDepthBound(t *testing.T) {
	f := NewFresher()
	c := NewConstraints()
	vars := f.FreshN(50)
	for i := 0; i < len(vars)-1; i++ {
		c.Link(vars[i], vars[i+1])
	}
	c.Link(vars[len(vars)-1], Int)

	resolved, exhausted := c.ResolveWithin(vars[0], 10)
	assert.True(t, exhausted)
	assert.True(t, resolved.IsVar())

	resolved, exhausted = c.ResolveWithin(vars[0], DefaultMaxResolveDepth)
	assert.False(t, exhausted)
	assert.True(t, Equal(Int, resolved))
}

// denselyLinked links every pair of n fresh variables
func denselyLinked(f *Fresher, c *Constraints, n int) []Type {
	vars := f.FreshN(n)
	for i := range vars {
		for j := i + 1; j < len(vars); j++ {
			c.Link(vars[i], vars[j])
		}
	}
	return vars
}

func resolveWithTimeout(t *testing.T, c *Constraints, v Type) Type {
	t.Helper()
	done := make(chan Type, 1)
	go func() { done <- c.Resolve(v) }()
	select {
	case resolved := <-done:
		return resolved
	case <-time.After(5 * time.Second):
		t.Fatalf("resolving %s did not finish", v)
		return v
	}
}

func TestResolveDenseUnanchoredVariables(t *testing.T) {
	f := NewFresher()
	c := NewConstraints()
	vars := denselyLinked(f, c, 40)

	for _, v := range []Type{vars[0], vars[20], vars[39]} {
		assert.True(t, Equal(v, resolveWithTimeout(t, c, v)))
	}
}

func TestResolveDenseVariablesAnchoredLast(t *testing.T) {
	f := NewFresher()
	c := NewConstraints()
	vars := denselyLinked(f, c, 40)
	c.Link(vars[0], Int)

	assert.True(t, Equal(Int, resolveWithTimeout(t, c, vars[0])))
	assert.True(t, Equal(Int, resolveWithTimeout(t, c, vars[39])))
}

func TestResolveFailureDuringSearchIsRetried(t *testing.T) {
	f := NewFresher()
	c := NewConstraints()
	a, b := f.Fresh(), f.Fresh()
	// b only reaches int through a, so b fails while a is being resolved
	c.Link(a, b)
	c.Link(a, Int)

	assert.Equal(t, "(int) -> int", Display(c.Resolve(Fn([]Type{a}, b))))
}
