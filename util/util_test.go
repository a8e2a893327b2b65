package util

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	var s Stack[string]
	_, ok := s.Peek()
	assert.False(t, ok)

	s.Push("main")
	s.Push("f")
	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, "f", top)
	assert.Equal(t, 2, s.Len())

	popped, _ := s.Pop()
	assert.Equal(t, "f", popped)
	popped, _ = s.Pop()
	assert.Equal(t, "main", popped)
	_, ok = s.Pop()
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(Reverse([]int{1, 2, 3})))
	assert.Empty(t, slices.Collect(Reverse[int](nil)))

	for v := range Reverse([]int{1, 2, 3}) {
		assert.Equal(t, 3, v)
		break
	}
}
