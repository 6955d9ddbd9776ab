package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_PushPop(t *testing.T) {
	stack := NewStack[string]()
	stack.Push("Engine")
	stack.Push("Level")
	assert.Equal(t, 2, stack.Len())
	assert.Equal(t, "Level", stack.Pop())
	assert.Equal(t, "Engine", stack.Pop())
	assert.Equal(t, 0, stack.Len())
}

func TestStack_Drain(t *testing.T) {
	stack := NewStack[string]()
	assert.Empty(t, stack.Drain())

	stack.Push("Rock01")
	stack.Push("L2Meshes")
	assert.Equal(t, []string{"L2Meshes", "Rock01"}, stack.Drain())
	assert.Equal(t, 0, stack.Len())
}
