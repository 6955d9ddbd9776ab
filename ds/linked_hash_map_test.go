package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkedHashMap_PutIfAbsent(t *testing.T) {
	lhm := NewLinkedHashMap[string, int]()
	assert.Empty(t, lhm.Values())

	assert.True(t, lhm.PutIfAbsent("b", 1))
	assert.True(t, lhm.PutIfAbsent("a", 2))
	assert.False(t, lhm.PutIfAbsent("b", 3))

	assert.Equal(t, map[string]int{"a": 2, "b": 1}, lhm.hashMap)
	assert.Equal(t, []int{1, 2}, lhm.Values())
}
