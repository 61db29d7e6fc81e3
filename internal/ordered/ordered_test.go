package ordered

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_SetPreservesInsertionOrder(t *testing.T) {
	m := NewMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestMap_SetExistingKeyKeepsPosition(t *testing.T) {
	m := NewMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	m.Set("b", 20)

	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	v, _ := m.Get("b")
	assert.Equal(t, 20, v)
}

func TestMap_DeleteShiftsRemainingEntries(t *testing.T) {
	m := NewMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	assert.True(t, m.Delete("b"))
	assert.False(t, m.Delete("b"))
	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.False(t, m.Has("b"))
}

func TestMap_ReplaceKeyKeepsSlot(t *testing.T) {
	m := NewMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	require.True(t, m.ReplaceKey("b", "renamed"))

	assert.Equal(t, []string{"a", "renamed", "c"}, m.Keys())
	v, ok := m.Get("renamed")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.False(t, m.Has("b"))
}

func TestMap_ReplaceKeyMissingKey(t *testing.T) {
	m := NewMap[int]()
	m.Set("a", 1)

	assert.False(t, m.ReplaceKey("missing", "x"))
	assert.Equal(t, []string{"a"}, m.Keys())
}

func TestMap_ReplaceKeySameName(t *testing.T) {
	m := NewMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)

	assert.True(t, m.ReplaceKey("a", "a"))
	assert.Equal(t, []string{"a", "b"}, m.Keys())
}

func TestMap_ReplaceKeyCollisionKeepsExistingSlot(t *testing.T) {
	m := NewMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	// Renaming c onto a overwrites a's value at a's slot; c's slot is gone.
	require.True(t, m.ReplaceKey("c", "a"))

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, _ := m.Get("a")
	assert.Equal(t, 3, v)
}

func TestMap_EachStopsEarly(t *testing.T) {
	m := NewMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	var seen []string
	m.Each(func(k string, _ int) bool {
		seen = append(seen, k)
		return len(seen) < 2
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestMap_CloneIsIndependent(t *testing.T) {
	m := NewMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)

	clone := m.Clone()
	clone.Set("c", 3)
	clone.ReplaceKey("a", "z")

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, []string{"z", "b", "c"}, clone.Keys())
}
