// Package ordered provides a string-keyed map that preserves insertion order.
package ordered

// Map is an insertion-ordered map with string keys. Setting an existing key
// replaces its value in place; new keys are appended. The zero value is not
// usable, construct with NewMap.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

// NewMap returns an empty ordered map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{values: make(map[string]V)}
}

// Set inserts or replaces the value for key. An existing key keeps its
// position; a new key is appended at the end.
func (m *Map[V]) Set(key string, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it is present.
func (m *Map[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key, shifting later entries up so the relative order of the
// remaining entries is unchanged. It reports whether the key was present.
func (m *Map[V]) Delete(key string) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// ReplaceKey renames oldKey to newKey, keeping the value. When newKey is not
// already present the entry stays in oldKey's slot. When newKey already names
// another entry, that entry's slot wins and its value is overwritten, matching
// plain insert semantics; the oldKey slot is removed.
// It reports whether oldKey was present.
func (m *Map[V]) ReplaceKey(oldKey, newKey string) bool {
	value, ok := m.values[oldKey]
	if !ok {
		return false
	}
	if newKey == oldKey {
		return true
	}
	if _, exists := m.values[newKey]; exists {
		m.values[newKey] = value
		m.Delete(oldKey)
		return true
	}
	delete(m.values, oldKey)
	m.values[newKey] = value
	for i, k := range m.keys {
		if k == oldKey {
			m.keys[i] = newKey
			break
		}
	}
	return true
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Map[V]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Each calls fn for every entry in insertion order until fn returns false.
func (m *Map[V]) Each(fn func(key string, value V) bool) {
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Clone returns a shallow copy of the map: key order and value references are
// copied, the values themselves are not.
func (m *Map[V]) Clone() *Map[V] {
	out := &Map[V]{
		keys:   make([]string, len(m.keys)),
		values: make(map[string]V, len(m.values)),
	}
	copy(out.keys, m.keys)
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}
