// FILE: lixenwraith/mvconfig/multivalue.go
package mvconfig

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// MultiValueMap is an ordered mapping from a key to an ordered sequence of values.
// Keys are case-sensitive and unique; values may repeat. Key order is insertion order.
// A MultiValueMap has no internal synchronization.
type MultiValueMap struct {
	keys   []string            // Keys in insertion order
	values map[string][]string // Maps keys to their values, never nil for a present key
}

// New creates an empty MultiValueMap.
func New() *MultiValueMap {
	return &MultiValueMap{
		values: make(map[string][]string),
	}
}

// NewSingle creates a map holding one key with a single value.
func NewSingle(key, value string) *MultiValueMap {
	m := New()
	m.Add(key, value)
	return m
}

// NewSingleValues creates a map holding one key with the given values.
func NewSingleValues(key string, values []string) *MultiValueMap {
	m := New()
	m.Put(key, values...)
	return m
}

// Values returns a copy of all values stored for key.
// The second return value reports whether the key is present.
func (m *MultiValueMap) Values(key string) ([]string, bool) {
	vals, ok := m.values[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(vals), true
}

// Add appends a value to the key, creating the key if absent.
func (m *MultiValueMap) Add(key, value string) {
	m.init()
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = append(m.values[key], value)
}

// Put replaces all values for key. An existing key keeps its position.
// Calling Put with no values stores an explicitly empty sequence.
func (m *MultiValueMap) Put(key string, values ...string) {
	m.init()
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	stored := make([]string, len(values))
	copy(stored, values)
	m.values[key] = stored
}

// PutInt replaces all values for key with the decimal form of value.
func (m *MultiValueMap) PutInt(key string, value int) {
	m.Put(key, strconv.Itoa(value))
}

// PutBool replaces all values for key with "true" or "false".
func (m *MultiValueMap) PutBool(key string, value bool) {
	m.Put(key, strconv.FormatBool(value))
}

// Remove deletes key and returns the values it held.
func (m *MultiValueMap) Remove(key string) ([]string, bool) {
	vals, ok := m.values[key]
	if !ok {
		return nil, false
	}
	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
	return vals, true
}

// init allows the zero value to be used for writes
func (m *MultiValueMap) init() {
	if m.values == nil {
		m.values = make(map[string][]string)
	}
}

// Has reports whether key is present.
func (m *MultiValueMap) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of keys.
func (m *MultiValueMap) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *MultiValueMap) Keys() []string {
	return slices.Clone(m.keys)
}

// All iterates over keys and their values in insertion order.
// The yielded slices must not be modified.
func (m *MultiValueMap) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Range calls fn for each key in insertion order until fn returns false.
func (m *MultiValueMap) Range(fn func(key string, values []string) bool) {
	for k, v := range m.All() {
		if !fn(k, v) {
			return
		}
	}
}

// Equal reports whether both maps hold the same keys with identical value sequences.
// Key order is not compared.
func (m *MultiValueMap) Equal(other *MultiValueMap) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.values) != len(other.values) {
		return false
	}
	for k, v := range m.values {
		ov, ok := other.values[k]
		if !ok || !slices.Equal(v, ov) {
			return false
		}
	}
	return true
}

// String renders the map one key per line for debugging.
func (m *MultiValueMap) String() string {
	var b strings.Builder
	for k, v := range m.All() {
		b.WriteString(k)
		b.WriteString("=[")
		b.WriteString(strings.Join(v, " "))
		b.WriteString("]\n")
	}
	return b.String()
}
