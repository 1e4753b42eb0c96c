// Package shortcut stores the declarative shortcut bindings of the application.
package shortcut

// Multimap maps each key to an ordered set of values. Keys and values keep
// their insertion order; adding a value twice under the same key is a no-op.
type Multimap[K comparable, V comparable] struct {
	keys   []K
	values map[K][]V
	index  map[K]map[V]struct{}
}

// NewMultimap creates an empty multimap.
func NewMultimap[K comparable, V comparable]() *Multimap[K, V] {
	return &Multimap[K, V]{
		values: make(map[K][]V),
		index:  make(map[K]map[V]struct{}),
	}
}

// Set adds value under key. It reports whether the value was new.
func (m *Multimap[K, V]) Set(key K, value V) bool {
	set, ok := m.index[key]
	if !ok {
		set = make(map[V]struct{})
		m.index[key] = set
		m.keys = append(m.keys, key)
	}
	if _, dup := set[value]; dup {
		return false
	}
	set[value] = struct{}{}
	m.values[key] = append(m.values[key], value)
	return true
}

// Get returns a copy of the values under key, in insertion order.
func (m *Multimap[K, V]) Get(key K) []V {
	values := m.values[key]
	out := make([]V, len(values))
	copy(out, values)
	return out
}

// Has reports whether key has at least one value.
func (m *Multimap[K, V]) Has(key K) bool {
	_, ok := m.index[key]
	return ok
}

// HasValue reports whether value is stored under key.
func (m *Multimap[K, V]) HasValue(key K, value V) bool {
	_, ok := m.index[key][value]
	return ok
}

// Keys returns every key in insertion order.
func (m *Multimap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Size returns the number of keys.
func (m *Multimap[K, V]) Size() int {
	return len(m.keys)
}
