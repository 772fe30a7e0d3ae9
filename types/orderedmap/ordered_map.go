// Package orderedmap provides a map which remembers insertion order.
package orderedmap

// OrderedMap stores values in insertion order. Overwriting an existing key keeps its original position.
type OrderedMap[K comparable, V any] struct {
	index   map[K]int
	entries []entry[K, V]
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// NewOrderedMap returns an empty OrderedMap
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		index: make(map[K]int),
	}
}

// Set stores value under key
func (o *OrderedMap[K, V]) Set(key K, value V) {
	if i, found := o.index[key]; found {
		o.entries[i].value = value
		return
	}
	o.index[key] = len(o.entries)
	o.entries = append(o.entries, entry[K, V]{key: key, value: value})
}

// Get returns the value stored under key
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	if i, found := o.index[key]; found {
		return o.entries[i].value, true
	}
	var zero V

	return zero, false
}

// Has reports whether key is present
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, found := o.index[key]
	return found
}

// Count returns the number of entries
func (o *OrderedMap[K, V]) Count() int {
	return len(o.entries)
}

// Range calls f for every entry in insertion order until f returns false
func (o *OrderedMap[K, V]) Range(f func(key K, value V) bool) {
	for _, e := range o.entries {
		if !f(e.key, e.value) {
			return
		}
	}
}
