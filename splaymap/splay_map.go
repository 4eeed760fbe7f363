// Package splaymap provides an ordered map with constant-time copying,
// built on the splay engine: entries are ordered by key alone, so
// writing an existing key overwrites its payload in place.
package splaymap

import "github.com/ajwerner/splay/abstract"

type entry[K, V any] struct {
	key K
	val V
}

// Map is an ordered map from K to V. The zero Map is not usable;
// construct one with Make. As with splay.Set, assignment moves the
// handle; use Clone for a second usable one.
type Map[K, V any] struct {
	t abstract.Tree[entry[K, V]]
}

// Make constructs an empty Map whose keys are ordered by cmp, a
// three-way comparison returning a negative, zero or positive result.
func Make[K, V any](cmp func(K, K) int) Map[K, V] {
	return Map[K, V]{t: abstract.MakeTree(func(a, b entry[K, V]) int {
		return cmp(a.key, b.key)
	})}
}

// Clone returns a Map with the same contents in O(1). The two maps share
// structure until one of them writes to it.
func (m *Map[K, V]) Clone() Map[K, V] {
	return Map[K, V]{t: m.t.Clone()}
}

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.t.Empty()
}

// SharesRoot reports whether m and o are backed by the same root node.
func (m *Map[K, V]) SharesRoot(o *Map[K, V]) bool {
	return m.t.SharesRoot(&o.t)
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.t.Len()
}

// Set stores v under k, overwriting any previous payload for the key.
// Returns whether a payload was overwritten.
func (m *Map[K, V]) Set(k K, v V) (replaced bool) {
	return m.t.Upsert(entry[K, V]{key: k, val: v})
}

// Get returns the payload stored under k, if any, without reorganizing
// the tree.
func (m *Map[K, V]) Get(k K) (V, bool) {
	e, ok := m.t.Get(entry[K, V]{key: k})
	return e.val, ok
}

// GetMemoize is Get with the splay applied; an immediately following Get
// for the same key inspects a single node.
func (m *Map[K, V]) GetMemoize(k K) (V, bool) {
	e, ok := m.t.GetMemoize(entry[K, V]{key: k})
	return e.val, ok
}

// Contains reports whether k is present.
func (m *Map[K, V]) Contains(k K) bool {
	return m.t.Contains(entry[K, V]{key: k})
}

// Delete removes the entry for k, if present.
func (m *Map[K, V]) Delete(k K) (removed bool) {
	return m.t.Delete(entry[K, V]{key: k})
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.t.Reset()
}

// ForEach applies f to each entry in ascending key order.
func (m *Map[K, V]) ForEach(f func(K, V)) {
	m.t.ForEach(func(e entry[K, V]) { f(e.key, e.val) })
}

// Keys appends the keys of m to dst in ascending order and returns the
// extended slice.
func (m *Map[K, V]) Keys(dst []K) []K {
	m.ForEach(func(k K, _ V) { dst = append(dst, k) })
	return dst
}

// String renders the tree structure for debugging.
func (m Map[K, V]) String() string {
	return m.t.String()
}
