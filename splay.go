// Package splay provides an ordered set with constant-time copying.
//
// The container is a splay tree: accessed values migrate toward the root,
// so lookups of recently used values are cheap, and all operations are
// amortized logarithmic. Copies alias the tree and share nodes with the
// original; copy-on-write keeps every copy independently mutable.
package splay

import "github.com/ajwerner/splay/abstract"

// Set is an ordered set of values of T. The zero Set is not usable;
// construct one with Make.
//
// Assigning a Set moves the handle: the reference counts are untouched,
// so the source must not be used afterwards. Use Clone to obtain a
// second usable handle.
//
// A Set is not safe for concurrent mutation, but distinct Sets obtained
// from Clone may be read and mutated concurrently with each other.
type Set[T any] struct {
	t abstract.Tree[T]
}

// Make constructs an empty Set ordered by cmp, a three-way comparison
// returning a negative, zero or positive result.
func Make[T any](cmp func(T, T) int) Set[T] {
	return Set[T]{t: abstract.MakeTree[T](cmp)}
}

// Clone returns a Set with the same contents in O(1). The two sets share
// structure until one of them writes to it.
func (s *Set[T]) Clone() Set[T] {
	return Set[T]{t: s.t.Clone()}
}

// Swap exchanges the contents of s and o.
func (s *Set[T]) Swap(o *Set[T]) {
	s.t.Swap(&o.t)
}

// Empty reports whether the set holds no values.
func (s *Set[T]) Empty() bool {
	return s.t.Empty()
}

// SharesRoot reports whether s and o are backed by the same root node.
// True implies equal contents; false implies nothing.
func (s *Set[T]) SharesRoot(o *Set[T]) bool {
	return s.t.SharesRoot(&o.t)
}

// Len returns the number of values in the set.
func (s *Set[T]) Len() int {
	return s.t.Len()
}

// Insert adds v to the set, overwriting any stored value that compares
// equal to it. Returns whether a value was overwritten.
func (s *Set[T]) Insert(v T) (replaced bool) {
	return s.t.Upsert(v)
}

// Find returns the stored value equal to v, if any, without reorganizing
// the tree.
func (s *Set[T]) Find(v T) (T, bool) {
	return s.t.Get(v)
}

// FindMemoize is Find with the splay applied: v moves to the root, so an
// immediately following Find for it inspects a single node.
func (s *Set[T]) FindMemoize(v T) (T, bool) {
	return s.t.GetMemoize(v)
}

// Contains reports whether a value equal to v is present.
func (s *Set[T]) Contains(v T) bool {
	return s.t.Contains(v)
}

// Erase removes the value equal to v. It is a no-op if no such value is
// present.
func (s *Set[T]) Erase(v T) (removed bool) {
	return s.t.Delete(v)
}

// Clear removes all values.
func (s *Set[T]) Clear() {
	s.t.Reset()
}

// ForEach applies f to each value in ascending order.
func (s *Set[T]) ForEach(f func(T)) {
	s.t.ForEach(f)
}

// AppendTo appends the values of s to dst in ascending order and returns
// the extended slice.
func (s *Set[T]) AppendTo(dst []T) []T {
	return s.t.AppendTo(dst)
}

// String renders the tree structure for debugging: a leaf as value:ref,
// an interior node as (value:ref LEFT RIGHT), an absent child as ().
func (s Set[T]) String() string {
	return s.t.String()
}

// Fold returns f(v_k, ... f(v_1, f(v_0, r))...) over the values of s in
// ascending order.
func Fold[T, R any](s *Set[T], f func(T, R) R, r R) R {
	return abstract.Fold(&s.t, f, r)
}

// Insert returns a new Set with v added, leaving s unchanged.
func Insert[T any](s *Set[T], v T) Set[T] {
	c := s.Clone()
	c.Insert(v)
	return c
}

// Erase returns a new Set with v removed, leaving s unchanged.
func Erase[T any](s *Set[T], v T) Set[T] {
	c := s.Clone()
	c.Erase(v)
	return c
}
