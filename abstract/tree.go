// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package abstract implements the splay-tree engine underneath the public
// set and map packages: an ordered container with amortized logarithmic
// operations, constant-time cloning, and copy-on-write structural sharing
// between clones.
package abstract

import "strings"

// Tree is an ordered collection of values of T. Cloning a Tree is O(1)
// and the clones share interior nodes; a mutation on one clone is never
// observable through another.
//
// Write operations are not safe for concurrent use by multiple
// goroutines on a single Tree, but distinct Trees sharing nodes may be
// used concurrently: the only state they share is node reference counts,
// which are adjusted atomically.
type Tree[T any] struct {
	root *node[T]
	cmp  func(T, T) int
}

// MakeTree constructs an empty Tree ordered by cmp. The comparator must
// induce a strict total order on T, returning a negative, zero or
// positive result, and must remain stable for the lifetime of the Tree
// and everything cloned from it.
func MakeTree[T any](cmp func(T, T) int) Tree[T] {
	return Tree[T]{cmp: cmp}
}

// Clone clones the Tree, lazily, in constant time. Incrementing the
// reference count on the root is sufficient to protect both trees from
// each other: every mutation path acquires exclusive ownership of the
// nodes it will touch by cloning any node with a count above one, and
// cloning a node bumps the counts of its children, pushing the
// copy-on-write frontier down the tree exactly as far as writes reach.
func (t *Tree[T]) Clone() Tree[T] {
	c := *t
	c.root.incRef()
	return c
}

// Reset removes all values from the Tree, releasing its reference to the
// shared structure.
func (t *Tree[T]) Reset() {
	t.root.decRef(true)
	t.root = nil
}

// Swap exchanges the contents of t and o.
func (t *Tree[T]) Swap(o *Tree[T]) {
	t.root, o.root = o.root, t.root
	t.cmp, o.cmp = o.cmp, t.cmp
}

// Empty reports whether the Tree holds no values.
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// SharesRoot reports whether t and o point at the same root node. A true
// result implies equal contents; a false result implies nothing.
func (t *Tree[T]) SharesRoot(o *Tree[T]) bool {
	return t.root == o.root
}

// Len returns the number of values in the Tree by folding over it.
func (t *Tree[T]) Len() int {
	n := 0
	t.ForEach(func(T) { n++ })
	return n
}

// replaceChild installs child in the slot currently leading to the
// descent frontier: the child slot named by the top path entry, or the
// root slot when the path is empty. The old occupant gives up the slot's
// reference; child arrives owning exactly the one reference the slot
// takes over.
func (t *Tree[T]) replaceChild(path *pathStack[T], child *node[T]) {
	if path.len() == 0 {
		old := t.root
		t.root = child
		old.decRef(true)
		return
	}
	p := path.top()
	if p.right {
		old := p.n.right
		p.n.right = child
		old.decRef(true)
	} else {
		old := p.n.left
		p.n.left = child
		old.decRef(true)
	}
}

// descend walks from the root toward v, recording the path and cloning
// every shared node on it so the splay phase can rotate in place. With
// insert set, reaching a gap splices in a new leaf and finding an equal
// value overwrites it. Without insert, reaching a gap backs up one step
// so the splay still promotes a near neighbor of v; descending into an
// empty tree returns immediately.
//
// On return (other than the empty-tree case) the accessed node has been
// splayed to the root. found reports whether a value equal to v was seen.
func (t *Tree[T]) descend(v T, insert bool) (found bool) {
	var path pathStack[T]
	n := t.root
	for {
		if n == nil {
			if !insert {
				if path.len() == 0 {
					return false
				}
				n = path.pop().n
				break
			}
			n = newNode(v)
			t.replaceChild(&path, n)
			break
		}
		if n.shared() {
			n = n.clone()
			t.replaceChild(&path, n)
		}
		if c := t.cmp(v, n.value); c < 0 {
			path.push(pathEntry[T]{right: false, n: n})
			n = n.left
		} else if c > 0 {
			path.push(pathEntry[T]{right: true, n: n})
			n = n.right
		} else {
			if insert {
				n.value = v
			}
			found = true
			break
		}
	}
	splayToTop(&path, n)
	t.root = n
	return found
}

// splayMax promotes the maximum value to the root by descending along
// right children with the same path-copy policy as descend. After the
// call the root has no right child.
func (t *Tree[T]) splayMax() {
	if t.root == nil {
		return
	}
	var path pathStack[T]
	n := t.root
	for {
		if n.shared() {
			n = n.clone()
			t.replaceChild(&path, n)
		}
		if n.right == nil {
			splayToTop(&path, n)
			t.root = n
			return
		}
		path.push(pathEntry[T]{right: true, n: n})
		n = n.right
	}
}

// Upsert adds v to the Tree. If a value equal to v is already present it
// is overwritten. Either way the affected node ends up at the root.
func (t *Tree[T]) Upsert(v T) (replaced bool) {
	return t.descend(v, true)
}

// Get returns the stored value equal to v, if any. It is purely
// read-only: no splay, no path copy, no reference count traffic.
func (t *Tree[T]) Get(v T) (r T, ok bool) {
	n := t.root
	for n != nil {
		if c := t.cmp(v, n.value); c < 0 {
			n = n.left
		} else if c > 0 {
			n = n.right
		} else {
			return n.value, true
		}
	}
	return r, false
}

// GetMemoize is Get with the self-adjustment applied: the accessed value
// is splayed to the root, so an immediately following Get for the same
// value inspects a single node. Logically a read, structurally a write.
func (t *Tree[T]) GetMemoize(v T) (r T, ok bool) {
	if t.descend(v, false) {
		return t.root.value, true
	}
	return r, false
}

// Contains reports whether a value equal to v is present.
func (t *Tree[T]) Contains(v T) bool {
	_, ok := t.Get(v)
	return ok
}

// Delete removes the value equal to v, if present. The splayed-out node
// is replaced by the join of its subtrees: every value on the left is
// smaller than every value on the right, so splaying the left subtree's
// maximum to its root frees that root's right slot for the right
// subtree.
func (t *Tree[T]) Delete(v T) (removed bool) {
	if !t.descend(v, false) {
		return false
	}
	old := t.root
	l, r := old.left, old.right
	old.left, old.right = nil, nil
	switch {
	case l == nil:
		t.root = r
	case r == nil:
		t.root = l
	default:
		t.root = l
		t.splayMax()
		t.root.right = r
	}
	old.decRef(false)
	return true
}

// ForEach applies f to each value in ascending order.
func (t *Tree[T]) ForEach(f func(T)) {
	forEachNode(t.root, f)
}

func forEachNode[T any](n *node[T], f func(T)) {
	if n == nil {
		return
	}
	forEachNode(n.left, f)
	f(n.value)
	forEachNode(n.right, f)
}

// Fold returns f(v_k, ... f(v_1, f(v_0, r))...) where v_0 ... v_k are
// the values of t in ascending order.
func Fold[T, R any](t *Tree[T], f func(T, R) R, r R) R {
	return foldNode(t.root, f, r)
}

func foldNode[T, R any](n *node[T], f func(T, R) R, r R) R {
	if n == nil {
		return r
	}
	r = foldNode(n.left, f, r)
	r = f(n.value, r)
	return foldNode(n.right, f, r)
}

// AppendTo appends the values of t to dst in ascending order and returns
// the extended slice.
func (t *Tree[T]) AppendTo(dst []T) []T {
	t.ForEach(func(v T) { dst = append(dst, v) })
	return dst
}

// Height returns the length of the longest root-to-leaf chain. The shape
// of a splay tree is access-dependent, so this is a diagnostic, not a
// bound.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// String renders the Tree in the node dump format of writeString.
func (t *Tree[T]) String() string {
	var b strings.Builder
	t.root.writeString(&b)
	return b.String()
}
