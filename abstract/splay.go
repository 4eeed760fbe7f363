package abstract

// splayToTop promotes n to the root position by consuming the recorded
// descent path bottom-up. Every node on the path is exclusively owned by
// the calling tree, so the rewrites relink child slots in place. Each
// subtree reference is moved exactly once per rewrite, never duplicated,
// so no reference count changes here; the caller completes the
// permutation by publishing n as the new root.
//
// While at least two entries remain the rewrite spans parent and
// grandparent. The two zig-zag cases are not mirror images of one
// another: the child-slot assignments differ, and collapsing them would
// break the search-order invariant.
func splayToTop[T any](path *pathStack[T], n *node[T]) {
	for path.len() > 1 {
		p := path.pop()
		g := path.pop()
		switch {
		case !g.right && !p.right:
			// zig-zig left
			// (g (p (n A B) C) D) ==> (n A (p B (g C D)))
			a, b := n.left, n.right
			c, d := p.n.right, g.n.right
			g.n.relink(c, d)
			p.n.relink(b, g.n)
			n.relink(a, p.n)
		case !g.right && p.right:
			// zig-zag left-right
			// (g (p A (n B C)) D) ==> (n (p A B) (g C D))
			a, b := p.n.left, n.left
			c, d := n.right, g.n.right
			p.n.relink(a, b)
			g.n.relink(c, d)
			n.relink(p.n, g.n)
		case g.right && !p.right:
			// zig-zag right-left
			// (g A (p (n B C) D)) ==> (n (g A B) (p C D))
			a, b := g.n.left, n.left
			c, d := n.right, p.n.right
			g.n.relink(a, b)
			p.n.relink(c, d)
			n.relink(g.n, p.n)
		default:
			// zig-zig right
			// (g A (p B (n C D))) ==> (n (p (g A B) C) D)
			a, b := g.n.left, p.n.left
			c, d := n.left, n.right
			g.n.relink(a, b)
			p.n.relink(g.n, c)
			n.relink(p.n, d)
		}
	}
	if path.len() == 1 {
		p := path.pop()
		if !p.right {
			// zig left
			// (p (n A B) C) ==> (n A (p B C))
			a, b := n.left, n.right
			c := p.n.right
			p.n.relink(b, c)
			n.relink(a, p.n)
		} else {
			// zig right
			// (p A (n B C)) ==> (n (p A B) C)
			a, b := p.n.left, n.left
			c := n.right
			p.n.relink(a, b)
			n.relink(p.n, c)
		}
	}
}
