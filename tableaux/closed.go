package tableaux

import (
	"github.com/sequitur-logic/sequitur/syntax"
)

// ClosurePolicy decides whether the branch from the root to a node is
// closed. Policies look at the whole path, so checking a leaf covers
// its branch.
type ClosurePolicy interface {
	BranchClosed(sys *System, t *Tree, i int) bool
}

func (sys *System) closurePolicy() ClosurePolicy {
	if sys.ClosurePolicy != nil {
		return sys.ClosurePolicy
	}
	return ruleClosure{}
}

// BranchClosed reports whether the branch ending at node i is closed.
func (sys *System) BranchClosed(t *Tree, i int) bool {
	return sys.closurePolicy().BranchClosed(sys, t, i)
}

// Closed reports whether every branch of t is closed.
func (sys *System) Closed(t *Tree) bool {
	for _, leaf := range t.Leaves() {
		if !sys.BranchClosed(t, leaf) {
			return false
		}
	}
	return true
}

// ruleClosure applies the system's closure rules: a branch is closed
// when two of its nodes instantiate a closure pair, in either order,
// under one substitution. With Config.FastClosure it instead scans for
// X and ~X with the same index, which is equivalent for the classical
// contradiction pair and linear instead of quadratic.
type ruleClosure struct{}

func (ruleClosure) BranchClosed(sys *System, t *Tree, i int) bool {
	if sys.Config.FastClosure {
		return fastContradiction(t, i)
	}
	path := t.Path(i)
	for a := 0; a < len(path); a++ {
		for b := a + 1; b < len(path); b++ {
			for _, cr := range sys.Closure {
				s := syntax.NewSubstitution()
				if sys.NodeInstance(t, path[a], &cr[0], s) && sys.NodeInstance(t, path[b], &cr[1], s) {
					return true
				}
				s = syntax.NewSubstitution()
				if sys.NodeInstance(t, path[b], &cr[0], s) && sys.NodeInstance(t, path[a], &cr[1], s) {
					return true
				}
			}
		}
	}
	return false
}

// fastContradiction walks the path accumulating seen contents, checking
// each node against the earlier ones for a direct contradiction with a
// matching index.
func fastContradiction(t *Tree, i int) bool {
	path := t.Path(i)
	for a := 1; a < len(path); a++ {
		n := &t.Nodes[path[a]]
		if n.Content == nil {
			continue
		}
		for b := 0; b < a; b++ {
			prev := &t.Nodes[path[b]]
			if prev.Content == nil || !sameIndex(n.Index, prev.Index) {
				continue
			}
			if prev.Content.Sym == "~" && len(prev.Content.Args) == 1 &&
				prev.Content.Args[0].Equal(n.Content) {
				return true
			}
			if n.Content.Sym == "~" && len(n.Content.Args) == 1 &&
				n.Content.Args[0].Equal(prev.Content) {
				return true
			}
		}
	}
	return false
}

// IndexedClosure closes a branch when the same content occurs on it with
// both index 0 and index 1.
type IndexedClosure struct{}

func (IndexedClosure) BranchClosed(sys *System, t *Tree, i int) bool {
	path := t.Path(i)
	for a := 1; a < len(path); a++ {
		n := &t.Nodes[path[a]]
		if n.Content == nil || n.Index == nil {
			continue
		}
		for b := 0; b < a; b++ {
			prev := &t.Nodes[path[b]]
			if prev.Content == nil || prev.Index == nil {
				continue
			}
			if *prev.Index == 1-*n.Index && prev.Content.Equal(n.Content) {
				return true
			}
		}
	}
	return false
}

// AtomicClosure closes a branch at a well-formed atomic node. It is the
// termination condition of constructive decomposition trees.
type AtomicClosure struct{}

func (AtomicClosure) BranchClosed(sys *System, t *Tree, i int) bool {
	n := &t.Nodes[i]
	if n.Content == nil || !n.Content.IsLeaf() {
		return false
	}
	return sys.Lang.WellFormed(n.Content, false) == nil
}

func sameIndex(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
