// Package tableaux implements analytic tableaux: proof trees, systems of
// schematic rules with pluggable closure policies, a verifier and a
// solver.
package tableaux

import (
	"strconv"
	"strings"

	"github.com/sequitur-logic/sequitur/syntax"
)

// Node is one tableau entry. Content holds the formula, or Inf holds an
// inference for metainferential systems. Index and Std are optional
// decorations: the numeric sign of signed systems and the evaluation
// standard of metainferential ones. Just names the rule that produced
// the node; premise nodes have an empty Just.
//
// Nodes live in a Tree arena and address each other by integer index.
// Parent is -1 for the root.
type Node struct {
	Content *syntax.Formula
	Inf     *syntax.Inference
	Index   *int
	Std     *syntax.Standard
	Just    string

	Parent   int
	Children []int
}

// Idx is a convenience for filling the optional Index field.
func Idx(i int) *int {
	return &i
}

func (n *Node) contentKey() string {
	var b strings.Builder
	if n.Inf != nil {
		b.WriteString(n.Inf.Key())
	} else {
		b.WriteString(n.Content.Key())
	}
	if n.Index != nil {
		b.WriteString(", ")
		b.WriteString(strconv.Itoa(*n.Index))
	}
	if n.Std != nil {
		b.WriteString(", ")
		b.WriteString(n.Std.Key())
	}
	return b.String()
}

// Label renders the node the way tableaux are usually read: content,
// optional decorations, then the justification in parentheses.
func (n *Node) Label() string {
	s := n.contentKey()
	if n.Just != "" {
		s += " (" + n.Just + ")"
	}
	return s
}

// Tree is an arena of nodes. Index 0 is the root. Nodes are never
// removed; grafting allocates fresh entries.
type Tree struct {
	Nodes []Node
}

// NewTree starts a tree from a root node.
func NewTree(root Node) *Tree {
	root.Parent = -1
	root.Children = nil
	return &Tree{Nodes: []Node{root}}
}

// Add appends n as the last child of parent and returns its index.
func (t *Tree) Add(parent int, n Node) int {
	i := len(t.Nodes)
	n.Parent = parent
	n.Children = nil
	t.Nodes = append(t.Nodes, n)
	t.Nodes[parent].Children = append(t.Nodes[parent].Children, i)
	return i
}

// AddChain appends nodes as a descending chain under parent and returns
// the index of the last one. With parent -1 the first node becomes a new
// root of an empty tree.
func (t *Tree) AddChain(parent int, nodes ...Node) int {
	for _, n := range nodes {
		if parent == -1 && len(t.Nodes) == 0 {
			n.Parent = -1
			n.Children = nil
			t.Nodes = append(t.Nodes, n)
			parent = 0
			continue
		}
		parent = t.Add(parent, n)
	}
	return parent
}

func (t *Tree) Node(i int) *Node {
	return &t.Nodes[i]
}

func (t *Tree) Len() int {
	return len(t.Nodes)
}

// Path returns the node indexes from the root down to i, inclusive.
func (t *Tree) Path(i int) []int {
	var rev []int
	for j := i; j != -1; j = t.Nodes[j].Parent {
		rev = append(rev, j)
	}
	for a, b := 0, len(rev)-1; a < b; a, b = a+1, b-1 {
		rev[a], rev[b] = rev[b], rev[a]
	}
	return rev
}

// ChildPath locates i as a walk of child positions from the root. The
// root's is empty.
func (t *Tree) ChildPath(i int) []int {
	path := t.Path(i)
	res := make([]int, 0, len(path)-1)
	for k := 1; k < len(path); k++ {
		parent := t.Nodes[path[k]].Parent
		for ci, c := range t.Nodes[parent].Children {
			if c == path[k] {
				res = append(res, ci)
				break
			}
		}
	}
	return res
}

// Depth is the number of edges from the root to i.
func (t *Tree) Depth(i int) int {
	d := 0
	for j := t.Nodes[i].Parent; j != -1; j = t.Nodes[j].Parent {
		d++
	}
	return d
}

func (t *Tree) IsLeaf(i int) bool {
	return len(t.Nodes[i].Children) == 0
}

// LeavesUnder returns the leaf indexes of the subtree rooted at i, left
// to right.
func (t *Tree) LeavesUnder(i int) []int {
	var res []int
	var walk func(int)
	walk = func(j int) {
		if len(t.Nodes[j].Children) == 0 {
			res = append(res, j)
			return
		}
		for _, c := range t.Nodes[j].Children {
			walk(c)
		}
	}
	walk(i)
	return res
}

// Leaves returns every leaf of the tree.
func (t *Tree) Leaves() []int {
	return t.LeavesUnder(0)
}

// PreOrder visits the subtree at i parents first, children in order.
func (t *Tree) PreOrder(i int, fn func(int)) {
	fn(i)
	for _, c := range t.Nodes[i].Children {
		t.PreOrder(c, fn)
	}
}

// LevelOrder visits the whole tree breadth first. Nodes appended during
// the walk are visited too, which is what the solver relies on.
func (t *Tree) LevelOrder(fn func(int)) {
	for queue := []int{0}; len(queue) > 0; {
		i := queue[0]
		queue = queue[1:]
		fn(i)
		queue = append(queue, t.Nodes[i].Children...)
	}
}

func (t *Tree) Clone() *Tree {
	res := &Tree{Nodes: make([]Node, len(t.Nodes))}
	for i, n := range t.Nodes {
		c := n
		c.Children = append([]int(nil), n.Children...)
		if n.Content != nil {
			c.Content = n.Content.Clone()
		}
		if n.Inf != nil {
			c.Inf = n.Inf.Clone()
		}
		if n.Index != nil {
			v := *n.Index
			c.Index = &v
		}
		if n.Std != nil {
			c.Std = n.Std.Clone()
		}
		res.Nodes[i] = c
	}
	return res
}

// graftFrom copies src's subtree at srcIdx under dst's node at dstParent
// as fresh arena entries, keeping child order.
func (t *Tree) graftFrom(src *Tree, srcIdx, dstParent int) {
	n := src.Nodes[srcIdx]
	copied := Node{Just: n.Just}
	if n.Content != nil {
		copied.Content = n.Content.Clone()
	}
	if n.Inf != nil {
		copied.Inf = n.Inf.Clone()
	}
	if n.Index != nil {
		v := *n.Index
		copied.Index = &v
	}
	if n.Std != nil {
		copied.Std = n.Std.Clone()
	}
	ni := t.Add(dstParent, copied)
	for _, c := range src.Nodes[srcIdx].Children {
		t.graftFrom(src, c, ni)
	}
}

// Key canonically encodes the subtree at i, usable for deduplicating
// rule applications.
func (t *Tree) Key(i int) string {
	var b strings.Builder
	t.writeKey(i, &b)
	return b.String()
}

func (t *Tree) writeKey(i int, b *strings.Builder) {
	n := &t.Nodes[i]
	b.WriteString(n.contentKey())
	if n.Just != "" {
		b.WriteString(" (")
		b.WriteString(n.Just)
		b.WriteByte(')')
	}
	if len(n.Children) > 0 {
		b.WriteByte('[')
		for k, c := range n.Children {
			if k > 0 {
				b.WriteString("; ")
			}
			t.writeKey(c, b)
		}
		b.WriteByte(']')
	}
}
