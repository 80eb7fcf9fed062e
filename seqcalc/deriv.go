// Package seqcalc implements multi-sided sequent calculi: derivation
// trees, calculus definitions with ordered rule lists, a verifier and a
// backtracking reducer.
package seqcalc

import (
	"strings"

	"github.com/sequitur-logic/sequitur/syntax"
)

// DNode is one derivation entry: a sequent and the name of the rule,
// axiom or premise that justifies it. The root holds the derived
// sequent; children hold the premises of its rule application.
type DNode struct {
	Seq  syntax.Sequent
	Just string

	Parent   int
	Children []int
}

// Deriv is an arena of derivation nodes. Index 0 is the root.
type Deriv struct {
	Nodes []DNode
}

func NewDeriv(root DNode) *Deriv {
	root.Parent = -1
	root.Children = nil
	return &Deriv{Nodes: []DNode{root}}
}

// Add appends n as the last child of parent and returns its index.
func (d *Deriv) Add(parent int, n DNode) int {
	i := len(d.Nodes)
	n.Parent = parent
	n.Children = nil
	d.Nodes = append(d.Nodes, n)
	d.Nodes[parent].Children = append(d.Nodes[parent].Children, i)
	return i
}

func (d *Deriv) Node(i int) *DNode {
	return &d.Nodes[i]
}

func (d *Deriv) Len() int {
	return len(d.Nodes)
}

func (d *Deriv) IsLeaf(i int) bool {
	return len(d.Nodes[i].Children) == 0
}

// Leaves returns the leaf indexes left to right.
func (d *Deriv) Leaves() []int {
	var res []int
	d.PostOrder(0, func(i int) {
		if d.IsLeaf(i) {
			res = append(res, i)
		}
	})
	return res
}

// PostOrder visits the subtree at i children first, so premises are
// seen before the sequents they derive.
func (d *Deriv) PostOrder(i int, fn func(int)) {
	for _, c := range d.Nodes[i].Children {
		d.PostOrder(c, fn)
	}
	fn(i)
}

// graftFrom copies src's subtree at srcIdx under dst's node at dstParent
// as fresh arena entries.
func (d *Deriv) graftFrom(src *Deriv, srcIdx, dstParent int) {
	n := src.Nodes[srcIdx]
	ni := d.Add(dstParent, DNode{Seq: n.Seq.Clone(), Just: n.Just})
	for _, c := range n.Children {
		d.graftFrom(src, c, ni)
	}
}

// Key canonically encodes the subtree at i.
func (d *Deriv) Key(i int) string {
	var b strings.Builder
	d.writeKey(i, &b)
	return b.String()
}

func (d *Deriv) writeKey(i int, b *strings.Builder) {
	n := &d.Nodes[i]
	b.WriteString(n.Seq.Key())
	if n.Just != "" {
		b.WriteString(" (")
		b.WriteString(n.Just)
		b.WriteByte(')')
	}
	if len(n.Children) > 0 {
		b.WriteString(" [")
		for k, c := range n.Children {
			if k > 0 {
				b.WriteString("; ")
			}
			d.writeKey(c, b)
		}
		b.WriteByte(']')
	}
}
