// Package syntax defines the value model for schematic proof calculi:
// formulae, inferences, sequents, standards and substitutions. All values
// are plain trees and slices; nothing here knows about any particular
// language or calculus.
package syntax

import (
	"strings"
)

// Formula is a prefix tree. A leaf (len(Args) == 0) is an atomic, a
// sentential constant or a metavariable, depending on the language in
// play. An inner node's Sym is a connective applied to Args.
type Formula struct {
	Sym  string
	Args []*Formula
}

func Atom(sym string) *Formula {
	return &Formula{Sym: sym}
}

func Apply(sym string, args ...*Formula) *Formula {
	return &Formula{Sym: sym, Args: args}
}

func (f *Formula) IsLeaf() bool {
	return len(f.Args) == 0
}

func (f *Formula) Clone() *Formula {
	if f == nil {
		return nil
	}
	res := &Formula{Sym: f.Sym}
	if len(f.Args) > 0 {
		res.Args = make([]*Formula, len(f.Args))
		for i, a := range f.Args {
			res.Args[i] = a.Clone()
		}
	}
	return res
}

func (f *Formula) Equal(g *Formula) bool {
	if f == nil || g == nil {
		return f == g
	}
	if f.Sym != g.Sym || len(f.Args) != len(g.Args) {
		return false
	}
	for i, a := range f.Args {
		if !a.Equal(g.Args[i]) {
			return false
		}
	}
	return true
}

// Depth is the length of the longest branch, 0 for a leaf.
func (f *Formula) Depth() int {
	d := 0
	for _, a := range f.Args {
		if ad := a.Depth() + 1; ad > d {
			d = ad
		}
	}
	return d
}

// Subformulae returns every distinct subformula of f, parents after
// children, without duplicates.
func (f *Formula) Subformulae() []*Formula {
	var res []*Formula
	f.appendSubformulae(&res)
	return res
}

func (f *Formula) appendSubformulae(acc *[]*Formula) {
	for _, a := range f.Args {
		a.appendSubformulae(acc)
	}
	for _, s := range *acc {
		if s.Equal(f) {
			return
		}
	}
	*acc = append(*acc, f)
}

// Leaves returns the leaf symbols of f in left to right order, without
// duplicates.
func (f *Formula) Leaves() []string {
	var res []string
	f.appendLeaves(&res)
	return res
}

func (f *Formula) appendLeaves(acc *[]string) {
	if f.IsLeaf() {
		for _, s := range *acc {
			if s == f.Sym {
				return
			}
		}
		*acc = append(*acc, f.Sym)
		return
	}
	for _, a := range f.Args {
		a.appendLeaves(acc)
	}
}

// Substitute returns a copy of f with every subformula equal to old
// replaced by new. f itself is not modified.
func (f *Formula) Substitute(old, new *Formula) *Formula {
	if f.Equal(old) {
		return new.Clone()
	}
	res := &Formula{Sym: f.Sym}
	if len(f.Args) > 0 {
		res.Args = make([]*Formula, len(f.Args))
		for i, a := range f.Args {
			res.Args[i] = a.Substitute(old, new)
		}
	}
	return res
}

// Contains reports whether g occurs as a subformula of f.
func (f *Formula) Contains(g *Formula) bool {
	if f.Equal(g) {
		return true
	}
	for _, a := range f.Args {
		if a.Contains(g) {
			return true
		}
	}
	return false
}

// Key is a canonical prefix encoding, usable as a map key. Distinct
// formulae have distinct keys.
func (f *Formula) Key() string {
	if f == nil {
		return "<nil>"
	}
	if f.IsLeaf() {
		return f.Sym
	}
	var b strings.Builder
	f.writeKey(&b)
	return b.String()
}

func (f *Formula) writeKey(b *strings.Builder) {
	if f.IsLeaf() {
		b.WriteString(f.Sym)
		return
	}
	b.WriteByte('(')
	b.WriteString(f.Sym)
	for _, a := range f.Args {
		b.WriteByte(' ')
		a.writeKey(b)
	}
	b.WriteByte(')')
}

func (f *Formula) String() string {
	return f.Key()
}
