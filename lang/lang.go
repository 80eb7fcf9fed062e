// Package lang describes propositional languages: which symbols are
// atomics, connectives, sentential constants and schematic variables,
// and what counts as a well formed formula.
package lang

import (
	"fmt"

	"github.com/sequitur-logic/sequitur/syntax"
)

// Connective pairs a symbol with its arity. Connectives are kept in a
// slice so declaration order is preserved.
type Connective struct {
	Sym   string
	Arity int
}

// Language is a propositional language descriptor. With Infinite set,
// atomics and metavariables also match with any decimal suffix, so p,
// p1, p2, ... are all atomics of the language.
type Language struct {
	Atomics      []string
	Connectives  []Connective
	Constants    []string // sentential constants, e.g. ⊥ and ⊤
	Metavars     []string
	ContextVars  []string
	StandardVars []string
	Infinite     bool
}

func (l *Language) Arity(sym string) (int, bool) {
	for _, c := range l.Connectives {
		if c.Sym == sym {
			return c.Arity, true
		}
	}
	return 0, false
}

func (l *Language) IsConnective(sym string) bool {
	_, ok := l.Arity(sym)
	return ok
}

func (l *Language) IsAtomic(sym string) bool {
	return l.inFamily(l.Atomics, sym)
}

func (l *Language) IsConstant(sym string) bool {
	return contains(l.Constants, sym)
}

func (l *Language) IsMetavariable(sym string) bool {
	return l.inFamily(l.Metavars, sym)
}

func (l *Language) IsContextVariable(sym string) bool {
	return contains(l.ContextVars, sym)
}

func (l *Language) IsStandardVariable(sym string) bool {
	return contains(l.StandardVars, sym)
}

func (l *Language) inFamily(base []string, sym string) bool {
	if contains(base, sym) {
		return true
	}
	if !l.Infinite {
		return false
	}
	for _, b := range base {
		if len(sym) > len(b) && sym[:len(b)] == b && allDigits(sym[len(b):]) {
			return true
		}
	}
	return false
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// WellFormed checks f against the language. With schematic set,
// metavariables are accepted as leaves; otherwise only atomics and
// sentential constants are.
func (l *Language) WellFormed(f *syntax.Formula, schematic bool) error {
	if f == nil {
		return fmt.Errorf("%w: nil formula", ErrNotWellFormed)
	}
	if f.IsLeaf() {
		if l.IsAtomic(f.Sym) || l.IsConstant(f.Sym) {
			return nil
		}
		if schematic && l.IsMetavariable(f.Sym) {
			return nil
		}
		return fmt.Errorf("%w: unknown leaf %q", ErrNotWellFormed, f.Sym)
	}
	arity, ok := l.Arity(f.Sym)
	if !ok {
		return fmt.Errorf("%w: unknown connective %q", ErrNotWellFormed, f.Sym)
	}
	if arity != len(f.Args) {
		return fmt.Errorf("%w: %q wants %d arguments, got %d",
			ErrNotWellFormed, f.Sym, arity, len(f.Args))
	}
	for _, a := range f.Args {
		if err := l.WellFormed(a, schematic); err != nil {
			return err
		}
	}
	return nil
}

// IsSchematic reports whether f contains at least one metavariable.
func (l *Language) IsSchematic(f *syntax.Formula) bool {
	if f.IsLeaf() {
		return l.IsMetavariable(f.Sym)
	}
	for _, a := range f.Args {
		if l.IsSchematic(a) {
			return true
		}
	}
	return false
}

// AtomicsInside returns the atomic symbols of the language occurring in
// f, left to right without duplicates.
func (l *Language) AtomicsInside(f *syntax.Formula) []string {
	var res []string
	for _, leaf := range f.Leaves() {
		if l.IsAtomic(leaf) && !contains(res, leaf) {
			res = append(res, leaf)
		}
	}
	return res
}

// WellFormedSide checks every member of a sequent side. Context
// variables are accepted only when schematic is set.
func (l *Language) WellFormedSide(s syntax.Side, schematic bool) error {
	for i, m := range s {
		if m.IsContext() {
			if !schematic {
				return fmt.Errorf("%w: context variable %q in a concrete side", ErrNotWellFormed, m.Ctx)
			}
			if !l.IsContextVariable(m.Ctx) {
				return fmt.Errorf("%w: unknown context variable %q", ErrNotWellFormed, m.Ctx)
			}
			continue
		}
		if err := l.WellFormed(m.F, schematic); err != nil {
			return fmt.Errorf("member %d: %w", i, err)
		}
	}
	return nil
}
