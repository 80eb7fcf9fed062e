// Package presets holds ready-made languages, parsers, tableaux systems
// and sequent calculi for classical propositional logic.
package presets

import (
	"github.com/sequitur-logic/sequitur/lang"
)

var (
	classicalAtomics  = []string{"p", "q", "r", "s", "t"}
	classicalMetavars = []string{"A", "B", "C", "D"}
	contextVars       = []string{"Γ", "Δ", "Σ", "Λ", "Π", "Θ"}
)

// ClassicalLanguage is the infinite classical propositional language:
// atomics p, q, r, s, t with optional numeric suffixes, the usual five
// connectives and the sentential constants ⊥ and ⊤.
func ClassicalLanguage() *lang.Language {
	return &lang.Language{
		Atomics: classicalAtomics,
		Connectives: []lang.Connective{
			{Sym: "~", Arity: 1},
			{Sym: "∧", Arity: 2},
			{Sym: "∨", Arity: 2},
			{Sym: "→", Arity: 2},
			{Sym: "↔", Arity: 2},
		},
		Constants:   []string{"⊥", "⊤"},
		Metavars:    classicalMetavars,
		ContextVars: contextVars,
		Infinite:    true,
	}
}

// LKLanguage is the classical language without the biconditional, the
// language LK is usually presented for.
func LKLanguage() *lang.Language {
	return &lang.Language{
		Atomics: classicalAtomics,
		Connectives: []lang.Connective{
			{Sym: "~", Arity: 1},
			{Sym: "∧", Arity: 2},
			{Sym: "∨", Arity: 2},
			{Sym: "→", Arity: 2},
		},
		Metavars:    classicalMetavars,
		ContextVars: contextVars,
		Infinite:    true,
	}
}

// LKminEALanguage drops the conditional as well; the exchange-admissible
// calculus only has rules for ~, ∧ and ∨.
func LKminEALanguage() *lang.Language {
	return &lang.Language{
		Atomics: classicalAtomics,
		Connectives: []lang.Connective{
			{Sym: "~", Arity: 1},
			{Sym: "∧", Arity: 2},
			{Sym: "∨", Arity: 2},
		},
		Metavars:    classicalMetavars,
		ContextVars: contextVars,
		Infinite:    true,
	}
}
