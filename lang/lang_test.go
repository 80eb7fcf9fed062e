package lang

import (
	"errors"
	"testing"

	"github.com/sequitur-logic/sequitur/syntax"
)

var testLang = &Language{
	Atomics: []string{"p", "q", "r"},
	Connectives: []Connective{
		{"~", 1},
		{"∧", 2},
		{"∨", 2},
	},
	Constants:   []string{"⊥", "⊤"},
	Metavars:    []string{"A", "B", "C"},
	ContextVars: []string{"Γ", "Δ"},
	Infinite:    true,
}

func TestSymbolClasses(t *testing.T) {
	tests := []struct {
		sym    string
		atomic bool
		meta   bool
	}{
		{"p", true, false},
		{"p12", true, false}, // infinite family
		{"p1x", false, false},
		{"A", false, true},
		{"A3", false, true},
		{"x", false, false},
		{"⊥", false, false},
	}
	for _, tc := range tests {
		if got := testLang.IsAtomic(tc.sym); got != tc.atomic {
			t.Errorf("IsAtomic(%q) = %v", tc.sym, got)
		}
		if got := testLang.IsMetavariable(tc.sym); got != tc.meta {
			t.Errorf("IsMetavariable(%q) = %v", tc.sym, got)
		}
	}
	if !testLang.IsContextVariable("Γ") || testLang.IsContextVariable("Λ") {
		t.Error("context variable classification")
	}
	if a, ok := testLang.Arity("∧"); !ok || a != 2 {
		t.Errorf("Arity(∧) = %d, %v", a, ok)
	}
}

func TestWellFormed(t *testing.T) {
	tests := []struct {
		f         *syntax.Formula
		schematic bool
		ok        bool
	}{
		{syntax.Atom("p"), false, true},
		{syntax.Atom("⊥"), false, true},
		{syntax.Atom("A"), false, false},
		{syntax.Atom("A"), true, true},
		{syntax.Apply("∧", syntax.Atom("p"), syntax.Atom("q")), false, true},
		{syntax.Apply("∧", syntax.Atom("p")), false, false},                   // wrong arity
		{syntax.Apply("→", syntax.Atom("p"), syntax.Atom("q")), false, false}, // not in language
		{syntax.Apply("~", syntax.Atom("z")), false, false},                   // unknown leaf
	}
	for i, tc := range tests {
		err := testLang.WellFormed(tc.f, tc.schematic)
		if (err == nil) != tc.ok {
			t.Errorf("test %d: WellFormed(%s, %v) = %v", i, tc.f, tc.schematic, err)
		}
		if err != nil && !errors.Is(err, ErrNotWellFormed) {
			t.Errorf("test %d: error %v does not wrap ErrNotWellFormed", i, err)
		}
	}
}

func TestIsSchematic(t *testing.T) {
	if testLang.IsSchematic(syntax.Apply("∧", syntax.Atom("p"), syntax.Atom("q"))) {
		t.Error("concrete formula reported schematic")
	}
	if !testLang.IsSchematic(syntax.Apply("∧", syntax.Atom("p"), syntax.Atom("A"))) {
		t.Error("schematic formula not detected")
	}
}

func TestAtomicsInside(t *testing.T) {
	f := syntax.Apply("∧", syntax.Atom("p"), syntax.Apply("∨", syntax.Atom("q"), syntax.Atom("p")))
	got := testLang.AtomicsInside(f)
	if len(got) != 2 || got[0] != "p" || got[1] != "q" {
		t.Errorf("got %v", got)
	}
}

func TestWellFormedSide(t *testing.T) {
	side := syntax.Side{
		syntax.ContextMember("Γ"),
		syntax.FormulaMember(syntax.Atom("A")),
	}
	if err := testLang.WellFormedSide(side, true); err != nil {
		t.Errorf("schematic side: %v", err)
	}
	if err := testLang.WellFormedSide(side, false); err == nil {
		t.Error("concrete side with context variable accepted")
	}
}
