package match

import (
	"testing"

	"github.com/sequitur-logic/sequitur/lang"
	"github.com/sequitur-logic/sequitur/syntax"
)

var testLang = &lang.Language{
	Atomics: []string{"p", "q", "r", "s", "t"},
	Connectives: []lang.Connective{
		{Sym: "~", Arity: 1},
		{Sym: "∧", Arity: 2},
		{Sym: "∨", Arity: 2},
		{Sym: "→", Arity: 2},
	},
	Metavars:     []string{"A", "B", "C"},
	ContextVars:  []string{"Γ", "Δ", "Σ", "Π"},
	StandardVars: []string{"W", "X", "Y", "Z"},
	Infinite:     true,
}

func atom(s string) *syntax.Formula { return syntax.Atom(s) }

func ap(sym string, args ...*syntax.Formula) *syntax.Formula {
	return syntax.Apply(sym, args...)
}

type formulaMatchTest struct {
	f      *syntax.Formula
	schema *syntax.Formula
	res    bool
}

var formulaMatchTests = []formulaMatchTest{
	{atom("p"), atom("A"), true},
	{ap("~", atom("p")), atom("A"), true},
	{ap("~", atom("p")), ap("∨", atom("A"), atom("B")), false},
	{ap("∨", ap("~", atom("p")), atom("q")), ap("∨", atom("A"), atom("B")), true},
	{ap("∧", atom("p"), atom("p")), ap("∧", atom("A"), atom("A")), true},
	{ap("∧", atom("p"), atom("q")), ap("∧", atom("A"), atom("A")), false},
	{atom("p"), atom("p"), true},
	{atom("p"), atom("q"), false},
}

func TestFormulaMatch(t *testing.T) {
	for i, tc := range formulaMatchTests {
		s := syntax.NewSubstitution()
		if got := Formula(testLang, tc.f, tc.schema, s); got != tc.res {
			t.Errorf("test %d: %s instance of %s: got %v", i, tc.f, tc.schema, got)
		}
	}
}

func TestFormulaMatchBindings(t *testing.T) {
	s := syntax.NewSubstitution()
	s.Bind("A", syntax.BindF(atom("q")))
	if Formula(testLang, atom("p"), atom("A"), s) {
		t.Error("matched against a conflicting prior binding")
	}
	if !Formula(testLang, atom("q"), atom("A"), s) {
		t.Error("did not match the prior binding")
	}
}

func TestInstantiateRoundTrip(t *testing.T) {
	schema := ap("∨", atom("A"), ap("~", atom("B")))
	f := ap("∨", ap("∧", atom("p"), atom("q")), ap("~", atom("r")))
	s := syntax.NewSubstitution()
	if !Formula(testLang, f, schema, s) {
		t.Fatal("no match")
	}
	back, err := Instantiate(testLang, schema, s)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(f) {
		t.Errorf("round trip: got %s, want %s", back, f)
	}
}

func TestInstantiateUnbound(t *testing.T) {
	s := syntax.NewSubstitution()
	s.Bind("A", syntax.BindF(atom("p")))
	if _, err := Instantiate(testLang, ap("∧", atom("A"), atom("B")), s); err == nil {
		t.Error("expected unbound metavariable error")
	}
}

func TestInferenceMatchUnordered(t *testing.T) {
	// p, p→q / q as an instance of modus ponens stated the other way around
	inf := &syntax.Inference{
		Premises: []syntax.Judgement{
			syntax.FormulaJudgement(atom("p")),
			syntax.FormulaJudgement(ap("→", atom("p"), atom("q"))),
		},
		Conclusions: []syntax.Judgement{syntax.FormulaJudgement(atom("q"))},
	}
	mp := &syntax.Inference{
		Premises: []syntax.Judgement{
			syntax.FormulaJudgement(ap("→", atom("A"), atom("B"))),
			syntax.FormulaJudgement(atom("A")),
		},
		Conclusions: []syntax.Judgement{syntax.FormulaJudgement(atom("B"))},
	}
	s := syntax.NewSubstitution()
	if !Inference(testLang, inf, mp, s) {
		t.Fatal("unordered match failed")
	}
	a, _ := s.Get("A")
	b, _ := s.Get("B")
	if !a.F.Equal(atom("p")) || !b.F.Equal(atom("q")) {
		t.Errorf("bindings: A=%s B=%s", a.Key(), b.Key())
	}
	if Inference(testLang, inf, mp, syntax.NewSubstitution(), Ordered(true)) {
		t.Error("ordered match should fail")
	}
}

func TestInferenceMatchMetainference(t *testing.T) {
	i4 := &syntax.Inference{
		Premises: []syntax.Judgement{syntax.InferenceJudgement(&syntax.Inference{
			Premises:    []syntax.Judgement{syntax.FormulaJudgement(atom("p"))},
			Conclusions: []syntax.Judgement{syntax.FormulaJudgement(atom("q"))},
		})},
		Conclusions: []syntax.Judgement{syntax.InferenceJudgement(&syntax.Inference{
			Premises:    []syntax.Judgement{syntax.FormulaJudgement(atom("q"))},
			Conclusions: []syntax.Judgement{syntax.FormulaJudgement(atom("p"))},
		})},
	}
	i5 := &syntax.Inference{
		Premises: []syntax.Judgement{syntax.InferenceJudgement(&syntax.Inference{
			Premises:    []syntax.Judgement{syntax.FormulaJudgement(atom("A"))},
			Conclusions: []syntax.Judgement{syntax.FormulaJudgement(atom("B"))},
		})},
		Conclusions: []syntax.Judgement{syntax.InferenceJudgement(&syntax.Inference{
			Premises:    []syntax.Judgement{syntax.FormulaJudgement(atom("B"))},
			Conclusions: []syntax.Judgement{syntax.FormulaJudgement(atom("A"))},
		})},
	}
	s := syntax.NewSubstitution()
	if !Inference(testLang, i4, i5, s) {
		t.Fatal("metainference match failed")
	}
	a, _ := s.Get("A")
	if !a.F.Equal(atom("p")) {
		t.Errorf("A=%s", a.Key())
	}
	// level mismatch
	flat := &syntax.Inference{
		Premises:    []syntax.Judgement{syntax.FormulaJudgement(atom("p"))},
		Conclusions: []syntax.Judgement{syntax.FormulaJudgement(atom("q"))},
	}
	if Inference(testLang, flat, i5, syntax.NewSubstitution()) {
		t.Error("matched across levels")
	}
}

func side(ms ...syntax.Member) syntax.Side { return syntax.Side(ms) }

func fm(f *syntax.Formula) syntax.Member { return syntax.FormulaMember(f) }
func cm(sym string) syntax.Member        { return syntax.ContextMember(sym) }

func TestSideContextSplitting(t *testing.T) {
	// three formulae against two adjacent context variables: exactly the
	// four contiguous splits
	ok, dicts := Side(testLang,
		side(fm(atom("p")), fm(atom("q")), fm(atom("r"))),
		side(cm("Γ"), cm("Δ")),
		nil)
	if !ok {
		t.Fatal("no match")
	}
	if len(dicts) != 4 {
		t.Fatalf("got %d substitutions, want 4", len(dicts))
	}
	// first is greedy on Γ, last is greedy on Δ
	g0, _ := dicts[0].Get("Γ")
	if len(g0.Side) != 3 {
		t.Errorf("first split Γ=%s", g0.Key())
	}
	g3, _ := dicts[3].Get("Γ")
	if len(g3.Side) != 0 {
		t.Errorf("last split Γ=%s", g3.Key())
	}
}

func TestSequentInstanceAmbiguity(t *testing.T) {
	// Γ, A, B, Δ ⇒ is an instance of Γ, A, Δ ⇒ in two ways
	inst := syntax.Sequent{
		side(cm("Γ"), fm(atom("p")), fm(atom("q")), cm("Δ")),
		side(),
	}
	rule := syntax.Sequent{
		side(cm("Γ"), fm(atom("A")), cm("Δ")),
		side(),
	}
	ok, dicts := Sequent(testLang, inst, rule, nil)
	if !ok {
		t.Fatal("no match")
	}
	if len(dicts) != 2 {
		t.Fatalf("got %d substitutions, want 2", len(dicts))
	}
}

func TestSequentEdgeConstraints(t *testing.T) {
	// A with no right context must be the last member
	rule := syntax.Sequent{side(cm("Γ"), fm(atom("A"))), side()}
	inst := syntax.Sequent{side(fm(atom("p")), fm(atom("q"))), side()}
	ok, dicts := Sequent(testLang, inst, rule, nil)
	if !ok {
		t.Fatal("no match")
	}
	if len(dicts) != 1 {
		t.Fatalf("got %d substitutions, want 1", len(dicts))
	}
	a, _ := dicts[0].Get("A")
	if !a.F.Equal(atom("q")) {
		t.Errorf("A=%s, want q", a.Key())
	}
}

func TestCutUniformSubstitution(t *testing.T) {
	// cut: Γ ⇒ Δ, A and A, Σ ⇒ Π over Γ, Σ ⇒ Δ, Π. Premise witnessing
	// requires the same cut formula on both sides of the application.
	cutPrem1 := syntax.Sequent{side(cm("Γ")), side(cm("Δ"), fm(atom("A")))}
	cutPrem2 := syntax.Sequent{side(fm(atom("A")), cm("Σ")), side(cm("Π"))}
	cutConcl := syntax.Sequent{side(cm("Γ"), cm("Σ")), side(cm("Δ"), cm("Π"))}

	concl := syntax.Sequent{
		side(fm(atom("p")), fm(atom("q"))),
		side(fm(atom("r")), fm(atom("t"))),
	}
	prem1 := syntax.Sequent{
		side(fm(atom("p")), fm(atom("q"))),
		side(fm(atom("r")), fm(atom("s"))),
	}
	goodPrem2 := syntax.Sequent{side(fm(atom("s"))), side(fm(atom("t")))}
	badPrem2 := syntax.Sequent{side(fm(atom("r"))), side(fm(atom("t")))}

	check := func(prem2 syntax.Sequent) bool {
		ok, dicts := Sequent(testLang, concl, cutConcl, nil)
		if !ok {
			return false
		}
		ok, dicts = Sequent(testLang, prem1, cutPrem1, dicts)
		if !ok {
			return false
		}
		ok, _ = Sequent(testLang, prem2, cutPrem2, dicts)
		return ok
	}
	if !check(goodPrem2) {
		t.Error("correct cut application rejected")
	}
	if check(badPrem2) {
		t.Error("incorrect cut application accepted")
	}
}

func TestInstantiateSequent(t *testing.T) {
	s := syntax.NewSubstitution()
	s.Bind("A", syntax.BindF(atom("p")))
	s.Bind("Γ", syntax.BindS(side(fm(atom("q")), cm("Δ"))))
	s.Bind("Δ", syntax.BindS(side(cm("Δ"))))
	schema := syntax.Sequent{
		side(cm("Γ"), fm(atom("A")), cm("Δ"), fm(ap("~", atom("p")))),
		side(),
	}
	got, err := InstantiateSequent(testLang, schema, s)
	if err != nil {
		t.Fatal(err)
	}
	if got.Key() != "q,Δ,p,Δ,(~ p) | " {
		t.Errorf("key %q", got.Key())
	}
}

func TestStandardMatch(t *testing.T) {
	one := syntax.ValueSet("1")
	oneI := syntax.ValueSet("1", "i")
	ts := syntax.StandardPair(oneI, one)
	st := syntax.StandardPair(one, oneI)

	s := syntax.NewSubstitution()
	if !Standard(testLang, ts, syntax.StandardVariable("X"), s) {
		t.Fatal("variable did not match")
	}
	// same variable must keep its value
	if Standard(testLang, st, syntax.StandardVariable("X"), s) {
		t.Error("variable rebound to a different standard")
	}
	if !Standard(testLang, ts, syntax.StandardVariable("X"), s) {
		t.Error("bound variable did not match its own value")
	}
	// bar mismatch fails before anything else
	if Standard(testLang, ts, syntax.StandardVariable("Y").Barred(), syntax.NewSubstitution()) {
		t.Error("bar mismatch accepted")
	}
	if !Standard(testLang, ts.Barred(), syntax.StandardVariable("Y").Barred(), syntax.NewSubstitution()) {
		t.Error("barred variable did not match barred standard")
	}
	// pairs recurse on both halves
	schema := syntax.StandardPair(syntax.StandardVariable("X"), syntax.StandardVariable("X"))
	if Standard(testLang, ts, schema, syntax.NewSubstitution()) {
		t.Error("pair with unequal halves matched [X, X]")
	}
	same := syntax.StandardPair(one, one)
	if !Standard(testLang, same, schema, syntax.NewSubstitution()) {
		t.Error("pair with equal halves did not match [X, X]")
	}
}

func TestInstantiateStandard(t *testing.T) {
	s := syntax.NewSubstitution()
	s.Bind("X", syntax.BindStd(syntax.ValueSet("1")))
	got, err := InstantiateStandard(testLang, syntax.StandardVariable("X").Barred(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(syntax.ValueSet("1").Barred()) {
		t.Errorf("got %s", got)
	}
}
