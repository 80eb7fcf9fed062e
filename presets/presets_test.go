package presets

import (
	"errors"
	"testing"

	"github.com/sequitur-logic/sequitur/seqcalc"
	"github.com/sequitur-logic/sequitur/syntax"
	"github.com/sequitur-logic/sequitur/tableaux"
)

func TestClassicalParserPreset(t *testing.T) {
	p := ClassicalParser()
	f, err := p.ParseFormula("p iff not (p or q)")
	if err != nil {
		t.Fatal(err)
	}
	want := syntax.Apply("↔", syntax.Atom("p"),
		syntax.Apply("~", syntax.Apply("∨", syntax.Atom("p"), syntax.Atom("q"))))
	if !f.Equal(want) {
		t.Errorf("got %s, want %s", f.Key(), want.Key())
	}

	f, err = p.ParseFormula("falsum")
	if err != nil {
		t.Fatal(err)
	}
	if !f.Equal(syntax.Atom("⊥")) {
		t.Errorf("got %s", f.Key())
	}

	inf, err := p.ParseInference("p |= q")
	if err != nil {
		t.Fatal(err)
	}
	if len(inf.Premises) != 1 || len(inf.Conclusions) != 1 {
		t.Errorf("got %s", inf.Key())
	}
}

func TestClassicalTableauxSolve(t *testing.T) {
	sys := ClassicalTableaux()
	p := ClassicalParser()
	sv := &tableaux.Solver{System: sys}

	valid := []string{
		"p then q, p / q",
		"~(p or q) / ~p & ~q",
		"p iff q, p / q",
		"/ p or ~p",
	}
	for _, s := range valid {
		inf, err := p.ParseInference(s)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		ok, err := sv.IsValid(inf)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if !ok {
			t.Errorf("%q: expected valid", s)
		}
		tr, err := sv.Solve(inf)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if errs := sys.Verify(tr, inf); len(errs) != 0 {
			t.Errorf("%q: solved tree does not verify: %v", s, errs)
		}
	}

	invalid := []string{
		"p or q / p",
		"p / p & q",
	}
	for _, s := range invalid {
		inf, err := p.ParseInference(s)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		ok, err := sv.IsValid(inf)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if ok {
			t.Errorf("%q: expected invalid", s)
		}
	}
}

func TestIndexedClassicalTableaux(t *testing.T) {
	sys := IndexedClassicalTableaux()
	p := ClassicalParser()
	sv := &tableaux.Solver{System: sys}

	inf, err := p.ParseInference("p then q, p / q")
	if err != nil {
		t.Fatal(err)
	}
	ok, err := sv.IsValid(inf)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Errorf("modus ponens: expected valid")
	}
	tr, err := sv.Solve(inf)
	if err != nil {
		t.Fatal(err)
	}
	if errs := sys.Verify(tr, inf); len(errs) != 0 {
		t.Errorf("solved tree does not verify: %v", errs)
	}

	inf, err = p.ParseInference("p / q")
	if err != nil {
		t.Fatal(err)
	}
	ok, err = sv.IsValid(inf)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Errorf("p / q: expected invalid")
	}
}

func TestLKminEAReduce(t *testing.T) {
	calc := LKminEA()
	r := LKminEAReducer()
	p := ClassicalParser()

	for _, s := range []string{
		"Gamma ==> Delta, p or ~p",
		"p & q ==> q & p",
		"~~p ==> p",
	} {
		seq := mustSeq(p, s)
		d, err := r.Reduce(calc, seq, nil)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if !d.Node(0).Seq.Equal(seq) {
			t.Errorf("%q: root is %s", s, d.Node(0).Seq)
		}
		if errs := calc.Verify(d, nil); len(errs) != 0 {
			t.Errorf("%q: reduction does not verify: %v", s, errs)
		}
	}

	seq := mustSeq(p, "Gamma ==> Delta, p & ~p")
	if _, err := r.Reduce(calc, seq, nil); !errors.Is(err, seqcalc.ErrNoProof) {
		t.Errorf("got %v, want ErrNoProof", err)
	}
}

func TestLKminReduce(t *testing.T) {
	calc := LKmin()
	r := LKminReducer()
	p := ClassicalParser()

	for _, s := range []string{
		"p ==> p",
		"p & q ==> p",
	} {
		seq := mustSeq(p, s)
		d, err := r.Reduce(calc, seq, nil)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if errs := calc.Verify(d, nil); len(errs) != 0 {
			t.Errorf("%q: reduction does not verify: %v", s, errs)
		}
	}
}

func TestLKVerify(t *testing.T) {
	calc := LK()
	p := ClassicalParser()

	d := seqcalc.NewDeriv(seqcalc.DNode{Seq: mustSeq(p, "p & q ==> p"), Just: "∧L1"})
	d.Add(0, seqcalc.DNode{Seq: mustSeq(p, "p ==> p"), Just: "identity"})
	if errs := calc.Verify(d, nil); len(errs) != 0 {
		t.Errorf("correct derivation rejected: %v", errs)
	}

	// Cut takes two premises; a single one is an incorrect application.
	d = seqcalc.NewDeriv(seqcalc.DNode{Seq: mustSeq(p, "p & q ==> p"), Just: "Cut"})
	d.Add(0, seqcalc.DNode{Seq: mustSeq(p, "p ==> p"), Just: "identity"})
	if errs := calc.Verify(d, nil); len(errs) == 0 {
		t.Errorf("incorrect Cut application accepted")
	}
}

func TestLKCutApplication(t *testing.T) {
	calc := LK()
	p := ClassicalParser()

	d := seqcalc.NewDeriv(seqcalc.DNode{Seq: mustSeq(p, "p ==> q"), Just: "Cut"})
	d.Add(0, seqcalc.DNode{Seq: mustSeq(p, "p ==> r"), Just: ""})
	d.Add(0, seqcalc.DNode{Seq: mustSeq(p, "r ==> q"), Just: ""})
	if err := calc.CheckApplication(d, 0, "Cut"); err != nil {
		t.Errorf("cut on r: %v", err)
	}
}
