package tableaux

import (
	"errors"
	"testing"

	"github.com/sequitur-logic/sequitur/errcode"
	"github.com/sequitur-logic/sequitur/lang"
	"github.com/sequitur-logic/sequitur/syntax"
)

func testLang() *lang.Language {
	return &lang.Language{
		Atomics: []string{"p", "q", "r"},
		Connectives: []lang.Connective{
			{Sym: "~", Arity: 1},
			{Sym: "∧", Arity: 2},
			{Sym: "∨", Arity: 2},
			{Sym: "→", Arity: 2},
			{Sym: "↔", Arity: 2},
		},
		Metavars: []string{"A", "B", "C"},
		Infinite: true,
	}
}

func atom(s string) *syntax.Formula { return syntax.Atom(s) }

func ap(sym string, args ...*syntax.Formula) *syntax.Formula {
	return syntax.Apply(sym, args...)
}

func neg(f *syntax.Formula) *syntax.Formula { return ap("~", f) }

// chain builds a rule tree whose nodes form a single descending chain.
func chain(nodes ...Node) *Tree {
	t := NewTree(nodes[0])
	t.AddChain(0, nodes[1:]...)
	return t
}

// branching builds a rule tree with the root and one chain per branch.
func branching(root Node, branches ...[]Node) *Tree {
	t := NewTree(root)
	for _, b := range branches {
		t.AddChain(0, b...)
	}
	return t
}

func classicalSystem() *System {
	a, b := atom("A"), atom("B")
	return &System{
		Lang: testLang(),
		Rules: []Rule{
			{Name: "R~~", Tree: chain(
				Node{Content: neg(neg(a))},
				Node{Content: a, Just: "R~~"},
			)},
			{Name: "R∧", Tree: chain(
				Node{Content: ap("∧", a, b)},
				Node{Content: a, Just: "R∧"},
				Node{Content: b, Just: "R∧"},
			)},
			{Name: "R~∧", Tree: branching(
				Node{Content: neg(ap("∧", a, b))},
				[]Node{{Content: neg(a), Just: "R~∧"}},
				[]Node{{Content: neg(b), Just: "R~∧"}},
			)},
			{Name: "R∨", Tree: branching(
				Node{Content: ap("∨", a, b)},
				[]Node{{Content: a, Just: "R∨"}},
				[]Node{{Content: b, Just: "R∨"}},
			)},
			{Name: "R~∨", Tree: chain(
				Node{Content: neg(ap("∨", a, b))},
				Node{Content: neg(a), Just: "R~∨"},
				Node{Content: neg(b), Just: "R~∨"},
			)},
			{Name: "R→", Tree: branching(
				Node{Content: ap("→", a, b)},
				[]Node{{Content: neg(a), Just: "R→"}},
				[]Node{{Content: b, Just: "R→"}},
			)},
			{Name: "R~→", Tree: chain(
				Node{Content: neg(ap("→", a, b))},
				Node{Content: a, Just: "R~→"},
				Node{Content: neg(b), Just: "R~→"},
			)},
			{Name: "R↔", Tree: branching(
				Node{Content: ap("↔", a, b)},
				[]Node{{Content: a, Just: "R↔"}, {Content: b, Just: "R↔"}},
				[]Node{{Content: neg(a), Just: "R↔"}, {Content: neg(b), Just: "R↔"}},
			)},
			{Name: "R~↔", Tree: branching(
				Node{Content: neg(ap("↔", a, b))},
				[]Node{{Content: neg(a), Just: "R~↔"}, {Content: b, Just: "R~↔"}},
				[]Node{{Content: a, Just: "R~↔"}, {Content: neg(b), Just: "R~↔"}},
			)},
		},
		Closure: []ClosureRule{
			{Node{Content: neg(a)}, Node{Content: a}},
		},
		Config: Config{FastClosure: true},
	}
}

func inf(premises []*syntax.Formula, conclusions []*syntax.Formula) *syntax.Inference {
	var prems, concls []syntax.Judgement
	for _, f := range premises {
		prems = append(prems, syntax.FormulaJudgement(f))
	}
	for _, f := range conclusions {
		concls = append(concls, syntax.FormulaJudgement(f))
	}
	res, err := syntax.NewInference(prems, concls, 0)
	if err != nil {
		panic(err)
	}
	return res
}

func TestTreePathsAndLeaves(t *testing.T) {
	tr := NewTree(Node{Content: atom("p")})
	c1 := tr.Add(0, Node{Content: atom("q"), Just: "X"})
	c2 := tr.Add(0, Node{Content: atom("r"), Just: "X"})
	g := tr.Add(c1, Node{Content: atom("p"), Just: "Y"})

	if got := tr.Path(g); len(got) != 3 || got[0] != 0 || got[1] != c1 || got[2] != g {
		t.Errorf("Path(%d) = %v", g, got)
	}
	if got := tr.ChildPath(g); len(got) != 2 || got[0] != 0 || got[1] != 0 {
		t.Errorf("ChildPath(%d) = %v", g, got)
	}
	if got := tr.Leaves(); len(got) != 2 || got[0] != g || got[1] != c2 {
		t.Errorf("Leaves() = %v", got)
	}
	if d := tr.Depth(g); d != 2 {
		t.Errorf("Depth(%d) = %d, want 2", g, d)
	}
}

func TestRuleApplicable(t *testing.T) {
	sys := classicalSystem()
	tr := chain(
		Node{Content: ap("∧", neg(neg(atom("p"))), atom("q"))},
		Node{Content: neg(atom("p"))},
	)

	rule, _ := sys.RuleNamed("R∧")
	ok, s := sys.RuleApplicable(tr, 0, rule)
	if !ok {
		t.Fatal("R∧ should be applicable to the conjunction node")
	}
	if b, _ := s.Get("A"); !b.F.Equal(neg(neg(atom("p")))) {
		t.Errorf("A bound to %s", b.Key())
	}
	if ok, _ := sys.RuleApplicable(tr, 1, rule); ok {
		t.Error("R∧ should not be applicable to a negation node")
	}
	dn, _ := sys.RuleNamed("R~~")
	if ok, _ := sys.RuleApplicable(tr, 1, dn); ok {
		t.Error("R~~ should not be applicable to a single negation")
	}
}

func TestBranchClosed(t *testing.T) {
	sys := classicalSystem()
	tr := chain(
		Node{Content: neg(neg(neg(atom("p"))))},
		Node{Content: neg(atom("p"))},
		Node{Content: neg(neg(atom("p"))), Just: "R~~"},
	)
	if sys.BranchClosed(tr, 1) {
		t.Error("branch up to ~p should be open")
	}
	if !sys.BranchClosed(tr, 2) {
		t.Error("branch with ~p and ~~p should be closed")
	}

	// The slow pair check must agree with the fast scan.
	sys.Config.FastClosure = false
	if sys.BranchClosed(tr, 1) {
		t.Error("slow: branch up to ~p should be open")
	}
	if !sys.BranchClosed(tr, 2) {
		t.Error("slow: branch with ~p and ~~p should be closed")
	}
}

func TestVerifyCorrectTree(t *testing.T) {
	sys := classicalSystem()
	// ~~p ∧ q; ~p; ~~p (R∧); q (R∧); p (R~~)
	tr := chain(
		Node{Content: ap("∧", neg(neg(atom("p"))), atom("q"))},
		Node{Content: neg(atom("p"))},
		Node{Content: neg(neg(atom("p"))), Just: "R∧"},
		Node{Content: atom("q"), Just: "R∧"},
		Node{Content: atom("p"), Just: "R~~"},
	)

	if errs := sys.Verify(tr, nil); len(errs) != 0 {
		t.Fatalf("Verify without inference = %v", errs)
	}
	good := inf(
		[]*syntax.Formula{ap("∧", neg(neg(atom("p"))), atom("q"))},
		[]*syntax.Formula{atom("p")},
	)
	if errs := sys.Verify(tr, good); len(errs) != 0 {
		t.Fatalf("Verify(%s) = %v", good.Key(), errs)
	}

	bad := inf(
		[]*syntax.Formula{ap("∧", neg(neg(atom("p"))), atom("q"))},
		[]*syntax.Formula{neg(atom("p"))},
	)
	errs := sys.Verify(tr, bad)
	if len(errs) != 2 {
		t.Fatalf("Verify with wrong conclusion = %v, want 2 errors", errs)
	}
	// Whole-proof errors sort before node errors.
	if errs[0].Code != errcode.TblConclusionNotPresent || errs[0].Path != nil {
		t.Errorf("first error = %v", errs[0])
	}
	if errs[1].Code != errcode.TblIncorrectPremise {
		t.Errorf("second error = %v", errs[1])
	}
	if got := errs[1].Path; len(got) != 2 || got[0] != 0 || got[1] != 0 {
		t.Errorf("second error path = %v, want [0 0]", errs[1].Path)
	}
}

func TestVerifyPremiseNotAtBeginning(t *testing.T) {
	sys := classicalSystem()
	tr := chain(
		Node{Content: neg(neg(atom("p")))},
		Node{Content: atom("p"), Just: "R~~"},
		Node{Content: atom("q")},
	)
	errs := sys.Verify(tr, nil)
	found := false
	for _, e := range errs {
		if e.Code == errcode.TblPremiseNotBeginning {
			found = true
		}
	}
	if !found {
		t.Errorf("Verify = %v, want a premise placement error", errs)
	}
}

func TestVerifyRuleNotApplied(t *testing.T) {
	sys := classicalSystem()
	// A conjunction with no conjuncts below and an open branch.
	tr := chain(
		Node{Content: ap("∧", atom("p"), atom("q"))},
		Node{Content: atom("r")},
	)
	errs := sys.Verify(tr, nil)
	if len(errs) != 1 || errs[0].Code != errcode.TblRuleNotApplied {
		t.Fatalf("Verify = %v, want one rule-not-applied error", errs)
	}
}

func TestVerifyUnaccountedNode(t *testing.T) {
	sys := classicalSystem()
	tr := chain(
		Node{Content: atom("p")},
		Node{Content: atom("q"), Just: "R∧"},
	)
	errs := sys.Verify(tr, nil)
	if len(errs) != 1 || errs[0].Code != errcode.TblRuleIncorrectlyApplied {
		t.Fatalf("Verify = %v, want one incorrect-application error", errs)
	}
}

func TestSolveValidInference(t *testing.T) {
	sys := classicalSystem()
	sv := &Solver{System: sys}

	// ~(p ∨ q) / ~p ∧ ~q closes after R~∨ and R~∧.
	in := inf(
		[]*syntax.Formula{neg(ap("∨", atom("p"), atom("q")))},
		[]*syntax.Formula{ap("∧", neg(atom("p")), neg(atom("q")))},
	)
	tr, err := sv.Solve(in)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !sys.Closed(tr) {
		t.Fatal("tree should be closed")
	}
	if tr.Len() != 6 {
		t.Errorf("tree has %d nodes, want 6", tr.Len())
	}
	// The solver's own output must verify.
	if errs := sys.Verify(tr, in); len(errs) != 0 {
		t.Errorf("Verify(solver output) = %v", errs)
	}
}

func TestSolveInvalidInference(t *testing.T) {
	sys := classicalSystem()
	sv := &Solver{System: sys}

	in := inf(
		[]*syntax.Formula{ap("∨", atom("p"), atom("q"))},
		[]*syntax.Formula{atom("p")},
	)
	tr, err := sv.Solve(in)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if sys.Closed(tr) {
		t.Fatal("tree should stay open, the inference is invalid")
	}
	valid, err := sv.IsValid(in)
	if err != nil {
		t.Fatalf("IsValid: %v", err)
	}
	if valid {
		t.Error("p ∨ q / p should be invalid")
	}
	if errs := sys.Verify(tr, in); len(errs) != 0 {
		t.Errorf("Verify(solver output) = %v", errs)
	}
}

func TestSolveDepthBound(t *testing.T) {
	sys := classicalSystem()
	sv := &Solver{System: sys, MaxDepth: 1}
	in := inf(
		[]*syntax.Formula{ap("∧", atom("p"), atom("q"))},
		[]*syntax.Formula{atom("p")},
	)
	if _, err := sv.Solve(in); !errors.Is(err, ErrNoProof) {
		t.Fatalf("Solve = %v, want ErrNoProof", err)
	}
}

func indexedSystem() *System {
	a, b := atom("A"), atom("B")
	return &System{
		Lang: testLang(),
		Rules: []Rule{
			{Name: "R~1", Tree: chain(
				Node{Content: neg(a), Index: Idx(1)},
				Node{Content: a, Index: Idx(0), Just: "R~1"},
			)},
			{Name: "R~0", Tree: chain(
				Node{Content: neg(a), Index: Idx(0)},
				Node{Content: a, Index: Idx(1), Just: "R~0"},
			)},
			{Name: "R∨1", Tree: branching(
				Node{Content: ap("∨", a, b), Index: Idx(1)},
				[]Node{{Content: a, Index: Idx(1), Just: "R∨1"}},
				[]Node{{Content: b, Index: Idx(1), Just: "R∨1"}},
			)},
			{Name: "R∨0", Tree: chain(
				Node{Content: ap("∨", a, b), Index: Idx(0)},
				Node{Content: a, Index: Idx(0), Just: "R∨0"},
				Node{Content: b, Index: Idx(0), Just: "R∨0"},
			)},
		},
		ClosurePolicy: IndexedClosure{},
		Premises:      IndexedPremises{},
	}
}

func TestIndexedSolve(t *testing.T) {
	sys := indexedSystem()
	sv := &Solver{System: sys}

	// Identity: the seed p,1 / p,0 closes before any rule extends it.
	in := inf([]*syntax.Formula{atom("p")}, []*syntax.Formula{atom("p")})
	tr, err := sv.Solve(in)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !sys.Closed(tr) {
		t.Fatal("identity tree should be closed")
	}
	if tr.Len() != 2 {
		t.Errorf("identity tree has %d nodes, want the 2 seeded ones", tr.Len())
	}

	valid, err := sv.IsValid(inf(
		[]*syntax.Formula{ap("∨", atom("p"), atom("q")), neg(atom("p"))},
		[]*syntax.Formula{atom("q")},
	))
	if err != nil {
		t.Fatalf("IsValid: %v", err)
	}
	if !valid {
		t.Error("disjunctive syllogism should be valid in the indexed system")
	}
}

func TestIndexedPremiseWitness(t *testing.T) {
	in := inf([]*syntax.Formula{atom("p")}, []*syntax.Formula{atom("q")})
	pol := IndexedPremises{}

	prems, concls := pol.PremiseWitness(in, &Node{Content: atom("p"), Index: Idx(1)})
	if len(prems) != 1 || len(concls) != 0 {
		t.Errorf("p,1 witness = %v, %v", prems, concls)
	}
	// A conclusion seeded with index 1 is not a correct initial node.
	prems, concls = pol.PremiseWitness(in, &Node{Content: atom("q"), Index: Idx(1)})
	if len(prems) != 0 || len(concls) != 0 {
		t.Errorf("q,1 witness = %v, %v", prems, concls)
	}
}

func TestConstructiveTree(t *testing.T) {
	sys := NewConstructiveSystem(testLang())
	sv := &Solver{System: sys}

	f := ap("∧", atom("p"), neg(atom("q")))
	tr, err := sv.SolveFormula(f)
	if err != nil {
		t.Fatalf("SolveFormula: %v", err)
	}
	// p ∧ ~q; p (R∧); ~q (R∧); q (R~)
	if tr.Len() != 4 {
		t.Fatalf("tree has %d nodes, want 4", tr.Len())
	}
	if !sys.Closed(tr) {
		t.Error("decomposition of a well-formed formula should close")
	}

	ok, err := sys.WellFormedByTree(f, 0)
	if err != nil || !ok {
		t.Errorf("WellFormedByTree(%s) = %v, %v", f.Key(), ok, err)
	}
	// Wrong arity: the conjunction rule cannot decompose it.
	bad := ap("∧", atom("p"))
	ok, err = sys.WellFormedByTree(bad, 0)
	if err != nil || ok {
		t.Errorf("WellFormedByTree(%s) = %v, %v, want false", bad.Key(), ok, err)
	}
}
