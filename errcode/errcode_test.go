package errcode

import "testing"

func TestCategory(t *testing.T) {
	tests := []struct {
		code Code
		cat  string
	}{
		{GenMalformedFormula, "general"},
		{TblRuleNotApplied, "tableaux"},
		{SeqIncorrectAxiom, "sequents"},
		{Code(999), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.code.Category(); got != tc.cat {
			t.Errorf("%d: got %q, want %q", tc.code, got, tc.cat)
		}
	}
}

func TestString(t *testing.T) {
	e := New(TblIncorrectPremise, []int{0, 1}, "node %s is not a premise", "q")
	if got := e.String(); got != "(0.1): node q is not a premise" {
		t.Errorf("got %q", got)
	}
	root := New(SeqIncorrectAxiom, nil, "not an axiom")
	if got := root.String(); got != "not an axiom" {
		t.Errorf("got %q", got)
	}
}

func TestPathLess(t *testing.T) {
	tests := []struct {
		a, b []int
		res  bool
	}{
		{nil, []int{0}, true},
		{[]int{1}, []int{0, 0}, true},
		{[]int{0, 1}, []int{0, 2}, true},
		{[]int{0, 2}, []int{0, 1}, false},
		{[]int{0, 1}, []int{0, 1}, false},
	}
	for i, tc := range tests {
		if got := PathLess(tc.a, tc.b); got != tc.res {
			t.Errorf("test %d: got %v", i, got)
		}
	}
}
