package sequitur

import (
	"testing"

	"github.com/sequitur-logic/sequitur/presets"
)

func TestProveAndCheck(t *testing.T) {
	sys := presets.ClassicalTableaux()
	p := presets.ClassicalParser()
	inf, err := p.ParseInference("p then q, p / q")
	if err != nil {
		t.Fatal(err)
	}
	tree, err := Prove(sys, inf)
	if err != nil {
		t.Fatal(err)
	}
	if errs := Check(sys, tree, inf); len(errs) != 0 {
		t.Fatalf("solved tableau has correction errors: %v", errs)
	}
	ok, err := IsValid(sys, inf)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("modus ponens should be valid")
	}
}

func TestIsValidRejects(t *testing.T) {
	sys := presets.ClassicalTableaux()
	p := presets.ClassicalParser()
	inf, err := p.ParseInference("p or q / p")
	if err != nil {
		t.Fatal(err)
	}
	ok, err := IsValid(sys, inf)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("p or q / p should not be valid")
	}
}

func TestReduce(t *testing.T) {
	calc := presets.LKminEA()
	red := presets.LKminEAReducer()
	p := presets.ClassicalParser()
	seq, err := p.ParseSequent("p & q ==> q & p")
	if err != nil {
		t.Fatal(err)
	}
	d, err := Reduce(calc, red, seq)
	if err != nil {
		t.Fatal(err)
	}
	if errs := calc.Verify(d, nil); len(errs) != 0 {
		t.Fatalf("reduced derivation has correction errors: %v", errs)
	}
}

func TestDerives(t *testing.T) {
	calc := presets.LKminEA()
	red := presets.LKminEAReducer()
	p := presets.ClassicalParser()
	for _, tc := range []struct {
		src  string
		want bool
	}{
		{"p & q / q & p", true},
		{"p / p or q", true},
		{"p or q / p", false},
	} {
		inf, err := p.ParseInference(tc.src)
		if err != nil {
			t.Fatalf("%s: %v", tc.src, err)
		}
		got, err := Derives(calc, red, inf)
		if err != nil {
			t.Fatalf("%s: %v", tc.src, err)
		}
		if got != tc.want {
			t.Fatalf("Derives(%s) = %v, want %v", tc.src, got, tc.want)
		}
	}
}
