// Package sequitur ties the proof packages together: given a tableaux
// system or a sequent calculus, it proves, checks and reduces parsed
// inferences and sequents. The heavy lifting lives in tableaux, seqcalc
// and match; this package is a thin front door.
package sequitur

import (
	"errors"

	"github.com/sequitur-logic/sequitur/errcode"
	"github.com/sequitur-logic/sequitur/seqcalc"
	"github.com/sequitur-logic/sequitur/syntax"
	"github.com/sequitur-logic/sequitur/tableaux"
)

type proveConfig struct {
	maxDepth int
}

type ProveOpt func(*proveConfig)

// MaxDepth caps solver recursion; 0 keeps the solver default.
func MaxDepth(n int) ProveOpt {
	return func(c *proveConfig) { c.maxDepth = n }
}

// Prove solves inf in sys and returns the resulting tableau, closed
// when inf is valid and saturated but open when it is not.
func Prove(sys *tableaux.System, inf *syntax.Inference, opts ...ProveOpt) (*tableaux.Tree, error) {
	var c proveConfig
	for _, o := range opts {
		o(&c)
	}
	sv := &tableaux.Solver{System: sys, MaxDepth: c.maxDepth}
	return sv.Solve(inf)
}

// IsValid reports whether sys proves inf.
func IsValid(sys *tableaux.System, inf *syntax.Inference, opts ...ProveOpt) (bool, error) {
	var c proveConfig
	for _, o := range opts {
		o(&c)
	}
	sv := &tableaux.Solver{System: sys, MaxDepth: c.maxDepth}
	return sv.IsValid(inf)
}

// Check verifies a hand-built tableau for inf against sys and returns
// every correction error found.
func Check(sys *tableaux.System, t *tableaux.Tree, inf *syntax.Inference) []errcode.CorrectionError {
	return sys.Verify(t, inf)
}

// Reduce derives seq in calc using red, from the given premise sequents
// if any. A nil red uses a depth-limited reducer with no smart
// weakening.
func Reduce(calc *seqcalc.Calculus, red *seqcalc.Reducer, seq syntax.Sequent, premises ...syntax.Sequent) (*seqcalc.Deriv, error) {
	if red == nil {
		red = &seqcalc.Reducer{}
	}
	return red.Reduce(calc, seq, premises)
}

// Derives reports whether calc derives the two-sided sequent form of
// inf, premises on the left and conclusions on the right.
func Derives(calc *seqcalc.Calculus, red *seqcalc.Reducer, inf *syntax.Inference) (bool, error) {
	seq, err := syntax.SequentFromInference(inf, 2, 1)
	if err != nil {
		return false, err
	}
	if _, err := Reduce(calc, red, seq); err != nil {
		if errors.Is(err, seqcalc.ErrNoProof) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
