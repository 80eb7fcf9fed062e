package seqcalc

import "errors"

var (
	// ErrNoProof is returned by the reducer when no derivation exists
	// within the depth bound.
	ErrNoProof = errors.New("no reduction found within depth bound")
)
