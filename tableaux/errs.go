package tableaux

import "errors"

var (
	// ErrNoProof is returned by the solver when the depth bound is
	// reached with open branches remaining.
	ErrNoProof = errors.New("no tableau found within depth bound")
)
