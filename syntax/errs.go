package syntax

import "errors"

var (
	ErrLevels    = errors.New("conflicting inference levels")
	ErrSides     = errors.New("sequent needs at least two sides")
	ErrUnbound   = errors.New("unbound schematic variable")
	ErrRebind    = errors.New("schematic variable already bound")
	ErrNoFormula = errors.New("member holds no formula")

	ErrConclusions = errors.New("not exactly one conclusion")
)
