package syntax

import (
	"fmt"
	"strings"
)

// Member is an element of a sequent side: either a formula or a context
// variable standing for any (possibly empty) stretch of members. Exactly
// one of Ctx and F is set.
type Member struct {
	Ctx string
	F   *Formula
}

func FormulaMember(f *Formula) Member {
	return Member{F: f}
}

func ContextMember(sym string) Member {
	return Member{Ctx: sym}
}

func (m Member) IsContext() bool {
	return m.Ctx != ""
}

func (m Member) Clone() Member {
	if m.IsContext() {
		return m
	}
	return Member{F: m.F.Clone()}
}

func (m Member) Equal(o Member) bool {
	if m.Ctx != o.Ctx {
		return false
	}
	if m.IsContext() {
		return true
	}
	return m.F.Equal(o.F)
}

func (m Member) Key() string {
	if m.IsContext() {
		return m.Ctx
	}
	return m.F.Key()
}

// Side is an ordered, repetition-significant slice of members.
type Side []Member

func (s Side) Clone() Side {
	if s == nil {
		return nil
	}
	res := make(Side, len(s))
	for i, m := range s {
		res[i] = m.Clone()
	}
	return res
}

func (s Side) Equal(o Side) bool {
	if len(s) != len(o) {
		return false
	}
	for i, m := range s {
		if !m.Equal(o[i]) {
			return false
		}
	}
	return true
}

// Index returns the position of the first member equal to m, or -1.
func (s Side) Index(m Member) int {
	for i, x := range s {
		if x.Equal(m) {
			return i
		}
	}
	return -1
}

func (s Side) Key() string {
	parts := make([]string, len(s))
	for i, m := range s {
		parts[i] = m.Key()
	}
	return strings.Join(parts, ",")
}

// Sequent is an ordered slice of at least two sides.
type Sequent []Side

func NewSequent(sides ...Side) (Sequent, error) {
	if len(sides) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrSides, len(sides))
	}
	return Sequent(sides), nil
}

func (q Sequent) Clone() Sequent {
	res := make(Sequent, len(q))
	for i, s := range q {
		res[i] = s.Clone()
	}
	return res
}

func (q Sequent) Equal(o Sequent) bool {
	if len(q) != len(o) {
		return false
	}
	for i, s := range q {
		if !s.Equal(o[i]) {
			return false
		}
	}
	return true
}

// Key is a canonical encoding of the whole sequent, usable as a map key
// for memoization.
func (q Sequent) Key() string {
	parts := make([]string, len(q))
	for i, s := range q {
		parts[i] = s.Key()
	}
	return strings.Join(parts, " | ")
}

func (q Sequent) String() string {
	return q.Key()
}

// ContainsFormulaEverywhere reports whether some formula occurs in every
// side of the sequent, and returns the first such formula.
func (q Sequent) ContainsFormulaEverywhere() (*Formula, bool) {
	if len(q) == 0 {
		return nil, false
	}
	for _, m := range q[0] {
		if m.IsContext() {
			continue
		}
		all := true
		for _, side := range q[1:] {
			if side.Index(Member{F: m.F}) < 0 {
				all = false
				break
			}
		}
		if all {
			return m.F, true
		}
	}
	return nil, false
}

// SequentFromInference turns an inference into an n-sided sequent with
// no context variables. Sides before sep repeat the premises, sides from
// sep on repeat the conclusions.
func SequentFromInference(inf *Inference, sides, sep int) (Sequent, error) {
	if sides < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrSides, sides)
	}
	if sep < 1 || sep >= sides {
		return nil, fmt.Errorf("separation index %d out of range for %d sides", sep, sides)
	}
	premises := make(Side, 0, len(inf.Premises))
	for _, p := range inf.Premises {
		if p.F == nil {
			return nil, fmt.Errorf("%w: premise %s", ErrNoFormula, p.Key())
		}
		premises = append(premises, FormulaMember(p.F))
	}
	conclusions := make(Side, 0, len(inf.Conclusions))
	for _, c := range inf.Conclusions {
		if c.F == nil {
			return nil, fmt.Errorf("%w: conclusion %s", ErrNoFormula, c.Key())
		}
		conclusions = append(conclusions, FormulaMember(c.F))
	}
	seq := make(Sequent, sides)
	for i := range seq {
		if i < sep {
			seq[i] = premises.Clone()
		} else {
			seq[i] = conclusions.Clone()
		}
	}
	return seq, nil
}
