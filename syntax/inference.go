package syntax

import (
	"fmt"
	"strings"

	"github.com/sequitur-logic/sequitur/debug"
)

// Judgement is a tagged union: exactly one of F and Inf is non-nil. A
// formula judgement has level 0; an inference judgement has the level of
// its inference. Premises and conclusions of metainferences are
// judgements holding inferences.
type Judgement struct {
	F   *Formula
	Inf *Inference
}

func FormulaJudgement(f *Formula) Judgement {
	return Judgement{F: f}
}

func InferenceJudgement(i *Inference) Judgement {
	return Judgement{Inf: i}
}

func (j Judgement) Level() int {
	if j.Inf != nil {
		return j.Inf.Level()
	}
	return 0
}

func (j Judgement) Clone() Judgement {
	if j.Inf != nil {
		return Judgement{Inf: j.Inf.Clone()}
	}
	return Judgement{F: j.F.Clone()}
}

func (j Judgement) Equal(o Judgement) bool {
	if (j.Inf != nil) != (o.Inf != nil) {
		return false
	}
	if j.Inf != nil {
		return j.Inf.Equal(o.Inf)
	}
	return j.F.Equal(o.F)
}

func (j Judgement) Key() string {
	if j.Inf != nil {
		return j.Inf.Key()
	}
	return j.F.Key()
}

// Inference relates premises to conclusions. Both slices are ordered and
// may be empty. DeclaredLevel is 0 when not declared; it is only needed
// to give empty metainferences a level above 1.
type Inference struct {
	Premises      []Judgement
	Conclusions   []Judgement
	DeclaredLevel int
}

// NewInference builds an inference and checks its levels. A declared
// level that conflicts with a member's level is an error; members of
// mixed levels without a declared level are accepted as is.
func NewInference(premises, conclusions []Judgement, declaredLevel int) (*Inference, error) {
	inf := &Inference{
		Premises:      premises,
		Conclusions:   conclusions,
		DeclaredLevel: declaredLevel,
	}
	if declaredLevel != 0 {
		want := declaredLevel - 1
		for i, p := range premises {
			if p.Level() != want {
				return nil, fmt.Errorf("%w: premise %d has level %d, declared level is %d",
					ErrLevels, i, p.Level(), declaredLevel)
			}
		}
		for i, c := range conclusions {
			if c.Level() != want {
				return nil, fmt.Errorf("%w: conclusion %d has level %d, declared level is %d",
					ErrLevels, i, c.Level(), declaredLevel)
			}
		}
		return inf, nil
	}
	if debug.Levels() {
		for i, m := range append(premises[:len(premises):len(premises)], conclusions...) {
			if m.Level() != inf.Level()-1 {
				debug.Logf("levels: member %d has level %d in an inference of level %d: %s\n",
					i, m.Level(), inf.Level(), inf.Key())
			}
		}
	}
	return inf, nil
}

// Level is 1 for an inference between formulae, level of the members
// plus one in general. An empty inference has its declared level, or 1.
func (i *Inference) Level() int {
	if len(i.Conclusions) > 0 {
		return i.Conclusions[0].Level() + 1
	}
	if len(i.Premises) > 0 {
		return i.Premises[0].Level() + 1
	}
	if i.DeclaredLevel != 0 {
		return i.DeclaredLevel
	}
	return 1
}

// Conclusion returns the conclusion of a single-conclusion inference.
func (i *Inference) Conclusion() (Judgement, error) {
	if len(i.Conclusions) != 1 {
		return Judgement{}, fmt.Errorf("%w: got %d", ErrConclusions, len(i.Conclusions))
	}
	return i.Conclusions[0], nil
}

func (i *Inference) Clone() *Inference {
	res := &Inference{DeclaredLevel: i.DeclaredLevel}
	if len(i.Premises) > 0 {
		res.Premises = make([]Judgement, len(i.Premises))
		for k, p := range i.Premises {
			res.Premises[k] = p.Clone()
		}
	}
	if len(i.Conclusions) > 0 {
		res.Conclusions = make([]Judgement, len(i.Conclusions))
		for k, c := range i.Conclusions {
			res.Conclusions[k] = c.Clone()
		}
	}
	return res
}

func (i *Inference) Equal(o *Inference) bool {
	if i == nil || o == nil {
		return i == o
	}
	if len(i.Premises) != len(o.Premises) || len(i.Conclusions) != len(o.Conclusions) {
		return false
	}
	if i.Level() != o.Level() {
		return false
	}
	for k, p := range i.Premises {
		if !p.Equal(o.Premises[k]) {
			return false
		}
	}
	for k, c := range i.Conclusions {
		if !c.Equal(o.Conclusions[k]) {
			return false
		}
	}
	return true
}

func (i *Inference) Key() string {
	var b strings.Builder
	b.WriteByte('(')
	for k, p := range i.Premises {
		if k > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Key())
	}
	b.WriteString(" /")
	fmt.Fprintf(&b, "%d", i.Level())
	for k, c := range i.Conclusions {
		if k > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(' ')
		b.WriteString(c.Key())
	}
	b.WriteByte(')')
	return b.String()
}

func (i *Inference) String() string {
	return i.Key()
}
