package config

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/sequitur-logic/sequitur/errcode"
	"github.com/sequitur-logic/sequitur/seqcalc"
	"github.com/sequitur-logic/sequitur/syntax"
	"github.com/sequitur-logic/sequitur/tableaux"
)

// DerivNodeConfig is one node of a written-out sequent derivation,
// root first: children justify their parent.
type DerivNodeConfig struct {
	Sequent       string            `json:"sequent"`
	Justification string            `json:"justification,omitempty"`
	Children      []DerivNodeConfig `json:"children,omitempty"`
}

// ProofConfig is a hand-written proof to be checked: a tableau for an
// inference, or a derivation of a sequent from optional premise
// sequents. Exactly one of Tableau and Derivation is set.
type ProofConfig struct {
	Inference  string             `json:"inference,omitempty"`
	Tableau    *TableauNodeConfig `json:"tableau,omitempty"`
	Premises   []string           `json:"premises,omitempty"`
	Derivation *DerivNodeConfig   `json:"derivation,omitempty"`
}

// Proof is the runtime form of a ProofConfig.
type Proof struct {
	Inf      *syntax.Inference
	Tableau  *tableaux.Tree
	Premises []syntax.Sequent
	Deriv    *seqcalc.Deriv
}

// ParseProof builds a Proof from YAML bytes, parsing its notation with
// the system's parser. Formulas and sequents in a proof are concrete,
// never schematic.
func (sys *System) ParseProof(d []byte) (*Proof, error) {
	var cfg ProofConfig
	if err := yaml.Unmarshal(d, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return sys.BuildProof(&cfg)
}

func (sys *System) BuildProof(cfg *ProofConfig) (*Proof, error) {
	if (cfg.Tableau != nil) == (cfg.Derivation != nil) {
		return nil, fmt.Errorf("%w: a proof needs exactly one of tableau, derivation", ErrConfig)
	}
	pf := &Proof{}
	if cfg.Tableau != nil {
		if sys.Tableaux == nil {
			return nil, fmt.Errorf("%w: proof has a tableau but the system has no tableaux rules", ErrConfig)
		}
		if cfg.Inference == "" {
			return nil, fmt.Errorf("%w: a tableau proof needs an inference", ErrConfig)
		}
		inf, err := sys.Parser.ParseInference(cfg.Inference)
		if err != nil {
			return nil, fmt.Errorf("%w: inference: %v", ErrConfig, err)
		}
		pf.Inf = inf
		t, err := sys.buildProofTree(cfg.Tableau)
		if err != nil {
			return nil, err
		}
		pf.Tableau = t
		return pf, nil
	}
	if sys.Calculus == nil {
		return nil, fmt.Errorf("%w: proof has a derivation but the system has no calculus", ErrConfig)
	}
	for i, ps := range cfg.Premises {
		seq, err := sys.Parser.ParseSequent(ps)
		if err != nil {
			return nil, fmt.Errorf("%w: premise %d: %v", ErrConfig, i, err)
		}
		pf.Premises = append(pf.Premises, seq)
	}
	d, err := sys.buildDeriv(cfg.Derivation)
	if err != nil {
		return nil, err
	}
	pf.Deriv = d
	return pf, nil
}

// Verify checks the proof against the system and returns every
// correction error found.
func (sys *System) Verify(pf *Proof) []errcode.CorrectionError {
	if pf.Tableau != nil {
		return sys.Tableaux.Verify(pf.Tableau, pf.Inf)
	}
	return sys.Calculus.Verify(pf.Deriv, pf.Premises)
}

func (sys *System) buildProofTree(nc *TableauNodeConfig) (*tableaux.Tree, error) {
	root, err := sys.proofNode(nc)
	if err != nil {
		return nil, err
	}
	t := tableaux.NewTree(*root)
	var add func(parent int, nc *TableauNodeConfig) error
	add = func(parent int, nc *TableauNodeConfig) error {
		n, err := sys.proofNode(nc)
		if err != nil {
			return err
		}
		i := t.Add(parent, *n)
		for k := range nc.Children {
			if err := add(i, &nc.Children[k]); err != nil {
				return err
			}
		}
		return nil
	}
	for k := range nc.Children {
		if err := add(0, &nc.Children[k]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (sys *System) proofNode(nc *TableauNodeConfig) (*tableaux.Node, error) {
	f, err := sys.Parser.ParseFormula(nc.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: node %q: %v", ErrConfig, nc.Content, err)
	}
	if err := sys.Lang.WellFormed(f, false); err != nil {
		return nil, fmt.Errorf("%w: node %q: %v", ErrConfig, nc.Content, err)
	}
	return &tableaux.Node{Content: f, Index: nc.Index, Just: nc.Justification}, nil
}

func (sys *System) buildDeriv(nc *DerivNodeConfig) (*seqcalc.Deriv, error) {
	seq, err := sys.Parser.ParseSequent(nc.Sequent)
	if err != nil {
		return nil, fmt.Errorf("%w: derivation node %q: %v", ErrConfig, nc.Sequent, err)
	}
	d := seqcalc.NewDeriv(seqcalc.DNode{Seq: seq, Just: nc.Justification})
	var add func(parent int, nc *DerivNodeConfig) error
	add = func(parent int, nc *DerivNodeConfig) error {
		seq, err := sys.Parser.ParseSequent(nc.Sequent)
		if err != nil {
			return fmt.Errorf("%w: derivation node %q: %v", ErrConfig, nc.Sequent, err)
		}
		i := d.Add(parent, seqcalc.DNode{Seq: seq, Just: nc.Justification})
		for k := range nc.Children {
			if err := add(i, &nc.Children[k]); err != nil {
				return err
			}
		}
		return nil
	}
	for k := range nc.Children {
		if err := add(0, &nc.Children[k]); err != nil {
			return nil, err
		}
	}
	return d, nil
}
