// Package errcode defines the closed set of verification error codes and
// the CorrectionError record returned by proof checkers.
package errcode

import (
	"fmt"
	"strings"
)

// Code identifies one kind of verification failure. The numeric values
// are stable and safe to serialize.
type Code int

const (
	GenMalformedFormula   Code = 101
	GenMalformedInference Code = 102

	TblPremiseNotBeginning    Code = 301
	TblIncorrectPremise       Code = 302
	TblRuleNotApplied         Code = 303
	TblRuleIncorrectlyApplied Code = 304
	TblPremiseNotPresent      Code = 305
	TblConclusionNotPresent   Code = 306

	SeqIncorrectPremise       Code = 501
	SeqIncorrectAxiom         Code = 502
	SeqRuleIncorrectlyApplied Code = 503
)

var codeNames = map[Code]string{
	GenMalformedFormula:   "GEN: Malformed formula",
	GenMalformedInference: "GEN: Malformed inference",

	TblPremiseNotBeginning:    "TBL: Premise not at the beginning",
	TblIncorrectPremise:       "TBL: Incorrect premise",
	TblRuleNotApplied:         "TBL: Rule not applied to node",
	TblRuleIncorrectlyApplied: "TBL: Rule incorrectly applied",
	TblPremiseNotPresent:      "TBL: Premise not present",
	TblConclusionNotPresent:   "TBL: Conclusion not present",

	SeqIncorrectPremise:       "SEQ: Incorrect premise",
	SeqIncorrectAxiom:         "SEQ: Incorrect axiom",
	SeqRuleIncorrectlyApplied: "SEQ: Rule incorrectly applied",
}

func (c Code) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return fmt.Sprintf("code %d", int(c))
}

// Category is the error family, derived from the code range.
func (c Code) Category() string {
	switch {
	case c >= 100 && c < 200:
		return "general"
	case c >= 300 && c < 400:
		return "tableaux"
	case c >= 500 && c < 600:
		return "sequents"
	}
	return "unknown"
}

// CorrectionError locates and describes one verification failure. Path
// addresses the offending node as a child index walk from the proof tree
// root; a nil path refers to the whole proof.
type CorrectionError struct {
	Code        Code   `json:"code"`
	Path        []int  `json:"path,omitempty"`
	Description string `json:"description"`
}

func New(code Code, path []int, format string, args ...any) CorrectionError {
	return CorrectionError{
		Code:        code,
		Path:        path,
		Description: fmt.Sprintf(format, args...),
	}
}

func (e CorrectionError) Equal(o CorrectionError) bool {
	if e.Code != o.Code || e.Description != o.Description || len(e.Path) != len(o.Path) {
		return false
	}
	for i, p := range e.Path {
		if p != o.Path[i] {
			return false
		}
	}
	return true
}

func (e CorrectionError) String() string {
	if e.Path == nil {
		return e.Description
	}
	parts := make([]string, len(e.Path))
	for i, p := range e.Path {
		parts[i] = fmt.Sprintf("%d", p)
	}
	return "(" + strings.Join(parts, ".") + "): " + e.Description
}

// PathLess orders paths by length first, then lexicographically. Error
// lists are reported in this order so shallower problems come first.
func PathLess(a, b []int) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
