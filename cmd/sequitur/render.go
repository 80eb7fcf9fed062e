package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/sequitur-logic/sequitur/parse"
	"github.com/sequitur-logic/sequitur/seqcalc"
	"github.com/sequitur-logic/sequitur/tableaux"
)

var (
	justColor    = color.New(color.FgCyan)
	closedColor  = color.New(color.FgGreen)
	openColor    = color.New(color.FgRed)
	invalidColor = color.New(color.FgRed, color.Bold)
	validColor   = color.New(color.FgGreen, color.Bold)
)

func indent(d int) string {
	return strings.Repeat("  ", d)
}

func nodeText(p *parse.Parser, n *tableaux.Node) string {
	var s string
	if n.Inf != nil {
		s = p.UnparseInference(n.Inf)
	} else {
		s = p.UnparseFormula(n.Content)
	}
	if n.Index != nil {
		s += fmt.Sprintf(", %d", *n.Index)
	}
	if n.Std != nil {
		s += ", " + n.Std.Key()
	}
	return s
}

// renderTableau prints the tree top down, indenting once per branching
// point and marking each leaf branch closed (×) or open (○).
func renderTableau(w io.Writer, pal *palette, p *parse.Parser, sys *tableaux.System, t *tableaux.Tree) {
	var walk func(i, depth int)
	walk = func(i, depth int) {
		n := t.Node(i)
		line := indent(depth) + nodeText(p, n)
		if n.Just != "" {
			line += " " + pal.paint(justColor, "("+n.Just+")")
		}
		fmt.Fprintln(w, line)
		if t.IsLeaf(i) {
			mark := pal.paint(openColor, "○")
			if sys.BranchClosed(t, i) {
				mark = pal.paint(closedColor, "×")
			}
			fmt.Fprintln(w, indent(depth)+mark)
			return
		}
		childDepth := depth
		if len(n.Children) > 1 {
			childDepth++
		}
		for _, c := range n.Children {
			walk(c, childDepth)
		}
	}
	walk(0, 0)
}

// renderDeriv prints the derivation root first, each rule's premises
// indented under the sequent they derive.
func renderDeriv(w io.Writer, pal *palette, p *parse.Parser, d *seqcalc.Deriv) {
	var walk func(i, depth int)
	walk = func(i, depth int) {
		n := d.Node(i)
		line := indent(depth) + p.UnparseSequent(n.Seq)
		if n.Just != "" {
			line += " " + pal.paint(justColor, "("+n.Just+")")
		}
		fmt.Fprintln(w, line)
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(0, 0)
}
