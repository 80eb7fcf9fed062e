// Package debug gates diagnostic logging on SEQUITUR_DEBUG_* environment
// variables.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Match  bool
	Solve  bool
	Reduce bool
	Levels bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("SEQUITUR_DEBUG_MATCH")
	d.Solve = boolEnv("SEQUITUR_DEBUG_SOLVE")
	d.Reduce = boolEnv("SEQUITUR_DEBUG_REDUCE")
	d.Levels = boolEnv("SEQUITUR_DEBUG_LEVELS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Solve() bool {
	return d.Solve
}
func Reduce() bool {
	return d.Reduce
}
func Levels() bool {
	return d.Levels
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
