// Package diff compares composed class strings class by class.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op marks how a class changed between two compositions.
type Op int

const (
	Equal Op = iota
	Removed
	Added
)

// Change is one class in a diff.
type Change struct {
	Op    Op
	Class string
}

// Result lists class changes in output order.
type Result struct {
	Changes []Change
}

// Classes diffs two class strings, treating each whitespace separated class as
// one line so ordering changes show up as a removal and an addition.
func Classes(before, after string) Result {
	dmp := diffmatchpatch.New()

	a, b, lines := dmp.DiffLinesToChars(asLines(before), asLines(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var result Result
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = Removed
		case diffmatchpatch.DiffInsert:
			op = Added
		}
		for _, class := range strings.Fields(d.Text) {
			result.Changes = append(result.Changes, Change{Op: op, Class: class})
		}
	}
	return result
}

// Added returns the classes present only in the second string.
func (r Result) Added() []string { return r.filter(Added) }

// Removed returns the classes present only in the first string.
func (r Result) Removed() []string { return r.filter(Removed) }

// Empty reports whether both strings composed to the same classes.
func (r Result) Empty() bool {
	for _, c := range r.Changes {
		if c.Op != Equal {
			return false
		}
	}
	return true
}

// Unified renders the result in unified diff style with one class per line.
// Returns an empty string when nothing changed.
func (r Result) Unified(fromLabel, toLabel string) string {
	if r.Empty() {
		return ""
	}

	var buf strings.Builder
	buf.WriteString("--- " + fromLabel + "\n")
	buf.WriteString("+++ " + toLabel + "\n")
	for _, c := range r.Changes {
		switch c.Op {
		case Removed:
			buf.WriteString("-")
		case Added:
			buf.WriteString("+")
		default:
			buf.WriteString(" ")
		}
		buf.WriteString(c.Class)
		buf.WriteString("\n")
	}
	return buf.String()
}

func (r Result) filter(op Op) []string {
	var out []string
	for _, c := range r.Changes {
		if c.Op == op {
			out = append(out, c.Class)
		}
	}
	return out
}

func asLines(classes string) string {
	fields := strings.Fields(classes)
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, "\n") + "\n"
}
