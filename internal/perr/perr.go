// Package perr formats pipeline errors, grounded on the teacher
// repository's internal/errors package: a single error type carrying a
// message and a source position, with a Format method that prints the
// offending source line and a caret pointer.
package perr

import (
	"fmt"
	"strings"

	"github.com/mugwort-rc/py2cpp/internal/ast"
)

// Fatal is an invariant violation (§7 case 2): a self-inconsistency in
// the pipeline, such as a power or floor-div operator reaching the
// translator after the surface rewriter should have removed it. It is
// the only error kind the pipeline returns; every other pipeline
// "failure" (unsupported construct, type-lookup miss) is non-fatal by
// design and never becomes an error value.
type Fatal struct {
	Message string
	Source  string
	File    string
	Pos     ast.Position
}

// NewFatal builds a Fatal invariant-violation error.
func NewFatal(pos ast.Position, message string) *Fatal {
	return &Fatal{Pos: pos, Message: message}
}

// WithSource attaches the original source text and file name so Format
// can render a caret-annotated excerpt.
func (e *Fatal) WithSource(source, file string) *Fatal {
	e.Source = source
	e.File = file
	return e
}

// Error implements the error interface with the uncolored format.
func (e *Fatal) Error() string {
	return e.Format(false)
}

// Format renders the error with a source-line excerpt and a caret
// pointing at the offending column, optionally ANSI-colored.
func (e *Fatal) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("py2cpp: invariant violation in %s:%s\n", e.File, e.Pos))
	} else {
		sb.WriteString(fmt.Sprintf("py2cpp: invariant violation at %s\n", e.Pos))
	}
	sb.WriteString(e.Message)
	sb.WriteString("\n")

	line := e.sourceLine(e.Pos.Line)
	if line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m^\033[0m")
		} else {
			sb.WriteString("^")
		}
	}

	return sb.String()
}

func (e *Fatal) sourceLine(line int) string {
	if e.Source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}
