// Package diag defines the diagnostics produced while scanning and parsing
// C-reducido sources, and the sinks that collect them.
package diag

import "fmt"

// Kind separates recoverable lexical problems from fatal syntax errors.
type Kind int

const (
	Lexical Kind = iota
	Syntax
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Syntax:
		return "syntax"
	default:
		return "unknown"
	}
}

// Diagnostic codes.
const (
	ELexChar    = "E_LEX_CHAR"
	ELexComment = "E_LEX_COMMENT"
	ELexRange   = "E_LEX_RANGE"
	ESyntax     = "E_SYNTAX"
)

// Pos is a source position. Line and Col are 1-based; Col is 0 when unknown.
type Pos struct {
	File string `json:"file,omitempty"`
	Line int    `json:"line"`
	Col  int    `json:"col,omitempty"`
}

func (p Pos) String() string {
	s := p.File
	if s == "" {
		s = "<input>"
	}
	if p.Col > 0 {
		return fmt.Sprintf("%s:%d:%d", s, p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d", s, p.Line)
}

// Diagnostic is a single positioned problem report.
type Diagnostic struct {
	Kind Kind   `json:"-"`
	Code string `json:"code"`
	Pos  Pos    `json:"pos"`
	Msg  string `json:"message"`
	Hint string `json:"hint,omitempty"`
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s error: %s", d.Pos, d.Kind, d.Msg)
}

// Sink receives diagnostics as they are found.
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(d Diagnostic)

func (f SinkFunc) Report(d Diagnostic) { f(d) }

// List is a Sink that keeps every diagnostic in arrival order.
type List []Diagnostic

func (l *List) Report(d Diagnostic) { *l = append(*l, d) }

// Discard drops everything reported to it.
var Discard Sink = SinkFunc(func(Diagnostic) {})
