package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type styles struct {
	err, pos, caret, hint lipgloss.Style
}

// Printer writes diagnostics with the offending source line and a caret
// under the reported column. When Styled, colors follow the terminal
// capabilities of W unless Force is set.
type Printer struct {
	W      io.Writer
	Styled bool
	Force  bool

	st *styles
}

func (p *Printer) palette() *styles {
	if p.st != nil {
		return p.st
	}
	r := lipgloss.NewRenderer(p.W)
	if p.Force {
		r.SetColorProfile(termenv.ANSI256)
	}
	p.st = &styles{
		err:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		pos:   r.NewStyle().Bold(true),
		caret: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		hint:  r.NewStyle().Foreground(lipgloss.Color("12")),
	}
	return p.st
}

func (p *Printer) style(pick func(*styles) lipgloss.Style, text string) string {
	if !p.Styled {
		return text
	}
	return pick(p.palette()).Render(text)
}

func errStyle(s *styles) lipgloss.Style   { return s.err }
func posStyle(s *styles) lipgloss.Style   { return s.pos }
func caretStyle(s *styles) lipgloss.Style { return s.caret }
func hintStyle(s *styles) lipgloss.Style  { return s.hint }

// Print renders d. src is the full text the diagnostic refers to and may be
// empty, in which case only the header line is written.
func (p *Printer) Print(d Diagnostic, src string) error {
	_, err := fmt.Fprintf(p.W, "%s: %s %s\n",
		p.style(posStyle, d.Pos.String()),
		p.style(errStyle, "error["+d.Code+"]:"),
		d.Msg)
	if err != nil {
		return err
	}
	if line, ok := sourceLine(src, d.Pos.Line); ok {
		if _, err := fmt.Fprintf(p.W, "  %s\n", expandTabs(line)); err != nil {
			return err
		}
		if d.Pos.Col > 0 {
			pad := strings.Repeat(" ", caretOffset(line, d.Pos.Col))
			if _, err := fmt.Fprintf(p.W, "  %s%s\n", pad, p.style(caretStyle, "^")); err != nil {
				return err
			}
		}
	}
	if d.Hint != "" {
		if _, err := fmt.Fprintf(p.W, "  %s\n", p.style(hintStyle, "hint: "+d.Hint)); err != nil {
			return err
		}
	}
	return nil
}

// PrintAll renders every diagnostic in ds against the same source.
func (p *Printer) PrintAll(ds []Diagnostic, src string) error {
	for _, d := range ds {
		if err := p.Print(d, src); err != nil {
			return err
		}
	}
	return nil
}

func sourceLine(src string, n int) (string, bool) {
	if src == "" || n < 1 {
		return "", false
	}
	lines := strings.Split(src, "\n")
	if n > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[n-1], "\r"), true
}

// Tabs are shown as four spaces so the caret lines up.
func expandTabs(line string) string {
	return strings.ReplaceAll(line, "\t", "    ")
}

func caretOffset(line string, col int) int {
	off := 0
	for i, r := range []rune(line) {
		if i+1 >= col {
			break
		}
		if r == '\t' {
			off += 4
		} else {
			off++
		}
	}
	return off
}
