package diag

import (
	"bytes"
	"strings"
	"testing"
)

func TestListCollects(t *testing.T) {
	var l List
	var s Sink = &l
	s.Report(Diagnostic{Kind: Lexical, Code: ELexChar, Pos: Pos{Line: 1}, Msg: "a"})
	s.Report(Diagnostic{Kind: Lexical, Code: ELexChar, Pos: Pos{Line: 2}, Msg: "b"})
	if len(l) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(l))
	}
	if got := l[0].Error(); got != "<input>:1: lexical error: a" {
		t.Errorf("Error() = %q", got)
	}
}

func TestSinkFunc(t *testing.T) {
	n := 0
	s := SinkFunc(func(Diagnostic) { n++ })
	s.Report(Diagnostic{})
	Discard.Report(Diagnostic{})
	if n != 1 {
		t.Fatalf("SinkFunc called %d times", n)
	}
}

func TestPosString(t *testing.T) {
	tests := []struct {
		pos  Pos
		want string
	}{
		{Pos{File: "a.c", Line: 3, Col: 7}, "a.c:3:7"},
		{Pos{File: "a.c", Line: 3}, "a.c:3"},
		{Pos{Line: 1, Col: 1}, "<input>:1:1"},
	}
	for _, tt := range tests {
		if got := tt.pos.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestPrinterCaret(t *testing.T) {
	src := "int x;\nint y @;\n"
	d := Diagnostic{Kind: Lexical, Code: ELexChar, Pos: Pos{File: "t.c", Line: 2, Col: 7}, Msg: "illegal character '@'"}
	var buf bytes.Buffer
	p := &Printer{W: &buf}
	if err := p.Print(d, src); err != nil {
		t.Fatal(err)
	}
	want := "t.c:2:7: error[E_LEX_CHAR]: illegal character '@'\n" +
		"  int y @;\n" +
		"        ^\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrinterTabsAndHint(t *testing.T) {
	src := "\tx = 1\n"
	d := Diagnostic{Kind: Syntax, Code: ESyntax, Pos: Pos{Line: 1, Col: 7}, Msg: "unexpected end of input", Hint: "add ';'"}
	var buf bytes.Buffer
	p := &Printer{W: &buf}
	if err := p.PrintAll([]Diagnostic{d}, src); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 4 {
		t.Fatalf("short output: %q", buf.String())
	}
	if lines[1] != "      x = 1" {
		t.Errorf("source line = %q", lines[1])
	}
	if lines[2] != "           ^" {
		t.Errorf("caret line = %q", lines[2])
	}
	if lines[3] != "  hint: add ';'" {
		t.Errorf("hint line = %q", lines[3])
	}
}

func TestPrinterNoSource(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{W: &buf}
	d := Diagnostic{Code: ESyntax, Pos: Pos{Line: 9}, Msg: "boom"}
	if err := p.Print(d, "one line"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "<input>:9: error[E_SYNTAX]: boom\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestPrinterForcedColor(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{W: &buf, Styled: true, Force: true}
	d := Diagnostic{Code: ESyntax, Pos: Pos{Line: 1, Col: 1}, Msg: "boom"}
	if err := p.Print(d, "x"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escapes in %q", buf.String())
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Fatalf("message missing from %q", buf.String())
	}
}
