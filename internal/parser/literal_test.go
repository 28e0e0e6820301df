package parser

import "testing"

func TestUnquoteString(t *testing.T) {
	tests := []struct {
		raw, want string
	}{
		{`""`, ""},
		{`"plain"`, "plain"},
		{`"a\nb"`, "a\nb"},
		{`"say \"hi\""`, `say "hi"`},
		{`"c:\\dir"`, `c:\dir`},
		{`"\\n"`, `\n`},
		{`"\\\""`, `\"`},
	}
	for _, tt := range tests {
		if got := unquoteString(tt.raw); got != tt.want {
			t.Errorf("unquoteString(%s) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestUnquoteChar(t *testing.T) {
	tests := []struct {
		raw, want string
	}{
		{`'a'`, "a"},
		{`'\''`, "'"},
		{`'\\'`, `\`},
		{`'\n'`, `\n`},
		{`'''`, "'"},
		{`'"'`, `"`},
	}
	for _, tt := range tests {
		if got := unquoteChar(tt.raw); got != tt.want {
			t.Errorf("unquoteChar(%s) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
