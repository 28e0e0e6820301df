package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/tinyrange/creducido/internal/diag"
)

func TestParseSourceOK(t *testing.T) {
	r := ParseSource("ok.c", "int main(void) { return 0; }")
	if !r.OK() || r.File == nil || len(r.File.Decls) != 1 {
		t.Fatalf("result %+v", r)
	}
}

func TestParseSourceCollectsBoth(t *testing.T) {
	r := ParseSource("bad.c", "int x @;\nint main(void) { return 0 }")
	if r.OK() || r.File != nil {
		t.Fatalf("expected failure, got %+v", r)
	}
	if len(r.Diags) != 2 {
		t.Fatalf("diags = %v", r.Diags)
	}
	if r.Diags[0].Kind != diag.Lexical || r.Diags[1].Kind != diag.Syntax {
		t.Errorf("order: %v", r.Diags)
	}
	if r.Diags[1].Pos.Line != 2 || r.Diags[1].Pos.File != "bad.c" {
		t.Errorf("syntax pos %+v", r.Diags[1].Pos)
	}
}

func TestParseSourceLexicalOnly(t *testing.T) {
	r := ParseSource("lex.c", "int x $;")
	if r.File == nil || r.OK() || len(r.Diags) != 1 {
		t.Fatalf("result %+v", r)
	}
}

func TestCheckKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 20; i++ {
		src := fmt.Sprintf("int v%d;", i)
		if i%3 == 0 {
			src = "int broken"
		}
		p := filepath.Join(dir, fmt.Sprintf("f%02d.c", i))
		if err := os.WriteFile(p, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}
	d := &Driver{Jobs: 4}
	results, err := d.Check(context.Background(), paths)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(paths) {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if r.Path != paths[i] {
			t.Fatalf("result %d is %s, want %s", i, r.Path, paths[i])
		}
		if want := i%3 != 0; r.OK() != want {
			t.Errorf("%s: OK() = %v, want %v (%v)", r.Path, r.OK(), want, r.Diags)
		}
	}
}

func TestCheckMissingFile(t *testing.T) {
	d := &Driver{}
	_, err := d.Check(context.Background(), []string{filepath.Join(t.TempDir(), "nope.c")})
	if err == nil {
		t.Fatal("expected read error")
	}
}

func TestCheckCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := filepath.Join(t.TempDir(), "a.c")
	if err := os.WriteFile(p, []byte("int a;"), 0o644); err != nil {
		t.Fatal(err)
	}
	d := &Driver{Jobs: 1}
	if _, err := d.Check(ctx, []string{p}); err == nil {
		t.Fatal("expected context error")
	}
}
