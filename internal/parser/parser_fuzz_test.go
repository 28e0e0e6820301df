package parser

import (
	"errors"
	"testing"
)

// FuzzParse checks that parsing never panics and that a failed parse never
// returns a tree.
func FuzzParse(f *testing.F) {
	seeds := []string{
		factorial,
		"int main(void) { return 0 }",
		"int f(...);",
		"int f(int x, ...);",
		"if (x) if (y) a; else b;",
		"int f(void) { a = b = 3; - - x; ((1)); }",
		"int x @ y;",
		"char *",
		"int f(void) { { { {",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, src string) {
		file, err := ParseFile("fuzz.c", src, nil)
		if err != nil {
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("non-syntax error %T: %v", err, err)
			}
			if file != nil {
				t.Fatalf("tree returned with error")
			}
			return
		}
		if file == nil || len(file.Decls) == 0 {
			t.Fatalf("success without declarations")
		}
	})
}
