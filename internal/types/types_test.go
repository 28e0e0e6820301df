package types

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{IntT(), "int"},
		{CharT(), "char"},
		{VoidT(), "void"},
		{PointerTo(CharT()), "char *"},
		{Type{K: Ptr}, "?*"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
