package types

// Kind is one of the scalar kinds the language knows about.
type Kind int

const (
	Int Kind = iota
	Char
	Void
	Ptr
)

// Type is a minimal description of a declared type.
// Ptr only ever points at Char: the grammar has no other pointer types.
type Type struct {
	K    Kind
	Elem *Type // non-nil only when K==Ptr
}

func IntT() Type  { return Type{K: Int} }
func CharT() Type { return Type{K: Char} }
func VoidT() Type { return Type{K: Void} }

func PointerTo(elem Type) Type { return Type{K: Ptr, Elem: &elem} }

// String spells t the way a declaration does; pointer types end in "*" so
// a declarator name can follow directly.
func (t Type) String() string {
	switch t.K {
	case Int:
		return "int"
	case Char:
		return "char"
	case Void:
		return "void"
	case Ptr:
		if t.Elem == nil {
			return "?*"
		}
		return t.Elem.String() + " *"
	default:
		return "?"
	}
}
