package lexer

import "fmt"

type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Identifiers + literals
	IDENT
	INT    // integer constant
	CHAR   // char constant
	STRING // string constant

	// Keywords
	KW_INT
	KW_CHAR
	KW_VOID
	KW_IF
	KW_ELSE
	KW_WHILE
	KW_RETURN
	KW_PRINTF
	KW_SCANF

	// Symbols
	LPAREN   // (
	RPAREN   // )
	LBRACE   // {
	RBRACE   // }
	SEMI     // ;
	COMMA    // ,
	ASSIGN   // =
	ELLIPSIS // ...
	QUOTE    // " (reserved, never produced on its own)

	// Arithmetic
	PLUS  // +
	MINUS // -
	STAR  // *
	SLASH // /

	// Comparison
	EQEQ // ==
	NEQ  // !=
	LT   // <
	LE   // <=
	GT   // >
	GE   // >=

	numTokenTypes
)

var tokenNames = [numTokenTypes]string{
	EOF:       "EOF",
	IDENT:     "IDENT",
	INT:       "INTEGER_CONSTANT",
	CHAR:      "CHAR_CONSTANT",
	STRING:    "STRING_CONSTANT",
	KW_INT:    "int",
	KW_CHAR:   "char",
	KW_VOID:   "void",
	KW_IF:     "if",
	KW_ELSE:   "else",
	KW_WHILE:  "while",
	KW_RETURN: "return",
	KW_PRINTF: "printf",
	KW_SCANF:  "scanf",
	LPAREN:    "'('",
	RPAREN:    "')'",
	LBRACE:    "'{'",
	RBRACE:    "'}'",
	SEMI:      "';'",
	COMMA:     "','",
	ASSIGN:    "'='",
	ELLIPSIS:  "'...'",
	QUOTE:     "'\"'",
	PLUS:      "'+'",
	MINUS:     "'-'",
	STAR:      "'*'",
	SLASH:     "'/'",
	EQEQ:      "'=='",
	NEQ:       "'!='",
	LT:        "'<'",
	LE:        "'<='",
	GT:        "'>'",
	GE:        "'>='",
}

func (t TokenType) String() string {
	if t >= 0 && t < numTokenTypes {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// IsKeyword reports whether t is one of the reserved words.
func (t TokenType) IsKeyword() bool { return t >= KW_INT && t <= KW_SCANF }

var keywords = map[string]TokenType{
	"int":    KW_INT,
	"char":   KW_CHAR,
	"void":   KW_VOID,
	"if":     KW_IF,
	"else":   KW_ELSE,
	"while":  KW_WHILE,
	"return": KW_RETURN,
	"printf": KW_PRINTF,
	"scanf":  KW_SCANF,
}

// Lookup maps an identifier spelling to its keyword token type, or IDENT.
func Lookup(ident string) TokenType {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return IDENT
}

type Token struct {
	Type TokenType
	Lex  string // raw text, quotes included for CHAR and STRING
	Val  int64  // value of an INT token
	Line int
	Col  int
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "end of input"
	case IDENT, INT, CHAR, STRING:
		return fmt.Sprintf("%s %s", t.Type, t.Lex)
	default:
		return t.Type.String()
	}
}
