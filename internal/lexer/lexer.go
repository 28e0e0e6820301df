package lexer

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/tinyrange/creducido/internal/diag"
)

type Lexer struct {
	src  []rune
	i    int // index of ch
	ch   rune
	line int
	col  int
	file string
	sink diag.Sink
	errs []diag.Diagnostic

	// closeAt caches the last "*/" found by closedComment, noClose is set
	// once no "*/" is left in the input.
	closeAt int
	noClose bool
}

// New returns a lexer over src. Lexical diagnostics are forwarded to sink,
// which may be nil, and are always available from Errors.
func New(src string, sink diag.Sink) *Lexer {
	if sink == nil {
		sink = diag.Discard
	}
	l := &Lexer{src: []rune(src), line: 1, col: 1, sink: sink}
	l.load()
	return l
}

// SetFile sets the file name recorded in diagnostics.
func (l *Lexer) SetFile(name string) { l.file = name }

// Errors returns the lexical diagnostics reported so far.
func (l *Lexer) Errors() []diag.Diagnostic { return l.errs }

func (l *Lexer) load() {
	if l.i >= len(l.src) {
		l.ch = 0
		return
	}
	l.ch = l.src[l.i]
}

func (l *Lexer) eof() bool { return l.i >= len(l.src) }

func (l *Lexer) read() {
	if l.eof() {
		return
	}
	if l.ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.i++
	l.load()
}

func (l *Lexer) peekAt(n int) rune {
	if l.i+n >= len(l.src) {
		return 0
	}
	return l.src[l.i+n]
}

func (l *Lexer) errorf(code string, line, col int, format string, args ...any) {
	d := diag.Diagnostic{
		Kind: diag.Lexical,
		Code: code,
		Pos:  diag.Pos{File: l.file, Line: line, Col: col},
		Msg:  fmt.Sprintf(format, args...),
	}
	l.errs = append(l.errs, d)
	l.sink.Report(d)
}

// skip drops blanks and block comments. An unterminated comment is
// reported at its opening '/', which is then skipped on its own.
func (l *Lexer) skip() {
	for !l.eof() {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.read()
		case l.ch == '/' && l.peekAt(1) == '*':
			if !l.closedComment() {
				l.errorf(diag.ELexComment, l.line, l.col, "unterminated comment")
				l.read()
				return
			}
			l.skipN(2)
			for !(l.ch == '*' && l.peekAt(1) == '/') {
				l.read()
			}
			l.skipN(2)
		default:
			return
		}
	}
}

func (l *Lexer) skipN(n int) {
	for range n {
		l.read()
	}
}

// closedComment reports whether a "*/" follows the "/*" at the cursor.
// Searches resume past the previous answer and never rescan a region.
func (l *Lexer) closedComment() bool {
	from := l.i + 2
	if l.closeAt >= from {
		return true
	}
	if l.noClose {
		return false
	}
	for j := from; j+1 < len(l.src); j++ {
		if l.src[j] == '*' && l.src[j+1] == '/' {
			l.closeAt = j
			return true
		}
	}
	l.noClose = true
	return false
}

// Next returns the next token. Characters that start no token are reported
// and skipped; at end of input Next keeps returning EOF.
func (l *Lexer) Next() Token {
	for {
		l.skip()
		if l.eof() {
			return Token{Type: EOF, Line: l.line, Col: l.col}
		}
		if tok, ok := l.scan(); ok {
			return tok
		}
	}
}

func (l *Lexer) scan() (Token, bool) {
	tok := Token{Line: l.line, Col: l.col}
	start := l.i
	switch ch := l.ch; {
	case isLetter(ch):
		for isLetter(l.ch) || isDigit(l.ch) {
			l.read()
		}
		tok.Lex = string(l.src[start:l.i])
		tok.Type = Lookup(tok.Lex)
		return tok, true
	case isDigit(ch):
		l.read()
		if ch != '0' {
			for isDigit(l.ch) {
				l.read()
			}
		}
		tok.Type, tok.Lex = INT, string(l.src[start:l.i])
		v, err := strconv.ParseInt(tok.Lex, 10, 64)
		if err != nil {
			l.errorf(diag.ELexRange, tok.Line, tok.Col, "integer constant %s out of range", tok.Lex)
			v = 0
		}
		tok.Val = v
		return tok, true
	case ch == '\'':
		if n := l.charLen(); n > 0 {
			tok.Type = CHAR
			return l.take(tok, n), true
		}
	case ch == '"':
		if n := l.stringLen(); n > 0 {
			tok.Type = STRING
			return l.take(tok, n), true
		}
	case ch == '.':
		if l.peekAt(1) == '.' && l.peekAt(2) == '.' {
			tok.Type = ELLIPSIS
			return l.take(tok, 3), true
		}
	case ch == '=':
		return l.oneOrTwo(tok, ASSIGN, EQEQ), true
	case ch == '<':
		return l.oneOrTwo(tok, LT, LE), true
	case ch == '>':
		return l.oneOrTwo(tok, GT, GE), true
	case ch == '!':
		if l.peekAt(1) == '=' {
			tok.Type = NEQ
			return l.take(tok, 2), true
		}
	default:
		if t, ok := singles[ch]; ok {
			tok.Type = t
			return l.take(tok, 1), true
		}
	}
	l.errorf(diag.ELexChar, tok.Line, tok.Col, "illegal character %q", l.ch)
	l.read()
	return Token{}, false
}

var singles = map[rune]TokenType{
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
	';': SEMI,
	',': COMMA,
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'/': SLASH,
}

// take consumes n runes as the lexeme of tok.
func (l *Lexer) take(tok Token, n int) Token {
	start := l.i
	for k := 0; k < n; k++ {
		l.read()
	}
	tok.Lex = string(l.src[start:l.i])
	return tok
}

// oneOrTwo scans c or c= where the second form is two.
func (l *Lexer) oneOrTwo(tok Token, one, two TokenType) Token {
	if l.peekAt(1) == '=' {
		tok.Type = two
		return l.take(tok, 2)
	}
	tok.Type = one
	return l.take(tok, 1)
}

// charLen returns the length of the char constant starting at ch, 0 if none.
func (l *Lexer) charLen() int {
	c := l.peekAt(1)
	switch {
	case l.i+1 >= len(l.src) || c == '\n':
		return 0
	case c == '\\':
		if l.i+2 >= len(l.src) || l.peekAt(2) == '\n' || l.peekAt(3) != '\'' || l.i+3 >= len(l.src) {
			return 0
		}
		return 4
	default:
		if l.i+2 >= len(l.src) || l.peekAt(2) != '\'' {
			return 0
		}
		return 3
	}
}

// stringLen returns the length of the string constant starting at ch, 0 if
// the literal is not closed on the same line or holds an unknown escape.
func (l *Lexer) stringLen() int {
	for j := l.i + 1; j < len(l.src); j++ {
		switch l.src[j] {
		case '"':
			return j - l.i + 1
		case '\n':
			return 0
		case '\\':
			if j+1 >= len(l.src) {
				return 0
			}
			switch l.src[j+1] {
			case 'n', '"', '\\':
				j++
			default:
				return 0
			}
		}
	}
	return 0
}

// Tokens yields tokens up to, not including, EOF.
func (l *Lexer) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			t := l.Next()
			if t.Type == EOF || !yield(t) {
				return
			}
		}
	}
}

// Tokenize scans all of src. The returned slice always ends with EOF.
func Tokenize(src string) ([]Token, []diag.Diagnostic) {
	l := New(src, nil)
	var toks []Token
	for {
		t := l.Next()
		toks = append(toks, t)
		if t.Type == EOF {
			return toks, l.Errors()
		}
	}
}

func isLetter(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }
