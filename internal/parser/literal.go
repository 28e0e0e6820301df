package parser

import "strings"

// unquoteString strips the quotes of a string constant and resolves \",
// \n and \\ in a single pass.
func unquoteString(raw string) string {
	s := strings.TrimSuffix(strings.TrimPrefix(raw, `"`), `"`)
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case '"', '\\':
				b.WriteByte(s[i])
			default:
				b.WriteByte('\\')
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// unquoteChar strips the quotes of a char constant. Only \' and \\ are
// resolved; anything else is returned as written.
func unquoteChar(raw string) string {
	s := strings.TrimSuffix(strings.TrimPrefix(raw, "'"), "'")
	switch s {
	case `\'`:
		return "'"
	case `\\`:
		return `\`
	default:
		return s
	}
}
