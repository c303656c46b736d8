package taskjson

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokString
	tokBare
	tokLBrace
	tokRBrace
	tokLBracket
	tokRBracket
	tokColon
	tokComma
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokString:
		return "string"
	case tokBare:
		return "value"
	case tokLBrace:
		return "'{'"
	case tokRBrace:
		return "'}'"
	case tokLBracket:
		return "'['"
	case tokRBracket:
		return "']'"
	case tokColon:
		return "':'"
	case tokComma:
		return "','"
	}
	return "unknown token"
}

type token struct {
	kind tokenKind
	text string
	pos  int
}

// scanner splits a task document into a flat token stream: quoted
// strings, bare values, and the six punctuation characters the format
// uses. There is no lookahead beyond one byte.
type scanner struct {
	input string
	pos   int
}

func newScanner(input string) *scanner {
	return &scanner{input: input}
}

func (s *scanner) next() (token, error) {
	s.skipSpace()
	start := s.pos

	if s.pos >= len(s.input) {
		return token{kind: tokEOF, pos: start}, nil
	}

	switch c := s.input[s.pos]; c {
	case '{':
		s.pos++
		return token{kind: tokLBrace, pos: start}, nil
	case '}':
		s.pos++
		return token{kind: tokRBrace, pos: start}, nil
	case '[':
		s.pos++
		return token{kind: tokLBracket, pos: start}, nil
	case ']':
		s.pos++
		return token{kind: tokRBracket, pos: start}, nil
	case ':':
		s.pos++
		return token{kind: tokColon, pos: start}, nil
	case ',':
		s.pos++
		return token{kind: tokComma, pos: start}, nil
	case '"':
		return s.scanString()
	default:
		return s.scanBare(), nil
	}
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

// scanString consumes a double-quoted string, applying the legacy
// unescape rules: the seven recognized escapes are interpreted and any
// other backslash sequence keeps the character following the backslash
// verbatim. In particular \u00XX decodes to the literal text "u00XX";
// the encoder's control-character escaping is intentionally one-way.
func (s *scanner) scanString() (token, error) {
	start := s.pos
	s.pos++ // opening quote

	var b strings.Builder
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		switch c {
		case '"':
			s.pos++
			return token{kind: tokString, text: b.String(), pos: start}, nil
		case '\\':
			if s.pos+1 >= len(s.input) {
				return token{}, fmt.Errorf("%w: unterminated string at offset %d", ErrInvalidFormat, start)
			}
			switch esc := s.input[s.pos+1]; esc {
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(esc)
			}
			s.pos += 2
		default:
			b.WriteByte(c)
			s.pos++
		}
	}

	return token{}, fmt.Errorf("%w: unterminated string at offset %d", ErrInvalidFormat, start)
}

// scanBare consumes an unquoted value, stopping at the delimiters the
// legacy format recognized, and trims surrounding whitespace.
func (s *scanner) scanBare() token {
	start := s.pos
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case ',', '}', ']', '\n', '\r':
			return token{kind: tokBare, text: strings.TrimSpace(s.input[start:s.pos]), pos: start}
		}
		s.pos++
	}
	return token{kind: tokBare, text: strings.TrimSpace(s.input[start:]), pos: start}
}
