package lexer

import (
	"unicode/utf8"

	"slate/internal/diagnostics"
	"slate/internal/source"
)

// Lexer scans source text left to right, one token at a time. At each
// position the rules are tried in a fixed order: number, identifier or
// keyword, two-character operator, one-character operator or punctuation.
// Whitespace is consumed but never emitted. The first character no rule
// matches aborts the scan.
//
// The scanner works on bytes; the grammar is ASCII, and only an offending
// character is ever decoded as a rune (for the error message).
type Lexer struct {
	filename string
	src      string
	pos      int // byte index of the current character
	line     int
	column   int
}

func New(filename, src string) *Lexer {
	return &Lexer{
		filename: filename,
		src:      src,
		line:     1,
		column:   1,
	}
}

// Tokenize scans the whole input. The returned slice always ends with an
// EOF token. On failure the tokens scanned so far are discarded and the
// LexError points at the offending character.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0, len(l.src)/2+1)
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF_TOKEN {
			return tokens, nil
		}
	}
}

func (l *Lexer) next() (Token, error) {
	l.skipWhitespace()

	start := l.position()
	if l.pos >= len(l.src) {
		return Token{Kind: EOF_TOKEN, Start: start, End: start}, nil
	}

	ch := l.src[l.pos]
	switch {
	case isDigit(ch):
		return l.readNumber(start), nil
	case isLetter(ch):
		return l.readIdentifier(start), nil
	}

	if l.pos+1 < len(l.src) {
		if kind, ok := twoCharOps[l.src[l.pos:l.pos+2]]; ok {
			value := l.src[l.pos : l.pos+2]
			l.advance()
			l.advance()
			return Token{Kind: kind, Value: value, Start: start, End: l.position()}, nil
		}
	}

	if kind, ok := oneCharOps[ch]; ok {
		l.advance()
		return Token{Kind: kind, Value: string(ch), Start: start, End: l.position()}, nil
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return Token{}, diagnostics.NewLexError(l.filename, start, r)
}

func (l *Lexer) position() source.Position {
	return source.Position{Offset: l.pos, Line: l.line, Column: l.column}
}

func (l *Lexer) advance() {
	if l.pos >= len(l.src) {
		return
	}
	if l.src[l.pos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) readNumber(start source.Position) Token {
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.advance()
	}
	return Token{
		Kind:  NUMBER_TOKEN,
		Value: l.src[start.Offset:l.pos],
		Start: start,
		End:   l.position(),
	}
}

func (l *Lexer) readIdentifier(start source.Position) Token {
	for l.pos < len(l.src) && (isLetter(l.src[l.pos]) || isDigit(l.src[l.pos])) {
		l.advance()
	}
	value := l.src[start.Offset:l.pos]
	return Token{
		Kind:  LookupIdent(value),
		Value: value,
		Start: start,
		End:   l.position(),
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
