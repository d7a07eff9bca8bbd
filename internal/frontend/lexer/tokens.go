package lexer

import (
	"fmt"

	"slate/internal/source"
)

type TOKEN string

const (
	EOF_TOKEN TOKEN = "EOF"

	// Identifiers & literals
	NUMBER_TOKEN     TOKEN = "NUMBER"
	IDENTIFIER_TOKEN TOKEN = "IDENTIFIER"

	// Keywords. let/if/else are reserved words: the lexer classifies them,
	// so they can never be used as variable names.
	LET_TOKEN  TOKEN = "LET"
	IF_TOKEN   TOKEN = "IF"
	ELSE_TOKEN TOKEN = "ELSE"

	// Operators
	PLUS_TOKEN          TOKEN = "+"
	MINUS_TOKEN         TOKEN = "-"
	MUL_TOKEN           TOKEN = "*"
	DIV_TOKEN           TOKEN = "/"
	EQUALS_TOKEN        TOKEN = "="
	DOUBLE_EQUAL_TOKEN  TOKEN = "=="
	NOT_EQUAL_TOKEN     TOKEN = "!="
	LESS_TOKEN          TOKEN = "<"
	GREATER_TOKEN       TOKEN = ">"
	LESS_EQUAL_TOKEN    TOKEN = "<="
	GREATER_EQUAL_TOKEN TOKEN = ">="
	AND_TOKEN           TOKEN = "&&"
	OR_TOKEN            TOKEN = "||"

	// Punctuation
	OPEN_PAREN      TOKEN = "("
	CLOSE_PAREN     TOKEN = ")"
	OPEN_CURLY      TOKEN = "{"
	CLOSE_CURLY     TOKEN = "}"
	SEMICOLON_TOKEN TOKEN = ";"
	COMMA_TOKEN     TOKEN = ","
)

var keywords = map[string]TOKEN{
	"let":  LET_TOKEN,
	"if":   IF_TOKEN,
	"else": ELSE_TOKEN,
}

// LookupIdent classifies an identifier's text, returning the keyword kind
// for reserved words.
func LookupIdent(ident string) TOKEN {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENTIFIER_TOKEN
}

// Two-character operators, tried before their one-character prefixes.
var twoCharOps = map[string]TOKEN{
	"==": DOUBLE_EQUAL_TOKEN,
	"!=": NOT_EQUAL_TOKEN,
	"<=": LESS_EQUAL_TOKEN,
	">=": GREATER_EQUAL_TOKEN,
	"&&": AND_TOKEN,
	"||": OR_TOKEN,
}

var oneCharOps = map[byte]TOKEN{
	'+': PLUS_TOKEN,
	'-': MINUS_TOKEN,
	'*': MUL_TOKEN,
	'/': DIV_TOKEN,
	'=': EQUALS_TOKEN,
	'<': LESS_TOKEN,
	'>': GREATER_TOKEN,
	'(': OPEN_PAREN,
	')': CLOSE_PAREN,
	'{': OPEN_CURLY,
	'}': CLOSE_CURLY,
	';': SEMICOLON_TOKEN,
	',': COMMA_TOKEN,
}

// Token is one classified fragment of source text. Tokens are immutable
// once produced; the parser consumes the sequence left to right.
type Token struct {
	Kind  TOKEN
	Value string
	Start source.Position
	End   source.Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %s", t.Kind, t.Value, t.Start)
}

// Loc returns the token's span as a Location.
func (t Token) Loc() *source.Location {
	return source.NewLocation(&t.Start, &t.End)
}
