package diagnostics

import (
	"fmt"

	"slate/internal/source"
)

// The interpreter surfaces exactly one typed error per failed run:
// a LexError, a ParseError, or a RuntimeError. All three implement error
// and are matchable with errors.As.

// LexError reports a character no lexical rule matched. The scan stops at
// the offending character; nothing after it is tokenized.
type LexError struct {
	File string
	Pos  source.Position
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s:%s: unrecognized character %q", e.File, e.Pos, e.Char)
}

// NewLexError builds a LexError for the character at pos.
func NewLexError(file string, pos source.Position, ch rune) *LexError {
	return &LexError{File: file, Pos: pos, Char: ch}
}

// ParseError reports a token sequence that does not match the grammar.
// Found is the literal text of the offending token ("end of input" at EOF).
type ParseError struct {
	File     string
	Loc      *source.Location
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%s: expected %s, found %s", e.File, e.Loc, e.Expected, e.Found)
}

// NewParseError builds a ParseError at loc.
func NewParseError(file string, loc *source.Location, expected, found string) *ParseError {
	return &ParseError{File: file, Loc: loc, Expected: expected, Found: found}
}

// RuntimeErrorKind discriminates the evaluation failure modes.
type RuntimeErrorKind int

const (
	RuntimeUndefinedVariable RuntimeErrorKind = iota
	RuntimeUnknownOperator
	RuntimeDivisionByZero
	// RuntimeInvalidOperand guards the unit-as-operand path, which the
	// grammar cannot actually produce. See DESIGN.md.
	RuntimeInvalidOperand
)

// RuntimeError reports an evaluation failure. Name holds the variable name
// or operator symbol, depending on Kind.
type RuntimeError struct {
	Kind RuntimeErrorKind
	Name string
	Loc  *source.Location
}

func (e *RuntimeError) Error() string {
	switch e.Kind {
	case RuntimeUndefinedVariable:
		return fmt.Sprintf("undefined variable %q", e.Name)
	case RuntimeUnknownOperator:
		return fmt.Sprintf("unknown operator %q", e.Name)
	case RuntimeDivisionByZero:
		return "division by zero"
	case RuntimeInvalidOperand:
		return fmt.Sprintf("operator %q applied to no value", e.Name)
	default:
		return "runtime error"
	}
}

// UndefinedVariable reports a lookup of a name with no binding.
func UndefinedVariable(name string, loc *source.Location) *RuntimeError {
	return &RuntimeError{Kind: RuntimeUndefinedVariable, Name: name, Loc: loc}
}

// UnknownOperator reports an operator symbol the evaluator does not apply.
func UnknownOperator(op string, loc *source.Location) *RuntimeError {
	return &RuntimeError{Kind: RuntimeUnknownOperator, Name: op, Loc: loc}
}

// DivisionByZero reports an integer division with a zero divisor.
func DivisionByZero(loc *source.Location) *RuntimeError {
	return &RuntimeError{Kind: RuntimeDivisionByZero, Name: "/", Loc: loc}
}

// InvalidOperand reports a unit value reaching an operator.
func InvalidOperand(op string, loc *source.Location) *RuntimeError {
	return &RuntimeError{Kind: RuntimeInvalidOperand, Name: op, Loc: loc}
}
