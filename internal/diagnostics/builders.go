package diagnostics

import (
	"errors"
	"fmt"

	"slate/internal/source"
)

// FromError converts one of the typed interpreter errors into a renderable
// Diagnostic. Unrecognized errors become a bare error diagnostic with no
// label.
func FromError(file string, err error) *Diagnostic {
	var lexErr *LexError
	if errors.As(err, &lexErr) {
		loc := source.NewLocation(&lexErr.Pos, &lexErr.Pos)
		return NewError(fmt.Sprintf("unrecognized character %q", lexErr.Char)).
			WithCode(ErrUnexpectedCharacter).
			WithLabel(lexErr.File, loc, "no lexical rule matches here").
			WithHelp("remove this character or check if it's a typo")
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return NewError(fmt.Sprintf("expected %s, found %s", parseErr.Expected, parseErr.Found)).
			WithCode(ErrUnexpectedToken).
			WithLabel(parseErr.File, parseErr.Loc, "expected "+parseErr.Expected+" here")
	}

	var runErr *RuntimeError
	if errors.As(err, &runErr) {
		return runtimeDiagnostic(file, runErr)
	}

	return NewError(err.Error())
}

func runtimeDiagnostic(file string, err *RuntimeError) *Diagnostic {
	switch err.Kind {
	case RuntimeUndefinedVariable:
		return NewError(err.Error()).
			WithCode(ErrUndefinedVariable).
			WithLabel(file, err.Loc, "not bound at this point").
			WithHelp(fmt.Sprintf("declare it first: let %s = ...;", err.Name))
	case RuntimeUnknownOperator:
		return NewError(err.Error()).
			WithCode(ErrUnknownOperator).
			WithLabel(file, err.Loc, "operator not supported")
	case RuntimeDivisionByZero:
		return NewError(err.Error()).
			WithCode(ErrDivisionByZero).
			WithLabel(file, err.Loc, "divisor is zero here")
	default:
		return NewError(err.Error()).
			WithCode(ErrInvalidOperand).
			WithLabel(file, err.Loc, "operand produced no value")
	}
}
