package diagnostics

// Diagnostic codes, grouped by phase: L = lexer, P = parser, R = runtime.
const (
	ErrUnexpectedCharacter = "L0001"

	ErrUnexpectedToken = "P0001"
	ErrInvalidNumber   = "P0002"

	ErrUndefinedVariable = "R0001"
	ErrUnknownOperator   = "R0002"
	ErrDivisionByZero    = "R0003"
	ErrInvalidOperand    = "R0004"
)
