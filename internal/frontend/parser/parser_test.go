package parser

import (
	"errors"
	"testing"

	"slate/internal/diagnostics"
	"slate/internal/frontend/ast"
	"slate/internal/frontend/lexer"
)

func parse(t *testing.T, src string) *ast.Block {
	t.Helper()
	tokens, err := lexer.New("test.sl", src).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", src, err)
	}
	program, err := Parse(tokens, "test.sl")
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return program
}

func parseErr(t *testing.T, src string) *diagnostics.ParseError {
	t.Helper()
	tokens, err := lexer.New("test.sl", src).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", src, err)
	}
	_, err = Parse(tokens, "test.sl")
	if err == nil {
		t.Fatalf("Parse(%q) succeeded, expected an error", src)
	}
	var pe *diagnostics.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *diagnostics.ParseError, got %T", err)
	}
	return pe
}

// checkString parses src and compares the program's printed structure,
// where every binary node is parenthesized.
func checkString(t *testing.T, src, want string) {
	t.Helper()
	program := parse(t, src)
	if got := program.String(); got != want {
		t.Errorf("parse(%q) = %q, want %q", src, got, want)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"2 + 3 * 4;", "(2 + (3 * 4));"},
		{"(2 + 3) * 4;", "((2 + 3) * 4);"},
		{"1 + 2 + 3;", "((1 + 2) + 3);"},
		{"1 - 2 - 3;", "((1 - 2) - 3);"},
		{"8 / 4 / 2;", "((8 / 4) / 2);"},
		{"a + b / c;", "(a + (b / c));"},
		{"1 < 2 + 3;", "(1 < (2 + 3));"},
		{"1 < 2 == 3 < 4;", "((1 < 2) == (3 < 4));"},
		{"1 == 2 && 3 == 4;", "((1 == 2) && (3 == 4));"},
		{"1 && 2 || 3 && 4;", "((1 && 2) || (3 && 4));"},
		{"-5 + 2;", "((-5) + 2);"},
		{"-(5 + 2);", "(-(5 + 2));"},
		{"--5;", "(-(-5));"},
		{"1 >= 2 <= 3;", "((1 >= 2) <= 3);"},
	}

	for _, tt := range tests {
		checkString(t, tt.src, tt.want)
	}
}

func TestLetStatement(t *testing.T) {
	program := parse(t, "let x = 5;")

	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}

	assign, ok := program.Statements[0].(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign, got %T", program.Statements[0])
	}
	if assign.Name != "x" {
		t.Errorf("expected name x, got %q", assign.Name)
	}
	lit, ok := assign.Value.(*ast.Literal)
	if !ok {
		t.Fatalf("expected *ast.Literal, got %T", assign.Value)
	}
	if lit.Value != 5 {
		t.Errorf("expected 5, got %d", lit.Value)
	}
}

func TestIfStatement(t *testing.T) {
	program := parse(t, "if x { 10; } else { 20; }")

	stmt, ok := program.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected *ast.IfStatement, got %T", program.Statements[0])
	}
	if _, ok := stmt.Cond.(*ast.Variable); !ok {
		t.Errorf("expected condition *ast.Variable, got %T", stmt.Cond)
	}
	if len(stmt.Then.Statements) != 1 {
		t.Errorf("expected 1 then statement, got %d", len(stmt.Then.Statements))
	}
	if stmt.Else == nil || len(stmt.Else.Statements) != 1 {
		t.Errorf("expected else block with 1 statement, got %v", stmt.Else)
	}
}

func TestIfWithoutElse(t *testing.T) {
	program := parse(t, "if 1 { 2; }")

	stmt := program.Statements[0].(*ast.IfStatement)
	if stmt.Else != nil {
		t.Errorf("expected nil else block, got %v", stmt.Else)
	}
}

func TestEmptyBlock(t *testing.T) {
	program := parse(t, "if 1 { }")

	stmt := program.Statements[0].(*ast.IfStatement)
	if len(stmt.Then.Statements) != 0 {
		t.Errorf("expected empty then block, got %d statements", len(stmt.Then.Statements))
	}
}

func TestTrailingSemicolonOptional(t *testing.T) {
	program := parse(t, "let x = 1; x")

	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}
	if _, ok := program.Statements[1].(*ast.ExprStmt); !ok {
		t.Errorf("expected *ast.ExprStmt, got %T", program.Statements[1])
	}
}

func TestEmptyProgram(t *testing.T) {
	program := parse(t, "")

	if len(program.Statements) != 0 {
		t.Errorf("expected 0 statements, got %d", len(program.Statements))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"let = 5;", "variable name"},
		{"let x 5;", "'='"},
		{"let x = 5", "';'"},
		{"let let = 1;", "variable name"}, // keywords are reserved
		{"(1 + 2;", "')'"},
		{"if 1 { 2;", "'}'"},
		{"if 1 2;", "'{'"},
		{"1 + ;", "an expression"},
		{"+ 1;", "an expression"},
		{"}", "an expression"},
	}

	for _, tt := range tests {
		pe := parseErr(t, tt.src)
		if pe.Expected != tt.expected {
			t.Errorf("parse(%q): expected %q, got %q (found %s)", tt.src, tt.expected, pe.Expected, pe.Found)
		}
	}
}

func TestParseErrorAtEOF(t *testing.T) {
	pe := parseErr(t, "let x = 5")
	if pe.Found != "end of input" {
		t.Errorf("expected found %q, got %q", "end of input", pe.Found)
	}
}

func TestIntegerOverflowIsParseError(t *testing.T) {
	pe := parseErr(t, "99999999999999999999;")
	if pe.Expected != "a 64-bit integer literal" {
		t.Errorf("unexpected error: %v", pe)
	}
}

func TestBinaryNodeLocationIsOperator(t *testing.T) {
	program := parse(t, "1 + 2;")

	stmt := program.Statements[0].(*ast.ExprStmt)
	bin := stmt.X.(*ast.BinaryExpr)
	if bin.Loc().Start.Column != 3 {
		t.Errorf("expected operator column 3, got %d", bin.Loc().Start.Column)
	}
}
