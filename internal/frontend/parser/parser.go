// Package parser turns a token sequence into an AST by recursive descent.
// Each grammar rule is one method; every binary level folds iteratively,
// giving left associativity. One token of lookahead, no backtracking, and
// the first error aborts the parse.
package parser

import (
	"strconv"

	"slate/internal/diagnostics"
	"slate/internal/frontend/ast"
	"slate/internal/frontend/lexer"
	"slate/internal/source"
)

// Parser holds temporary state during parsing of a single program.
// This is created on-the-fly, not stored persistently.
type Parser struct {
	tokens   []lexer.Token
	current  int
	filename string
}

// Parse consumes the token sequence and produces the top-level block.
func Parse(tokens []lexer.Token, filename string) (*ast.Block, error) {
	state := &Parser{
		tokens:   tokens,
		current:  0,
		filename: filename,
	}

	return state.parseProgram()
}

// parseProgram: statement* EOF
func (p *Parser) parseProgram() (*ast.Block, error) {
	start := p.peek().Start

	program := &ast.Block{
		Statements: []ast.Node{},
	}

	for !p.isAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}

	program.Location = *p.makeLocation(start)
	return program, nil
}

// parseStatement dispatches on the leading token. Anything that is not a
// let or if statement is a bare expression statement.
func (p *Parser) parseStatement() (ast.Node, error) {
	switch p.peek().Kind {
	case lexer.LET_TOKEN:
		return p.parseLetStmt()
	case lexer.IF_TOKEN:
		return p.parseIfStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseLetStmt: "let" IDENT "=" expression ";"
func (p *Parser) parseLetStmt() (ast.Node, error) {
	start := p.peek().Start
	if _, err := p.expect(lexer.LET_TOKEN, "'let'"); err != nil {
		return nil, err
	}

	name, err := p.expect(lexer.IDENTIFIER_TOKEN, "variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.EQUALS_TOKEN, "'='"); err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON_TOKEN, "';'"); err != nil {
		return nil, err
	}

	return &ast.Assign{
		Name:     name.Value,
		Value:    value,
		Location: *p.makeLocation(start),
	}, nil
}

// parseIfStmt: "if" expression "{" block "}" ("else" "{" block "}")?
func (p *Parser) parseIfStmt() (ast.Node, error) {
	start := p.peek().Start
	if _, err := p.expect(lexer.IF_TOKEN, "'if'"); err != nil {
		return nil, err
	}

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseBlock *ast.Block
	if p.match(lexer.ELSE_TOKEN) {
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return &ast.IfStatement{
		Cond:     cond,
		Then:     then,
		Else:     elseBlock,
		Location: *p.makeLocation(start),
	}, nil
}

// parseBlock: "{" statement* "}"
func (p *Parser) parseBlock() (*ast.Block, error) {
	start := p.peek().Start
	if _, err := p.expect(lexer.OPEN_CURLY, "'{'"); err != nil {
		return nil, err
	}

	block := &ast.Block{
		Statements: []ast.Node{},
	}

	for !p.check(lexer.CLOSE_CURLY) && !p.isAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}

	if _, err := p.expect(lexer.CLOSE_CURLY, "'}'"); err != nil {
		return nil, err
	}

	block.Location = *p.makeLocation(start)
	return block, nil
}

// parseExprStmt: expression ";"?
// The terminating semicolon is optional so a program can end on a bare
// expression.
func (p *Parser) parseExprStmt() (ast.Node, error) {
	start := p.peek().Start

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.match(lexer.SEMICOLON_TOKEN)

	return &ast.ExprStmt{
		X:        expr,
		Location: *p.makeLocation(start),
	}, nil
}

func (p *Parser) parseExpr() (ast.Expression, error) {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() (ast.Expression, error) {
	left, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.OR_TOKEN) {
		op := p.previous()
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		left = p.fold(left, op, right)
	}

	return left, nil
}

func (p *Parser) parseLogicalAnd() (ast.Expression, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.AND_TOKEN) {
		op := p.previous()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = p.fold(left, op, right)
	}

	return left, nil
}

func (p *Parser) parseEquality() (ast.Expression, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.DOUBLE_EQUAL_TOKEN, lexer.NOT_EQUAL_TOKEN) {
		op := p.previous()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = p.fold(left, op, right)
	}

	return left, nil
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.LESS_TOKEN, lexer.LESS_EQUAL_TOKEN, lexer.GREATER_TOKEN, lexer.GREATER_EQUAL_TOKEN) {
		op := p.previous()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = p.fold(left, op, right)
	}

	return left, nil
}

func (p *Parser) parseTerm() (ast.Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.PLUS_TOKEN, lexer.MINUS_TOKEN) {
		op := p.previous()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = p.fold(left, op, right)
	}

	return left, nil
}

func (p *Parser) parseFactor() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.MUL_TOKEN, lexer.DIV_TOKEN) {
		op := p.previous()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = p.fold(left, op, right)
	}

	return left, nil
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	if p.match(lexer.MINUS_TOKEN) {
		op := p.previous()
		expr, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{
			Op:       op,
			X:        expr,
			Location: *p.makeLocation(op.Start),
		}, nil
	}

	return p.parsePrimary()
}

// parsePrimary: NUMBER | IDENT | "(" expression ")"
func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.peek()

	switch tok.Kind {
	case lexer.NUMBER_TOKEN:
		p.advance()
		value, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, diagnostics.NewParseError(p.filename, tok.Loc(), "a 64-bit integer literal", tok.Value)
		}
		return &ast.Literal{
			Value:    value,
			Location: *source.NewLocation(&tok.Start, &tok.End),
		}, nil

	case lexer.IDENTIFIER_TOKEN:
		p.advance()
		return &ast.Variable{
			Name:     tok.Value,
			Location: *source.NewLocation(&tok.Start, &tok.End),
		}, nil

	case lexer.OPEN_PAREN:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.CLOSE_PAREN, "')'"); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, p.errorAt(tok, "an expression")
	}
}

// fold builds one left-associative binary node. The node's location is the
// operator's span, which is where runtime errors for that operator point.
func (p *Parser) fold(left ast.Expression, op lexer.Token, right ast.Expression) ast.Expression {
	return &ast.BinaryExpr{
		X:        left,
		Op:       op,
		Y:        right,
		Location: *source.NewLocation(&op.Start, &op.End),
	}
}

// Helper methods

func (p *Parser) isAtEnd() bool {
	if p.current >= len(p.tokens) {
		return true
	}
	return p.tokens[p.current].Kind == lexer.EOF_TOKEN
}

func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind lexer.TOKEN) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...lexer.TOKEN) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) expect(kind lexer.TOKEN, expected string) (lexer.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorAt(p.peek(), expected)
}

func (p *Parser) errorAt(tok lexer.Token, expected string) error {
	found := tok.Value
	if tok.Kind == lexer.EOF_TOKEN {
		found = "end of input"
	} else {
		found = "'" + found + "'"
	}
	return diagnostics.NewParseError(p.filename, tok.Loc(), expected, found)
}

// makeLocation creates a source location from start to current position
func (p *Parser) makeLocation(start source.Position) *source.Location {
	if p.current == 0 {
		return source.NewLocation(&start, &start)
	}
	end := p.previous().End
	return source.NewLocation(&start, &end)
}
