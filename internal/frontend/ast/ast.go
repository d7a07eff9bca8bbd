// Package ast defines the node variants produced by the parser and walked
// by the evaluator. Nodes form a strict tree: a Block exclusively owns its
// statements and their descendants.
package ast

import (
	"strings"

	"slate/internal/source"
)

// Node is implemented by every AST node.
type Node interface {
	INode()
	Loc() *source.Location
	String() string
}

// Expression marks value-producing nodes.
type Expression interface {
	Node
	Expr()
}

// Block is an ordered sequence of statements. It evaluates to the value of
// its last statement; an empty block evaluates to the unit value.
type Block struct {
	Statements []Node
	source.Location
}

func (b *Block) INode()                {}
func (b *Block) Loc() *source.Location { return &b.Location }

func (b *Block) String() string {
	parts := make([]string, len(b.Statements))
	for i, stmt := range b.Statements {
		parts[i] = stmt.String()
	}
	return strings.Join(parts, " ")
}

// Assign binds a name to the value of an expression. Declaration and
// mutation are the same operation; there is no shadowing and no block
// scope.
type Assign struct {
	Name  string
	Value Expression
	source.Location
}

func (a *Assign) INode()                {}
func (a *Assign) Loc() *source.Location { return &a.Location }

func (a *Assign) String() string {
	return "let " + a.Name + " = " + a.Value.String() + ";"
}

// IfStatement selects one of two blocks on the truthiness of Cond.
// Else may be nil.
type IfStatement struct {
	Cond Expression
	Then *Block
	Else *Block
	source.Location
}

func (i *IfStatement) INode()                {}
func (i *IfStatement) Loc() *source.Location { return &i.Location }

func (i *IfStatement) String() string {
	s := "if " + i.Cond.String() + " { " + i.Then.String() + " }"
	if i.Else != nil {
		s += " else { " + i.Else.String() + " }"
	}
	return s
}

// ExprStmt is a bare expression in statement position.
type ExprStmt struct {
	X Expression
	source.Location
}

func (e *ExprStmt) INode()                {}
func (e *ExprStmt) Loc() *source.Location { return &e.Location }
func (e *ExprStmt) String() string        { return e.X.String() + ";" }
