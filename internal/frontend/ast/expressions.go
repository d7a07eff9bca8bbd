package ast

import (
	"strconv"

	"slate/internal/frontend/lexer"
	"slate/internal/source"
)

// Literal is an integer literal. The language has no other literal form.
type Literal struct {
	Value int64
	source.Location
}

func (l *Literal) INode()                {}
func (l *Literal) Expr()                 {}
func (l *Literal) Loc() *source.Location { return &l.Location }
func (l *Literal) String() string        { return strconv.FormatInt(l.Value, 10) }

// Variable is a name reference, resolved in the environment at evaluation
// time.
type Variable struct {
	Name string
	source.Location
}

func (v *Variable) INode()                {}
func (v *Variable) Expr()                 {}
func (v *Variable) Loc() *source.Location { return &v.Location }
func (v *Variable) String() string        { return v.Name }

// UnaryExpr is a prefix operator applied to one operand.
type UnaryExpr struct {
	Op lexer.Token
	X  Expression
	source.Location
}

func (u *UnaryExpr) INode()                {}
func (u *UnaryExpr) Expr()                 {}
func (u *UnaryExpr) Loc() *source.Location { return &u.Location }
func (u *UnaryExpr) String() string        { return "(" + u.Op.Value + u.X.String() + ")" }

// BinaryExpr applies Op to two operands. Operands evaluate strictly left
// to right.
type BinaryExpr struct {
	X  Expression
	Op lexer.Token
	Y  Expression
	source.Location
}

func (b *BinaryExpr) INode()                {}
func (b *BinaryExpr) Expr()                 {}
func (b *BinaryExpr) Loc() *source.Location { return &b.Location }

func (b *BinaryExpr) String() string {
	return "(" + b.X.String() + " " + b.Op.Value + " " + b.Y.String() + ")"
}
