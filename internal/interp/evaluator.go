package interp

import (
	"fmt"

	"slate/internal/diagnostics"
	"slate/internal/frontend/ast"
	"slate/internal/frontend/lexer"
)

// Eval walks node against env by structural recursion. The type switch is
// exhaustive over the node variants in the ast package; an unhandled node
// means the parser and evaluator have drifted apart.
func Eval(node ast.Node, env *Env) (Value, error) {
	switch node := node.(type) {
	case *ast.Block:
		return evalBlock(node, env)
	case *ast.ExprStmt:
		return Eval(node.X, env)
	case *ast.Assign:
		value, err := Eval(node.Value, env)
		if err != nil {
			return Unit, err
		}
		env.Set(node.Name, value)
		return value, nil
	case *ast.IfStatement:
		return evalIf(node, env)
	case *ast.Literal:
		return NewInt(node.Value), nil
	case *ast.Variable:
		value, ok := env.Get(node.Name)
		if !ok {
			return Unit, diagnostics.UndefinedVariable(node.Name, node.Loc())
		}
		return value, nil
	case *ast.UnaryExpr:
		return evalUnary(node, env)
	case *ast.BinaryExpr:
		return evalBinary(node, env)
	default:
		return Unit, fmt.Errorf("interp: unhandled node %T", node)
	}
}

// evalBlock runs each statement in order against the shared environment.
// The block's value is the last statement's value; an empty block is Unit.
func evalBlock(block *ast.Block, env *Env) (Value, error) {
	result := Unit
	for _, stmt := range block.Statements {
		value, err := Eval(stmt, env)
		if err != nil {
			return Unit, err
		}
		result = value
	}
	return result, nil
}

func evalIf(node *ast.IfStatement, env *Env) (Value, error) {
	cond, err := Eval(node.Cond, env)
	if err != nil {
		return Unit, err
	}

	if cond.Truthy() {
		return Eval(node.Then, env)
	}
	if node.Else != nil {
		return Eval(node.Else, env)
	}
	return Unit, nil
}

func evalUnary(node *ast.UnaryExpr, env *Env) (Value, error) {
	operand, err := Eval(node.X, env)
	if err != nil {
		return Unit, err
	}

	if node.Op.Kind != lexer.MINUS_TOKEN {
		return Unit, diagnostics.UnknownOperator(node.Op.Value, node.Loc())
	}

	n, err := asInt(operand, node.Op)
	if err != nil {
		return Unit, err
	}
	return NewInt(-n), nil
}

// evalBinary evaluates both operands strictly left to right before applying
// the operator. There is no short-circuiting: even for && and || the right
// operand always evaluates.
func evalBinary(node *ast.BinaryExpr, env *Env) (Value, error) {
	left, err := Eval(node.X, env)
	if err != nil {
		return Unit, err
	}
	right, err := Eval(node.Y, env)
	if err != nil {
		return Unit, err
	}
	return applyBinary(node.Op, left, right)
}

func applyBinary(op lexer.Token, left, right Value) (Value, error) {
	switch op.Kind {
	case lexer.AND_TOKEN:
		return NewBool(left.Truthy() && right.Truthy()), nil
	case lexer.OR_TOKEN:
		return NewBool(left.Truthy() || right.Truthy()), nil
	}

	l, err := asInt(left, op)
	if err != nil {
		return Unit, err
	}
	r, err := asInt(right, op)
	if err != nil {
		return Unit, err
	}

	switch op.Kind {
	case lexer.PLUS_TOKEN:
		return NewInt(l + r), nil
	case lexer.MINUS_TOKEN:
		return NewInt(l - r), nil
	case lexer.MUL_TOKEN:
		return NewInt(l * r), nil
	case lexer.DIV_TOKEN:
		if r == 0 {
			return Unit, diagnostics.DivisionByZero(op.Loc())
		}
		return NewInt(floorDiv(l, r)), nil
	case lexer.DOUBLE_EQUAL_TOKEN:
		return NewBool(l == r), nil
	case lexer.NOT_EQUAL_TOKEN:
		return NewBool(l != r), nil
	case lexer.LESS_TOKEN:
		return NewBool(l < r), nil
	case lexer.GREATER_TOKEN:
		return NewBool(l > r), nil
	case lexer.LESS_EQUAL_TOKEN:
		return NewBool(l <= r), nil
	case lexer.GREATER_EQUAL_TOKEN:
		return NewBool(l >= r), nil
	default:
		return Unit, diagnostics.UnknownOperator(op.Value, op.Loc())
	}
}

// asInt coerces an operand for an integer operator. Bool coerces to 0/1;
// this is the only place the language's bool/int conflation appears.
func asInt(v Value, op lexer.Token) (int64, error) {
	switch v.Kind {
	case IntValue:
		return v.Int, nil
	case BoolValue:
		if v.Bool {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, diagnostics.InvalidOperand(op.Value, op.Loc())
	}
}

// floorDiv divides truncating toward negative infinity, so -7/2 is -4.
// Go's native division truncates toward zero and needs the correction.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
