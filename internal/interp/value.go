// Package interp walks the AST against a mutable environment and produces
// the value of the last executed statement.
package interp

import "strconv"

// ValueKind discriminates the runtime value variants.
type ValueKind int

const (
	IntValue ValueKind = iota
	BoolValue
	// UnitValue means no value was produced: an empty block, or an if
	// whose branch was not taken and which has no else.
	UnitValue
)

// Value is the result of evaluating a node. Comparison and logical
// operators produce Bool; arithmetic produces Int. The bool/int
// conflation of the language is confined to Truthy and to operand
// coercion in the evaluator; it never leaks into the Value type itself.
type Value struct {
	Kind ValueKind
	Int  int64
	Bool bool
}

// Unit is the no-value result.
var Unit = Value{Kind: UnitValue}

func NewInt(n int64) Value { return Value{Kind: IntValue, Int: n} }

func NewBool(b bool) Value { return Value{Kind: BoolValue, Bool: b} }

func (v Value) String() string {
	switch v.Kind {
	case IntValue:
		return strconv.FormatInt(v.Int, 10)
	case BoolValue:
		return strconv.FormatBool(v.Bool)
	default:
		return "()"
	}
}

// Truthy is the conditional rule: nonzero integers and true are truthy.
// Unit cannot reach a condition (conditions are expressions and no
// expression produces Unit) and counts as false.
func (v Value) Truthy() bool {
	switch v.Kind {
	case IntValue:
		return v.Int != 0
	case BoolValue:
		return v.Bool
	default:
		return false
	}
}
