package mir

import (
	"fmt"
	"strconv"

	"github.com/roach88/pplir/internal/canon"
)

// Canonical lowers a MIR node into its canonical value tree.
// Supports Constant, Operand, and Statement values.
//
// Integer payloads are encoded as decimal strings so that unsigned 64-bit
// values survive the int64-only canonical model.
func Canonical(v any) (canon.Value, error) {
	switch node := v.(type) {
	case Constant:
		return canonicalConstant(node)
	case Operand:
		return canonicalOperand(node)
	case Statement:
		return canonicalStatement(node)
	default:
		return nil, fmt.Errorf("unsupported MIR node for canonical form: %T", v)
	}
}

func canonicalConstant(c Constant) (canon.Value, error) {
	switch k := c.(type) {
	case nil:
		return nil, fmt.Errorf("constant is nil")
	case ConstNone:
		return canon.NewObject(canon.P("kind", canon.String("none"))), nil
	case ConstBool:
		return canon.NewObject(
			canon.P("kind", canon.String("bool")),
			canon.P("value", canon.Bool(bool(k))),
		), nil
	case ConstInt:
		return canon.NewObject(
			canon.P("kind", canon.String("int")),
			canon.P("bits", canon.Int(k.Bits)),
			canon.P("value", canon.String(strconv.FormatInt(k.Value, 10))),
		), nil
	case ConstUint:
		return canon.NewObject(
			canon.P("kind", canon.String("uint")),
			canon.P("bits", canon.Int(k.Bits)),
			canon.P("value", canon.String(strconv.FormatUint(k.Value, 10))),
		), nil
	default:
		return nil, fmt.Errorf("unsupported constant: %T", c)
	}
}

func canonicalOperand(op Operand) (canon.Value, error) {
	switch o := op.(type) {
	case nil:
		return nil, fmt.Errorf("operand is nil")
	case Copy:
		return canon.NewObject(
			canon.P("kind", canon.String("copy")),
			canon.P("local", canon.Int(o.Local)),
		), nil
	case Move:
		return canon.NewObject(
			canon.P("kind", canon.String("move")),
			canon.P("local", canon.Int(o.Local)),
		), nil
	case Const:
		value, err := canonicalConstant(o.Value)
		if err != nil {
			return nil, fmt.Errorf("const operand: %w", err)
		}
		return canon.NewObject(
			canon.P("kind", canon.String("const")),
			canon.P("value", value),
		), nil
	default:
		return nil, fmt.Errorf("unsupported operand: %T", op)
	}
}

func canonicalStatement(stmt Statement) (canon.Value, error) {
	switch s := stmt.(type) {
	case nil:
		return nil, fmt.Errorf("statement is nil")
	case Assign:
		rhs, err := canonicalOperand(s.Rhs)
		if err != nil {
			return nil, fmt.Errorf("assign rhs: %w", err)
		}
		return canon.NewObject(
			canon.P("kind", canon.String("assign")),
			canon.P("lhs", canon.Int(s.Lhs)),
			canon.P("rhs", rhs),
		), nil
	default:
		return nil, fmt.Errorf("unsupported statement: %T", stmt)
	}
}
