package mir

import "fmt"

// Structural validation error codes (E200-E299)
const (
	ErrUnsupportedNode = "E200" // value is not a MIR node
	ErrNilOperand      = "E201" // operand slot is empty
	ErrNilConstant     = "E202" // constant slot is empty
	ErrIntegerWidth    = "E203" // integer width outside 1..64
	ErrIntegerOverflow = "E204" // integer value does not fit its width
	ErrNilStatement    = "E205" // statement slot is empty
)

// MaxIntegerBits is the widest integer a Constant can carry.
const MaxIntegerBits = 64

// ValidationError represents a structural validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks the structural shape of a MIR node.
// Returns all errors found (does not fail-fast).
// Supports Constant, Operand, Statement, and []Statement values.
//
// Only shape is checked: unknown locals and use-after-move are left to the
// passes that own the local table.
func Validate(v any) []ValidationError {
	switch node := v.(type) {
	case Constant:
		return ValidateConstant(node)
	case Operand:
		return ValidateOperand(node)
	case Statement:
		return ValidateStatement(node)
	case []Statement:
		return ValidateStatements(node)
	default:
		return []ValidationError{{
			Field:   "node",
			Message: fmt.Sprintf("unsupported MIR node: %T", v),
			Code:    ErrUnsupportedNode,
		}}
	}
}

// ValidateConstant checks a constant's width and range.
func ValidateConstant(c Constant) []ValidationError {
	return validateConstant("constant", c)
}

// ValidateOperand checks that op names exactly one local or one valid constant.
func ValidateOperand(op Operand) []ValidationError {
	return validateOperand("operand", op)
}

// ValidateStatement checks a single statement.
func ValidateStatement(stmt Statement) []ValidationError {
	return validateStatement("statement", stmt)
}

// ValidateStatements checks every statement in order.
func ValidateStatements(stmts []Statement) []ValidationError {
	var errs []ValidationError
	for i, stmt := range stmts {
		errs = append(errs, validateStatement(fmt.Sprintf("statements[%d]", i), stmt)...)
	}
	return errs
}

func validateStatement(field string, stmt Statement) []ValidationError {
	switch s := stmt.(type) {
	case nil:
		return []ValidationError{{
			Field:   field,
			Message: "statement is required",
			Code:    ErrNilStatement,
		}}
	case Assign:
		return validateOperand(field+".rhs", s.Rhs)
	default:
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("unsupported statement: %T", stmt),
			Code:    ErrUnsupportedNode,
		}}
	}
}

func validateOperand(field string, op Operand) []ValidationError {
	switch o := op.(type) {
	case nil:
		return []ValidationError{{
			Field:   field,
			Message: "operand must name a local or a constant",
			Code:    ErrNilOperand,
		}}
	case Copy, Move:
		return nil
	case Const:
		return validateConstant(field+".value", o.Value)
	default:
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("unsupported operand: %T", op),
			Code:    ErrUnsupportedNode,
		}}
	}
}

func validateConstant(field string, c Constant) []ValidationError {
	switch k := c.(type) {
	case nil:
		return []ValidationError{{
			Field:   field,
			Message: "constant is required",
			Code:    ErrNilConstant,
		}}
	case ConstNone, ConstBool:
		return nil
	case ConstInt:
		if werr, ok := checkWidth(field, k.Bits); !ok {
			return []ValidationError{werr}
		}
		if !intFits(k.Value, k.Bits) {
			return []ValidationError{{
				Field:   field,
				Message: fmt.Sprintf("value %d does not fit in i%d", k.Value, k.Bits),
				Code:    ErrIntegerOverflow,
			}}
		}
		return nil
	case ConstUint:
		if werr, ok := checkWidth(field, k.Bits); !ok {
			return []ValidationError{werr}
		}
		if !uintFits(k.Value, k.Bits) {
			return []ValidationError{{
				Field:   field,
				Message: fmt.Sprintf("value %d does not fit in u%d", k.Value, k.Bits),
				Code:    ErrIntegerOverflow,
			}}
		}
		return nil
	default:
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("unsupported constant: %T", c),
			Code:    ErrUnsupportedNode,
		}}
	}
}

func checkWidth(field string, bits uint32) (ValidationError, bool) {
	if bits == 0 || bits > MaxIntegerBits {
		return ValidationError{
			Field:   field + ".bits",
			Message: fmt.Sprintf("integer width %d outside 1..%d", bits, MaxIntegerBits),
			Code:    ErrIntegerWidth,
		}, false
	}
	return ValidationError{}, true
}

// intFits reports whether v is representable as a bits-wide two's complement
// integer. bits must be in 1..64.
func intFits(v int64, bits uint32) bool {
	if bits == MaxIntegerBits {
		return true
	}
	limit := int64(1) << (bits - 1)
	return v >= -limit && v < limit
}

// uintFits reports whether v is representable in bits. bits must be in 1..64.
func uintFits(v uint64, bits uint32) bool {
	if bits == MaxIntegerBits {
		return true
	}
	return v < uint64(1)<<bits
}
