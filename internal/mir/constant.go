package mir

import (
	"fmt"
	"strconv"
)

// Constant is a sealed interface over compile-time-known literal values.
// Only ConstNone, ConstBool, ConstInt, and ConstUint implement it.
type Constant interface {
	constant()

	// Type reports the type the constant carries.
	Type() Type

	String() string
}

// ConstNone is the unit value.
type ConstNone struct{}

func (ConstNone) constant() {}
func (ConstNone) Type() Type { return TypeNone }
func (ConstNone) String() string { return "()" }

// ConstBool is a boolean literal.
type ConstBool bool

func (ConstBool) constant() {}
func (ConstBool) Type() Type { return TypeBool }
func (c ConstBool) String() string { return strconv.FormatBool(bool(c)) }

// ConstInt is a signed integer literal of Bits width.
type ConstInt struct {
	Bits  uint32
	Value int64
}

func (ConstInt) constant() {}
func (c ConstInt) Type() Type { return IntType(c.Bits) }

func (c ConstInt) String() string {
	return fmt.Sprintf("%d_i%d", c.Value, c.Bits)
}

// ConstUint is an unsigned integer literal of Bits width.
type ConstUint struct {
	Bits  uint32
	Value uint64
}

func (ConstUint) constant() {}
func (c ConstUint) Type() Type { return UintType(c.Bits) }

func (c ConstUint) String() string {
	return fmt.Sprintf("%d_u%d", c.Value, c.Bits)
}

// NewConstBool creates a boolean constant.
func NewConstBool(b bool) ConstBool {
	return ConstBool(b)
}

// NewConstInt creates a signed integer constant.
func NewConstInt(bits uint32, value int64) ConstInt {
	return ConstInt{Bits: bits, Value: value}
}

// NewConstUint creates an unsigned integer constant.
func NewConstUint(bits uint32, value uint64) ConstUint {
	return ConstUint{Bits: bits, Value: value}
}
