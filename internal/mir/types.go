package mir

import "fmt"

// TypeKind enumerates the scalar type kinds a Constant can carry.
type TypeKind uint8

const (
	// KindNone is the unit type.
	KindNone TypeKind = iota
	// KindBool is the boolean type.
	KindBool
	// KindInt is a signed integer of Bits width.
	KindInt
	// KindUint is an unsigned integer of Bits width.
	KindUint
)

var kindNames = map[TypeKind]string{
	KindNone: "none",
	KindBool: "bool",
	KindInt:  "int",
	KindUint: "uint",
}

func (k TypeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TypeKind(%d)", uint8(k))
}

// Type is the type of a Constant. Bits is zero for KindNone and KindBool.
type Type struct {
	Kind TypeKind
	Bits uint32
}

// Predeclared types.
var (
	TypeNone = Type{Kind: KindNone}
	TypeBool = Type{Kind: KindBool}
)

// IntType returns the signed integer type of the given width.
func IntType(bits uint32) Type {
	return Type{Kind: KindInt, Bits: bits}
}

// UintType returns the unsigned integer type of the given width.
func UintType(bits uint32) Type {
	return Type{Kind: KindUint, Bits: bits}
}

// IsInteger reports whether t is a signed or unsigned integer type.
func (t Type) IsInteger() bool {
	return t.Kind == KindInt || t.Kind == KindUint
}

// Signed reports whether t is a signed integer type.
func (t Type) Signed() bool {
	return t.Kind == KindInt
}

func (t Type) String() string {
	switch t.Kind {
	case KindNone:
		return "()"
	case KindBool:
		return "bool"
	case KindInt:
		return fmt.Sprintf("i%d", t.Bits)
	case KindUint:
		return fmt.Sprintf("u%d", t.Bits)
	default:
		return t.Kind.String()
	}
}
