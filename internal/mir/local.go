package mir

import "fmt"

// LocalID identifies a slot in the enclosing function's local table.
// Equality is only meaningful between locals of the same function.
//
// Slot 0 holds the return value; arguments and variables follow from 1.
type LocalID uint32

// ReturnLocal is the slot holding the function's return value.
const ReturnLocal LocalID = 0

// NewLocalID creates a LocalID from a raw slot index.
func NewLocalID(index uint32) LocalID {
	return LocalID(index)
}

// ArgOrVariable returns the local for the i-th argument or variable.
func ArgOrVariable(i uint32) LocalID {
	return LocalID(i + 1)
}

// Index returns the slot index in the local table.
func (l LocalID) Index() uint32 {
	return uint32(l)
}

// IsReturn reports whether l is the return value slot.
func (l LocalID) IsReturn() bool {
	return l == ReturnLocal
}

func (l LocalID) String() string {
	return fmt.Sprintf("_%d", uint32(l))
}
