package mir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperandSealed(t *testing.T) {
	var _ Operand = Copy{}
	var _ Operand = Move{}
	var _ Operand = Const{}
}

func TestCopyAndMoveAreDistinct(t *testing.T) {
	l0 := NewLocalID(0)

	var copyOp, moveOp Operand = NewCopy(l0), NewMove(l0)

	assert.False(t, copyOp == moveOp, "variant tag participates in equality")
	assert.NotEqual(t, copyOp, moveOp)
}

func TestConstOperandNeverEqualsLocalOperand(t *testing.T) {
	k := NewConstUint(64, 0)
	var constOp Operand = NewConst(k)

	for _, l := range []LocalID{0, 1, 2} {
		assert.False(t, constOp == Operand(NewCopy(l)))
		assert.False(t, constOp == Operand(NewMove(l)))
	}
}

func TestOperandEqualityProperties(t *testing.T) {
	operands := []Operand{
		NewCopy(0),
		NewCopy(1),
		NewMove(0),
		NewMove(1),
		NewConst(NewConstInt(32, 42)),
		NewConst(NewConstInt(32, 43)),
		NewConst(ConstNone{}),
	}
	// Structurally identical but independently constructed.
	clones := []Operand{
		Copy{Local: 0},
		Copy{Local: 1},
		Move{Local: 0},
		Move{Local: 1},
		Const{Value: ConstInt{Bits: 32, Value: 42}},
		Const{Value: ConstInt{Bits: 32, Value: 43}},
		Const{Value: ConstNone{}},
	}

	for i, a := range operands {
		self := a
		assert.True(t, a == self, "reflexive: %v", a)
		assert.True(t, a == clones[i], "structural: %v", a)
		assert.True(t, clones[i] == a, "structural: %v", a)
		for j, b := range operands {
			assert.Equal(t, a == b, b == a, "symmetric: %v, %v", a, b)
			assert.Equal(t, i == j, a == b, "%v vs %v", a, b)
		}
	}
}

func TestOperandDiscrimination(t *testing.T) {
	ops := []Operand{NewCopy(2), NewMove(3), NewConst(NewConstBool(true))}

	var kinds []string
	for _, op := range ops {
		switch o := op.(type) {
		case Copy:
			kinds = append(kinds, "copy")
			assert.Equal(t, NewLocalID(2), o.Local)
		case Move:
			kinds = append(kinds, "move")
			assert.Equal(t, NewLocalID(3), o.Local)
		case Const:
			kinds = append(kinds, "const")
			assert.Equal(t, Constant(ConstBool(true)), o.Value)
		default:
			t.Fatalf("unexpected operand %T", op)
		}
	}

	assert.Equal(t, []string{"copy", "move", "const"}, kinds)
}

func TestOperandLocal(t *testing.T) {
	l, ok := OperandLocal(NewCopy(4))
	require.True(t, ok)
	assert.Equal(t, NewLocalID(4), l)

	l, ok = OperandLocal(NewMove(5))
	require.True(t, ok)
	assert.Equal(t, NewLocalID(5), l)

	_, ok = OperandLocal(NewConst(ConstNone{}))
	assert.False(t, ok)

	_, ok = OperandLocal(nil)
	assert.False(t, ok)
}

func TestIsConsuming(t *testing.T) {
	assert.True(t, IsConsuming(NewMove(1)))
	assert.False(t, IsConsuming(NewCopy(1)))
	assert.False(t, IsConsuming(NewConst(ConstNone{})))
	assert.False(t, IsConsuming(nil))
}

func TestOperandString(t *testing.T) {
	assert.Equal(t, "copy _0", NewCopy(0).String())
	assert.Equal(t, "move _3", NewMove(3).String())
	assert.Equal(t, "const 42_i32", NewConst(NewConstInt(32, 42)).String())
	assert.Equal(t, "const <nil>", Const{}.String())
}
