package mir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWellFormed(t *testing.T) {
	stmts := []Statement{
		NewAssign(1, NewConst(NewConstInt(32, 42))),
		NewAssign(2, NewMove(1)),
		NewAssign(ReturnLocal, NewCopy(2)),
		NewAssign(3, NewConst(NewConstUint(64, ^uint64(0)))),
		NewAssign(4, NewConst(NewConstBool(false))),
		NewAssign(5, NewConst(ConstNone{})),
	}

	assert.Empty(t, ValidateStatements(stmts))
	assert.Empty(t, Validate(stmts))
}

func TestValidateDoesNotTrackMoves(t *testing.T) {
	// Use-after-move is not a structural property.
	stmts := []Statement{
		NewAssign(2, NewMove(1)),
		NewAssign(3, NewMove(1)),
	}
	assert.Empty(t, ValidateStatements(stmts))
}

func TestValidateConstantRanges(t *testing.T) {
	tests := []struct {
		name     string
		constant Constant
		code     string
	}{
		{"i8 max", NewConstInt(8, 127), ""},
		{"i8 min", NewConstInt(8, -128), ""},
		{"i8 overflow", NewConstInt(8, 128), ErrIntegerOverflow},
		{"i8 underflow", NewConstInt(8, -129), ErrIntegerOverflow},
		{"i1 holds -1 and 0", NewConstInt(1, -1), ""},
		{"i1 rejects 1", NewConstInt(1, 1), ErrIntegerOverflow},
		{"i64 any", NewConstInt(64, -9223372036854775808), ""},
		{"u8 max", NewConstUint(8, 255), ""},
		{"u8 overflow", NewConstUint(8, 256), ErrIntegerOverflow},
		{"u64 max", NewConstUint(64, ^uint64(0)), ""},
		{"zero width", NewConstInt(0, 0), ErrIntegerWidth},
		{"too wide", NewConstUint(128, 0), ErrIntegerWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateConstant(tt.constant)
			if tt.code == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, tt.code, errs[0].Code)
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	stmts := []Statement{
		NewAssign(1, nil),
		nil,
		NewAssign(2, NewConst(nil)),
		NewAssign(3, NewConst(NewConstInt(0, 1))),
		NewAssign(4, NewCopy(1)),
		NewAssign(5, NewConst(NewConstUint(4, 16))),
	}

	errs := ValidateStatements(stmts)
	require.Len(t, errs, 5)

	assert.Equal(t, ValidationError{
		Field:   "statements[0].rhs",
		Message: "operand must name a local or a constant",
		Code:    ErrNilOperand,
	}, errs[0])
	assert.Equal(t, "statements[1]", errs[1].Field)
	assert.Equal(t, ErrNilStatement, errs[1].Code)
	assert.Equal(t, "statements[2].rhs.value", errs[2].Field)
	assert.Equal(t, ErrNilConstant, errs[2].Code)
	assert.Equal(t, "statements[3].rhs.value.bits", errs[3].Field)
	assert.Equal(t, ErrIntegerWidth, errs[3].Code)
	assert.Equal(t, "statements[5].rhs.value", errs[4].Field)
	assert.Equal(t, ErrIntegerOverflow, errs[4].Code)
}

func TestValidateDispatch(t *testing.T) {
	assert.Empty(t, Validate(NewCopy(1)))
	assert.Empty(t, Validate(NewAssign(1, NewCopy(0))))
	assert.Empty(t, Validate(NewConstBool(true)))

	errs := Validate(NewConst(NewConstInt(8, 1000)))
	require.Len(t, errs, 1)
	assert.Equal(t, "operand.value", errs[0].Field)

	errs = Validate("not a node")
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnsupportedNode, errs[0].Code)
	assert.Contains(t, errs[0].Message, "string")
}

func TestValidationErrorString(t *testing.T) {
	err := ValidationError{Field: "statements[0].rhs", Message: "operand must name a local or a constant", Code: ErrNilOperand}
	assert.Equal(t, "[E201] statements[0].rhs: operand must name a local or a constant", err.Error())
}
