package mir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pplir/internal/canon"
)

func TestCanonicalForm(t *testing.T) {
	tests := []struct {
		name     string
		node     any
		expected string
	}{
		{"none", ConstNone{}, `{"kind":"none"}`},
		{"bool", NewConstBool(true), `{"kind":"bool","value":true}`},
		{"int", NewConstInt(32, -5), `{"bits":32,"kind":"int","value":"-5"}`},
		{"uint max", NewConstUint(64, ^uint64(0)), `{"bits":64,"kind":"uint","value":"18446744073709551615"}`},
		{"copy", NewCopy(3), `{"kind":"copy","local":3}`},
		{"move", NewMove(3), `{"kind":"move","local":3}`},
		{"const", NewConst(ConstNone{}), `{"kind":"const","value":{"kind":"none"}}`},
		{"assign", NewAssign(1, NewMove(2)), `{"kind":"assign","lhs":1,"rhs":{"kind":"move","local":2}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Canonical(tt.node)
			require.NoError(t, err)
			data, err := canon.Marshal(v)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestCanonicalRejectsIncompleteNodes(t *testing.T) {
	_, err := Canonical(NewAssign(1, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assign rhs")

	_, err = Canonical(NewConst(nil))
	require.Error(t, err)

	_, err = Canonical(42)
	require.Error(t, err)
}

func TestStatementHashFollowsEquality(t *testing.T) {
	a := NewAssign(1, NewConst(NewConstInt(32, 42)))
	b := NewAssign(1, NewConst(NewConstInt(32, 42)))

	ha, err := StatementHash(a)
	require.NoError(t, err)
	assert.Len(t, ha, 64, "SHA-256 hex is 64 characters")
	assert.Equal(t, ha, MustStatementHash(b))

	variants := []Statement{
		NewAssign(2, NewConst(NewConstInt(32, 42))),
		NewAssign(1, NewConst(NewConstInt(64, 42))),
		NewAssign(1, NewConst(NewConstUint(32, 42))),
		NewAssign(1, NewCopy(42)),
	}
	for _, v := range variants {
		assert.NotEqual(t, ha, MustStatementHash(v), "%v", v)
	}
}

func TestOperandHashDistinguishesVariants(t *testing.T) {
	copyHash := MustOperandHash(NewCopy(0))
	moveHash := MustOperandHash(NewMove(0))

	assert.NotEqual(t, copyHash, moveHash)
	assert.Equal(t, copyHash, MustOperandHash(Copy{Local: 0}))
}

func TestHashDomainsAreSeparate(t *testing.T) {
	// The same canonical bytes hashed as an operand and as a statement differ.
	op := NewCopy(0)
	v, err := Canonical(op)
	require.NoError(t, err)
	data, err := canon.Marshal(v)
	require.NoError(t, err)

	assert.Equal(t, canon.HashWithDomain(DomainOperand, data), MustOperandHash(op))
	assert.NotEqual(t, canon.HashWithDomain(DomainStatement, data), MustOperandHash(op))
}

func TestHashErrors(t *testing.T) {
	_, err := OperandHash(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OperandHash")

	_, err = StatementHash(NewAssign(0, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "StatementHash")

	assert.Panics(t, func() { MustStatementHash(nil) })
}
