package mir

import (
	"fmt"

	"github.com/roach88/pplir/internal/canon"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future encoding migration.
const (
	DomainOperand   = "pplir/mir/operand/v1"
	DomainStatement = "pplir/mir/statement/v1"
)

// OperandHash computes the content-addressed identity of an operand.
// Structurally equal operands always hash identically.
func OperandHash(op Operand) (string, error) {
	v, err := canonicalOperand(op)
	if err != nil {
		return "", fmt.Errorf("OperandHash: %w", err)
	}
	return canon.Hash(DomainOperand, v)
}

// StatementHash computes the content-addressed identity of a statement.
func StatementHash(stmt Statement) (string, error) {
	v, err := canonicalStatement(stmt)
	if err != nil {
		return "", fmt.Errorf("StatementHash: %w", err)
	}
	return canon.Hash(DomainStatement, v)
}

// MustOperandHash is like OperandHash but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustOperandHash(op Operand) string {
	h, err := OperandHash(op)
	if err != nil {
		panic(err)
	}
	return h
}

// MustStatementHash is like StatementHash but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustStatementHash(stmt Statement) string {
	h, err := StatementHash(stmt)
	if err != nil {
		panic(err)
	}
	return h
}
