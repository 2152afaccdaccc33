// Package mir provides the core vocabulary of the mid-level intermediate
// representation: three-address statements over a function's local table.
//
// This package contains value types only. A LocalID names a slot in the
// enclosing function's local table; an Operand reads a local (by copy or by
// move) or embeds a Constant; a Statement applies an effect to a local.
//
// Key design constraints:
//   - Operand, Statement, and Constant are sealed interfaces; consumers
//     discriminate variants with a type switch
//   - Every variant is comparable, so == is structural equality
//   - Constructors never fail; Validate checks structural shape only
//   - Move vs Copy is a syntactic marker for downstream ownership passes
package mir
