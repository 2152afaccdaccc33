// Package irspec compiles CUE descriptions of IR fragments into hir and mir
// values.
//
// A fragment is a named list of statements plus the annotations of the
// entity that owns them:
//
//	fragment: "store_const"
//	annotations: [{name: "mangle_as", args: ["printf"]}]
//	statements: [
//		{assign: {lhs: 1, rhs: {const: {kind: "int", bits: 32, value: 42}}}},
//		{assign: {lhs: 2, rhs: {move: 1}}},
//		{assign: {lhs: 0, rhs: {copy: 2}}},
//	]
//
// Constants are written {kind: "none"}, {kind: "bool", value: true},
// {kind: "int", bits: w, value: n}, or {kind: "uint", bits: w, value: n}.
//
// Compilation is shape-only. Integer widths and ranges are left to
// mir.Validate so that fixtures can describe malformed IR on purpose.
package irspec
