// Package canon provides the canonical value model used to derive content
// identity for IR nodes.
//
// IR packages lower their nodes into a Value tree and hash the RFC 8785
// canonical JSON form of that tree. The encoding is never persisted; it exists
// so that structurally equal nodes always produce the same identity.
//
// Key design constraints:
//   - NO float types anywhere - numbers are int64, wider payloads are strings
//   - NO null - every node lowers to a concrete Value
//   - Object keys sorted by UTF-16 code units, strings NFC normalized
package canon
