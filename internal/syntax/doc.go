// Package syntax provides a byte-class table and a structural scanner that
// advances a logical position in a buffer past one balanced s-expression at
// a time.
//
// The scanner is deliberately shallow: it never builds a tree, only
// positions. Given a Table describing which bytes are whitespace, word
// characters, string quotes, comment starts, and balanced-pair delimiters,
// ScanSexp walks forward from a starting position and returns the offset
// immediately past the next complete form — an atom, a string literal, or a
// balanced parenthesized/bracketed/braced group.
//
// A bare backslash encountered outside a string literal is not special: it
// falls into the generic atom-scanning case and is treated as (part of) a
// one-byte atom, since it has no other defined meaning outside a string.
//
// The scanner is pure in its inputs: the same buffer contents and the same
// Table always produce the same result, including the same error when the
// input is malformed.
package syntax
