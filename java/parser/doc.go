// Package parser adapts the tree-sitter Java grammar to the needs of jspan.
//
// The grammar itself lives in github.com/tree-sitter/tree-sitter-java; this
// package only owns parser setup, syntax error reporting and a few helpers
// for walking the resulting tree with 1-based line numbers.
package parser
