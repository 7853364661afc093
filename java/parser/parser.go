package parser

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// Node is a node of the tree-sitter syntax tree.
type Node = tree_sitter.Node

var javaLanguage = tree_sitter.NewLanguage(tree_sitter_java.Language())

// Option configures a call to Parse.
type Option func(*config)

type config struct {
	file    string
	lenient bool
}

// WithFile names the file being parsed in trees and syntax errors.
func WithFile(path string) Option {
	return func(c *config) {
		c.file = path
	}
}

// Lenient keeps trees that contain syntax errors instead of failing.
func Lenient() Option {
	return func(c *config) {
		c.lenient = true
	}
}

// Tree is a parsed compilation unit. It must be closed once the caller is
// done with its nodes.
type Tree struct {
	File   string
	Source []byte
	tree   *tree_sitter.Tree
}

// Root returns the program node.
func (t *Tree) Root() *Node {
	return t.tree.RootNode()
}

// HasError reports whether the tree contains ERROR or MISSING nodes.
func (t *Tree) HasError() bool {
	return t.Root().HasError()
}

func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}

// Parse parses src as a Java compilation unit. A tree-sitter parser is not
// safe for concurrent use, so every call creates its own.
func Parse(src []byte, opts ...Option) (*Tree, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	p := tree_sitter.NewParser()
	defer p.Close()
	if err := p.SetLanguage(javaLanguage); err != nil {
		return nil, fmt.Errorf("set java language: %w", err)
	}

	ts := p.Parse(src, nil)
	if ts == nil {
		return nil, fmt.Errorf("parse %s: parser returned no tree", c.file)
	}

	tree := &Tree{File: c.file, Source: src, tree: ts}
	if !c.lenient && tree.HasError() {
		err := syntaxErrorAt(c.file, src, tree.Root())
		tree.Close()
		return nil, err
	}
	return tree, nil
}

// SyntaxError reports the first erroneous node of a tree.
type SyntaxError struct {
	File    string
	Line    int
	Column  int
	Near    string
	Missing bool
}

func (e *SyntaxError) Error() string {
	file := e.File
	if file == "" {
		file = "<input>"
	}
	if e.Missing {
		return fmt.Sprintf("%s:%d:%d: syntax error: missing %s", file, e.Line, e.Column, e.Near)
	}
	return fmt.Sprintf("%s:%d:%d: syntax error near %q", file, e.Line, e.Column, e.Near)
}

func syntaxErrorAt(file string, src []byte, root *Node) *SyntaxError {
	var bad *Node
	Walk(root, func(n *Node) bool {
		if bad != nil {
			return false
		}
		if n.IsError() || n.IsMissing() {
			bad = n
			return false
		}
		return n.HasError()
	})

	err := &SyntaxError{File: file, Line: 1, Column: 1}
	if bad == nil {
		return err
	}
	pos := bad.StartPosition()
	err.Line = int(pos.Row) + 1
	err.Column = int(pos.Column) + 1
	if bad.IsMissing() {
		err.Missing = true
		err.Near = bad.Kind()
	} else {
		err.Near = firstLine(Text(bad, src))
	}
	return err
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
