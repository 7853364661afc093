// Package extract recovers the literal source text of Java method
// declarations.
package extract

import (
	"fmt"
	"strings"

	"github.com/dhamidi/jspan/java/parser"
	"github.com/dhamidi/jspan/java/source"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("jspan.extract")

// Span is the contiguous block of source lines making up one method.
type Span struct {
	Method       Method
	StartLine    int
	EndLine      int
	Lines        []string
	Unterminated bool
}

func (s Span) Text() string {
	return strings.Join(s.Lines, "\n")
}

// PositionError reports a method whose start line lies outside its source
// file.
type PositionError struct {
	Method string
	Line   int
	Lines  int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("method %s starts at line %d, outside the %d lines of the source", e.Method, e.Line, e.Lines)
}

// Extract returns the span of m within f.
//
// The span starts at m.StartLine. Brace counting starts at the body's
// opening brace, so braces in annotations and in a wrapped parameter list
// never end the span. The scan keeps a running balance of '{' minus '}' and stops on the
// first line where the balance is at or below zero once an opening brace
// has been seen, including that line. Declarations without a body end on
// the parser's end line instead.
func Extract(f *source.File, m Method, mode BraceMode) (Span, error) {
	if m.StartLine < 1 || m.StartLine > f.Len() {
		return Span{}, &PositionError{Method: m.Name, Line: m.StartLine, Lines: f.Len()}
	}

	if !m.HasBody {
		end := max(m.EndLine, m.StartLine)
		log.Debugf("%s: %s at line %d has no body, ending at line %d", f.Path, m.Name, m.StartLine, end)
		return newSpan(f, m, end, false), nil
	}

	from, column := m.StartLine, 0
	if m.BodyLine >= from {
		from, column = m.BodyLine, m.BodyColumn
	}
	counter := newBraceCounter(mode)
	balance := 0
	opened := false
	for n := from; n <= f.Len(); n++ {
		line := f.Line(n)
		if n == from && column > 0 && column <= len(line) {
			line = line[column:]
		}
		open, close := counter.count(line)
		if open > 0 {
			opened = true
		}
		balance += open - close
		if opened && balance <= 0 {
			return newSpan(f, m, n, false), nil
		}
	}

	log.Warningf("%s: braces of %s starting at line %d never balance, taking the rest of the file", f.Path, m.Name, m.StartLine)
	return newSpan(f, m, f.Len(), true), nil
}

func newSpan(f *source.File, m Method, end int, unterminated bool) Span {
	return Span{
		Method:       m,
		StartLine:    m.StartLine,
		EndLine:      end,
		Lines:        f.Slice(m.StartLine, end),
		Unterminated: unterminated,
	}
}

// ExtractAll collects the methods of tree and extracts each of them from f.
func ExtractAll(f *source.File, tree *parser.Tree, opts Options) ([]Span, error) {
	methods := Collect(tree, opts)
	spans := make([]Span, 0, len(methods))
	for _, m := range methods {
		span, err := Extract(f, m, opts.Mode)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", f.Path, err)
		}
		spans = append(spans, span)
	}
	return spans, nil
}

// FromFile loads and parses path and extracts all of its methods.
func FromFile(path string, opts Options) ([]Span, error) {
	f, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return FromSource(f, opts)
}

func FromSource(f *source.File, opts Options) ([]Span, error) {
	popts := []parser.Option{parser.WithFile(f.Path)}
	if opts.Lenient {
		popts = append(popts, parser.Lenient())
	}
	tree, err := parser.Parse(f.Content, popts...)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	return ExtractAll(f, tree, opts)
}
