// Package source holds Java source files in memory as an immutable sequence of lines.
package source

import (
	"fmt"
	"os"
	"strings"
)

// File is a source file held in memory. Lines are split on '\n' only, so a
// '\r' preceding the newline stays part of its line.
type File struct {
	Path    string
	Content []byte
	Lines   []string
}

// Load reads the file at path into memory.
func Load(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return New(path, content), nil
}

// New wraps content that is already in memory. path is only used in
// messages.
func New(path string, content []byte) *File {
	return &File{
		Path:    path,
		Content: content,
		Lines:   splitLines(string(content)),
	}
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Len returns the number of lines.
func (f *File) Len() int {
	return len(f.Lines)
}

// Line returns the 1-based line n, or "" when n is out of range.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.Lines) {
		return ""
	}
	return f.Lines[n-1]
}

// Slice returns the lines start..end inclusive, both 1-based. The range is
// clamped to the file.
func (f *File) Slice(start, end int) []string {
	if start < 1 {
		start = 1
	}
	if end > len(f.Lines) {
		end = len(f.Lines)
	}
	if start > end {
		return nil
	}
	out := make([]string, end-start+1)
	copy(out, f.Lines[start-1:end])
	return out
}
