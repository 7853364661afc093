package extract

import (
	"fmt"
	"strings"
)

// BraceMode selects how braces on a line are counted.
type BraceMode int

const (
	// Lexical ignores braces inside string, char and text block literals
	// and inside comments.
	Lexical BraceMode = iota
	// Raw counts every '{' and '}' on the line.
	Raw
)

func (m BraceMode) String() string {
	switch m {
	case Lexical:
		return "lexical"
	case Raw:
		return "raw"
	default:
		return fmt.Sprintf("BraceMode(%d)", int(m))
	}
}

func ParseBraceMode(s string) (BraceMode, error) {
	switch strings.ToLower(s) {
	case "", "lexical":
		return Lexical, nil
	case "raw":
		return Raw, nil
	}
	return Lexical, fmt.Errorf("unknown brace mode %q (expected lexical or raw)", s)
}

type lexState int

const (
	inCode lexState = iota
	inBlockComment
	inTextBlock
)

// braceCounter counts braces line by line. In lexical mode it carries
// block comment and text block state from one line to the next.
type braceCounter struct {
	mode  BraceMode
	state lexState
}

func newBraceCounter(mode BraceMode) *braceCounter {
	return &braceCounter{mode: mode}
}

func (c *braceCounter) count(line string) (open, close int) {
	if c.mode == Raw {
		return strings.Count(line, "{"), strings.Count(line, "}")
	}

	for i := 0; i < len(line); {
		switch c.state {
		case inBlockComment:
			end := strings.Index(line[i:], "*/")
			if end < 0 {
				return open, close
			}
			i += end + 2
			c.state = inCode
		case inTextBlock:
			end := textBlockEnd(line, i)
			if end < 0 {
				return open, close
			}
			i = end
			c.state = inCode
		default:
			ch := line[i]
			switch {
			case strings.HasPrefix(line[i:], "//"):
				return open, close
			case strings.HasPrefix(line[i:], "/*"):
				c.state = inBlockComment
				i += 2
			case strings.HasPrefix(line[i:], `"""`):
				c.state = inTextBlock
				i += 3
			case ch == '"' || ch == '\'':
				i = literalEnd(line, i+1, ch)
			case ch == '{':
				open++
				i++
			case ch == '}':
				close++
				i++
			default:
				i++
			}
		}
	}
	return open, close
}

// literalEnd returns the index just past the closing quote of a string or
// char literal that started before i. Unterminated literals end the line.
func literalEnd(line string, i int, quote byte) int {
	for i < len(line) {
		switch line[i] {
		case '\\':
			i += 2
		case quote:
			return i + 1
		default:
			i++
		}
	}
	return len(line)
}

// textBlockEnd returns the index just past the closing """ at or after i,
// or -1 when the text block continues on the next line.
func textBlockEnd(line string, i int) int {
	for i < len(line) {
		if line[i] == '\\' {
			i += 2
			continue
		}
		if strings.HasPrefix(line[i:], `"""`) {
			return i + 3
		}
		i++
	}
	return -1
}
