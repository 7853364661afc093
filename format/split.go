package format

import (
	"io"
	"strings"

	"github.com/dhamidi/jspan/java/extract"
)

// SplitEncoder prints every span verbatim, each preceded by the separator
// line.
type SplitEncoder struct {
	w         io.Writer
	separator string
	spans     []extract.Span
}

// NewSplitEncoder returns an encoder writing to w. separator is printed
// before every span.
func NewSplitEncoder(w io.Writer, separator string) *SplitEncoder {
	return &SplitEncoder{w: w, separator: separator}
}

func (e *SplitEncoder) Encode(spans []extract.Span) error {
	e.spans = spans
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *SplitEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, span := range e.spans {
		sb.WriteString(e.separator)
		sb.WriteByte('\n')
		sb.WriteString(span.Text())
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}
