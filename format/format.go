package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/jspan/java/extract"
)

// Encoder renders extracted spans to its writer.
type Encoder interface {
	encoding.TextMarshaler
	Encode(spans []extract.Span) error
}

// NewEncoder returns the encoder registered under name: split, json or
// table.
func NewEncoder(name string, w io.Writer, separator string) (Encoder, error) {
	switch name {
	case "", "split":
		return NewSplitEncoder(w, separator), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "table":
		return NewTableEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}
