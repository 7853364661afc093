package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/jspan/java/extract"
)

// JSONEncoder writes spans as an indented JSON array.
type JSONEncoder struct {
	w     io.Writer
	spans []extract.Span
}

// NewJSONEncoder returns an encoder writing to w.
func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(spans []extract.Span) error {
	e.spans = spans
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

type jsonMethod struct {
	Name         string `json:"name"`
	Kind         string `json:"kind"`
	Class        string `json:"class,omitempty"`
	StartLine    int    `json:"startLine"`
	EndLine      int    `json:"endLine"`
	HasBody      bool   `json:"hasBody"`
	Unterminated bool   `json:"unterminated,omitempty"`
	Text         string `json:"text"`
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	methods := make([]jsonMethod, 0, len(e.spans))
	for _, span := range e.spans {
		methods = append(methods, jsonMethod{
			Name:         span.Method.Name,
			Kind:         string(span.Method.Kind),
			Class:        span.Method.Class,
			StartLine:    span.StartLine,
			EndLine:      span.EndLine,
			HasBody:      span.Method.HasBody,
			Unterminated: span.Unterminated,
			Text:         span.Text(),
		})
	}
	return json.MarshalIndent(methods, "", "  ")
}
