package format

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dhamidi/jspan/java/extract"
	"github.com/olekukonko/tablewriter"
)

// TableEncoder summarises spans, one row per method.
type TableEncoder struct {
	w     io.Writer
	spans []extract.Span
}

func NewTableEncoder(w io.Writer) *TableEncoder {
	return &TableEncoder{w: w}
}

func (e *TableEncoder) Encode(spans []extract.Span) error {
	e.spans = spans
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TableEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Name", "Class", "Lines", "Body"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_CENTER})

	total := 0
	for _, span := range e.spans {
		table.Append([]string{
			span.Method.Name,
			span.Method.Class,
			fmt.Sprintf("%d-%d", span.StartLine, span.EndLine),
			bodyLabel(span),
		})
		total += span.EndLine - span.StartLine + 1
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d methods", len(e.spans)),
		"",
		fmt.Sprintf("%d", total),
		"",
	})

	table.Render()
	return buf.Bytes(), nil
}

func bodyLabel(span extract.Span) string {
	switch {
	case !span.Method.HasBody:
		return "none"
	case span.Unterminated:
		return "unterminated"
	default:
		return "yes"
	}
}
