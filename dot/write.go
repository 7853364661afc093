// Package dot reads and writes the Graphviz graphs produced by jspan.
package dot

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/dhamidi/jspan/java"
)

var arrowheads = map[java.RelationType]string{
	java.RelationExtends:    "empty",
	java.RelationImplements: "empty,dashed",
	java.RelationAssociates: "open",
}

// WriteClassDiagram writes a bottom-to-top class diagram of classes and
// their relationships.
func WriteClassDiagram(w io.Writer, classes []*java.ClassModel) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "digraph ClassDiagram {")
	fmt.Fprintln(bw, "  rankdir=BT;")
	fmt.Fprintln(bw, "  node [shape=box, style=filled, fillcolor=white];")
	fmt.Fprintln(bw)

	for _, name := range java.ClassNames(classes) {
		fmt.Fprintf(bw, "  %s [label=\"%s\"];\n", name, name)
	}

	fmt.Fprintln(bw)

	for _, rel := range java.Relationships(classes) {
		fmt.Fprintf(bw, "  %s -> %s [arrowhead=\"%s\"];\n", rel.From, rel.To, arrowheads[rel.Type])
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// WriteCallGraph writes one edge per call site. Callers are sorted, callees
// keep the order in which they were called.
func WriteCallGraph(w io.Writer, calls []java.Call) error {
	byCaller := make(map[string][]string)
	var callers []string
	for _, c := range calls {
		if _, ok := byCaller[c.Caller]; !ok {
			callers = append(callers, c.Caller)
		}
		byCaller[c.Caller] = append(byCaller[c.Caller], c.Callee)
	}
	sort.Strings(callers)

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	for _, caller := range callers {
		for _, callee := range byCaller[caller] {
			fmt.Fprintf(bw, "    %q -> %q;\n", caller, callee)
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
