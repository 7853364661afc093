package extract

import (
	"github.com/dhamidi/jspan/java/parser"
)

type MethodKind string

const (
	MethodKindMethod      MethodKind = "method"
	MethodKindConstructor MethodKind = "constructor"
)

// Method is a method declaration found in a parsed tree.
type Method struct {
	Name      string
	Kind      MethodKind
	Class     string
	StartLine int
	EndLine   int
	// BodyLine and BodyColumn locate the body's opening brace. BodyLine
	// is 0 when there is no body. BodyColumn is a 0-based byte offset.
	BodyLine   int
	BodyColumn int
	HasBody    bool
}

type Options struct {
	Mode         BraceMode
	Constructors bool
	Lenient      bool
}

// Collect returns every method declaration in tree in pre-order, which is
// the order the declarations appear in the source. Methods of nested,
// local and anonymous classes are included.
func Collect(tree *parser.Tree, opts Options) []Method {
	var methods []Method
	src := tree.Source

	parser.Walk(tree.Root(), func(n *parser.Node) bool {
		switch n.Kind() {
		case parser.KindMethodDecl:
			methods = append(methods, newMethod(n, src, MethodKindMethod))
		case parser.KindConstructorDecl, parser.KindCompactConstructorDecl:
			if opts.Constructors {
				methods = append(methods, newMethod(n, src, MethodKindConstructor))
			}
		}
		return true
	})

	return methods
}

func newMethod(n *parser.Node, src []byte, kind MethodKind) Method {
	m := Method{
		Name:      parser.FieldText(n, "name", src),
		Kind:      kind,
		Class:     parser.EnclosingType(n, src),
		StartLine: parser.StartLine(n),
		EndLine:   parser.EndLine(n),
	}
	if body := n.ChildByFieldName("body"); body != nil {
		m.HasBody = true
		m.BodyLine = parser.StartLine(body)
		m.BodyColumn = int(body.StartPosition().Column)
	}
	return m
}
