package java

import (
	"github.com/dhamidi/jspan/java/parser"
)

// ClassModelsFromSource parses src and returns its type declarations,
// nested ones included, in source order.
func ClassModelsFromSource(src []byte, opts ...parser.Option) ([]*ClassModel, error) {
	tree, err := parser.Parse(src, opts...)
	if err != nil {
		return nil, err
	}
	defer tree.Close()
	return ClassModelsFromTree(tree), nil
}

func ClassModelsFromTree(tree *parser.Tree) []*ClassModel {
	var classes []*ClassModel
	parser.Walk(tree.Root(), func(n *parser.Node) bool {
		if kind, ok := classKinds[n.Kind()]; ok {
			classes = append(classes, classModelFromNode(n, kind, tree))
		}
		return true
	})
	return classes
}

var classKinds = map[string]ClassKind{
	parser.KindClassDecl:          ClassKindClass,
	parser.KindInterfaceDecl:      ClassKindInterface,
	parser.KindEnumDecl:           ClassKindEnum,
	parser.KindRecordDecl:         ClassKindRecord,
	parser.KindAnnotationTypeDecl: ClassKindAnnotation,
}

func classModelFromNode(n *parser.Node, kind ClassKind, tree *parser.Tree) *ClassModel {
	src := tree.Source
	c := &ClassModel{
		Name:       parser.FieldText(n, "name", src),
		Kind:       kind,
		SourceFile: tree.File,
		StartLine:  parser.StartLine(n),
		EndLine:    parser.EndLine(n),
	}

	for i := uint(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		switch child.Kind() {
		case parser.KindSuperclass:
			c.Extends = append(c.Extends, typeNames(child, src)...)
		case parser.KindExtendsInterfaces:
			c.Extends = append(c.Extends, typeNames(child, src)...)
		case parser.KindSuperInterfaces:
			c.Implements = append(c.Implements, typeNames(child, src)...)
		}
	}

	if body := n.ChildByFieldName("body"); body != nil {
		c.FieldTypes = fieldTypes(body, src)
	}
	return c
}

// typeNames returns the simple names of the types listed under a
// superclass, super_interfaces or extends_interfaces node.
func typeNames(n *parser.Node, src []byte) []string {
	var names []string
	for i := uint(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		if child.Kind() == parser.KindTypeList {
			names = append(names, typeNames(child, src)...)
			continue
		}
		if name := simpleTypeName(child, src); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// fieldTypes returns the element types of the fields declared directly in
// a type body. Primitive types have no name and are skipped.
func fieldTypes(body *parser.Node, src []byte) []string {
	var types []string
	for i := uint(0); i < body.NamedChildCount(); i++ {
		member := body.NamedChild(i)
		switch member.Kind() {
		case parser.KindFieldDecl, "constant_declaration":
			if name := simpleTypeName(member.ChildByFieldName("type"), src); name != "" {
				types = append(types, name)
			}
		case "enum_body_declarations":
			types = append(types, fieldTypes(member, src)...)
		}
	}
	return types
}

func simpleTypeName(n *parser.Node, src []byte) string {
	if n == nil {
		return ""
	}
	switch n.Kind() {
	case parser.KindTypeIdentifier:
		return parser.Text(n, src)
	case parser.KindScopedTypeIdentifier, "annotated_type":
		if count := n.NamedChildCount(); count > 0 {
			return simpleTypeName(n.NamedChild(count-1), src)
		}
	case parser.KindGenericType:
		if n.NamedChildCount() > 0 {
			return simpleTypeName(n.NamedChild(0), src)
		}
	case parser.KindArrayType:
		return simpleTypeName(n.ChildByFieldName("element"), src)
	}
	return ""
}

// CallsFromSource parses src and returns its method invocations in source
// order.
func CallsFromSource(src []byte, opts ...parser.Option) ([]Call, error) {
	tree, err := parser.Parse(src, opts...)
	if err != nil {
		return nil, err
	}
	defer tree.Close()
	return CallsFromTree(tree), nil
}

// CallsFromTree attributes every method invocation to the nearest
// enclosing method or constructor. Invocations outside of any method, such
// as in field initializers, are dropped.
func CallsFromTree(tree *parser.Tree) []Call {
	src := tree.Source
	var calls []Call
	parser.Walk(tree.Root(), func(n *parser.Node) bool {
		if n.Kind() != parser.KindMethodInvocation {
			return true
		}
		caller := enclosingMethod(n, src)
		callee := parser.FieldText(n, "name", src)
		if caller != "" && callee != "" {
			calls = append(calls, Call{
				Caller:     caller,
				Callee:     callee,
				SourceFile: tree.File,
				Line:       parser.StartLine(n),
			})
		}
		return true
	})
	return calls
}

func enclosingMethod(n *parser.Node, src []byte) string {
	for p := n.Parent(); p != nil; p = p.Parent() {
		switch p.Kind() {
		case parser.KindMethodDecl, parser.KindConstructorDecl, parser.KindCompactConstructorDecl:
			return parser.FieldText(p, "name", src)
		}
	}
	return ""
}
