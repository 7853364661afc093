package parser

// Node kinds of the tree-sitter Java grammar used by jspan.
const (
	KindProgram                = "program"
	KindMethodDecl             = "method_declaration"
	KindConstructorDecl        = "constructor_declaration"
	KindCompactConstructorDecl = "compact_constructor_declaration"
	KindClassDecl              = "class_declaration"
	KindInterfaceDecl          = "interface_declaration"
	KindEnumDecl               = "enum_declaration"
	KindRecordDecl             = "record_declaration"
	KindAnnotationTypeDecl     = "annotation_type_declaration"
	KindFieldDecl              = "field_declaration"
	KindMethodInvocation       = "method_invocation"
	KindObjectCreation         = "object_creation_expression"
	KindSuperclass             = "superclass"
	KindSuperInterfaces        = "super_interfaces"
	KindExtendsInterfaces      = "extends_interfaces"
	KindTypeList               = "type_list"
	KindTypeIdentifier         = "type_identifier"
	KindScopedTypeIdentifier   = "scoped_type_identifier"
	KindGenericType            = "generic_type"
	KindArrayType              = "array_type"
	KindIdentifier             = "identifier"
)

// IsTypeDecl reports whether kind declares a class-like type.
func IsTypeDecl(kind string) bool {
	switch kind {
	case KindClassDecl, KindInterfaceDecl, KindEnumDecl, KindRecordDecl, KindAnnotationTypeDecl:
		return true
	}
	return false
}

// Walk visits node and its descendants in pre-order. Children of a node are
// visited only when fn returns true for it.
func Walk(node *Node, fn func(*Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		Walk(node.Child(i), fn)
	}
}

// Text returns the source text covered by node.
func Text(node *Node, src []byte) string {
	if node == nil {
		return ""
	}
	return node.Utf8Text(src)
}

// StartLine returns the 1-based line on which node starts.
func StartLine(node *Node) int {
	return int(node.StartPosition().Row) + 1
}

// EndLine returns the 1-based line on which node ends.
func EndLine(node *Node) int {
	return int(node.EndPosition().Row) + 1
}

// FieldText returns the text of the named field of node, or "".
func FieldText(node *Node, field string, src []byte) string {
	return Text(node.ChildByFieldName(field), src)
}

// EnclosingType returns the name of the nearest type declaration around
// node, or "".
func EnclosingType(node *Node, src []byte) string {
	for p := node.Parent(); p != nil; p = p.Parent() {
		if IsTypeDecl(p.Kind()) {
			return FieldText(p, "name", src)
		}
	}
	return ""
}
