// Package java models the declarations jspan reports on: types with their
// relationships, and method call sites.
package java

import (
	"sort"
)

type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
	ClassKindRecord     ClassKind = "record"
)

// ClassModel is a type declaration. Type names are simple names: generic
// arguments are dropped and qualified names keep their last segment.
type ClassModel struct {
	Name       string
	Kind       ClassKind
	SourceFile string
	StartLine  int
	EndLine    int
	Extends    []string
	Implements []string
	FieldTypes []string
}

type RelationType string

const (
	RelationExtends    RelationType = "extends"
	RelationImplements RelationType = "implements"
	RelationAssociates RelationType = "associates"
)

type Relationship struct {
	From string
	To   string
	Type RelationType
}

// Relationships returns the deduplicated relationships of classes, sorted
// by source, target and type.
func Relationships(classes []*ClassModel) []Relationship {
	seen := make(map[Relationship]bool)
	var rels []Relationship
	add := func(r Relationship) {
		if r.To == "" || seen[r] {
			return
		}
		seen[r] = true
		rels = append(rels, r)
	}

	for _, c := range classes {
		for _, t := range c.Extends {
			add(Relationship{From: c.Name, To: t, Type: RelationExtends})
		}
		for _, t := range c.Implements {
			add(Relationship{From: c.Name, To: t, Type: RelationImplements})
		}
		for _, t := range c.FieldTypes {
			add(Relationship{From: c.Name, To: t, Type: RelationAssociates})
		}
	}

	sort.Slice(rels, func(i, j int) bool {
		a, b := rels[i], rels[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.To != b.To {
			return a.To < b.To
		}
		return a.Type < b.Type
	})
	return rels
}

// ClassNames returns the sorted, deduplicated names of classes.
func ClassNames(classes []*ClassModel) []string {
	seen := make(map[string]bool)
	var names []string
	for _, c := range classes {
		if c.Name == "" || seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}

// Call is one method invocation inside a method or constructor body.
type Call struct {
	Caller     string
	Callee     string
	SourceFile string
	Line       int
}
