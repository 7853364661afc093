package java

import (
	"reflect"
	"testing"

	"github.com/dhamidi/jspan/java/parser"
)

const zooSource = `package zoo;

import java.util.List;

public class Dog extends Animal implements Pet, java.io.Serializable {
    private Owner owner;
    private List<Toy> toys;
    private Bone[] bones;
    private int age;
    private java.util.Map<String, Owner> friends;

    static class Tag implements Comparable<Tag> {
        String label;
    }
}

interface Pet extends Named, Comparable<Pet> {
    Collar COLLAR = null;
}

enum Size implements Measurable {
    SMALL, LARGE;
    private Unit unit;
}

record Point(int x, int y) implements Shape {}
`

func TestClassModelsFromSource(t *testing.T) {
	classes, err := ClassModelsFromSource([]byte(zooSource), parser.WithFile("Zoo.java"))
	if err != nil {
		t.Fatalf("ClassModelsFromSource: %v", err)
	}

	tests := []struct {
		name       string
		kind       ClassKind
		extends    []string
		implements []string
		fields     []string
	}{
		{"Dog", ClassKindClass, []string{"Animal"}, []string{"Pet", "Serializable"}, []string{"Owner", "List", "Bone", "Map"}},
		{"Tag", ClassKindClass, nil, []string{"Comparable"}, []string{"String"}},
		{"Pet", ClassKindInterface, []string{"Named", "Comparable"}, nil, []string{"Collar"}},
		{"Size", ClassKindEnum, nil, []string{"Measurable"}, []string{"Unit"}},
		{"Point", ClassKindRecord, nil, []string{"Shape"}, nil},
	}

	if len(classes) != len(tests) {
		t.Fatalf("got %d classes, want %d", len(classes), len(tests))
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := classes[i]
			if c.Name != tt.name || c.Kind != tt.kind {
				t.Errorf("got %s %s, want %s %s", c.Kind, c.Name, tt.kind, tt.name)
			}
			if !reflect.DeepEqual(c.Extends, tt.extends) {
				t.Errorf("Extends = %v, want %v", c.Extends, tt.extends)
			}
			if !reflect.DeepEqual(c.Implements, tt.implements) {
				t.Errorf("Implements = %v, want %v", c.Implements, tt.implements)
			}
			if !reflect.DeepEqual(c.FieldTypes, tt.fields) {
				t.Errorf("FieldTypes = %v, want %v", c.FieldTypes, tt.fields)
			}
			if c.SourceFile != "Zoo.java" {
				t.Errorf("SourceFile = %q", c.SourceFile)
			}
		})
	}
}

func TestRelationships(t *testing.T) {
	classes := []*ClassModel{
		{Name: "B", Extends: []string{"A"}, FieldTypes: []string{"C", "C"}},
		{Name: "A", Implements: []string{"I"}},
		{Name: "B", Extends: []string{"A"}},
	}

	got := Relationships(classes)
	want := []Relationship{
		{From: "A", To: "I", Type: RelationImplements},
		{From: "B", To: "A", Type: RelationExtends},
		{From: "B", To: "C", Type: RelationAssociates},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Relationships =\n%v\nwant\n%v", got, want)
	}

	if names := ClassNames(classes); !reflect.DeepEqual(names, []string{"A", "B"}) {
		t.Errorf("ClassNames = %v", names)
	}
}

func TestCallsFromSource(t *testing.T) {
	src := `class Service {
    private final Helper helper = Helper.create();

    Service() {
        init();
    }

    void handle() {
        validate();
        helper.process(load());
        Runnable r = () -> log();
    }

    void validate() {
        check();
        check();
    }
}
`
	calls, err := CallsFromSource([]byte(src))
	if err != nil {
		t.Fatalf("CallsFromSource: %v", err)
	}

	type edge struct{ caller, callee string }
	var got []edge
	for _, c := range calls {
		got = append(got, edge{c.Caller, c.Callee})
	}
	want := []edge{
		{"Service", "init"},
		{"handle", "validate"},
		{"handle", "process"},
		{"handle", "load"},
		{"handle", "log"},
		{"validate", "check"},
		{"validate", "check"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("calls =\n%v\nwant\n%v", got, want)
	}
	if calls[0].Line != 5 {
		t.Errorf("first call line = %d, want 5", calls[0].Line)
	}
}
