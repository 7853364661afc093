package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhamidi/jspan/java/parser"
)

const sep = "-----------split-line-----------------"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// run executes jspan with args and a configuration file that does not exist.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootPrintsMethods(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "A.java", "class A {\nvoid a(){}\nvoid b(){}\n}\n")

	tests := []struct {
		name string
		args []string
	}{
		{"root", []string{path}},
		{"root ignores leading args", []string{"first", "second", path}},
		{"methods subcommand", []string{"methods", path}},
		{"double dash shields a subcommand name", []string{"--", "classes", path}},
	}

	want := sep + "\nvoid a(){}\n" + sep + "\nvoid b(){}\n"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if got != want {
				t.Errorf("got:\n%q\nwant:\n%q", got, want)
			}
		})
	}
}

func TestRootNoMethods(t *testing.T) {
	path := writeFile(t, t.TempDir(), "A.java", "class A {\n  int x;\n}\n")
	got, err := run(t, "", path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got != "" {
		t.Errorf("expected no output, got %q", got)
	}
}

func TestRootErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := run(t, "", filepath.Join(dir, "missing.java")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}

	bad := writeFile(t, dir, "Bad.java", "class Bad {\n  void m( {\n}\n")
	_, err := run(t, "", bad)
	var se *parser.SyntaxError
	if !errors.As(err, &se) {
		t.Errorf("invalid java: expected *parser.SyntaxError, got %v", err)
	}

	if _, err := run(t, "", "--lenient", bad); err != nil {
		t.Errorf("lenient: %v", err)
	}

	if _, err := run(t, ""); err == nil {
		t.Error("expected error without arguments")
	}
}

func TestMethodsFlags(t *testing.T) {
	path := writeFile(t, t.TempDir(), "A.java", "class A {\n  A() {\n  }\n  String m() {\n    return \"}\";\n  }\n}\n")

	got, err := run(t, "", "methods", "--brace-mode", "raw", path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := sep + "\n  String m() {\n    return \"}\";\n"; got != want {
		t.Errorf("raw:\n%q\nwant:\n%q", got, want)
	}

	got, err = run(t, "", "--constructors", "-f", "json", path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(got, `"kind": "constructor"`) || !strings.Contains(got, `"name": "m"`) {
		t.Errorf("json output missing methods:\n%s", got)
	}

	if _, err := run(t, "", "-f", "xml", path); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "A.java", "class A {\n  void m() {}\n}\n")
	cfg := writeFile(t, dir, "jspan.yaml", "extract:\n  separator: \"==\"\n")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfg, path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := "==\n  void m() {}\n"; out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestClassesAndCalls(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/Dog.java", `class Dog extends Animal implements Pet {
    Owner owner;
    void bark() {
        speak();
    }
}
`)
	writeFile(t, dir, "src/Animal.java", "class Animal {\n    void speak() {\n        breathe();\n    }\n}\n")

	got, err := run(t, "", "classes", "-o", "-", dir)
	if err != nil {
		t.Fatalf("classes: %v", err)
	}
	for _, want := range []string{
		"digraph ClassDiagram {",
		`  Dog [label="Dog"];`,
		`  Dog -> Animal [arrowhead="empty"];`,
		`  Dog -> Pet [arrowhead="empty,dashed"];`,
		`  Dog -> Owner [arrowhead="open"];`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("class diagram missing %q:\n%s", want, got)
		}
	}

	out := filepath.Join(dir, "classes.dot")
	got, err = run(t, "", "classes", "-o", out, dir)
	if err != nil {
		t.Fatalf("classes to file: %v", err)
	}
	if !strings.Contains(got, "Generated class diagram in "+out) {
		t.Errorf("unexpected output %q", got)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("diagram not written: %v", err)
	}

	got, err = run(t, "", "calls", dir)
	if err != nil {
		t.Fatalf("calls: %v", err)
	}
	want := "digraph G {\n    \"bark\" -> \"speak\";\n    \"speak\" -> \"breathe\";\n}\n"
	if got != want {
		t.Errorf("call graph:\n%q\nwant:\n%q", got, want)
	}
}

func TestPath(t *testing.T) {
	graph := writeFile(t, t.TempDir(), "g.dot", "digraph G {\n    \"a\" -> \"b\";\n    \"b\" -> \"c\";\n}\n")

	got, err := run(t, "", "path", graph, "a", "c")
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if got != "Path found: a -> b -> c\n" {
		t.Errorf("got %q", got)
	}

	got, err = run(t, "", "path", graph, "c", "a")
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if got != "No path found\n" {
		t.Errorf("got %q", got)
	}

	got, err = run(t, "a\nc\nquit\n", "path", graph)
	if err != nil {
		t.Fatalf("interactive path: %v", err)
	}
	for _, want := range []string{"Parsed edges:\na -> b\nb -> c\n", "From node: To node: Path found: a -> b -> c\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("interactive output missing %q:\n%s", want, got)
		}
	}

	if _, err := run(t, "", "path", graph, "a"); err == nil {
		t.Error("expected error for a single node name")
	}
}
