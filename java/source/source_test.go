package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single without newline", "class A {}", []string{"class A {}"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank line kept", "a\n\nb", []string{"a", "", "b"}},
		{"crlf kept in line", "a\r\nb\r\n", []string{"a\r", "b\r"}},
		{"only newline", "\n", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New("x.java", []byte(tt.input)).Lines
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %q, want %d %q", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d: got %q, want %q", i+1, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	input := "class A {\r\n  void m() {\r\n  }\r\n}\r\n"
	f := New("A.java", []byte(input))
	got := strings.Join(f.Lines, "\n") + "\n"
	if got != input {
		t.Errorf("round trip: got %q, want %q", got, input)
	}
}

func TestSlice(t *testing.T) {
	f := New("A.java", []byte("1\n2\n3\n4\n"))

	tests := []struct {
		start, end int
		want       string
	}{
		{1, 1, "1"},
		{2, 3, "2,3"},
		{3, 10, "3,4"},
		{0, 2, "1,2"},
		{4, 2, ""},
	}
	for _, tt := range tests {
		got := strings.Join(f.Slice(tt.start, tt.end), ",")
		if got != tt.want {
			t.Errorf("Slice(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}

	if f.Line(0) != "" || f.Line(5) != "" {
		t.Error("Line outside range should be empty")
	}
	if f.Line(2) != "2" {
		t.Errorf("Line(2) = %q", f.Line(2))
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "A.java")
	if err := os.WriteFile(path, []byte("class A {}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Len() != 1 || f.Path != path {
		t.Errorf("got %d lines from %s", f.Len(), f.Path)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.java")); err == nil {
		t.Error("expected error for missing file")
	}
}
