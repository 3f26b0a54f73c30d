package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	root := NewRootCmd()

	want := map[string]bool{
		"extract":   false,
		"guess":     false,
		"languages": false,
		"serve":     false,
		"version":   false,
	}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestRootCommandExtract(t *testing.T) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader("// hello\n"))
	root.SetArgs([]string{"extract", "-l", "go"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "// hello" {
		t.Errorf("output = %q, want %q", got, "// hello")
	}
}

func TestRootCommandUnsupportedLanguageFails(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetIn(strings.NewReader("x"))
	root.SetArgs([]string{"extract", "-l", "cobol"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for unsupported language")
	}
}
