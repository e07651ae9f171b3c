package debug

import (
	"strings"
	"testing"
)

func TestNewTreeWriter(t *testing.T) {
	tw := NewTreeWriter()
	if tw == nil {
		t.Fatal("NewTreeWriter() returned nil")
	}
	if tw.String() != "" {
		t.Error("Expected empty string from new TreeWriter")
	}
}

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{name: "no depth", depth: 0, format: "div", want: "div\n"},
		{name: "depth 1", depth: 1, format: "p", want: "  p\n"},
		{name: "depth 2", depth: 2, format: "span", want: "    span\n"},
		{name: "with formatting", depth: 1, format: "<%s id=%q>", args: []any{"div", "main"}, want: "  <div id=\"main\">\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Text(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{name: "empty value", depth: 0, label: "text", value: "", want: "text: \n"},
		{name: "plain", depth: 1, label: "text", value: "Hello", want: "  text: \"Hello\"\n"},
		{name: "quotes", depth: 0, label: "text", value: `say "hi"`, want: "text: \"say \\\"hi\\\"\"\n"},
		{name: "newline", depth: 0, label: "text", value: "a\nb", want: "text: \"a\\nb\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Text(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Fields(t *testing.T) {
	tw := NewTreeWriter()
	tw.Fields(1,
		Field{Key: "color", Value: "#ff0000"},
		Field{Key: "font-size", Value: "12px"},
	)
	want := "  color:     #ff0000\n  font-size: 12px\n"
	if got := tw.String(); got != want {
		t.Errorf("Fields() = %q, want %q", got, want)
	}
}

func TestTreeWriter_WriteTo(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "root")
	tw.Line(1, "child")

	var sb strings.Builder
	n, err := tw.WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if int(n) != sb.Len() {
		t.Errorf("WriteTo() reported %d bytes, wrote %d", n, sb.Len())
	}
	if sb.String() != "root\n  child\n" {
		t.Errorf("WriteTo() wrote %q", sb.String())
	}
}
