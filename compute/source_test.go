package compute

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestIsXHTML(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"page.html", false},
		{"page.htm", false},
		{"page.xhtml", true},
		{"PAGE.XHTML", true},
		{"page.xht", true},
		{"data/page.xml", true},
		{"page", false},
	}
	for _, tt := range tests {
		if got := isXHTML(tt.path); got != tt.want {
			t.Errorf("isXHTML(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()

	t.Run("markup", func(t *testing.T) {
		path := writeFile(t, dir, "a.html", "<p>x</p>")
		data, err := readSource(path)
		if err != nil {
			t.Fatalf("readSource() error = %v", err)
		}
		if string(data) != "<p>x</p>" {
			t.Errorf("readSource() = %q", data)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, dir, "empty.html", "")
		if _, err := readSource(path); err != nil {
			t.Errorf("empty input should be accepted, got %v", err)
		}
	})

	t.Run("zip archive", func(t *testing.T) {
		path := writeFile(t, dir, "a.zip.html", "PK\x03\x04\x14\x00\x00\x00\x08\x00")
		if _, err := readSource(path); err == nil {
			t.Error("expected error for zip archive")
		}
	})
}

func TestExpandStylesheets(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "css")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"item10.css", "item2.css", "item1.CSS", "readme.md"} {
		writeFile(t, sub, name, "")
	}
	if err := os.Mkdir(filepath.Join(sub, "nested.css"), 0755); err != nil {
		t.Fatal(err)
	}
	single := writeFile(t, dir, "z.css", "")

	got, err := expandStylesheets([]string{single, sub})
	if err != nil {
		t.Fatalf("expandStylesheets() error = %v", err)
	}
	want := []string{
		single,
		filepath.Join(sub, "item1.CSS"),
		filepath.Join(sub, "item2.css"),
		filepath.Join(sub, "item10.css"),
	}
	if !slices.Equal(got, want) {
		t.Errorf("expandStylesheets() = %v, want %v", got, want)
	}

	if _, err := expandStylesheets([]string{filepath.Join(dir, "missing")}); err == nil {
		t.Error("expected error for missing path")
	}
}
