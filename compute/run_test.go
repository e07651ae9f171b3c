package compute

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"

	"github.com/ny-haritina10/pdf-generator/config"
)

func newStylesCommand() *cli.Command {
	return &cli.Command{
		Name:   "styles",
		Flags:  Flags(),
		Action: Run,
	}
}

func TestRun_WithFlags(t *testing.T) {
	ctx, env := setupTestEnv(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "page.txt", `<?xml version="1.0"?><body><p class="x">x</p></body>`)
	sheet := writeFile(t, dir, "site.css", `.x { color: blue; }`)
	dst := filepath.Join(dir, "out.txt")

	args := []string{"styles", "--css", sheet, "--format", "tree", "--xhtml", src, dst}
	if err := newStylesCommand().Run(ctx, args); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !env.ForceXHTML || env.OutputFormat() != config.OutputFormatTree {
		t.Errorf("flags were not transferred to environment: xhtml=%v format=%v", env.ForceXHTML, env.OutputFormat())
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("unable to read output: %v", err)
	}
	if !strings.Contains(string(data), "<p.x>") || !strings.Contains(string(data), "#0000ff") {
		t.Errorf("unexpected output:\n%s", data)
	}
}

func TestRun_UnknownFormatFallsBack(t *testing.T) {
	ctx, env := setupTestEnv(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "page.html", `<p>x</p>`)
	dst := filepath.Join(dir, "out.yaml")

	if err := newStylesCommand().Run(ctx, []string{"styles", "--format", "json", src, dst}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if env.Format != nil {
		t.Errorf("unknown format must be ignored, got %v", *env.Format)
	}
	if len(readRecords(t, dst)) != 1 {
		t.Error("expected YAML output")
	}
}

func TestRun_Charset(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "page.html", "<p>\xcf\xf0\xe8\xe2\xe5\xf2</p>")
	dst := filepath.Join(dir, "out.yaml")

	if err := newStylesCommand().Run(ctx, []string{"styles", "--charset", "windows-1251", src, dst}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := findRecord(t, readRecords(t, dst), "p").Text; got != "Привет" {
		t.Errorf("text = %q, want Привет", got)
	}
}

func TestRun_UnknownCharsetIgnored(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "page.html", "<p>plain</p>")
	dst := filepath.Join(dir, "out.yaml")

	if err := newStylesCommand().Run(ctx, []string{"styles", "--charset", "no-such-charset", src, dst}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := findRecord(t, readRecords(t, dst), "p").Text; got != "plain" {
		t.Errorf("text = %q, want plain", got)
	}
}

func TestRun_NoSource(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	err := newStylesCommand().Run(ctx, []string{"styles"})
	if err == nil || !strings.Contains(err.Error(), "no input source") {
		t.Errorf("expected missing source error, got %v", err)
	}
}
