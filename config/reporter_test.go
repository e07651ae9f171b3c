package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestReport_Archive(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	stored := filepath.Join(dir, "page.html")
	if err := os.WriteFile(stored, []byte("<p>x</p>"), 0644); err != nil {
		t.Fatal(err)
	}
	copied := filepath.Join(dir, "site.css")
	if err := os.WriteFile(copied, []byte("p { color: red; }"), 0644); err != nil {
		t.Fatal(err)
	}

	r.Store("source/page.html", stored)
	r.StoreData("styles.yaml", []byte("- path: p\n"))
	if err := r.StoreCopy("css/site.css", copied); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	// later changes must not affect the copy
	if err := os.WriteFile(copied, []byte("changed"), 0644); err != nil {
		t.Fatal(err)
	}
	r.Store("missing.log", filepath.Join(dir, "absent.log"))

	if r.Name() != conf.Destination {
		t.Errorf("Name() = %q, want %q", r.Name(), conf.Destination)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, conf.Destination)
	if files["source/page.html"] != "<p>x</p>" {
		t.Errorf("stored file = %q", files["source/page.html"])
	}
	if files["styles.yaml"] != "- path: p\n" {
		t.Errorf("stored data = %q", files["styles.yaml"])
	}
	if files["css/site.css"] != "p { color: red; }" {
		t.Errorf("copied file = %q", files["css/site.css"])
	}
	if _, ok := files["missing.log"]; ok {
		t.Error("absent file should not be archived")
	}
	manifest := files["MANIFEST"]
	for _, name := range []string{"source/page.html", "styles.yaml", "css/site.css", "missing.log", "<data>"} {
		if !strings.Contains(manifest, name) {
			t.Errorf("MANIFEST misses %q:\n%s", name, manifest)
		}
	}
}

func TestReport_StoreCopyVersionsNames(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.css")
	if err := os.WriteFile(src, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	r := &Report{entries: make(map[string]entry)}
	for range 2 {
		if err := r.StoreCopy("a.css", src); err != nil {
			t.Fatalf("StoreCopy() error = %v", err)
		}
	}
	if len(r.entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(r.entries))
	}
}

func TestReport_StoreCopyRejectsDirectory(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.StoreCopy("dir", t.TempDir()); err == nil {
		t.Error("expected error for directory")
	}
	if err := r.StoreCopy("none", filepath.Join(t.TempDir(), "none")); err == nil {
		t.Error("expected error for absent file")
	}
}

func TestReportClose_RemovesCopies(t *testing.T) {
	reportFile, err := os.CreateTemp(t.TempDir(), "test-report-*.zip")
	if err != nil {
		t.Fatalf("failed to create temp report file: %v", err)
	}
	r := &Report{entries: make(map[string]entry), file: reportFile}

	src := filepath.Join(t.TempDir(), "input.html")
	if err := os.WriteFile(src, []byte("<p/>"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.StoreCopy("input.html", src); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	copyDir := filepath.Dir(r.entries["input.html"].actual)

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := os.Stat(copyDir); !os.IsNotExist(err) {
		t.Errorf("copy directory %s should be removed", copyDir)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("original file should stay: %v", err)
	}
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close() on nil report returned error: %v", err)
	}
	r.Store("x", "y")
	r.StoreData("x", nil)
	if err := r.StoreCopy("x", "y"); err != nil {
		t.Errorf("StoreCopy() on nil report returned error: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name() on nil report = %q", r.Name())
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close() with nil file returned error: %v", err)
	}
}

func TestReport_StoreConflictPanics(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("a", "one")
	r.Store("a", "one")

	defer func() {
		if recover() == nil {
			t.Error("expected panic on conflicting Store")
		}
	}()
	r.Store("a", "two")
}

func TestEntryName(t *testing.T) {
	tests := []struct {
		section, file, want string
	}{
		{"source", "/tmp/My Page.HTML", "source/my-page.html"},
		{"css", "site.css", "css/site.css"},
		{"", "Résumé.xhtml", "resume.xhtml"},
		{"css", "/tmp/!!!.css", "css/unnamed.css"},
	}
	for _, tt := range tests {
		if got := EntryName(tt.section, tt.file); got != tt.want {
			t.Errorf("EntryName(%q, %q) = %q, want %q", tt.section, tt.file, got, tt.want)
		}
	}
}
