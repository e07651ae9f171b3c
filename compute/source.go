package compute

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/h2non/filetype"
	"github.com/maruel/natural"
)

var xhtmlExts = []string{".xhtml", ".xht", ".xml"}

// readSource reads markup file rejecting anything recognizable as binary
// (images, archives, office documents and such).
func readSource(path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("input source was not found (%s): %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("input source is not a file (%s)", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read input source: %w", err)
	}
	if kind, _ := filetype.Match(data); kind != filetype.Unknown {
		return nil, fmt.Errorf("input was not recognized as markup (%s): looks like %s", path, kind.MIME.Value)
	}
	return data, nil
}

// isXHTML decides which markup parser to use based on file extension.
func isXHTML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range xhtmlExts {
		if ext == e {
			return true
		}
	}
	return false
}

// expandStylesheets replaces directories with *.css files they contain
// (not recursively) in natural order. Files keep order they were given in.
func expandStylesheets(paths []string) ([]string, error) {
	var res []string
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("style sheet was not found (%s): %w", p, err)
		}
		if !fi.IsDir() {
			res = append(res, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("unable to read style sheet directory: %w", err)
		}
		var names []string
		for _, e := range entries {
			if e.Type().IsRegular() && strings.EqualFold(filepath.Ext(e.Name()), ".css") {
				names = append(names, e.Name())
			}
		}
		sort.Sort(natural.StringSlice(names))
		for _, n := range names {
			res = append(res, filepath.Join(p, n))
		}
	}
	return res, nil
}
