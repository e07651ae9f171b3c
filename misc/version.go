// Package misc keeps build-time program identification.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// Set by the linker: -X github.com/ny-haritina10/pdf-generator/misc.version=...
var (
	version = "dev"
	githash = "unknown"
	appname = ""
)

// GetAppName returns program name without extension.
func GetAppName() string {
	if len(appname) > 0 {
		return appname
	}
	return strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return githash
}
