// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// ForMissingInput returns hints for an input path that is not a regular file.
func ForMissingInput(path string) string {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return format("input must be a file, not a directory")
	}

	if !filepath.IsAbs(path) {
		if wd, err := os.Getwd(); err == nil {
			return format("relative to " + wd)
		}
	}
	return ""
}

// ForInputTooLarge returns hints for inputs over the configured size cap.
func ForInputTooLarge() string {
	return format("raise input.maxSize in the config or set MD2HTML_MAX_INPUT_SIZE")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2html/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable, or set output.createDirs: true")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
