// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForDirNotFound returns hints for a missing asset directory.
func ForDirNotFound(dir string) string {
	return format("pass the asset directory as an argument, or set images.dir / IMGASSETS_DIR (looked in " + dir + ")")
}

// ForDecode returns hints for files that could not be decoded.
func ForDecode() string {
	return format("only PNG and JPEG are supported; the extension may not match the content")
}

// ForPermission returns hints for permission errors on write or delete.
func ForPermission() string {
	return format("check the directory is writable by the current user")
}

// ForCollision returns hints for skipped name collisions.
func ForCollision() string {
	return format("rename one of the files, or use --on-collision=suffix")
}

// ForSourceNotFound returns hints for a missing pad source.
func ForSourceNotFound() string {
	return format("pass the source image as the first argument, or set pad.input in the config")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-imgassets/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-imgassets") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

const prefix = "\n  hint: "

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return prefix + hint
}
