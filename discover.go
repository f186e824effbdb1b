package imgassets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is the asset directory used when none is given.
const DefaultDir = "./assets/images"

// supportedExtensions lists the lowercase suffixes treated as images.
var supportedExtensions = []string{".png", ".jpg", ".jpeg"}

// IsSupported reports whether name has a PNG or JPEG suffix, ignoring case.
func IsSupported(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range supportedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// listImages returns the names of supported regular files directly inside
// dir, in lexical order. Subdirectories are never descended into.
func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsSupported(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// splitName splits a file name into stem and extension. Leading dots
// belong to the stem, so ".png" has stem ".png" and no extension.
func splitName(name string) (stem, ext string) {
	ext = filepath.Ext(strings.TrimLeft(name, "."))
	return strings.TrimSuffix(name, ext), ext
}
