package main

import (
	"errors"
	"os"

	imgassets "github.com/alnah/go-imgassets"
	"github.com/alnah/go-imgassets/internal/config"
	"github.com/alnah/go-imgassets/internal/hints"
)

// Exit codes for imgassets CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run, including per-file failures without --strict
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Directory or file not found, permission denied
	ExitImage   = 4 // Image decode/encode errors
	ExitPartial = 5 // Some files failed and --strict was set
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Per-file failures under --strict (exit 5)
	if errors.Is(err, ErrPartial) {
		return ExitPartial
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, imgassets.ErrInvalidPrefix) ||
		errors.Is(err, imgassets.ErrInvalidCollisionPolicy) ||
		errors.Is(err, imgassets.ErrInvalidSize) ||
		errors.Is(err, imgassets.ErrInvalidColor) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, imgassets.ErrReadDir) ||
		errors.Is(err, imgassets.ErrSourceNotFound) ||
		errors.Is(err, imgassets.ErrOpen) ||
		errors.Is(err, imgassets.ErrWrite) ||
		errors.Is(err, imgassets.ErrRemove) {
		return ExitIO
	}

	// Image errors (exit 4)
	if errors.Is(err, imgassets.ErrDecode) ||
		errors.Is(err, imgassets.ErrEncode) {
		return ExitImage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for a per-file error, or "".
func hintFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, imgassets.ErrNameCollision):
		return hints.ForCollision()
	case errors.Is(err, imgassets.ErrSourceNotFound):
		return hints.ForSourceNotFound()
	case errors.Is(err, os.ErrPermission):
		return hints.ForPermission()
	case errors.Is(err, imgassets.ErrDecode):
		return hints.ForDecode()
	}
	return ""
}
