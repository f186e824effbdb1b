package fileutil_test

// Notes:
// - WriteFileAtomic Close/Chmod failure branches are not tested because
//   triggering them is platform-specific.
// - SameFile on a case-insensitive filesystem is only checked when the
//   temp directory happens to be case-insensitive (macOS default).
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-imgassets/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Temp file + rename
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")

	err := fileutil.WriteFileAtomic(path, fileutil.FilePermissions, func(w io.Writer) error {
		_, err := io.WriteString(w, "new content")
		return err
	})
	if err != nil {
		t.Fatalf("WriteFileAtomic() unexpected error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading result: %v", err)
	}
	if string(got) != "new content" {
		t.Errorf("content = %q, want %q", got, "new content")
	}

	assertNoTempFiles(t, dir)
}

func TestWriteFileAtomic_ReplacesExisting(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	err := fileutil.WriteFileAtomic(path, fileutil.FilePermissions, func(w io.Writer) error {
		_, err := io.WriteString(w, "new")
		return err
	})
	if err != nil {
		t.Fatalf("WriteFileAtomic() unexpected error: %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}

func TestWriteFileAtomic_WriterErrorLeavesTargetUntouched(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")
	if err := os.WriteFile(path, []byte("original"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	writeErr := errors.New("encoder exploded")
	err := fileutil.WriteFileAtomic(path, fileutil.FilePermissions, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return writeErr
	})
	if !errors.Is(err, writeErr) {
		t.Fatalf("WriteFileAtomic() error = %v, want %v", err, writeErr)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "original" {
		t.Errorf("content = %q, want %q", got, "original")
	}
	assertNoTempFiles(t, dir)
}

func TestWriteFileAtomic_InvalidArgs(t *testing.T) {
	t.Parallel()

	noop := func(io.Writer) error { return nil }

	if err := fileutil.WriteFileAtomic("", 0o644, noop); !errors.Is(err, fileutil.ErrEmptyPath) {
		t.Errorf("empty path: error = %v, want %v", err, fileutil.ErrEmptyPath)
	}
	if err := fileutil.WriteFileAtomic("x.png", 0o644, nil); !errors.Is(err, fileutil.ErrNilWriter) {
		t.Errorf("nil writer: error = %v, want %v", err, fileutil.ErrNilWriter)
	}
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "icon.png")
	err := fileutil.WriteFileAtomic(path, 0o644, func(io.Writer) error { return nil })
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

// ---------------------------------------------------------------------------
// TestFileExists - Regular file detection
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", file, true},
		{"directory", dir, false},
		{"missing", filepath.Join(dir, "nope.png"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestSamePath / TestSameFile - Path and identity comparison
// ---------------------------------------------------------------------------

func TestSamePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "assets/images/a.png", "assets/images/a.png", true},
		{"dot segments", "assets/./images/../images/a.png", "assets/images/a.png", true},
		{"different name", "assets/images/a.png", "assets/images/b.png", false},
		{"case differs", "assets/images/A.png", "assets/images/a.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.SamePath(tt.a, tt.b); got != tt.want {
				t.Errorf("SamePath(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSameFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	if !fileutil.SameFile(a, a) {
		t.Error("SameFile(a, a) = false, want true")
	}
	if fileutil.SameFile(a, b) {
		t.Error("SameFile(a, b) = true, want false")
	}
	if fileutil.SameFile(a, filepath.Join(dir, "missing.png")) {
		t.Error("SameFile with missing file = true, want false")
	}

	upper := filepath.Join(dir, "A.png")
	if _, err := os.Stat(upper); err == nil {
		// Case-insensitive filesystem: both spellings name one file.
		if !fileutil.SameFile(a, upper) {
			t.Error("SameFile(a.png, A.png) = false on case-insensitive filesystem")
		}
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Name vs path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"imgassets", false},
		{"mobile-assets", false},
		{"./imgassets.yaml", true},
		{"/etc/imgassets.yaml", true},
		{`C:\config\imgassets.yaml`, true},
		{"sub/dir", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
