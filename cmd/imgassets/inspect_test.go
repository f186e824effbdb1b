package main

import (
	"encoding/json"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestRunInspect - Report format and exit codes
// ---------------------------------------------------------------------------

func TestRunInspect_ReportLines(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestPNG(t, dir, "icon.png", 48, 32, color.NRGBA{R: 10, A: 128})
	writeTestPNG(t, dir, "logo.PNG", 16, 8, color.NRGBA{G: 90, A: 255})
	writeTestFile(t, dir, "broken.jpg", "not a jpeg")
	writeTestFile(t, dir, "notes.txt", "ignored")

	code, stdout, stderr := runCLI(t, "inspect", dir)

	if code != ExitSuccess {
		t.Fatalf("exit = %d, want %d (per-file failures are not fatal)\nstderr: %s", code, ExitSuccess, stderr)
	}

	wantStdout := "Checking images in " + dir + "\n" +
		"icon.png: (48, 32) (RGBA)\n" +
		"logo.PNG: (16, 8) (RGB)\n"
	if diff := cmp.Diff(wantStdout, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(stderr, "Error reading broken.jpg:") {
		t.Errorf("stderr should report broken.jpg, got %q", stderr)
	}
	if strings.Contains(stdout+stderr, "notes.txt") {
		t.Error("non-image file should not be reported")
	}
}

func TestRunInspect_Strict(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestPNG(t, dir, "ok.png", 1, 1, color.NRGBA{A: 255})
	writeTestFile(t, dir, "bad.png", "garbage")

	code, _, stderr := runCLI(t, "inspect", "--strict", dir)
	if code != ExitPartial {
		t.Errorf("exit = %d, want %d\nstderr: %s", code, ExitPartial, stderr)
	}
}

func TestRunInspect_Quiet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestPNG(t, dir, "ok.png", 1, 1, color.NRGBA{A: 255})

	code, stdout, _ := runCLI(t, "inspect", "-q", dir)
	if code != ExitSuccess {
		t.Fatalf("exit = %d, want %d", code, ExitSuccess)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty in quiet mode", stdout)
	}
}

func TestRunInspect_Verbose(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestPNG(t, dir, "ok.png", 1, 1, color.NRGBA{A: 255})

	code, _, stderr := runCLI(t, "inspect", "-v", "-w", "2", dir)
	if code != ExitSuccess {
		t.Fatalf("exit = %d, want %d", code, ExitSuccess)
	}
	for _, want := range []string{"Pool size: 2", "1 inspected, 0 failed"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr should contain %q, got %q", want, stderr)
		}
	}
}

func TestRunInspect_JSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestPNG(t, dir, "a.png", 3, 5, color.NRGBA{A: 255})
	writeTestFile(t, dir, "b.png", "garbage")

	code, stdout, stderr := runCLI(t, "inspect", "--json", dir)
	if code != ExitSuccess {
		t.Fatalf("exit = %d, want %d\nstderr: %s", code, ExitSuccess, stderr)
	}

	var got []map[string]any
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("stdout is not a JSON array: %v\n%s", err, stdout)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}

	if got[0]["name"] != "a.png" || got[0]["width"] != float64(3) || got[0]["height"] != float64(5) || got[0]["mode"] != "RGB" {
		t.Errorf("record 0 = %v", got[0])
	}
	if _, hasErr := got[0]["error"]; hasErr {
		t.Errorf("record 0 should have no error field: %v", got[0])
	}
	if got[1]["name"] != "b.png" || got[1]["error"] == nil {
		t.Errorf("record 1 = %v, want an error field", got[1])
	}
}

func TestRunInspect_EmptyDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	code, stdout, _ := runCLI(t, "inspect", dir)
	if code != ExitSuccess {
		t.Fatalf("exit = %d, want %d", code, ExitSuccess)
	}
	if stdout != "Checking images in "+dir+"\n" {
		t.Errorf("stdout = %q, want header only", stdout)
	}
}
