package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	imgassets "github.com/alnah/go-imgassets"
	"github.com/alnah/go-imgassets/internal/config"
	"github.com/alnah/go-imgassets/internal/hints"
)

// inspectRecord is the JSON form of one inspect result.
type inspectRecord struct {
	imgassets.InspectResult
	Error string `json:"error,omitempty"`
}

// runInspect lists every image in the directory with its size and mode.
func runInspect(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseInspectFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: inspect takes at most one directory, got %d arguments", ErrUsage, len(positional))
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeInspectFlags(flags, positional, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir := cfg.Images.Dir
	workers := resolvePoolSize(cfg.Inspect.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", workers)
	}
	if !flags.common.quiet && !flags.json {
		fmt.Fprintf(env.Stdout, "Checking images in %s\n", dir)
	}

	start := env.Now()
	results, err := imgassets.Inspect(ctx, dir, imgassets.InspectOptions{
		Workers: workers,
		Verify:  cfg.Inspect.Verify,
	})
	if err != nil {
		return dirError(dir, err)
	}

	var failed int
	if flags.json {
		if failed, err = printInspectJSON(results, env.Stdout); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
	} else {
		failed = printInspectResults(results, flags.common.quiet, env)
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "%d inspected, %d failed (%v)\n",
			len(results)-failed, failed, env.Now().Sub(start).Round(time.Millisecond))
	}

	return strictError(flags.common.strict, failed, len(results))
}

// mergeInspectFlags merges CLI flags into config. CLI values override config values.
func mergeInspectFlags(flags *inspectFlags, positional []string, cfg *config.Config) {
	if len(positional) == 1 {
		cfg.Images.Dir = positional[0]
	}
	if flags.workers > 0 {
		cfg.Inspect.Workers = flags.workers
	}
	if flags.verify {
		cfg.Inspect.Verify = true
	}
}

// printInspectResults writes one "name: (W, H) (MODE)" line per image.
// Failures go to stderr. Returns the number of failed files.
func printInspectResults(results []imgassets.InspectResult, quiet bool, env *Environment) int {
	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "Error reading %s: %v%s\n", r.Name, r.Err, hintFor(r.Err))
			continue
		}
		if quiet {
			continue
		}
		fmt.Fprintf(env.Stdout, "%s: (%d, %d) (%s)\n", r.Name, r.Width, r.Height, r.Mode)
	}
	return failed
}

// printInspectJSON writes results as an indented JSON array.
func printInspectJSON(results []imgassets.InspectResult, w io.Writer) (int, error) {
	var failed int
	records := make([]inspectRecord, len(results))
	for i, r := range results {
		records[i] = inspectRecord{InspectResult: r}
		if r.Err != nil {
			failed++
			records[i].Error = r.Err.Error()
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return failed, enc.Encode(records)
}

// dirError decorates a directory listing failure with a hint.
func dirError(dir string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w%s", err, hints.ForDirNotFound(dir))
	}
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w%s", err, hints.ForPermission())
	}
	return err
}
