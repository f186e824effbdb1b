package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	imgassets "github.com/alnah/go-imgassets"
	"github.com/alnah/go-imgassets/internal/config"
	"github.com/alnah/go-imgassets/internal/hints"
)

// runNormalize renames and re-encodes every image in the directory.
func runNormalize(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseNormalizeFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: normalize takes at most one directory, got %d arguments", ErrUsage, len(positional))
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeNormalizeFlags(flags, positional, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := imgassets.NormalizeOptions{
		Prefix:      cfg.Normalize.Prefix,
		OnCollision: imgassets.CollisionPolicy(strings.ToLower(cfg.Normalize.OnCollision)),
		DryRun:      flags.dryRun,
	}

	dir := cfg.Images.Dir
	start := env.Now()
	results, err := imgassets.Normalize(ctx, dir, opts)
	if errors.Is(err, imgassets.ErrReadDir) && !flags.common.strict {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(env.Stderr, "Error: %s not found.%s\n", dir, hints.ForDirNotFound(dir))
		} else {
			fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err))
		}
		return nil
	}
	if err != nil {
		return dirError(dir, err)
	}

	failed := printNormalizeResults(results, opts, flags.common.quiet, env)

	if !flags.common.quiet {
		if len(results) > 1 {
			fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", len(results)-failed, failed)
		}
		if opts.DryRun {
			fmt.Fprintln(env.Stdout, "\nDry run: no files were changed.")
		} else {
			fmt.Fprintln(env.Stdout, "\nImage processing complete.")
		}
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Normalized %d file(s) in %v\n", len(results), env.Now().Sub(start).Round(time.Millisecond))
	}

	return strictError(flags.common.strict, failed, len(results))
}

// mergeNormalizeFlags merges CLI flags into config. CLI values override config values.
func mergeNormalizeFlags(flags *normalizeFlags, positional []string, cfg *config.Config) {
	if len(positional) == 1 {
		cfg.Images.Dir = positional[0]
	}
	if flags.prefix != "" {
		cfg.Normalize.Prefix = flags.prefix
	}
	if flags.onCollision != "" {
		cfg.Normalize.OnCollision = flags.onCollision
	}
}

// printNormalizeResults reports each planned rename, its outcome, and any
// collision warning. Returns the number of files that failed or were skipped.
func printNormalizeResults(results []imgassets.NormalizeResult, opts imgassets.NormalizeOptions, quiet bool, env *Environment) int {
	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
		}

		switch {
		case r.Skipped:
			fmt.Fprintf(env.Stderr, "SKIPPED %s: %v%s\n", r.Name, r.Err, hintFor(r.Err))
			continue
		case r.Target == "":
			fmt.Fprintf(env.Stderr, "  Failed to process %s: %v\n", r.Name, r.Err)
			continue
		}

		if !quiet {
			verb := "Processing"
			if opts.DryRun {
				verb = "Would process"
			}
			fmt.Fprintf(env.Stdout, "%s: %s -> %s\n", verb, r.Name, filepath.Base(r.Target))
		}
		if r.Collision && opts.OnCollision == imgassets.CollisionOverwrite {
			fmt.Fprintf(env.Stderr, "  warning: %s is the target of more than one file; the last one wins\n", filepath.Base(r.Target))
		}
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "  Failed to process %s: %v%s\n", r.Name, r.Err, hintFor(r.Err))
			continue
		}
		if r.Deleted && !quiet {
			fmt.Fprintf(env.Stdout, "  Deleted old file: %s\n", r.Name)
		}
	}
	return failed
}
