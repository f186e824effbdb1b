package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	imgassets "github.com/alnah/go-imgassets"
	"github.com/alnah/go-imgassets/internal/config"
)

// squareSuffix is appended to the source stem when no destination is given.
const squareSuffix = "_square"

// runPad centers one image on a square canvas.
func runPad(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePadFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 2 {
		return fmt.Errorf("%w: pad takes at most a source and a destination, got %d arguments", ErrUsage, len(positional))
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergePadFlags(flags, positional, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	fill, err := imgassets.ParseColor(cfg.Pad.Fill)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	start := env.Now()
	result, err := imgassets.PadSquare(cfg.Pad.Input, cfg.Pad.Output, imgassets.PadOptions{
		Size: cfg.Pad.Size,
		Fill: fill,
		Fit:  cfg.Pad.Fit,
	})
	if err != nil {
		printPadError(env, cfg.Pad.Input, err)
		return strictError(flags.common.strict, 1, 1)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Original size: (%d, %d)\n", result.SourceSize.X, result.SourceSize.Y)
		if result.Scaled() {
			fmt.Fprintf(env.Stdout, "Scaled to: (%d, %d)\n", result.PastedSize.X, result.PastedSize.Y)
		}
		fmt.Fprintf(env.Stdout, "Saved square image to %s\n", result.Destination)
		fmt.Fprintf(env.Stdout, "New size: (%d, %d)\n", result.Size, result.Size)
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Offset: (%d, %d) (%v)\n",
			result.Offset.X, result.Offset.Y, env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// printPadError reports a failed pad run on stderr.
func printPadError(env *Environment, src string, err error) {
	if errors.Is(err, imgassets.ErrSourceNotFound) {
		fmt.Fprintf(env.Stderr, "Error: %s does not exist.%s\n", src, hintFor(err))
		return
	}
	fmt.Fprintf(env.Stderr, "Failed to resize image: %v%s\n", err, hintFor(err))
}

// mergePadFlags merges CLI flags into config. CLI values override config values.
// A lone source argument derives its destination as <stem>_square<ext>.
func mergePadFlags(flags *padFlags, positional []string, cfg *config.Config) {
	switch len(positional) {
	case 1:
		cfg.Pad.Input = positional[0]
		cfg.Pad.Output = squarePath(positional[0])
	case 2:
		cfg.Pad.Input = positional[0]
		cfg.Pad.Output = positional[1]
	}
	if flags.size > 0 {
		cfg.Pad.Size = flags.size
	}
	if flags.fill != "" {
		cfg.Pad.Fill = flags.fill
	}
	if flags.fit {
		cfg.Pad.Fit = true
	}
}

// squarePath returns src with "_square" inserted before its extension.
func squarePath(src string) string {
	ext := filepath.Ext(src)
	return strings.TrimSuffix(src, ext) + squareSuffix + ext
}
