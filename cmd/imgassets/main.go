package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrPartial            = errors.New("some files failed")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// commandFunc runs one subcommand with its arguments (command name excluded).
type commandFunc func(ctx context.Context, args []string, env *Environment) error

// commands maps subcommand names to their runners.
var commands = map[string]commandFunc{
	"inspect":   runInspect,
	"normalize": runNormalize,
	"pad":       runPad,
	"config":    runConfig,
}

func main() {
	env := DefaultEnv()

	// Configure GOMAXPROCS before any worker pool is sized.
	setMaxProcs(hasVerboseFlag(os.Args[1:]), env.Stderr)

	os.Exit(runMain(os.Args, env))
}

// setMaxProcs aligns GOMAXPROCS with the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(verbose bool, w io.Writer) {
	logf := func(string, ...interface{}) {}
	if verbose {
		logf = func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}
	}
	_, _ = maxprocs.Set(maxprocs.Logger(logf))
}

// hasVerboseFlag reports whether -v/--verbose appears before a "--".
func hasVerboseFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}
	return false
}

// isCommand reports whether name is a known command. Case sensitive.
func isCommand(name string) bool {
	if _, ok := commands[name]; ok {
		return true
	}
	return name == "version" || name == "help"
}

// runMain dispatches args (including the program name) and returns the
// process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	name, rest := args[1], args[2:]
	switch name {
	case "version":
		fmt.Fprintf(env.Stdout, "imgassets %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	}

	if !isCommand(name) {
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", name)
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := commands[name](ctx, rest, env); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// usageError wraps a flag or argument problem so it maps to ExitUsage.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

// strictError turns per-file failures into an error when strict is set.
func strictError(strict bool, failed, total int) error {
	if !strict || failed == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d", ErrPartial, failed, total)
}
