package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	strict  bool
}

// inspectFlags holds all flags for the inspect command.
type inspectFlags struct {
	common  commonFlags
	workers int
	verify  bool
	json    bool
}

// normalizeFlags holds all flags for the normalize command.
type normalizeFlags struct {
	common      commonFlags
	prefix      string
	onCollision string
	dryRun      bool
}

// padFlags holds all flags for the pad command.
type padFlags struct {
	common commonFlags
	size   int
	fill   string
	fit    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and pool details")
	fs.BoolVar(&f.strict, "strict", false, "exit non-zero when any file fails")
}

// newFlagSet creates a FlagSet that writes usage to w instead of os.Stderr.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseInspectFlags parses inspect command flags and returns positional args.
func parseInspectFlags(args []string, w io.Writer) (*inspectFlags, []string, error) {
	f := &inspectFlags{}
	fs := newFlagSet("inspect", w, printInspectUsage)

	addCommonFlags(fs, &f.common)
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel file reads (0 = auto)")
	fs.BoolVar(&f.verify, "verify", false, "decode pixel data, not just headers")
	fs.BoolVar(&f.json, "json", false, "print results as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// parseNormalizeFlags parses normalize command flags and returns positional args.
func parseNormalizeFlags(args []string, w io.Writer) (*normalizeFlags, []string, error) {
	f := &normalizeFlags{}
	fs := newFlagSet("normalize", w, printNormalizeUsage)

	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.prefix, "prefix", "", "prefix for names not starting with a letter (default img_)")
	fs.StringVar(&f.onCollision, "on-collision", "", "collision policy: overwrite, skip, suffix")
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "show the plan without touching files")

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// parsePadFlags parses pad command flags and returns positional args.
func parsePadFlags(args []string, w io.Writer) (*padFlags, []string, error) {
	f := &padFlags{}
	fs := newFlagSet("pad", w, printPadUsage)

	addCommonFlags(fs, &f.common)
	fs.IntVarP(&f.size, "size", "s", 0, "square side in pixels (default 1024)")
	fs.StringVar(&f.fill, "fill", "", "canvas color: transparent or hex (#RGB, #RRGGBB, #RRGGBBAA)")
	fs.BoolVar(&f.fit, "fit", false, "scale down sources larger than the square")

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}
