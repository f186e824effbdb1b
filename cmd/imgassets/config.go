package main

import (
	"context"
	"fmt"
)

// runConfig prints the effective configuration as YAML: defaults, the
// config file, and environment overrides merged. The output is a valid
// starting point for an imgassets.yaml file.
func runConfig(_ context.Context, args []string, env *Environment) error {
	var f commonFlags
	fs := newFlagSet("config", env.Stderr, printConfigUsage)
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")

	if err := fs.Parse(args); err != nil {
		return usageError(err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: config takes no arguments, got %d", ErrUsage, fs.NArg())
	}

	cfg, err := loadConfig(f.config, env)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}
