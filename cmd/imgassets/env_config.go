package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/alnah/go-imgassets/internal/config"
	"github.com/alnah/go-imgassets/internal/hints"
)

// envPrefix marks environment variables read by imgassets.
const envPrefix = "IMGASSETS_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // IMGASSETS_CONFIG: config file name or path
	Dir        string // IMGASSETS_DIR: image directory
	Workers    int    // IMGASSETS_WORKERS: inspect workers
	PadSize    int    // IMGASSETS_PAD_SIZE: square side
	PadFill    string // IMGASSETS_PAD_FILL: canvas color
}

// knownEnvVars lists valid IMGASSETS_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"IMGASSETS_CONFIG":   true,
	"IMGASSETS_DIR":      true,
	"IMGASSETS_WORKERS":  true,
	"IMGASSETS_PAD_SIZE": true,
	"IMGASSETS_PAD_FILL": true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparseable or non-positive numbers are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("IMGASSETS_CONFIG"),
		Dir:        os.Getenv("IMGASSETS_DIR"),
		PadFill:    os.Getenv("IMGASSETS_PAD_FILL"),
	}

	if workers := os.Getenv("IMGASSETS_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	if size := os.Getenv("IMGASSETS_PAD_SIZE"); size != "" {
		if s, err := strconv.Atoi(size); err == nil && s > 0 {
			cfg.PadSize = s
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized IMGASSETS_* variables.
// Helps catch typos like IMGASSETS_WORKER instead of IMGASSETS_WORKERS.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; flags are merged afterwards,
// giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Dir != "" {
		cfg.Images.Dir = env.Dir
	}
	if env.Workers > 0 {
		cfg.Inspect.Workers = env.Workers
	}
	if env.PadSize > 0 {
		cfg.Pad.Size = env.PadSize
	}
	if env.PadFill != "" {
		cfg.Pad.Fill = env.PadFill
	}
}

// loadConfig builds the configuration for a command run: defaults, then
// the config file named by --config or IMGASSETS_CONFIG, then environment
// overrides. Each command merges its own flags on top and validates.
func loadConfig(flagConfig string, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			var notFound *config.NotFoundError
			if errors.As(err, &notFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(notFound.Tried))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}
