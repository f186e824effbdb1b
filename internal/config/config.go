// Package config loads and validates the imgassets YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	imgassets "github.com/alnah/go-imgassets"
	"github.com/alnah/go-imgassets/internal/fileutil"
	"github.com/alnah/go-imgassets/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Limits for configuration values.
const (
	MaxPathLength   = 4096 // PATH_MAX on Linux
	MaxPrefixLength = 32
	MaxColorLength  = 20 // "transparent" or "#RRGGBBAA"
	MaxWorkers      = 64
)

// appDir is the directory under the user config dir searched for named configs.
const appDir = "go-imgassets"

// Config holds all configuration for the asset commands.
type Config struct {
	Images    ImagesConfig    `yaml:"images"`
	Inspect   InspectConfig   `yaml:"inspect"`
	Normalize NormalizeConfig `yaml:"normalize"`
	Pad       PadConfig       `yaml:"pad"`
}

// ImagesConfig locates the asset directory.
type ImagesConfig struct {
	Dir string `yaml:"dir"` // default: ./assets/images
}

// InspectConfig defines inspect options.
type InspectConfig struct {
	Workers int  `yaml:"workers"` // 0 = auto
	Verify  bool `yaml:"verify"`  // decode full pixel data
}

// NormalizeConfig defines rename options.
type NormalizeConfig struct {
	Prefix      string `yaml:"prefix"`      // default: img_
	OnCollision string `yaml:"onCollision"` // overwrite, skip, suffix
}

// PadConfig defines square padding options.
type PadConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Size   int    `yaml:"size"` // default: 1024
	Fill   string `yaml:"fill"` // "transparent" or hex
	Fit    bool   `yaml:"fit"`
}

// DefaultConfig returns the built-in configuration, matching the layout
// of a React Native / Expo project.
func DefaultConfig() *Config {
	return &Config{
		Images: ImagesConfig{Dir: imgassets.DefaultDir},
		Normalize: NormalizeConfig{
			Prefix:      imgassets.DefaultPrefix,
			OnCollision: string(imgassets.DefaultCollisionPolicy),
		},
		Pad: PadConfig{
			Input:  imgassets.DefaultPadIn,
			Output: imgassets.DefaultPadOut,
			Size:   imgassets.DefaultPadSize,
			Fill:   "transparent",
		},
	}
}

// Validate checks every field.
// Called automatically by LoadConfig; the CLI calls it again after
// environment and flag overrides are merged.
func (c *Config) Validate() error {
	paths := []struct{ name, value string }{
		{"images.dir", c.Images.Dir},
		{"pad.input", c.Pad.Input},
		{"pad.output", c.Pad.Output},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.name, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if c.Inspect.Workers < 0 || c.Inspect.Workers > MaxWorkers {
		return fmt.Errorf("%w: inspect.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Inspect.Workers)
	}

	if err := validateFieldLength("normalize.prefix", c.Normalize.Prefix, MaxPrefixLength); err != nil {
		return err
	}
	if c.Normalize.Prefix != "" {
		if err := imgassets.ValidatePrefix(c.Normalize.Prefix); err != nil {
			return fmt.Errorf("normalize.prefix: %w", err)
		}
	}
	if c.Normalize.OnCollision != "" {
		if err := imgassets.CollisionPolicy(strings.ToLower(c.Normalize.OnCollision)).Validate(); err != nil {
			return fmt.Errorf("normalize.onCollision: %w", err)
		}
	}

	if err := (imgassets.PadOptions{Size: c.Pad.Size}).Validate(); err != nil {
		return fmt.Errorf("pad.size: %w", err)
	}
	if err := validateFieldLength("pad.fill", c.Pad.Fill, MaxColorLength); err != nil {
		return err
	}
	if _, err := imgassets.ParseColor(c.Pad.Fill); err != nil {
		return fmt.Errorf("pad.fill: %w", err)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// NotFoundError reports the locations searched for a named config.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q (tried %s)", ErrConfigNotFound, e.Name, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched as NAME.yaml / NAME.yml in the current
// directory and then in the user config directory.
// Values absent from the file keep their DefaultConfig value.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	var tried []string

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		tried = append(tried, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", &NotFoundError{Name: name, Tried: tried}
}

// Marshal renders cfg as YAML, suitable for a starter config file.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Encode(c)
}
