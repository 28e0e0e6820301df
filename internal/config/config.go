// Package config loads creducido settings from a TOML or YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Candidates are the file names Discover looks for, in order.
var Candidates = []string{"creducido.toml", "creducido.yaml", "creducido.yml"}

// Config holds the complete tool configuration.
type Config struct {
	Output OutputConfig `toml:"output" yaml:"output"`
	Log    LogConfig    `toml:"log" yaml:"log"`
	Check  CheckConfig  `toml:"check" yaml:"check"`
}

// OutputConfig controls how trees and diagnostics are printed.
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"` // text, yaml or json
	Color  string `toml:"color" yaml:"color"`   // auto, always or never
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`   // debug, info, warn or error
	Format string `toml:"format" yaml:"format"` // text or json
}

// CheckConfig configures multi-file checking.
type CheckConfig struct {
	Jobs int `toml:"jobs" yaml:"jobs"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: "text", Color: "auto"},
		Log:    LogConfig{Level: "info", Format: "text"},
		Check:  CheckConfig{Jobs: runtime.NumCPU()},
	}
}

// Load reads path on top of the defaults. The format follows the file
// extension: .yaml and .yml are YAML, anything else is TOML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parse config %s: unknown key %s", path, undecoded[0])
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Discover returns the first candidate file present in dir.
func Discover(dir string) (string, bool) {
	for _, name := range Candidates {
		p := filepath.Join(dir, name)
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p, true
		}
	}
	return "", false
}

// Normalize lower-cases the enumerated settings so later comparisons can
// be exact.
func (c *Config) Normalize() {
	for _, s := range []*string{&c.Output.Format, &c.Output.Color, &c.Log.Level, &c.Log.Format} {
		*s = strings.ToLower(strings.TrimSpace(*s))
	}
}

// Validate checks enumerated values and limits.
func (c *Config) Validate() error {
	if err := oneOf("output.format", c.Output.Format, "text", "tree", "yaml", "yml", "json"); err != nil {
		return err
	}
	if err := oneOf("output.color", c.Output.Color, "auto", "always", "never"); err != nil {
		return err
	}
	if err := oneOf("log.level", c.Log.Level, "debug", "info", "warn", "error"); err != nil {
		return err
	}
	if err := oneOf("log.format", c.Log.Format, "text", "json"); err != nil {
		return err
	}
	if c.Check.Jobs < 1 {
		return fmt.Errorf("check.jobs must be at least 1, got %d", c.Check.Jobs)
	}
	return nil
}

func oneOf(key, v string, allowed ...string) error {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return nil
		}
	}
	return fmt.Errorf("%s: invalid value %q (want one of %s)", key, v, strings.Join(allowed, ", "))
}
