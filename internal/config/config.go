// SPDX-License-Identifier: MIT

// Package config loads swalign settings from a TOML file, a .env file and
// SWALIGN_* environment variables. Precedence, lowest first: built-in
// defaults, config file, environment, command-line flags (applied by the
// cli package).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/swalign/render"
	"github.com/katalvlaran/swalign/smithwaterman"
)

// Environment variables.
const (
	EnvConfig        = "SWALIGN_CONFIG"
	EnvPolicy        = "SWALIGN_POLICY"
	EnvMaxAlignments = "SWALIGN_MAX_ALIGNMENTS"
	EnvFormat        = "SWALIGN_FORMAT"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// CostsConfig is the linear cost table.
type CostsConfig struct {
	Match     int `toml:"match"`
	Mismatch  int `toml:"mismatch"`
	Insertion int `toml:"insertion"`
	Deletion  int `toml:"deletion"`
}

// TracebackConfig selects the tie policy and the alignment cap.
type TracebackConfig struct {
	Policy        string `toml:"policy"`
	MaxAlignments int    `toml:"max_alignments"`
}

// OutputConfig controls the report.
type OutputConfig struct {
	Format  string `toml:"format"`
	Filler  string `toml:"filler"`
	Gap     string `toml:"gap"`
	Color   bool   `toml:"color"`
	Midline bool   `toml:"midline"`
}

// Config is the root configuration structure.
type Config struct {
	Costs     CostsConfig     `toml:"costs"`
	Traceback TracebackConfig `toml:"traceback"`
	Output    OutputConfig    `toml:"output"`
}

// Default returns the built-in configuration: unit costs, all paths,
// no cap, plain text output with '*' filler and '-' gaps.
func Default() *Config {
	c := smithwaterman.DefaultCosts()
	return &Config{
		Costs: CostsConfig{
			Match:     c.Match,
			Mismatch:  c.Mismatch,
			Insertion: c.Insertion,
			Deletion:  c.Deletion,
		},
		Traceback: TracebackConfig{Policy: smithwaterman.AllPaths.String()},
		Output: OutputConfig{
			Format: FormatText,
			Filler: "*",
			Gap:    string(smithwaterman.DefaultGap),
		},
	}
}

// Load reads the TOML file at path over the defaults. Keys absent from
// the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadEnv loads KEY=VALUE pairs from the given .env files (default
// ".env") into the process environment without overriding variables
// that are already set. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	return nil
}

// LoadDefault resolves and loads the configuration file, then applies
// environment overrides. The file is, in order: explicit (when not empty,
// must exist), $SWALIGN_CONFIG, ./swalign.toml, and
// <user config dir>/swalign/config.toml. When none exists the defaults are
// used and the returned path is empty.
func LoadDefault(explicit string) (*Config, string, error) {
	path, err := resolve(explicit)
	if err != nil {
		return nil, "", err
	}

	cfg := Default()
	if path != "" {
		if cfg, err = Load(path); err != nil {
			return nil, "", err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, "", err
	}

	return cfg, path, nil
}

func resolve(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config: %w", err)
		}
		return explicit, nil
	}

	candidates := []string{os.Getenv(EnvConfig), "swalign.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "swalign", "config.toml"))
	}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", nil
}

// ApplyEnv overrides fields from SWALIGN_POLICY, SWALIGN_MAX_ALIGNMENTS and
// SWALIGN_FORMAT when set.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvPolicy); ok && v != "" {
		c.Traceback.Policy = v
	}
	if v, ok := os.LookupEnv(EnvMaxAlignments); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, EnvMaxAlignments, v)
		}
		c.Traceback.MaxAlignments = n
	}
	if v, ok := os.LookupEnv(EnvFormat); ok && v != "" {
		c.Output.Format = v
	}

	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if _, err := c.AlignOptions(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalid, c.Output.Format)
	}
	if utf8.RuneCountInString(c.Output.Filler) != 1 {
		return fmt.Errorf("%w: filler must be a single character, got %q", ErrInvalid, c.Output.Filler)
	}
	if utf8.RuneCountInString(c.Output.Gap) != 1 {
		return fmt.Errorf("%w: gap must be a single character, got %q", ErrInvalid, c.Output.Gap)
	}

	return nil
}

// AlignOptions converts the costs and traceback sections into validated
// aligner options.
func (c *Config) AlignOptions() (smithwaterman.Options, error) {
	policy, err := smithwaterman.ParsePolicy(c.Traceback.Policy)
	if err != nil {
		return smithwaterman.Options{}, err
	}
	opts := smithwaterman.Options{
		Costs: smithwaterman.Costs{
			Match:     c.Costs.Match,
			Mismatch:  c.Costs.Mismatch,
			Insertion: c.Costs.Insertion,
			Deletion:  c.Costs.Deletion,
		},
		Policy:        policy,
		MaxAlignments: c.Traceback.MaxAlignments,
	}
	if err := opts.Validate(); err != nil {
		return smithwaterman.Options{}, err
	}

	return opts, nil
}

// RenderOptions converts the output section. Call Validate first.
func (c *Config) RenderOptions() render.Options {
	filler, _ := utf8.DecodeRuneInString(c.Output.Filler)
	gap, _ := utf8.DecodeRuneInString(c.Output.Gap)

	return render.Options{
		Filler:  filler,
		Gap:     gap,
		Color:   c.Output.Color,
		Midline: c.Output.Midline,
	}
}
