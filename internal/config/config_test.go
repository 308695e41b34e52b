// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swalign/smithwaterman"
)

// clearEnv unsets the SWALIGN_* variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfig, EnvPolicy, EnvMaxAlignments, EnvFormat} {
		t.Setenv(k, "") // registers restore on cleanup
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeTOML(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, "swalign.toml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	opts, err := cfg.AlignOptions()
	require.NoError(t, err)
	assert.Equal(t, smithwaterman.DefaultOptions(), opts)

	ro := cfg.RenderOptions()
	assert.Equal(t, '*', ro.Filler)
	assert.Equal(t, '-', ro.Gap)
	assert.False(t, ro.Color)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeTOML(t, t.TempDir(), `
[costs]
match = 3
mismatch = -3

[traceback]
policy = "first"
max_alignments = 10

[output]
format = "json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, CostsConfig{Match: 3, Mismatch: -3, Insertion: -1, Deletion: -1}, cfg.Costs)
	assert.Equal(t, "first", cfg.Traceback.Policy)
	assert.Equal(t, 10, cfg.Traceback.MaxAlignments)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, "*", cfg.Output.Filler)

	opts, err := cfg.AlignOptions()
	require.NoError(t, err)
	assert.Equal(t, smithwaterman.FirstDirection, opts.Policy)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeTOML(t, t.TempDir(), "[costs\nmatch=")
	_, err = Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero match":     func(c *Config) { c.Costs.Match = 0 },
		"positive gap":   func(c *Config) { c.Costs.Insertion = 1 },
		"unknown policy": func(c *Config) { c.Traceback.Policy = "best" },
		"negative cap":   func(c *Config) { c.Traceback.MaxAlignments = -2 },
		"unknown format": func(c *Config) { c.Output.Format = "xml" },
		"long filler":    func(c *Config) { c.Output.Filler = "**" },
		"empty gap":      func(c *Config) { c.Output.Gap = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPolicy, "first")
	t.Setenv(EnvMaxAlignments, "4")
	t.Setenv(EnvFormat, "yaml")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, "first", cfg.Traceback.Policy)
	assert.Equal(t, 4, cfg.Traceback.MaxAlignments)
	assert.Equal(t, FormatYAML, cfg.Output.Format)

	t.Setenv(EnvMaxAlignments, "many")
	assert.ErrorIs(t, Default().ApplyEnv(), ErrInvalid)
}

func TestLoadDefault_Explicit(t *testing.T) {
	clearEnv(t)
	path := writeTOML(t, t.TempDir(), "[output]\nmidline = true\n")

	cfg, used, err := LoadDefault(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.True(t, cfg.Output.Midline)

	_, _, err = LoadDefault(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDefault_EnvPathAndOverride(t *testing.T) {
	clearEnv(t)
	path := writeTOML(t, t.TempDir(), "[traceback]\npolicy = \"first\"\n")
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvPolicy, "all")

	cfg, used, err := LoadDefault("")
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "all", cfg.Traceback.Policy) // environment beats the file
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SWALIGN_POLICY=first\nSWALIGN_MAX_ALIGNMENTS=2\n"), 0o600))

	require.NoError(t, LoadEnv(envFile, filepath.Join(dir, "absent.env")))
	assert.Equal(t, "first", os.Getenv(EnvPolicy))
	assert.Equal(t, "2", os.Getenv(EnvMaxAlignments))
}
