package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/commtree/config"
)

// TestDefault checks the documented defaults and that they validate once
// the required paths are filled in.
func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, "fast-multilevel", cfg.Algorithm)
	require.Equal(t, 3, cfg.MinVertices)
	require.Equal(t, 50, cfg.BinWidth)
	require.Equal(t, "edgelist", cfg.OutputFormat)

	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig, "paths missing")

	cfg.Input = "net.tsv"
	cfg.OutputDir = "out"
	require.NoError(t, cfg.Validate())
}

// TestValidate_FieldRules covers each constrained field.
func TestValidate_FieldRules(t *testing.T) {
	base := config.Default()
	base.Input = "net.tsv"
	base.OutputDir = "out"

	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"unknown algorithm", func(c *config.Config) { c.Algorithm = "girvan-newman" }},
		{"zero min vertices", func(c *config.Config) { c.MinVertices = 0 }},
		{"zero bin width", func(c *config.Config) { c.BinWidth = 0 }},
		{"unknown format", func(c *config.Config) { c.OutputFormat = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}

	spectral := base
	spectral.Algorithm = "spectral-leading-eigenvector"
	spectral.OutputFormat = "json"
	require.NoError(t, spectral.Validate())
}

// TestLoad checks the merge-over-defaults behavior of partial YAML.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	body := "input: net.tsv\noutput_dir: out\nbin_width: 10\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "net.tsv", cfg.Input)
	require.Equal(t, "out", cfg.OutputDir)
	require.Equal(t, 10, cfg.BinWidth)
	// Untouched fields keep their defaults.
	require.Equal(t, "fast-multilevel", cfg.Algorithm)
	require.Equal(t, 3, cfg.MinVertices)
	require.NoError(t, cfg.Validate())
}

// TestLoad_Errors covers the missing-file and bad-YAML paths.
func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := config.Load(filepath.Join(dir, "absent.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "absent.yaml")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("input: [unclosed\n"), 0o644))
	_, err = config.Load(bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse")
}
