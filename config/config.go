// Package config loads and validates the YAML run configuration of the
// commtree CLI. Flags may override any field; Validate is the single
// gate both paths go through.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps all validation failures; the wrapping error
// names the offending fields.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is one decomposition run as described by a YAML document:
//
//	input: network.tsv
//	output_dir: ./out
//	algorithm: fast-multilevel
//	min_vertices: 3
//	bin_width: 50
//	output_format: edgelist
type Config struct {
	// Input is the delimited edge-list file to load.
	Input string `yaml:"input" validate:"required"`

	// OutputDir receives tree.json and the network/property dumps.
	OutputDir string `yaml:"output_dir" validate:"required"`

	// Algorithm selects the community-detection method.
	Algorithm string `yaml:"algorithm" validate:"oneof=fast-multilevel spectral-leading-eigenvector"`

	// MinVertices is the subgraph size at or below which recursion stops.
	MinVertices int `yaml:"min_vertices" validate:"min=1"`

	// BinWidth is the number of top-degree vertices traced as key regulators.
	BinWidth int `yaml:"bin_width" validate:"min=1"`

	// OutputFormat chooses the edge-list rendition: "edgelist" or "json".
	OutputFormat string `yaml:"output_format" validate:"oneof=edgelist json"`
}

// Default returns the documented defaults; Input and OutputDir must be
// filled in by the caller before Validate passes.
func Default() Config {
	return Config{
		Algorithm:    "fast-multilevel",
		MinVertices:  3,
		BinWidth:     50,
		OutputFormat: "edgelist",
	}
}

// Load reads a YAML config file and merges it over the defaults.
// The result is not validated; call Validate after applying overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the struct tags and wraps failures in ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
