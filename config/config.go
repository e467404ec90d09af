// SPDX-License-Identifier: MIT
// Package: tabula/config
//
// config.go — YAML loading and validation of a generation run.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tabula/builder"
)

// ErrInvalidConfig indicates a configuration that cannot be read or violates
// a constraint.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config describes one generation run.
type Config struct {
	// Seed feeds builder.WithSeed.
	Seed int64 `yaml:"seed"`
	// Attempts bounds GenerateWithRetry.
	Attempts int `yaml:"attempts" validate:"min=1"`
	// Timeout bounds the whole run; zero means no deadline.
	Timeout time.Duration `yaml:"timeout" validate:"min=0"`
	// Graph is passed to the generator unchanged and checked by its own
	// Validate.
	Graph builder.Params `yaml:"graph" validate:"-"`
}

// Default returns the reference run: 5 to 9 vertices, a first vertex of
// degree 3 and the rest between 2 and 4.
func Default() Config {
	return Config{
		Seed:     1,
		Attempts: 10,
		Timeout:  5 * time.Second,
		Graph: builder.Params{
			MinVertices:        5,
			MaxVertices:        10,
			FirstVertexDegree:  3,
			MinDegreePerVertex: 2,
			MaxDegreePerVertex: 4,
		},
	}
}

var validate = validator.New()

// Validate checks the run knobs, then the generation parameters.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("%s: must satisfy %s=%s, got %v: %w", e.Namespace(), e.Tag(), e.Param(), e.Value(), ErrInvalidConfig)
		}
		return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	if err := c.Graph.Validate(); err != nil {
		return fmt.Errorf("graph: %w: %w", err, ErrInvalidConfig)
	}

	return nil
}

// Parse decodes data over Default and validates the result. Unknown keys are
// rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("Parse: %v: %w", err, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("Parse: %w", err)
	}

	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load: %v: %w", err, ErrInvalidConfig)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("Load %s: %w", path, err)
	}

	return cfg, nil
}
