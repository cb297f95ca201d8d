// Package config loads the YAML configuration for the patterns command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/axiomhq/patterns"
	"github.com/axiomhq/patterns/internal/logging"
)

var (
	// ErrConfigNotFound indicates the configuration file was not found.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidFormat indicates the file could not be parsed.
	ErrInvalidFormat = errors.New("invalid configuration format")

	// ErrUnsupportedFormat indicates the file extension is not supported.
	ErrUnsupportedFormat = errors.New("unsupported configuration format")

	// ErrInvalidConfig indicates a value failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMissingEnvVar indicates a required environment variable is not set.
	ErrMissingEnvVar = errors.New("required environment variable not set")
)

// DefaultInput is the corpus read when neither flag nor file names one.
const DefaultInput = "words.txt"

// Config is the on-disk configuration.
type Config struct {
	// Input is the corpus path; "-" reads stdin.
	Input string `yaml:"input"`

	// Workers bounds parallelism. Zero selects GOMAXPROCS.
	Workers int `yaml:"workers"`

	// Strategy is the aggregation strategy (sequential or partitioned).
	Strategy string `yaml:"strategy"`

	// Domain is the accepted input alphabet (bytes, ascii or upper).
	Domain string `yaml:"domain"`

	Log logging.Config `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input:    DefaultInput,
		Strategy: patterns.Partitioned.String(),
		Domain:   patterns.DomainASCII.String(),
		Log:      logging.DefaultConfig(),
	}
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var problems []string
	if c.Input == "" {
		problems = append(problems, "input: must not be empty")
	}
	if c.Workers < 0 {
		problems = append(problems, fmt.Sprintf("workers: must not be negative, got %d", c.Workers))
	}
	if _, err := patterns.ParseStrategy(c.Strategy); err != nil {
		problems = append(problems, "strategy: "+err.Error())
	}
	if _, err := patterns.ParseDomain(c.Domain); err != nil {
		problems = append(problems, "domain: "+err.Error())
	}
	if !logging.ValidLevel(c.Log.Level) {
		problems = append(problems, fmt.Sprintf("log.level: unknown level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		problems = append(problems, fmt.Sprintf("log.format: unknown format %q", c.Log.Format))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// StrategyValue returns the parsed aggregation strategy.
func (c *Config) StrategyValue() patterns.Strategy {
	s, err := patterns.ParseStrategy(c.Strategy)
	if err != nil {
		return patterns.Partitioned
	}
	return s
}

// DomainValue returns the parsed input domain.
func (c *Config) DomainValue() patterns.Domain {
	d, err := patterns.ParseDomain(c.Domain)
	if err != nil {
		return patterns.DomainASCII
	}
	return d
}
