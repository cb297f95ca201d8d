package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axiomhq/patterns"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultInput, cfg.Input)
	assert.Zero(t, cfg.Workers)
	assert.Equal(t, patterns.Partitioned, cfg.StrategyValue())
	assert.Equal(t, patterns.DomainASCII, cfg.DomainValue())
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "patterns.yaml", `
input: corpus.txt.gz
workers: 4
strategy: sequential
domain: upper
log:
  level: debug
  format: json
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "corpus.txt.gz", cfg.Input)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, patterns.Sequential, cfg.StrategyValue())
	assert.Equal(t, patterns.DomainUpper, cfg.DomainValue())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, os.Stderr, cfg.Log.Output)
}

func TestLoadKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(strings.NewReader("workers: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, DefaultInput, cfg.Input)
	assert.Equal(t, "partitioned", cfg.Strategy)

	cfg, err = Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default().Input, cfg.Input)
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path func(t *testing.T) string
		want error
	}{
		{"missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }, ErrConfigNotFound},
		{"directory", func(t *testing.T) string {
			dir := filepath.Join(t.TempDir(), "cfg.yaml")
			require.NoError(t, os.Mkdir(dir, 0o700))
			return dir
		}, ErrInvalidFormat},
		{"extension", func(t *testing.T) string { return writeFile(t, "cfg.toml", "workers = 1") }, ErrUnsupportedFormat},
		{"syntax", func(t *testing.T) string { return writeFile(t, "cfg.yaml", "workers: [1") }, ErrInvalidFormat},
		{"unknown_field", func(t *testing.T) string { return writeFile(t, "cfg.yml", "wokers: 1\n") }, ErrInvalidFormat},
		{"invalid", func(t *testing.T) string { return writeFile(t, "cfg.yaml", "strategy: random\n") }, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := LoadFile(tt.path(t))
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Input = ""
	cfg.Workers = -1
	cfg.Strategy = "random"
	cfg.Domain = "unicode"
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	for _, field := range []string{"input:", "workers:", "strategy:", "domain:", "log.level:", "log.format:"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestEnvExpansion(t *testing.T) {
	t.Setenv("PATTERNS_TEST_INPUT", "from-env.txt")
	t.Setenv("PATTERNS_TEST_EMPTY", "")

	cfg, err := Load(strings.NewReader(`
input: ${PATTERNS_TEST_INPUT}
strategy: ${PATTERNS_TEST_EMPTY:-sequential}
`))
	require.NoError(t, err)
	assert.Equal(t, "from-env.txt", cfg.Input)
	assert.Equal(t, "sequential", cfg.Strategy)

	_, err = Load(strings.NewReader("input: ${PATTERNS_TEST_UNSET_VAR:?corpus path required}\n"))
	require.ErrorIs(t, err, ErrMissingEnvVar)
	assert.Contains(t, err.Error(), "corpus path required")
}
