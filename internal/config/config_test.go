package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "humanity.log",
		},
		Simulate: SimulateConfig{
			MaxTurns: 40,
			SaveDir:  ".runs",
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	cfg.Logging.Format = "xml"
	cfg.Simulate.MaxTurns = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "simulate.max_turns")
}

func TestRequireGemini(t *testing.T) {
	cfg := validConfig()
	assert.Error(t, cfg.RequireGemini())

	cfg.Gemini.APIKey = "key"
	assert.NoError(t, cfg.RequireGemini())

	cfg.Gemini.Model = ""
	assert.Error(t, cfg.RequireGemini())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "humanity.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
  output: stderr
game:
  seed: 42
simulate:
  max_turns: 12
`), 0644)
	require.NoError(t, err)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, uint64(42), cfg.Game.Seed)
	assert.Equal(t, 12, cfg.Simulate.MaxTurns)
	assert.Equal(t, ".runs", cfg.Simulate.SaveDir, "default applies")
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
}

func TestLoadFile_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "humanity.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: info\n"), 0644))

	t.Setenv("HUMANITY_LOGGING_LEVEL", "warn")
	t.Setenv("GEMINI_API_KEY", "secret")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "secret", cfg.Gemini.APIKey)
}

func TestLoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "humanity.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  format: xml\n"), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_MissingPath(t *testing.T) {
	_, err := LoadFile("/nonexistent/humanity.yaml")
	assert.Error(t, err)
}
