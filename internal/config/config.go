package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a file path, "stdout" or "stderr".
	Output string `mapstructure:"output"`
}

// GameConfig holds settings for a playthrough.
type GameConfig struct {
	// Seed for the ghost event generator. Zero means derive one from the clock.
	Seed uint64 `mapstructure:"seed"`
	// ContentPath overrides the embedded narrative content. Empty means embedded.
	ContentPath string `mapstructure:"content_path"`
}

// SimulateConfig holds settings for the autoplay harness.
type SimulateConfig struct {
	MaxTurns int    `mapstructure:"max_turns"`
	SaveDir  string `mapstructure:"save_dir"`
}

// GeminiConfig holds the credentials and model used by the autoplay harness.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// Config holds the application configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Game     GameConfig     `mapstructure:"game"`
	Simulate SimulateConfig `mapstructure:"simulate"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
}

// Validate checks all configuration invariants and reports every violation.
func (c Config) Validate() error {
	var errs []string

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", c.Logging.Format))
	}
	if c.Logging.Output == "" {
		errs = append(errs, "logging.output must not be empty")
	}
	if c.Simulate.MaxTurns < 1 {
		errs = append(errs, fmt.Sprintf("simulate.max_turns must be >= 1, got %d", c.Simulate.MaxTurns))
	}
	if c.Simulate.SaveDir == "" {
		errs = append(errs, "simulate.save_dir must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// RequireGemini checks the settings needed to talk to Gemini.
func (c Config) RequireGemini() error {
	if c.Gemini.APIKey == "" {
		return errors.New("GEMINI_API_KEY environment variable is not set")
	}
	if c.Gemini.Model == "" {
		return errors.New("gemini.model must not be empty")
	}
	return nil
}

// LoadConfig loads humanity.yaml from the working directory if present,
// applies HUMANITY_* environment overrides and validates the result.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("humanity")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance,
// filling in defaults and environment overrides.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix("HUMANITY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The API key keeps its conventional name.
	if err := v.BindEnv("gemini.api_key", "HUMANITY_GEMINI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("binding gemini api key: %w", err)
	}

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "humanity.log")

	v.SetDefault("game.seed", 0)
	v.SetDefault("game.content_path", "")

	v.SetDefault("simulate.max_turns", 40)
	v.SetDefault("simulate.save_dir", ".runs")

	v.SetDefault("gemini.model", "gemini-2.5-flash")
}
