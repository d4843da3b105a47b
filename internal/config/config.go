package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration.
type Config struct {
	// Speech-to-text backend: "whisper" or "elevenlabs".
	Backend string `yaml:"backend"`

	// OpenAI-compatible API settings.
	BaseURL         string `yaml:"base_url"`
	TranscribeModel string `yaml:"transcribe_model"`
	ChatModel       string `yaml:"chat_model"`
	SpeechModel     string `yaml:"speech_model"`
	Voice           string `yaml:"voice"`

	// Target language when --target is not given.
	DefaultTargetLanguage string `yaml:"default_target_language"`

	// Chunked upload tuning.
	SplitDurationMin    int `yaml:"split_duration_min"`
	MaxConcurrentChunks int `yaml:"max_concurrent_chunks"`
	MaxRetries          int `yaml:"max_retries"`
	APIRateLimitPerMin  int `yaml:"api_rate_limit_per_min"`

	// Directory for temporary artifacts; empty means the system temp dir.
	TempDir string `yaml:"temp_dir"`

	// Resolved from the environment, never from the file.
	APIKey string `yaml:"-"`
}

// Default returns a Config with hardcoded defaults.
func Default() *Config {
	return &Config{
		Backend:               "whisper",
		TranscribeModel:       "whisper-1",
		ChatModel:             "gpt-4o-mini",
		SpeechModel:           "tts-1",
		Voice:                 "nova",
		DefaultTargetLanguage: "ur",
		SplitDurationMin:      90,
		MaxConcurrentChunks:   3,
		MaxRetries:            3,
		APIRateLimitPerMin:    30,
	}
}

// Load builds the effective configuration: defaults, overlaid with the YAML
// file at path when it exists, API key taken from OPENAI_API_KEY. A missing
// file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	return cfg, nil
}
