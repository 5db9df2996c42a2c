package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// defaultConfigPath is tried when --config is not given.
const defaultConfigPath = "tabeval.yaml"

// Config is the CLI configuration. API keys fall back to environment
// variables so the file can be committed without secrets.
type Config struct {
	Judge JudgeConfig `yaml:"judge"`
	NLI   NLIConfig   `yaml:"nli"`
}

type JudgeConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	// Pacing is the minimum spacing between judge calls, e.g. "500ms"
	Pacing string `yaml:"pacing"`
	// Lanes bounds concurrent outstanding judge calls
	Lanes int `yaml:"lanes"`
	// CallTimeout bounds a single judge call, e.g. "60s"
	CallTimeout string `yaml:"call_timeout"`
}

// PacingDuration parses the pacing interval, zero when unset.
func (c JudgeConfig) PacingDuration() (time.Duration, error) {
	return parseDuration(c.Pacing)
}

// CallTimeoutDuration parses the per-call timeout, zero when unset.
func (c JudgeConfig) CallTimeoutDuration() (time.Duration, error) {
	return parseDuration(c.CallTimeout)
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return d, nil
}

type NLIConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if path == "" {
		path = defaultConfigPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// Missing default config is fine, env vars cover the keys.
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if cfg.Judge.APIKey == "" {
		cfg.Judge.APIKey = os.Getenv("PERPLEXITY_API_KEY")
	}
	if cfg.NLI.APIKey == "" {
		cfg.NLI.APIKey = os.Getenv("HF_API_TOKEN")
	}
	return cfg, nil
}
