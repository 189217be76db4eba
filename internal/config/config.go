// Package config provides unified configuration loading for snakewalk.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config contains all snakewalk configuration settings. Command-line
// flags override whatever is loaded here.
type Config struct {
	// Run contains the default experiment parameters.
	Run RunConfig `json:"run" yaml:"run"`

	// Store contains settings for run persistence.
	Store StoreConfig `json:"store" yaml:"store"`

	// Logging contains settings for operational and failure logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// RunConfig holds default experiment parameters shared by all modes.
type RunConfig struct {
	// CapFactor is the step-cap multiplier: cap = floor(CapFactor · A·B).
	CapFactor float64 `json:"cap_factor" yaml:"cap_factor"`

	// Workers is the sweep worker-pool size.
	Workers int `json:"workers" yaml:"workers"`

	// Samples is the number of boards drawn in sample mode.
	Samples int `json:"samples" yaml:"samples"`

	// Seed seeds the sample-mode board generator.
	Seed int64 `json:"seed" yaml:"seed"`

	// Ceiling bounds A·B for sweep and sample modes (exclusive).
	Ceiling int64 `json:"ceiling" yaml:"ceiling"`

	// ProbeBlocks is the number of blocks the channel probe inspects.
	ProbeBlocks int `json:"probe_blocks" yaml:"probe_blocks"`
}

// StoreConfig configures run/result persistence.
type StoreConfig struct {
	// Record enables writing runs and results to the SQLite store.
	Record bool `json:"record" yaml:"record"`

	// Dir is the directory holding runs.db. Defaults to ".snakewalk".
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// LoggingConfig configures snakewalk's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" enables failure logging to .snakewalk/failures.jsonl.
	// "trace" additionally logs every simulated board.
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with the standard experiment parameters.
func Default() *Config {
	return &Config{
		Run: RunConfig{
			CapFactor:   35.0,
			Workers:     defaultWorkers(),
			Samples:     5000,
			Seed:        42,
			Ceiling:     1_000_000,
			ProbeBlocks: 200,
		},
		Store: StoreConfig{
			Record: false,
			Dir:    ".snakewalk",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// defaultWorkers defaults to half the CPUs, floor 1.
func defaultWorkers() int {
	n := numCPU() / 2
	if n < 1 {
		n = 1
	}
	return n
}

// Load loads configuration from the default locations and environment
// variables. Order: defaults -> ~/.snakewalk/config.yaml -> environment.
func Load() (*Config, error) {
	config := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".snakewalk", "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Run.CapFactor <= 0 {
		return fmt.Errorf("cap_factor must be positive, got %f", c.Run.CapFactor)
	}

	if c.Run.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Run.Workers)
	}

	if c.Run.Samples < 1 {
		return fmt.Errorf("samples must be at least 1, got %d", c.Run.Samples)
	}

	if c.Run.Ceiling < 2 {
		return fmt.Errorf("ceiling must be at least 2, got %d", c.Run.Ceiling)
	}

	if c.Run.ProbeBlocks < 1 {
		return fmt.Errorf("probe_blocks must be at least 1, got %d", c.Run.ProbeBlocks)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("SNAKEWALK_CAP_FACTOR"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Run.CapFactor = f
		}
	}

	if v := os.Getenv("SNAKEWALK_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Run.Workers = n
		}
	}

	if v := os.Getenv("SNAKEWALK_SAMPLES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Run.Samples = n
		}
	}

	if v := os.Getenv("SNAKEWALK_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Run.Seed = n
		}
	}

	if v := os.Getenv("SNAKEWALK_CEILING"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Run.Ceiling = n
		}
	}

	if v := os.Getenv("SNAKEWALK_RECORD"); v != "" {
		config.Store.Record = v == "true" || v == "1"
	}

	if v := os.Getenv("SNAKEWALK_STORE_DIR"); v != "" {
		config.Store.Dir = v
	}

	if v := os.Getenv("SNAKEWALK_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}
