package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for a run
type Config struct {
	InputPath   string `json:"input_path"`
	IntervalMs  int    `json:"interval_ms"`
	ClearScreen bool   `json:"clear_screen"`
	ShowStats   bool   `json:"show_stats"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		InputPath:   "input.txt",
		IntervalMs:  1000,
		ClearScreen: true,
		ShowStats:   true,
	}
}

// Interval is the delay between two generations
func (c Config) Interval() time.Duration {
	if c.IntervalMs <= 0 {
		return time.Duration(DefaultConfig().IntervalMs) * time.Millisecond
	}
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
