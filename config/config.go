// SPDX-License-Identifier: MIT

// Package config loads the JSON configuration of the economy command.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/lvlopt/economy"
)

const DefaultTicks = 100

type Config struct {
	LogLevel LogLevel       `json:"log_level"`
	Ticks    int            `json:"ticks"`
	Plot     string         `json:"plot"` // chart output path; empty disables plotting
	Economy  economy.Config `json:"economy"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: LogLevelInfo,
		Ticks:    DefaultTicks,
		Economy:  economy.DefaultConfig(),
	}
}

// ParseConfig parses raw JSON over Default, so omitted fields keep their defaults.
func ParseConfig(raw []byte) (config Config, err error) {
	config = Default()
	if err = json.Unmarshal(raw, &config); err != nil {
		return config, fmt.Errorf("unmarshal config: %w", err)
	}
	if err = config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return ParseConfig(raw)
}

// Validate checks the command settings and the economy parameters.
func (c Config) Validate() error {
	if c.Ticks < 0 {
		return fmt.Errorf("ticks %d: %w", c.Ticks, economy.ErrInvalidConfig)
	}

	return c.Economy.Validate()
}

// CreateSample writes the default configuration to path.
func CreateSample(path string) error {
	raw, err := json.MarshalIndent(Default(), "", "    ")
	if err != nil {
		return errors.Join(errors.New("could not marshal sample config"), err)
	}
	if err = os.WriteFile(path, raw, 0600); err != nil {
		return errors.Join(errors.New("could not write sample config file"), err)
	}

	return nil
}
