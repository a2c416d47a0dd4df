// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlkit.yaml"

type DemoConfig struct {
	Size     int    `yaml:"size"`
	Rounds   int    `yaml:"rounds"`
	Seed     int64  `yaml:"seed"`
	Strategy string `yaml:"strategy"`
}

type StressConfig struct {
	Operations int   `yaml:"operations"`
	KeyRange   int   `yaml:"key_range"`
	Seed       int64 `yaml:"seed"`
}

type SessionConfig struct {
	CacheTTL           time.Duration `yaml:"cache_ttl"`
	BloomCapacity      uint          `yaml:"bloom_capacity"`
	BloomFalsePositive float64       `yaml:"bloom_false_positive"`
}

type Config struct {
	Demo    DemoConfig    `yaml:"demo"`
	Stress  StressConfig  `yaml:"stress"`
	Session SessionConfig `yaml:"session"`
}

var defaultConfig = Config{
	Demo: DemoConfig{
		Size:     10000,
		Rounds:   1000,
		Seed:     1,
		Strategy: "permutation",
	},
	Stress: StressConfig{
		Operations: 100000,
		KeyRange:   1000,
		Seed:       1,
	},
	Session: SessionConfig{
		CacheTTL:           5 * time.Minute,
		BloomCapacity:      100000,
		BloomFalsePositive: 0.01,
	},
}

// DefaultConfig returns a copy of the built-in settings
func DefaultConfig() *Config {
	config := defaultConfig
	return &config
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.avlkit.yaml, falling back to defaults when the file is
// missing or unreadable.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the YAML file at path on top of the defaults, so keys
// left out of the file keep their default values. A missing file yields the
// defaults; a malformed one yields the defaults and the parse error.
func LoadConfigFrom(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// validate rejects session settings the bloom filter and memo cannot be built
// from: the filter's size estimate degenerates for an empty capacity or a
// false-positive rate outside (0, 1).
func (c *Config) validate() error {
	var errs []error
	if c.Session.BloomCapacity == 0 {
		errs = append(errs, errors.New("session.bloom_capacity must be positive"))
	}
	if p := c.Session.BloomFalsePositive; !(p > 0 && p < 1) {
		errs = append(errs, fmt.Errorf("session.bloom_false_positive must be in (0, 1), got %g", p))
	}
	if c.Session.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("session.cache_ttl must not be negative, got %s", c.Session.CacheTTL))
	}
	return errors.Join(errs...)
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings(w io.Writer, configPath string) error {
	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "🔧 avlkit Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════\n\n")

	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", configPath)
	}

	fmt.Fprintf(w, "🌲 %sdemo%s\n", Green, Reset)
	fmt.Fprintf(w, "  • size: %d\n", config.Demo.Size)
	fmt.Fprintf(w, "  • rounds: %d\n", config.Demo.Rounds)
	fmt.Fprintf(w, "  • seed: %d\n", config.Demo.Seed)
	fmt.Fprintf(w, "  • strategy: %s\n\n", config.Demo.Strategy)

	fmt.Fprintf(w, "🔥 %sstress%s\n", Green, Reset)
	fmt.Fprintf(w, "  • operations: %d\n", config.Stress.Operations)
	fmt.Fprintf(w, "  • key_range: %d\n", config.Stress.KeyRange)
	fmt.Fprintf(w, "  • seed: %d\n\n", config.Stress.Seed)

	fmt.Fprintf(w, "💬 %ssession%s\n", Green, Reset)
	fmt.Fprintf(w, "  • cache_ttl: %s\n", config.Session.CacheTTL)
	fmt.Fprintf(w, "  • bloom_capacity: %d\n", config.Session.BloomCapacity)
	fmt.Fprintf(w, "  • bloom_false_positive: %g\n", config.Session.BloomFalsePositive)

	return nil
}
