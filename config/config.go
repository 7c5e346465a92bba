// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads settings for the rparse tool from TOML files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rsyntax/rsyntax/parser"
)

// Config is the complete configuration.
type Config struct {
	Parser ParserConfig `toml:"parser"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
	Batch  BatchConfig  `toml:"batch"`
}

// ParserConfig configures the parser proper.
type ParserConfig struct {
	// See [parser.Options.MaxDepth].
	MaxDepth int `toml:"max_depth"`
}

// OutputConfig configures how results are printed.
type OutputConfig struct {
	Format  string `toml:"format"` // text or yaml.
	Color   bool   `toml:"color"`
	Compact bool   `toml:"compact"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// BatchConfig configures parsing of many files.
type BatchConfig struct {
	// Zero means one per available CPU.
	Parallelism int `toml:"parallelism"`
}

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{MaxDepth: parser.DefaultMaxDepth},
		Output: OutputConfig{Format: FormatText},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads the TOML file at path on top of [Default].
//
// If the file does not exist, the returned error wraps [fs.ErrNotExist].
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is like [Load], but returns [Default] if path is empty or
// names a file that does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks that every setting has a meaningful value.
func (c *Config) Validate() error {
	var errs []error
	if c.Parser.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("parser.max_depth must not be negative, got %d", c.Parser.MaxDepth))
	}
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("output.format must be %q or %q, got %q", FormatText, FormatYAML, c.Output.Format))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Batch.Parallelism < 0 {
		errs = append(errs, fmt.Errorf("batch.parallelism must not be negative, got %d", c.Batch.Parallelism))
	}
	return errors.Join(errs...)
}

// ParserOptions returns the options to pass to the parser.
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{MaxDepth: c.Parser.MaxDepth}
}

// LogLevel returns the configured log level. An invalid level is treated as
// info.
func (c *Config) LogLevel() slog.Level {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
