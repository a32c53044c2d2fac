// Package config loads the optional YAML configuration of the CLI.
package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSuffix is appended to the input name to form the output path.
const DefaultSuffix = ".fixed"

// DefaultFileName is looked up in the home directory when no path is given.
const DefaultFileName = ".recoversave.yaml"

// LogConfig configures the log sink.
type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
}

// Config is the CLI configuration.
type Config struct {
	OutputSuffix string    `yaml:"outputSuffix"`
	Overwrite    bool      `yaml:"overwrite"`
	Logs         LogConfig `yaml:"logs"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	c.OutputSuffix = strings.TrimSpace(c.OutputSuffix)
	if c.OutputSuffix == "" {
		c.OutputSuffix = DefaultSuffix
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Logs.MaxSizeMB <= 0 {
		c.Logs.MaxSizeMB = 10
	}
	if c.Logs.MaxBackups <= 0 {
		c.Logs.MaxBackups = 3
	}
	if c.Logs.MaxAgeDays <= 0 {
		c.Logs.MaxAgeDays = 30
	}
}

// Load decodes the YAML file at path. Relative log paths are resolved
// against the file's directory.
func Load(path string) (Config, error) {
	var cfg Config
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, err
	}

	if p := strings.TrimSpace(cfg.Logs.File); p != "" && !filepath.IsAbs(p) {
		cfg.Logs.File = filepath.Clean(filepath.Join(filepath.Dir(path), p))
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadDefault loads path when set. With an empty path it tries
// $HOME/.recoversave.yaml and falls back to Default when that is absent.
func LoadDefault(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(filepath.Join(home, DefaultFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}
