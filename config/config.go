// Package config defines the cenum tool configuration.
package config

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pablor21/cenum/logger"
)

//go:embed config.yml
var defaultConfigFile embed.FS

type Config struct {
	Scanning ScanningConfig   `json:"scanning" yaml:"scanning"`
	Output   OutputConfig     `json:"output" yaml:"output"`
	LogLevel *logger.LogLevel `json:"logLevel" yaml:"logLevel"`
}

type ScanningConfig struct {
	// Packages lists what to scan: import paths (including ./... style
	// patterns), directories, or file globs. Entries prefixed with "!"
	// exclude matches.
	Packages []string `json:"packages" yaml:"packages"`
}

type OutputConfig struct {
	// Suffix replaces the ".go" of the declaring file to form the output
	// path, e.g. "signals.go" -> "signals_cenum.go".
	Suffix string `json:"suffix" yaml:"suffix"`
	// Header is the first line of every generated file.
	Header string `json:"header" yaml:"header"`
	// DryRun renders everything but writes nothing.
	DryRun bool `json:"dry_run" yaml:"dry_run"`
}

func NewDefaultConfig() *Config {
	// parse default config from embedded file
	config, err := LoadConfigFromFS(defaultConfigFile, "config.yml")
	if err != nil {
		panic("failed to load default config: " + err.Error())
	}
	return config
}

// LoadConfigFromFile loads a YAML or JSON config file by extension.
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if filepath.Ext(path) == ".json" {
		return LoadConfigFromJSON(data)
	}
	return LoadConfigFromYAML(data)
}

func LoadConfigFromFS(fsys fs.FS, path string) (*Config, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	return LoadConfigFromYAML(data)
}

func LoadConfigFromYAML(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func LoadConfigFromJSON(data []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Level returns the configured log level, defaulting to LevelInfo.
func (c *Config) Level() logger.LogLevel {
	if c.LogLevel == nil {
		return logger.LevelInfo
	}
	return *c.LogLevel
}
