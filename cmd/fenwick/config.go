package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config holds the settings that may come from a YAML file. Command-line
// flags take precedence over the file.
type Config struct {
	Values    string `yaml:"values"`
	File      string `yaml:"file"`
	Float     bool   `yaml:"float"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func defaultConfig() Config {
	return Config{LogLevel: "warn", LogFormat: "text"}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// mergeFile copies every setting of file whose flag was not given on the
// command line into cfg.
func (cfg *Config) mergeFile(cmd *cobra.Command, file Config) {
	flags := cmd.Flags()
	if !flags.Changed("values") {
		cfg.Values = file.Values
	}
	if !flags.Changed("file") {
		cfg.File = file.File
	}
	if !flags.Changed("float") {
		cfg.Float = file.Float
	}
	if !flags.Changed("log-level") {
		cfg.LogLevel = file.LogLevel
	}
	if !flags.Changed("log-format") {
		cfg.LogFormat = file.LogFormat
	}
}
