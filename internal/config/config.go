package config

import (
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/dilroop-us/poeckt-kv/core"
)

// Config holds all configuration for a poeckt instance.
type Config struct {
	Dir         string       `yaml:"dir"`
	LogFileName string       `yaml:"log_file"`
	Logger      LoggerConfig `yaml:"logger"`
}

// LoggerConfig selects the output format and verbosity of the process logger.
type LoggerConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns a baseline development config.
func Default() Config {
	return Config{
		Dir:         "./data",
		LogFileName: core.DefaultLogFileName,
		Logger:      LoggerConfig{Level: "info", JSON: false},
	}
}

// Load reads a YAML config from path. A missing file is not an error: the
// defaults are returned. Fields absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("config file not found, using default config", "path", path)
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
