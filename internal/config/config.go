// Package config loads the optional YAML config file for the web server.
// Flags passed on the command line take precedence over file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Server struct {
	Addr     string `yaml:"addr"`
	DataDir  string `yaml:"data_dir"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in server settings.
func Default() Server {
	return Server{
		Addr:     ":8080",
		DataDir:  "./data",
		LogLevel: "info",
	}
}

// Load reads a server config file, filling unset fields with defaults.
// An empty path returns the defaults without touching the filesystem.
func Load(path string) (Server, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	var file Server
	if err := yaml.Unmarshal(b, &file); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if file.Addr != "" {
		cfg.Addr = file.Addr
	}
	if file.DataDir != "" {
		cfg.DataDir = file.DataDir
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	return cfg, nil
}
