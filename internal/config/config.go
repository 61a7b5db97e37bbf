package config

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBinary           = "docker"
	DefaultListen           = "127.0.0.1:3000"
	DefaultProxyDomain      = "localhost"
	DefaultLogTail          = 100
	DefaultStatsConcurrency = 4
	DefaultLogLevel         = "info"
	DefaultLogMaxSizeMB     = 10
)

// Config is the backend configuration, read from a YAML file.
type Config struct {
	Runtime RuntimeConfig `yaml:"runtime"`
	Server  ServerConfig  `yaml:"server"`
	Logs    LogsConfig    `yaml:"logs"`
	Stats   StatsConfig   `yaml:"stats"`
	Log     LogConfig     `yaml:"log"`
}

// RuntimeConfig describes how the container runtime CLI is invoked.
type RuntimeConfig struct {
	// Binary is looked up on PATH unless it is a path.
	Binary string `yaml:"binary"`
	// Env holds extra KEY=VALUE entries added to the CLI's environment.
	Env []string `yaml:"env"`
	// Timeout bounds every invocation. Zero waits forever.
	Timeout time.Duration `yaml:"timeout"`
}

type ServerConfig struct {
	Listen      string `yaml:"listen"`
	ProxyDomain string `yaml:"proxy_domain"`
}

type LogsConfig struct {
	DefaultTail uint32 `yaml:"default_tail"`
}

type StatsConfig struct {
	Concurrency int `yaml:"concurrency"`
}

type LogConfig struct {
	Level     string `yaml:"level"`
	File      string `yaml:"file"`
	MaxSizeMB int    `yaml:"max_size_mb"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	SetDefaults(cfg)
	return cfg
}

// Load reads a configuration YAML file. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes unmarshals YAML content, applies defaults and validates the result.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml config: %w", err)
	}

	SetDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// SetDefaults fills every zero field with its default.
func SetDefaults(cfg *Config) {
	if cfg.Runtime.Binary == "" {
		cfg.Runtime.Binary = DefaultBinary
	}
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = DefaultListen
	}
	if cfg.Server.ProxyDomain == "" {
		cfg.Server.ProxyDomain = DefaultProxyDomain
	}
	if cfg.Logs.DefaultTail == 0 {
		cfg.Logs.DefaultTail = DefaultLogTail
	}
	if cfg.Stats.Concurrency == 0 {
		cfg.Stats.Concurrency = DefaultStatsConcurrency
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = DefaultLogMaxSizeMB
	}
}

// Validate checks a defaulted configuration.
func Validate(cfg *Config) error {
	if cfg.Runtime.Timeout < 0 {
		return fmt.Errorf("runtime.timeout must not be negative, got %s", cfg.Runtime.Timeout)
	}
	if cfg.Stats.Concurrency < 1 {
		return fmt.Errorf("stats.concurrency must be at least 1, got %d", cfg.Stats.Concurrency)
	}
	if cfg.Log.MaxSizeMB < 0 {
		return fmt.Errorf("log.max_size_mb must not be negative, got %d", cfg.Log.MaxSizeMB)
	}
	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
