// Package config provides configuration management for the payoff studio.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Provider ProviderConfig `mapstructure:"provider"`
	Chart    ChartConfig    `mapstructure:"chart"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr            string `mapstructure:"addr"`
	ReadTimeoutSec  int    `mapstructure:"read_timeout_sec"`
	WriteTimeoutSec int    `mapstructure:"write_timeout_sec"`
}

// ProviderConfig holds quote provider configuration.
type ProviderConfig struct {
	Mode       string `mapstructure:"mode"` // "http", "static"
	BaseURL    string `mapstructure:"base_url"`
	TimeoutSec int    `mapstructure:"timeout_sec"`
}

// ChartConfig holds default chart dimensions.
type ChartConfig struct {
	Width   float64 `mapstructure:"width"`
	Height  float64 `mapstructure:"height"`
	Padding float64 `mapstructure:"padding"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/payoff-studio"
	}
	return filepath.Join(home, ".config", "payoff-studio")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory. A missing
// config file is not an error: defaults apply and a commented template
// is written for the user to edit.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config.toml: %w", err)
		}
		writeTemplate(configDir)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout_sec", 10)
	v.SetDefault("server.write_timeout_sec", 10)

	v.SetDefault("provider.mode", "static")
	v.SetDefault("provider.base_url", "")
	v.SetDefault("provider.timeout_sec", 10)

	v.SetDefault("chart.width", 640.0)
	v.SetDefault("chart.height", 360.0)
	v.SetDefault("chart.padding", 24.0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", false)
	v.SetDefault("logging.file_path", filepath.Join(DefaultConfigDir(), "logs", "payoff.log"))
	v.SetDefault("logging.max_size", 50)
	v.SetDefault("logging.max_backups", 5)
	v.SetDefault("logging.max_age", 30)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PAYOFF_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("PAYOFF_PROVIDER_URL"); v != "" {
		cfg.Provider.BaseURL = v
		cfg.Provider.Mode = "http"
	}
	if v := os.Getenv("PAYOFF_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Provider.Mode {
	case "http", "static":
	default:
		return fmt.Errorf("invalid provider mode: %s (must be 'http' or 'static')", c.Provider.Mode)
	}
	if c.Provider.Mode == "http" && c.Provider.BaseURL == "" {
		return fmt.Errorf("provider.base_url is required when provider.mode is 'http'")
	}

	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart dimensions must be positive")
	}
	if c.Chart.Padding < 0 || 2*c.Chart.Padding >= c.Chart.Width || 2*c.Chart.Padding >= c.Chart.Height {
		return fmt.Errorf("chart padding must fit inside the chart dimensions")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	return nil
}

const configTemplate = `# payoff-studio configuration

[server]
addr = ":8080"
read_timeout_sec = 10
write_timeout_sec = 10

[provider]
# "static" serves built-in fixture quotes; "http" proxies a JSON backend.
mode = "static"
base_url = ""
timeout_sec = 10

[chart]
width = 640.0
height = 360.0
padding = 24.0

[logging]
level = "info"
console = true
file = false
`

func writeTemplate(configDir string) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return
	}
	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return
	}
	_ = os.WriteFile(path, []byte(strings.TrimLeft(configTemplate, "\n")), 0644)
}
