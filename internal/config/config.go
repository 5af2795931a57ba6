// Package config loads pacaro settings from defaults, an optional
// config.yaml and PACARO_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the full pacaro configuration
type Config struct {
	API  APIConfig  `mapstructure:"api"`
	Log  LogConfig  `mapstructure:"log"`
	UI   UIConfig   `mapstructure:"ui"`
	Mock MockConfig `mapstructure:"mock"`
}

// APIConfig contains the remote task API settings
type APIConfig struct {
	BaseURL string `mapstructure:"baseURL"`
	UserID  string `mapstructure:"userID"`
	Timeout int    `mapstructure:"timeout"` // in seconds
}

// LogConfig contains log file settings
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
	File   string `mapstructure:"file"`
}

// UIConfig contains board display settings
type UIConfig struct {
	ToastSeconds int  `mapstructure:"toastSeconds"`
	Mouse        bool `mapstructure:"mouse"`
	Compact      bool `mapstructure:"compact"` // start in the single-list view
}

// MockConfig contains settings for the in-memory mock API
type MockConfig struct {
	Addr string `mapstructure:"addr"`
}

const (
	DefaultBaseURL = "https://pacaro-tarefas.netlify.app/api"
	DefaultUserID  = "mateus-frantz-schmidt"
	envPrefix      = "PACARO"
	configDirName  = ".pacaro"
)

// TimeoutDuration returns the per-request timeout
func (a APIConfig) TimeoutDuration() time.Duration {
	return time.Duration(a.Timeout) * time.Second
}

// ToastDuration returns how long a notification stays on screen
func (u UIConfig) ToastDuration() time.Duration {
	return time.Duration(u.ToastSeconds) * time.Second
}

// Dir returns the per-user config directory (~/.pacaro)
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(home, configDirName)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.baseURL", DefaultBaseURL)
	v.SetDefault("api.userID", DefaultUserID)
	v.SetDefault("api.timeout", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", filepath.Join(Dir(), "pacaro.log"))

	v.SetDefault("ui.toastSeconds", 3)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.compact", false)

	v.SetDefault("mock.addr", ":8787")
}

// DefaultConfig returns a Config with only the built-in defaults applied
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Load loads configuration searching the working directory and ~/.pacaro
func Load() (*Config, error) {
	return LoadWithPath("")
}

// LoadWithPath loads configuration with priority:
// 1. PACARO_* environment variables
// 2. config.yaml (explicit file, or found in ., ~/.pacaro)
// 3. Defaults
func LoadWithPath(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" && filepath.Ext(configPath) != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if configPath != "" {
			v.AddConfigPath(configPath)
		}
		v.AddConfigPath(".")
		v.AddConfigPath(Dir())
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.Log.File = expandHome(cfg.Log.File)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the settings that would otherwise fail on first use
func Validate(cfg *Config) error {
	var errs []string

	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		errs = append(errs, "api.baseURL is required")
	}
	if strings.TrimSpace(cfg.API.UserID) == "" {
		errs = append(errs, "api.userID is required")
	}
	if cfg.API.Timeout <= 0 {
		errs = append(errs, "api.timeout must be positive")
	}
	if cfg.UI.ToastSeconds <= 0 {
		errs = append(errs, "ui.toastSeconds must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(cfg.Log.Level)] {
		errs = append(errs, "log.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "console": true, "text": true}
	if !validFormats[strings.ToLower(cfg.Log.Format)] {
		errs = append(errs, "log.format must be one of: json, console")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}

	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
