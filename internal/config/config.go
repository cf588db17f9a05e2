// Package config loads monitor settings from ~/.ppmon/config.toml with
// PPMON_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".ppmon"

	defaultLogFile   = "pppoe_connection_log.csv"
	defaultStateFile = "state.toml"
)

type Config struct {
	RouterAddress  string
	RouterUsername string
	RouterPassword string
	DialTimeout    time.Duration
	LogFile        string
	StateFile      string
	DefaultWindow  time.Duration
	LogLevel       string
}

func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(baseDir)

	cfg.SetDefault("router.address", "192.168.88.1:8728")
	cfg.SetDefault("router.username", "admin")
	cfg.SetDefault("router.password", "")
	cfg.SetDefault("router.dial_timeout", "10s")
	cfg.SetDefault("log.file", filepath.Join(baseDir, defaultLogFile))
	cfg.SetDefault("state.file", filepath.Join(baseDir, defaultStateFile))
	cfg.SetDefault("monitor.window", "15m")
	cfg.SetDefault("log.level", "info")

	cfg.SetEnvPrefix("PPMON")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	dialTimeout, err := time.ParseDuration(cfg.GetString("router.dial_timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("parse router.dial_timeout: %w", err)
	}

	window, err := time.ParseDuration(cfg.GetString("monitor.window"))
	if err != nil {
		return Config{}, fmt.Errorf("parse monitor.window: %w", err)
	}

	return Config{
		RouterAddress:  cfg.GetString("router.address"),
		RouterUsername: cfg.GetString("router.username"),
		RouterPassword: cfg.GetString("router.password"),
		DialTimeout:    dialTimeout,
		LogFile:        cfg.GetString("log.file"),
		StateFile:      cfg.GetString("state.file"),
		DefaultWindow:  window,
		LogLevel:       cfg.GetString("log.level"),
	}, nil
}
