// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is not set.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"config/config.yaml",
}

// ConfigPathEnvVar names the environment variable pointing at a YAML file.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Tautulli: TautulliConfig{
			Timeout:       10 * time.Second,
			LiveSessions:  true,
			WatchStats:    true,
			RateBurst:     5,
			ProbeInterval: time.Minute,
		},
		Server: ServerConfig{
			Port:        3009,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
			StaticDir:   "build",
		},
		Settings: SettingsConfig{
			Store:      "file",
			Path:       "config/settings.json",
			BadgerPath: "config/settings.db",
			CacheTTL:   5 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   120,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf loads defaults, the optional config file and the
// environment, in that order, then cleans and validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	if err := applyEnvAliases(k); err != nil {
		return nil, err
	}
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	cfg.Tautulli.URL = CleanTautulliURL(cfg.Tautulli.URL)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envMappings maps lower-cased environment variable names to koanf paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	"tautulli_base_url":         "tautulli.url",
	"tautulli_api_key":          "tautulli.api_key",
	"tautulli_timeout":          "tautulli.timeout",
	"tautulli_activity_timeout": "tautulli.activity_timeout",
	"tautulli_live_sessions":    "tautulli.live_sessions",
	"tautulli_watch_stats":      "tautulli.watch_stats",
	"tautulli_rate_limit":       "tautulli.rate_limit",
	"tautulli_rate_burst":       "tautulli.rate_burst",
	"tautulli_probe_interval":   "tautulli.probe_interval",

	"user_api_port": "server.port",
	"http_host":     "server.host",
	"http_timeout":  "server.timeout",
	"node_env":      "server.environment",
	"static_dir":    "server.static_dir",

	"settings_store":       "settings.store",
	"settings_path":        "settings.path",
	"settings_badger_path": "settings.badger_path",
	"settings_cache_ttl":   "settings.cache_ttl",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envAliases lists alternative variable names. An alias only applies when
// its primary variable is unset, so the result does not depend on the
// order of os.Environ.
var envAliases = map[string]string{
	"TAUTULLI_URL": "TAUTULLI_BASE_URL",
	"HTTP_PORT":    "USER_API_PORT",
	"ENVIRONMENT":  "NODE_ENV",
}

func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

func applyEnvAliases(k *koanf.Koanf) error {
	for alias, primary := range envAliases {
		if _, set := os.LookupEnv(primary); set {
			continue
		}
		value, ok := os.LookupEnv(alias)
		if !ok || value == "" {
			continue
		}
		path := envTransformFunc(primary)
		if err := k.Set(path, value); err != nil {
			return fmt.Errorf("failed to apply %s: %w", alias, err)
		}
	}
	return nil
}

var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated environment values for the
// fields that are slices in Config.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}
