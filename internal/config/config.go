// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config is the complete service configuration.
type Config struct {
	Tautulli TautulliConfig `koanf:"tautulli"`
	Server   ServerConfig   `koanf:"server"`
	Settings SettingsConfig `koanf:"settings"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// TautulliConfig configures the upstream Tautulli API v2 client.
type TautulliConfig struct {
	URL    string `koanf:"url"`
	APIKey string `koanf:"api_key"`

	// Timeout bounds every upstream call. ActivityTimeout overrides it for
	// get_activity when non-zero.
	Timeout         time.Duration `koanf:"timeout"`
	ActivityTimeout time.Duration `koanf:"activity_timeout"`

	// LiveSessions enables the get_activity call and the "currently
	// watching" merge. When false every user is rendered from the stored
	// history fields only.
	LiveSessions bool `koanf:"live_sessions"`

	// WatchStats enables get_user_watch_time_stats on single-user lookups.
	WatchStats bool `koanf:"watch_stats"`

	// RateLimit caps outbound requests per second; 0 disables the limiter.
	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`

	// ProbeInterval is how often the background probe pings Tautulli.
	ProbeInterval time.Duration `koanf:"probe_interval"`
}

// TimeoutFor returns the timeout configured for an upstream command.
func (t *TautulliConfig) TimeoutFor(cmd string) time.Duration {
	if cmd == "get_activity" && t.ActivityTimeout > 0 {
		return t.ActivityTimeout
	}
	return t.Timeout
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`

	// StaticDir holds the built dashboard. Missing directories are ignored.
	StaticDir string `koanf:"static_dir"`
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether the server runs in production mode.
func (s *ServerConfig) IsProduction() bool {
	return strings.EqualFold(s.Environment, "production")
}

// SettingsConfig selects where format settings are persisted.
type SettingsConfig struct {
	Store      string        `koanf:"store"`
	Path       string        `koanf:"path"`
	BadgerPath string        `koanf:"badger_path"`
	CacheTTL   time.Duration `koanf:"cache_ttl"`
}

// SecurityConfig holds CORS and inbound rate limiting.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads the layered configuration and validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
