// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/logging"
)

// Validate checks that required configuration is present and consistent.
func (c *Config) Validate() error {
	if err := c.validateTautulli(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSettings(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTautulli() error {
	if c.Tautulli.URL == "" {
		return errors.New("TAUTULLI_BASE_URL is required")
	}
	if err := validateHTTPURL(c.Tautulli.URL, "TAUTULLI_BASE_URL"); err != nil {
		return fmt.Errorf("TAUTULLI_BASE_URL is invalid: %w", err)
	}
	if strings.TrimSpace(c.Tautulli.APIKey) == "" {
		return errors.New("TAUTULLI_API_KEY is required")
	}
	if c.Tautulli.Timeout <= 0 {
		return fmt.Errorf("TAUTULLI_TIMEOUT must be positive, got %v", c.Tautulli.Timeout)
	}
	if c.Tautulli.ActivityTimeout < 0 {
		return fmt.Errorf("TAUTULLI_ACTIVITY_TIMEOUT must not be negative, got %v", c.Tautulli.ActivityTimeout)
	}
	if c.Tautulli.RateLimit < 0 {
		return fmt.Errorf("TAUTULLI_RATE_LIMIT must not be negative, got %v", c.Tautulli.RateLimit)
	}
	if c.Tautulli.RateLimit > 0 && c.Tautulli.RateBurst < 1 {
		return fmt.Errorf("TAUTULLI_RATE_BURST must be at least 1 when rate limiting, got %d", c.Tautulli.RateBurst)
	}
	if c.Tautulli.ProbeInterval <= 0 {
		return fmt.Errorf("TAUTULLI_PROBE_INTERVAL must be positive, got %v", c.Tautulli.ProbeInterval)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("USER_API_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	return nil
}

func (c *Config) validateSettings() error {
	switch c.Settings.Store {
	case "file":
		if c.Settings.Path == "" {
			return errors.New("SETTINGS_PATH is required when SETTINGS_STORE=file")
		}
	case "badger":
		if c.Settings.BadgerPath == "" {
			return errors.New("SETTINGS_BADGER_PATH is required when SETTINGS_STORE=badger")
		}
	default:
		return fmt.Errorf("SETTINGS_STORE must be file or badger, got %q", c.Settings.Store)
	}
	if c.Settings.CacheTTL < 0 {
		return fmt.Errorf("SETTINGS_CACHE_TTL must not be negative, got %v", c.Settings.CacheTTL)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}
