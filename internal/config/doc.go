// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

// Package config loads the service configuration.
//
// Values are layered, later layers winning:
//
//  1. built-in defaults (defaultConfig)
//  2. an optional YAML file (CONFIG_PATH, else config.yaml / config.yml)
//  3. environment variables, mapped explicitly in envTransformFunc
//
// The environment variable names are the ones the original Node deployment
// used (TAUTULLI_BASE_URL, TAUTULLI_API_KEY, USER_API_PORT, NODE_ENV) so
// existing docker-compose files keep working. TAUTULLI_URL, HTTP_PORT and
// ENVIRONMENT are accepted as aliases.
//
// Example config.yaml:
//
//	tautulli:
//	  url: http://tautulli:8181
//	  api_key: abc123
//	  live_sessions: true
//	server:
//	  port: 3009
//	settings:
//	  store: file
//	  path: config/settings.json
package config
