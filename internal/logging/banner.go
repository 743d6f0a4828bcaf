// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package logging

import "strings"

// Endpoint describes one route announced at startup.
type Endpoint struct {
	Method      string
	Path        string
	Description string
}

// ServerInfo is what LogServerStart announces.
type ServerInfo struct {
	Addr          string
	BaseURL       string
	Environment   string
	TautulliURL   string
	LiveSessions  bool
	SettingsStore string
	Endpoints     []Endpoint
}

// LogServerStart writes the startup banner: one event with the server
// details followed by one event per exposed endpoint.
//
//nolint:gocritic // ServerInfo is only built once at startup
func LogServerStart(info ServerInfo) {
	Info().
		Str("status", "running").
		Str("addr", info.Addr).
		Str("tautulli_url", info.TautulliURL).
		Str("environment", info.Environment).
		Bool("live_sessions", info.LiveSessions).
		Str("settings_store", info.SettingsStore).
		Msg("Gethomepage Tautulli user API started")

	base := strings.TrimRight(info.BaseURL, "/")
	for _, ep := range info.Endpoints {
		Info().
			Str("method", ep.Method).
			Str("url", base+ep.Path).
			Msg(ep.Description)
	}
}
