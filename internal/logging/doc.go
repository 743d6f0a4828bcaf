// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

// Package logging is the single structured logging layer of the service.
//
// It wraps a global zerolog logger. JSON output is the default; console
// output is meant for local development.
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("addr", addr).Msg("Server listening")
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Upstream call failed")
//
// Request and correlation IDs travel in the request context and are added
// to every event created through Ctx. NewSlogLogger bridges the logger to
// log/slog for libraries that expect one (the suture supervisor).
//
// Environment variables understood by the config package:
//
//	LOG_LEVEL   trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  json, console (default: json)
//	LOG_CALLER  true, false (default: false)
//
// Never log the Tautulli API key. Upstream URLs are logged without their
// query string for that reason.
package logging
