// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

/*
Package upstream is the Tautulli API v2 client.

Every call is a GET against {base}/api/v2 with the apikey and cmd query
parameters. The client checks the HTTP status, decodes the body with
goccy/go-json, and checks the response envelope's result field. Calls are
never retried; each one runs under the per-command timeout from
config.TautulliConfig.

CircuitBreakerClient wraps TautulliClient with sony/gobreaker so a Tautulli
outage fails fast instead of tying up request goroutines. It satisfies
status.Source.

Commands used:
  - get_users_table: paginated, sorted, searchable user list
  - get_user: one user by id
  - get_activity: streams currently in progress
  - get_user_watch_time_stats: per-user totals for a day window
  - arnold: connectivity probe
*/
package upstream
