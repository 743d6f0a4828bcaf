// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

// Package tautulli holds the Tautulli API v2 payloads this service reads.
//
// Every endpoint wraps its payload in the same envelope:
//
//	{"response": {"result": "success", "message": null, "data": ...}}
//
// Tautulli is inconsistent about types: ids arrive as numbers or strings,
// counters as numbers, numeric strings or null depending on version and
// endpoint. Fields the service depends on therefore use FlexInt and
// FlexString, which never fail to decode and fall back to 0 and "".
//
// Types:
//   - TautulliUsersTable: get_users_table (paged user list)
//   - TautulliUser: get_user (single user)
//   - TautulliActivity: get_activity (live sessions)
//   - TautulliUserWatchTimeStats: get_user_watch_time_stats
package tautulli
