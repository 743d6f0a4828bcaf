// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

/*
Package api is the HTTP surface of the user status proxy.

Routes:

	GET  /api/users                      enriched users table page
	GET  /api/users/{userId}             one enriched user
	GET  /api/format-settings            current format fields
	POST /api/format-settings            replace format fields
	POST /api/format-settings/preview    render fields against a sample user
	GET  /health, /health/live, /health/ready
	GET  /metrics                        Prometheus exposition
	GET  /*                              dashboard build with SPA fallback

User routes answer in Tautulli's own envelope,
{"response":{"result":"success","data":...}}, so dashboard widgets written
for Tautulli can point at this service unchanged. Settings routes keep the
flat {"fields":[...]} / {"error":"..."} shapes the dashboard UI expects.
*/
package api
