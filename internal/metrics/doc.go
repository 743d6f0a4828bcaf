// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

/*
Package metrics holds the Prometheus collectors of the service.

Collectors are registered on the default registry through promauto and
exposed by the API router at /metrics:

	curl http://localhost:3009/metrics

Groups:
  - api_*: inbound HTTP requests (method, route pattern, status)
  - tautulli_*: outbound Tautulli API calls and the background probe
  - circuit_breaker_*: state of the breaker around the Tautulli client
  - user_status_*: records enriched and live sessions seen
  - format_settings_*: settings store operations and cache efficiency
*/
package metrics
