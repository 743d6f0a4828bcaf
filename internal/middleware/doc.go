// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

/*
Package middleware provides HTTP middleware shared by the API router.

  - RequestID: accepts or generates an X-Request-ID and seeds the logging
    context with request and correlation IDs
  - PrometheusMetrics: request counts, latency and in-flight gauge, labelled
    by chi route pattern so path parameters do not explode cardinality

Both are func(http.Handler) http.Handler and plug straight into chi's Use.
*/
package middleware
