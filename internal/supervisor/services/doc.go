// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

/*
Package services adapts the service's long-running components to suture's
Serve(ctx) error contract.

  - HTTPServerService wraps an *http.Server: ListenAndServe in a goroutine,
    graceful Shutdown when the context ends.
  - ProbeService pings Tautulli on a ticker and records the result for the
    readiness endpoint.

Both return ctx.Err() on a requested shutdown and a wrapped error on
failure, which suture answers with a restart.
*/
package services
