// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

// Package cache provides a small generic TTL cache. The settings layer uses
// it to absorb the burst of identical settings reads that a dashboard
// refresh produces.
package cache
