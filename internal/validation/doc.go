// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

// Package validation wraps go-playground/validator v10 behind a lazily
// built singleton and turns its field errors into short messages suitable
// for API error bodies.
//
// Custom tags:
//   - fieldid: format field ids, 1+ characters of [A-Za-z0-9_.-]
//   - orderColumn: users table sort columns, letters, digits and underscore
//
// Field names in messages are the json tag names, so a bad settings body
// reports "id is required" rather than "ID is required".
package validation
