// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

// Package status turns raw Tautulli user rows into display records.
//
// The pipeline for one request is:
//
//	Aggregator -> upstream rows (+ live sessions) -> Merger -> Formatter -> template fields
//
// Records are flat maps so that format templates can reference any field
// with a ${key} placeholder. Nothing in this package keeps state between
// requests: the session index is rebuilt for every call and the format
// fields are passed in by the caller.
package status
