// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package status

import "errors"

var (
	// ErrUpstreamUnavailable wraps every failure talking to Tautulli:
	// network errors, timeouts, non-200 statuses, open circuit and
	// non-success envelopes.
	ErrUpstreamUnavailable = errors.New("tautulli unavailable")

	// ErrInvalidPayloadShape means Tautulli answered but the expected row
	// list (or user object) was missing.
	ErrInvalidPayloadShape = errors.New("invalid response data structure")

	// ErrInvalidSettings means a format settings write was not a list of
	// {id, template} pairs.
	ErrInvalidSettings = errors.New("invalid format settings")
)
