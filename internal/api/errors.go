// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package api

import (
	"errors"
	"net/http"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/status"
)

// statusForError maps pipeline error kinds to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, status.ErrInvalidSettings):
		return http.StatusBadRequest
	case errors.Is(err, status.ErrUpstreamUnavailable),
		errors.Is(err, status.ErrInvalidPayloadShape):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
