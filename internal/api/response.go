// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/logging"
)

// TautulliResponse mirrors the Tautulli API v2 envelope.
type TautulliResponse struct {
	Response TautulliBody `json:"response"`
}

// TautulliBody is the inner object. RecordsFiltered and RecordsTotal are
// only present on list responses.
type TautulliBody struct {
	Result          string `json:"result"`
	Message         string `json:"message,omitempty"`
	Data            any    `json:"data,omitempty"`
	RecordsFiltered *int64 `json:"recordsFiltered,omitempty"`
	RecordsTotal    *int64 `json:"recordsTotal,omitempty"`
}

// ErrorResponse is the settings routes' failure body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is the settings routes' success body for writes.
type MessageResponse struct {
	Message string `json:"message"`
}

// sanitizeLogValue escapes control characters so request data cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON writes v with the given status. API responses are never
// cached: the whole point is fresh presence data.
func respondJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondTautulliError writes a Tautulli-style failure envelope.
func respondTautulliError(w http.ResponseWriter, r *http.Request, status int, err error) {
	logging.Ctx(r.Context()).Error().
		Int("status", status).
		Str("path", sanitizeLogValue(r.URL.Path)).
		Str("error", sanitizeLogValue(err.Error())).
		Msg("API Error")

	respondJSON(w, status, &TautulliResponse{Response: TautulliBody{
		Result:  "error",
		Message: err.Error(),
	}})
}

// respondSettingsError writes {"error": message}. Validation failures carry
// the offending field in details.
func respondSettingsError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	body := &ErrorResponse{Error: message}
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Int("status", status).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("Format Settings")
		if status == http.StatusBadRequest {
			body.Details = err.Error()
		}
	}
	respondJSON(w, status, body)
}
