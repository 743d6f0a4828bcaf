// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/logging"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/settings"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/status"
)

// maxSettingsBody bounds POSTed settings documents.
const maxSettingsBody = 1 << 20

// PreviewResponse is the body of a format preview.
type PreviewResponse struct {
	Preview []status.PreviewLine `json:"preview"`
}

// decodeSettings reads and validates a {"fields":[...]} body. Any failure
// wraps status.ErrInvalidSettings.
func decodeSettings(w http.ResponseWriter, r *http.Request) (*settings.Settings, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSettingsBody)

	var body settings.Settings
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, errors.Join(status.ErrInvalidSettings, errors.New("request body too large"))
		}
		return nil, errors.Join(status.ErrInvalidSettings, errors.New("fields must be an array of {id, template}"))
	}
	if err := settings.Validate(&body); err != nil {
		return nil, err
	}
	return &body, nil
}

// GetFormatSettings returns the stored format fields.
func (h *Handler) GetFormatSettings(w http.ResponseWriter, r *http.Request) {
	current, err := h.settings.Load(r.Context())
	if err != nil {
		respondSettingsError(w, r, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}
	logging.Ctx(r.Context()).Info().Msg("GET /api/format-settings")
	respondJSON(w, http.StatusOK, current)
}

// SaveFormatSettings replaces the stored format fields.
func (h *Handler) SaveFormatSettings(w http.ResponseWriter, r *http.Request) {
	body, err := decodeSettings(w, r)
	if err != nil {
		respondSettingsError(w, r, http.StatusBadRequest, "Invalid format settings", err)
		return
	}

	if err := h.settings.Save(r.Context(), body); err != nil {
		code := statusForError(err)
		message := "Failed to save settings"
		if code == http.StatusBadRequest {
			message = "Invalid format settings"
		}
		respondSettingsError(w, r, code, message, err)
		return
	}

	logging.Ctx(r.Context()).Info().Int("fields", len(body.Fields)).Msg("POST /api/format-settings")
	respondJSON(w, http.StatusOK, &MessageResponse{Message: "Settings saved successfully"})
}

// PreviewFormatSettings renders the posted fields against the sample
// record without saving them.
func (h *Handler) PreviewFormatSettings(w http.ResponseWriter, r *http.Request) {
	body, err := decodeSettings(w, r)
	if err != nil {
		respondSettingsError(w, r, http.StatusBadRequest, "Invalid format settings", err)
		return
	}
	respondJSON(w, http.StatusOK, &PreviewResponse{Preview: status.Preview(h.opts.Clock, body.Fields)})
}
