// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/logging"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/models/tautulli"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/validation"
)

// userIDParam validates the {userId} path segment.
type userIDParam struct {
	UserID string `json:"userId" validate:"required,max=64,alphanum"`
}

// parseUsersTableQuery reads the list parameters, applying the dashboard
// defaults for any that are absent or empty.
func parseUsersTableQuery(r *http.Request) (tautulli.UsersTableQuery, error) {
	q := tautulli.DefaultUsersTableQuery()
	values := r.URL.Query()

	if v := values.Get("order_column"); v != "" {
		q.OrderColumn = v
	}
	if v := values.Get("order_dir"); v != "" {
		q.OrderDir = v
	}
	q.Search = values.Get("search")

	for _, p := range []struct {
		name string
		dst  *int
	}{{"start", &q.Start}, {"length", &q.Length}} {
		v := values.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, fmt.Errorf("%s must be an integer", p.name)
		}
		*p.dst = n
	}

	if verr := validation.ValidateStruct(&q); verr != nil {
		return q, verr
	}
	return q, nil
}

// Users serves one enriched page of the users table.
//
// Query parameters order_column, order_dir, search, start and length are
// passed through to get_users_table.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	query, err := parseUsersTableQuery(r)
	if err != nil {
		respondTautulliError(w, r, http.StatusBadRequest, err)
		return
	}

	current, err := h.settings.Load(r.Context())
	if err != nil {
		respondTautulliError(w, r, http.StatusInternalServerError, err)
		return
	}

	page, err := h.users.ListUsers(r.Context(), query, current.Fields)
	if err != nil {
		respondTautulliError(w, r, statusForError(err), err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("order_column", query.OrderColumn).
		Str("order_dir", query.OrderDir).
		Int("start", query.Start).
		Int("length", query.Length).
		Int("rows", len(page.Records)).
		Int64("records_total", page.RecordsTotal).
		Msg("GET /api/users")

	respondJSON(w, http.StatusOK, &TautulliResponse{Response: TautulliBody{
		Result:          "success",
		Data:            page.Records,
		RecordsFiltered: &page.RecordsFiltered,
		RecordsTotal:    &page.RecordsTotal,
	}})
}

// User serves one enriched user. data is the record object itself.
func (h *Handler) User(w http.ResponseWriter, r *http.Request) {
	param := userIDParam{UserID: chi.URLParam(r, "userId")}
	if verr := validation.ValidateStruct(&param); verr != nil {
		respondTautulliError(w, r, http.StatusBadRequest, verr)
		return
	}

	current, err := h.settings.Load(r.Context())
	if err != nil {
		respondTautulliError(w, r, http.StatusInternalServerError, err)
		return
	}

	record, err := h.users.GetUser(r.Context(), param.UserID, current.Fields)
	if err != nil {
		respondTautulliError(w, r, statusForError(err), err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("user_id", param.UserID).Msg("GET /api/users/{userId}")

	respondJSON(w, http.StatusOK, &TautulliResponse{Response: TautulliBody{
		Result: "success",
		Data:   record,
	}})
}
