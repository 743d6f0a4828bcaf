// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package api

import (
	"errors"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// NotFound answers unknown API routes with a JSON 404.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusNotFound, &ErrorResponse{Error: "Not found"})
}

// staticAvailable reports whether dir holds a dashboard build.
func staticAvailable(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, "index.html"))
	return err == nil && !info.IsDir()
}

// SPAHandler serves files from dir and falls back to index.html for any
// path that is not a file, so client-side routes survive a reload.
// Paths under /api/ never fall back.
func (h *Handler) SPAHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clean := path.Clean("/" + r.URL.Path)
		if clean == "/api" || strings.HasPrefix(clean, "/api/") {
			h.NotFound(w, r)
			return
		}

		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(clean)))
		if err == nil && !info.IsDir() {
			files.ServeHTTP(w, r)
			return
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Cache-Control", "no-cache")
		http.ServeFile(w, r, index)
	})
}
