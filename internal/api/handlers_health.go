// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status            string     `json:"status"`
	TautulliConnected bool       `json:"tautulli_connected"`
	LastProbe         *time.Time `json:"last_probe,omitempty"`
	ProbeError        string     `json:"probe_error,omitempty"`
	CircuitBreaker    string     `json:"circuit_breaker,omitempty"`
	Uptime            float64    `json:"uptime"`
	Timestamp         time.Time  `json:"timestamp"`
}

// Health reports overall status. It never calls Tautulli itself; it reads
// the result of the background probe. Before the first probe completes the
// service reports "starting".
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := HealthStatus{
		Status:    "healthy",
		Uptime:    time.Since(h.startTime).Seconds(),
		Timestamp: time.Now(),
	}

	if h.opts.Probe != nil {
		last := h.opts.Probe.Last()
		health.TautulliConnected = last.Up
		health.ProbeError = last.Error
		if last.Checked() {
			checked := last.CheckedAt
			health.LastProbe = &checked
		}
		switch {
		case !last.Checked():
			health.Status = "starting"
		case !last.Up:
			health.Status = "degraded"
		}
	}
	if h.opts.Breaker != nil {
		health.CircuitBreaker = h.opts.Breaker.State()
		if health.CircuitBreaker == "open" {
			health.Status = "degraded"
		}
	}

	respondJSON(w, http.StatusOK, &health)
}

// HealthLive returns 200 while the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady returns 200 once the latest probe reached Tautulli, 503
// otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := true
	body := map[string]any{
		"uptime": time.Since(h.startTime).Seconds(),
	}
	if h.opts.Probe != nil {
		last := h.opts.Probe.Last()
		ready = last.Up
		body["tautulli_connected"] = last.Up
		if last.Error != "" {
			body["probe_error"] = last.Error
		}
	}
	body["ready"] = ready

	code := http.StatusOK
	if !ready {
		code = http.StatusServiceUnavailable
	}
	respondJSON(w, code, body)
}
