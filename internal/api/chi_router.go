// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/logging"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil middleware factory uses the defaults.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: mw,
	}
}

// SetupChi builds the full route tree.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(middleware.PrometheusMetrics)
	r.Use(chimiddleware.Compress(5))

	r.NotFound(router.handler.NotFound)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())

		r.Get("/users", router.handler.Users)
		r.Get("/users/{userId}", router.handler.User)

		r.Get("/format-settings", router.handler.GetFormatSettings)
		r.Post("/format-settings", router.handler.SaveFormatSettings)
		r.Post("/format-settings/preview", router.handler.PreviewFormatSettings)

		r.NotFound(router.handler.NotFound)
	})

	if dir := router.handler.opts.StaticDir; staticAvailable(dir) {
		spa := router.handler.SPAHandler(dir)
		r.Get("/*", spa.ServeHTTP)
		r.Head("/*", spa.ServeHTTP)
	} else if dir != "" {
		logging.Info().Str("dir", dir).Msg("Dashboard build not found, static serving disabled")
	}

	return r
}
