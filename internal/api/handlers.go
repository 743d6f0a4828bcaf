// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package api

import (
	"context"
	"time"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/models/tautulli"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/settings"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/status"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/upstream"
)

// UserService produces enriched user records. *status.Aggregator
// implements it.
type UserService interface {
	ListUsers(ctx context.Context, query tautulli.UsersTableQuery, fields []status.FormatField) (*status.UserPage, error)
	GetUser(ctx context.Context, userID string, fields []status.FormatField) (status.Record, error)
}

// ProbeReporter exposes the latest upstream probe. *upstream.ProbeState
// implements it.
type ProbeReporter interface {
	Last() upstream.ProbeResult
}

// BreakerReporter exposes the circuit breaker state, if any.
type BreakerReporter interface {
	State() string
}

// HandlerOptions carries the optional collaborators of a Handler.
type HandlerOptions struct {
	Probe   ProbeReporter
	Breaker BreakerReporter

	// Clock drives the format preview sample record.
	Clock status.Clock

	// StaticDir is the dashboard build directory; empty disables it.
	StaticDir string
}

// Handler holds the dependencies shared by every route.
type Handler struct {
	users     UserService
	settings  settings.Store
	opts      HandlerOptions
	startTime time.Time
}

func NewHandler(users UserService, store settings.Store, opts HandlerOptions) *Handler {
	if opts.Clock == nil {
		opts.Clock = status.SystemClock
	}
	return &Handler{
		users:     users,
		settings:  store,
		opts:      opts,
		startTime: time.Now(),
	}
}
