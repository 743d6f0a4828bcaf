// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package services

import (
	"context"
	"time"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/logging"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/upstream"
)

// ProbeRecorder runs one connectivity check and stores the outcome.
// Satisfied by *upstream.ProbeState.
type ProbeRecorder interface {
	Probe(ctx context.Context, p upstream.Pinger, timeout time.Duration) error
}

// ProbeService checks Tautulli once at start and then every interval.
type ProbeService struct {
	state    ProbeRecorder
	pinger   upstream.Pinger
	interval time.Duration
	timeout  time.Duration
	name     string

	// wasUp tracks transitions so only changes are logged at info level.
	wasUp *bool
}

// NewProbeService creates a probe loop. interval defaults to 30s.
func NewProbeService(state ProbeRecorder, pinger upstream.Pinger, interval, timeout time.Duration) *ProbeService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &ProbeService{
		state:    state,
		pinger:   pinger,
		interval: interval,
		timeout:  timeout,
		name:     "tautulli-probe",
	}
}

// Serve implements suture.Service.
func (p *ProbeService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.probeOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.probeOnce(ctx)
		}
	}
}

func (p *ProbeService) probeOnce(ctx context.Context) {
	err := p.state.Probe(ctx, p.pinger, p.timeout)
	if ctx.Err() != nil {
		return
	}

	up := err == nil
	changed := p.wasUp == nil || *p.wasUp != up
	p.wasUp = &up

	switch {
	case up && changed:
		logging.Info().Msg("Tautulli reachable")
	case !up && changed:
		logging.Warn().Err(err).Msg("Tautulli unreachable")
	case !up:
		logging.Debug().Err(err).Msg("Tautulli still unreachable")
	}
}

// String names the service in supervisor logs.
func (p *ProbeService) String() string {
	return p.name
}
