// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package upstream

import (
	"context"
	"sync"
	"time"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/metrics"
)

// Pinger is implemented by TautulliClient and CircuitBreakerClient.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeResult is the outcome of the most recent connectivity check.
type ProbeResult struct {
	Up        bool      `json:"up"`
	CheckedAt time.Time `json:"checked_at,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Checked reports whether any probe has completed yet.
func (p ProbeResult) Checked() bool {
	return !p.CheckedAt.IsZero()
}

// ProbeState holds the latest ProbeResult. Safe for concurrent use.
type ProbeState struct {
	mu   sync.RWMutex
	last ProbeResult
}

func NewProbeState() *ProbeState {
	return &ProbeState{}
}

// Probe pings once, records the outcome and returns the ping error.
func (s *ProbeState) Probe(ctx context.Context, p Pinger, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	err := p.Ping(ctx)
	s.Record(time.Now(), err)
	return err
}

// Record stores the outcome of a probe made at.
func (s *ProbeState) Record(at time.Time, err error) {
	result := ProbeResult{Up: err == nil, CheckedAt: at}
	if err != nil {
		result.Error = err.Error()
	}

	s.mu.Lock()
	s.last = result
	s.mu.Unlock()

	metrics.SetUpstreamUp(result.Up)
}

// Last returns the most recent result; the zero value before any probe.
func (s *ProbeState) Last() ProbeResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}
