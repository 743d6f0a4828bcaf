// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package upstream

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockPinger struct {
	PingFunc func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func TestProbeState(t *testing.T) {
	t.Parallel()

	state := NewProbeState()
	if state.Last().Checked() {
		t.Fatal("fresh state should not be checked")
	}

	if err := state.Probe(context.Background(), &mockPinger{}, time.Second); err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	if last := state.Last(); !last.Up || !last.Checked() || last.Error != "" {
		t.Errorf("Last() = %+v, want up", last)
	}

	boom := errors.New("connection refused")
	err := state.Probe(context.Background(), &mockPinger{PingFunc: func(context.Context) error { return boom }}, time.Second)
	if !errors.Is(err, boom) {
		t.Errorf("Probe() error = %v, want %v", err, boom)
	}
	if last := state.Last(); last.Up || last.Error != "connection refused" {
		t.Errorf("Last() = %+v, want down", last)
	}
}

func TestProbeState_Timeout(t *testing.T) {
	t.Parallel()

	state := NewProbeState()
	pinger := &mockPinger{PingFunc: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}}

	err := state.Probe(context.Background(), pinger, 20*time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Probe() error = %v, want deadline exceeded", err)
	}
}
