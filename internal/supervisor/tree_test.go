// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package supervisor

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func waitStarted(t *testing.T, m *mockService) {
	t.Helper()
	select {
	case <-m.started:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s never started", m.name)
	}
}

func TestSupervisorTreeConstruction(t *testing.T) {
	t.Run("creates tree", func(t *testing.T) {
		tree, err := NewSupervisorTree(testLogger(), TreeConfig{
			FailureThreshold: 5,
			FailureBackoff:   time.Second,
			ShutdownTimeout:  10 * time.Second,
		})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}
		if tree.Root() == nil {
			t.Error("root supervisor should not be nil")
		}
	})

	t.Run("applies default values for zero config", func(t *testing.T) {
		tree, err := NewSupervisorTree(nil, TreeConfig{})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}
		if tree.config != DefaultTreeConfig() {
			t.Errorf("config = %+v, want %+v", tree.config, DefaultTreeConfig())
		}
		if tree.logger == nil {
			t.Error("nil logger should fall back to slog.Default")
		}
	})
}

func TestSupervisorTreeLifecycle(t *testing.T) {
	tree, err := NewSupervisorTree(testLogger(), TreeConfig{
		FailureBackoff:  100 * time.Millisecond,
		ShutdownTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("failed to create tree: %v", err)
	}

	probe := newMockService("mock-probe")
	httpSvc := newMockService("mock-http")
	tree.AddUpstreamService(probe)
	tree.AddAPIService(httpSvc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	waitStarted(t, probe)
	waitStarted(t, httpSvc)
	cancel()

	select {
	case <-errCh:
	case <-time.After(3 * time.Second):
		t.Fatal("tree did not stop after cancel")
	}

	if probe.stopCount.Load() != probe.startCount.Load() {
		t.Errorf("probe: started %d, stopped %d", probe.startCount.Load(), probe.stopCount.Load())
	}
	if httpSvc.stopCount.Load() != httpSvc.startCount.Load() {
		t.Errorf("http: started %d, stopped %d", httpSvc.startCount.Load(), httpSvc.stopCount.Load())
	}

	report, err := tree.UnstoppedServiceReport()
	if err != nil {
		t.Fatalf("UnstoppedServiceReport: %v", err)
	}
	if len(report) != 0 {
		t.Errorf("unstopped services: %v", report)
	}
}

func TestSupervisorTreeRestartsFailedService(t *testing.T) {
	tree, err := NewSupervisorTree(testLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})
	if err != nil {
		t.Fatalf("failed to create tree: %v", err)
	}

	flaky := newMockService("flaky-probe")
	flaky.setFailCount(2)
	steady := newMockService("steady-http")
	tree.AddUpstreamService(flaky)
	tree.AddAPIService(steady)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	waitStarted(t, steady)
	deadline := time.Now().Add(3 * time.Second)
	for flaky.startCount.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if got := flaky.startCount.Load(); got < 3 {
		t.Fatalf("flaky service started %d times, want at least 3", got)
	}
	if got := steady.startCount.Load(); got != 1 {
		t.Errorf("api layer restarted: started %d times, want 1", got)
	}

	cancel()
	<-errCh
}
