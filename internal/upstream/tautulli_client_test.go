// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/config"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/models/tautulli"
)

func testConfig(url string) *config.TautulliConfig {
	return &config.TautulliConfig{
		URL:     url,
		APIKey:  "secret-key",
		Timeout: 2 * time.Second,
	}
}

func jsonServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(server.Close)
	return server
}

func TestTautulliClient_GetUsersTable(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2" {
			t.Errorf("path = %q, want /api/v2", r.URL.Path)
		}
		q := r.URL.Query()
		for key, want := range map[string]string{
			"apikey":       "secret-key",
			"cmd":          "get_users_table",
			"order_column": "friendly_name",
			"order_dir":    "asc",
			"length":       "10",
			"start":        "0",
		} {
			if got := q.Get(key); got != want {
				t.Errorf("query %s = %q, want %q", key, got, want)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":{"result":"success","message":null,"data":{
			"recordsTotal":2,"recordsFiltered":"2","draw":1,
			"data":[
				{"user_id":1,"friendly_name":"Alice","last_seen":1700000000,"plays":5,"duration":5400},
				{"user_id":"2","friendly_name":"Bob","last_seen":null}
			]}}}`))
	})

	client := NewTautulliClient(testConfig(server.URL))
	table, err := client.GetUsersTable(context.Background(), tautulli.DefaultUsersTableQuery())
	if err != nil {
		t.Fatalf("GetUsersTable() error = %v", err)
	}

	rows := table.Response.Data.Data
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].UserID != "1" || rows[0].PlayCount() != 5 || rows[0].WatchedMinutes() != 90 {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[1].LastSeen != 0 {
		t.Errorf("rows[1].LastSeen = %d, want 0", rows[1].LastSeen)
	}
	if table.Response.Data.RecordsFiltered != 2 {
		t.Errorf("RecordsFiltered = %d, want 2", table.Response.Data.RecordsFiltered)
	}
}

func TestTautulliClient_GetUser(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("user_id"); got != "42" {
			t.Errorf("user_id = %q, want 42", got)
		}
		_, _ = w.Write([]byte(`{"response":{"result":"success","data":{"user_id":42,"username":"carol"}}}`))
	})

	user, err := NewTautulliClient(testConfig(server.URL)).GetUser(context.Background(), "42")
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if user.Response.Data == nil || user.Response.Data.Name() != "carol" {
		t.Errorf("user = %+v", user.Response.Data)
	}
}

func TestTautulliClient_GetUserWatchTimeStats(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("cmd") != "get_user_watch_time_stats" || q.Get("query_days") != "0" {
			t.Errorf("query = %v", q)
		}
		_, _ = w.Write([]byte(`{"response":{"result":"success","data":[{"query_days":0,"total_time":3600,"total_plays":3}]}}`))
	})

	stats, err := NewTautulliClient(testConfig(server.URL)).GetUserWatchTimeStats(context.Background(), "1", "0")
	if err != nil {
		t.Fatalf("GetUserWatchTimeStats() error = %v", err)
	}
	row, ok := stats.AllTime()
	if !ok || row.TotalTime != 3600 {
		t.Errorf("AllTime() = %+v, %v", row, ok)
	}
}

func TestTautulliClient_GetActivity(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":{"result":"success","data":{"stream_count":"1","sessions":[
			{"user_id":"7","title":"Pilot","grandparent_title":"Breaking Bad","media_type":"episode","view_offset":"65000","duration":125000,"progress_percent":"52"}
		]}}}`))
	})

	activity, err := NewTautulliClient(testConfig(server.URL)).GetActivity(context.Background())
	if err != nil {
		t.Fatalf("GetActivity() error = %v", err)
	}
	sessions := activity.Response.Data.Sessions
	if len(sessions) != 1 || sessions[0].ViewOffset != 65000 {
		t.Errorf("sessions = %+v", sessions)
	}
}

func TestTautulliClient_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "http status",
			status:  http.StatusInternalServerError,
			body:    "boom",
			wantErr: ErrHTTPStatus,
			wantMsg: "status 500",
		},
		{
			name:    "envelope failure",
			status:  http.StatusOK,
			body:    `{"response":{"result":"error","message":"Invalid apikey","data":{}}}`,
			wantErr: ErrAPIFailure,
			wantMsg: "Invalid apikey",
		},
		{
			name:    "malformed json",
			status:  http.StatusOK,
			body:    `{"response":`,
			wantMsg: "failed to decode get_users_table response",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := NewTautulliClient(testConfig(server.URL)).GetUsersTable(context.Background(), tautulli.DefaultUsersTableQuery())
			if err == nil {
				t.Fatal("GetUsersTable() error = nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}
			if strings.Contains(err.Error(), "secret-key") {
				t.Errorf("error leaks the API key: %q", err)
			}
		})
	}
}

func TestTautulliClient_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	cfg := testConfig(server.URL)
	cfg.Timeout = 50 * time.Millisecond

	_, err := NewTautulliClient(cfg).GetActivity(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("GetActivity() error = %v, want deadline exceeded", err)
	}
}

func TestTautulliClient_TimeoutFor(t *testing.T) {
	t.Parallel()

	cfg := testConfig("http://localhost")
	cfg.ActivityTimeout = 3 * time.Second
	c := NewTautulliClient(cfg)

	if got := c.timeoutFor("get_activity"); got != 3*time.Second {
		t.Errorf("timeoutFor(get_activity) = %v, want 3s", got)
	}
	if got := c.timeoutFor("get_users_table"); got != 2*time.Second {
		t.Errorf("timeoutFor(get_users_table) = %v, want 2s", got)
	}
}

func TestTautulliClient_NetworkErrorHidesKey(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, func(http.ResponseWriter, *http.Request) {})
	url := server.URL
	server.Close()

	_, err := NewTautulliClient(testConfig(url)).GetActivity(context.Background())
	if err == nil {
		t.Fatal("GetActivity() error = nil against a closed server")
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Errorf("error leaks the API key: %q", err)
	}
}

func TestTautulliClient_NoRetries(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := NewTautulliClient(testConfig(server.URL)).GetActivity(context.Background())
	if err == nil {
		t.Fatal("GetActivity() error = nil")
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("upstream called %d times, want 1", n)
	}
}

func TestTautulliClient_RateLimiter(t *testing.T) {
	t.Parallel()

	cfg := testConfig("http://localhost")
	cfg.RateLimit = 5
	cfg.RateBurst = 0
	c := NewTautulliClient(cfg)
	if c.limiter == nil {
		t.Fatal("limiter = nil with RateLimit > 0")
	}
	if c.limiter.Burst() != 1 {
		t.Errorf("Burst() = %d, want 1", c.limiter.Burst())
	}

	if NewTautulliClient(testConfig("http://localhost")).limiter != nil {
		t.Error("limiter should be nil when RateLimit is 0")
	}
}

func TestTautulliClient_Ping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantErr    bool
	}{
		{"ok", http.StatusOK, false},
		{"server error", http.StatusInternalServerError, true},
		{"not found", http.StatusNotFound, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
				if got := r.URL.Query().Get("cmd"); got != "arnold" {
					t.Errorf("cmd = %q, want arnold", got)
				}
				w.WriteHeader(tt.statusCode)
			})

			err := NewTautulliClient(testConfig(server.URL)).Ping(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("Ping() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReadBodyForError_Truncates(t *testing.T) {
	t.Parallel()

	body := readBodyForError(strings.NewReader(strings.Repeat("x", maxErrorBodySize+10)))
	if !strings.HasSuffix(string(body), "(truncated)") {
		t.Error("oversized body was not marked truncated")
	}
}
