// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package status

import (
	"strings"
	"testing"
	"time"
)

var testNow = time.Unix(1_700_000_000, 0)

func TestRelativeTime(t *testing.T) {
	t.Parallel()

	f := NewFormatter(FixedClock(testNow))
	now := testNow.Unix()

	tests := []struct {
		name    string
		elapsed int64
		want    string
	}{
		{"zero elapsed", 0, "Just Now"},
		{"59s", 59, "Just Now"},
		{"one minute", 60, "1 Minute Ago"},
		{"two minutes", 120, "2 Minutes Ago"},
		{"59 minutes", 3599, "59 Minutes Ago"},
		{"one hour", 3600, "1 Hour Ago"},
		{"one hour one second", 3601, "1 Hour Ago"},
		{"23 hours", 86399, "23 Hours Ago"},
		{"one day", 86400, "1 Day Ago"},
		{"three days", 3 * 86400, "3 Days Ago"},
		{"future", -300, "Just Now"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := f.RelativeTime(now - tt.elapsed); got != tt.want {
				t.Errorf("RelativeTime(now-%d) = %q, want %q", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestRelativeTime_Never(t *testing.T) {
	t.Parallel()

	f := NewFormatter(FixedClock(testNow))
	if got := f.RelativeTime(0); got != "Never" {
		t.Errorf("RelativeTime(0) = %q, want Never", got)
	}
}

func TestRelativeTime_Monotonic(t *testing.T) {
	t.Parallel()

	f := NewFormatter(FixedClock(testNow))
	bucket := func(s string) int {
		switch {
		case s == "Just Now":
			return 0
		case strings.Contains(s, "Minute"):
			return 1
		case strings.Contains(s, "Hour"):
			return 2
		default:
			return 3
		}
	}

	prev := 0
	for elapsed := int64(0); elapsed < 3*86400; elapsed += 37 {
		b := bucket(f.RelativeTime(testNow.Unix() - elapsed))
		if b < prev {
			t.Fatalf("bucket went backwards at elapsed=%d", elapsed)
		}
		prev = b
	}
}

func TestMinutesSince(t *testing.T) {
	t.Parallel()

	f := NewFormatter(FixedClock(testNow))
	now := testNow.Unix()

	tests := []struct {
		epoch int64
		want  int64
	}{
		{0, 0},
		{now, 0},
		{now - 59, 0},
		{now - 60, 1},
		{now - 3601, 60},
		{now + 30, -1},
	}
	for _, tt := range tests {
		if got := f.MinutesSince(tt.epoch); got != tt.want {
			t.Errorf("MinutesSince(%d) = %d, want %d", tt.epoch, got, tt.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"the matrix", "The Matrix"},
		{"THE MATRIX", "THE MATRIX"},
		{"breaking bad - pilot", "Breaking Bad - Pilot"},
		{"movie", "Movie"},
		{"amélie", "Amélie"},
		{"spider-man", "Spider-man"},
		{"wall·e", "Wall·e"},
		{"o'brien's  day\tout", "O'brien's  Day\tOut"},
		{"  leading space", "  Leading Space"},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDurationPair(t *testing.T) {
	t.Parallel()

	tests := []struct {
		offset, total int64
		want          string
	}{
		{65, 125, "1:05 / 2:05"},
		{0, 0, "0:00 / 0:00"},
		{9, 3600, "0:09 / 60:00"},
		{-5, 61, "0:00 / 1:01"},
	}
	for _, tt := range tests {
		if got := DurationPair(tt.offset, tt.total); got != tt.want {
			t.Errorf("DurationPair(%d, %d) = %q, want %q", tt.offset, tt.total, got, tt.want)
		}
	}
}

func TestWatchTimeSpan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		minutes int64
		want    string
	}{
		{0, NoWatchTime},
		{-3, NoWatchTime},
		{1, "1 minute"},
		{59, "59 minutes"},
		{60, "1 hour"},
		{90, "1 hour, 30 minutes"},
		{1440, "1 day"},
		{1440 + 120 + 3, "1 day, 2 hours, 3 minutes"},
		{2*1440 + 1, "2 days, 1 minute"},
	}
	for _, tt := range tests {
		if got := WatchTimeSpan(tt.minutes); got != tt.want {
			t.Errorf("WatchTimeSpan(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
