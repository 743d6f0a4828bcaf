// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package status

import "testing"

func sampleUser() UserRecord {
	return UserRecord{
		UserID:           "7",
		Username:         "alice",
		FriendlyName:     "Alice",
		Email:            "alice@example.com",
		IsActive:         1,
		TotalPlays:       42,
		TotalTimeWatched: 90,
		LastSeen:         testNow.Unix() - 7200,
		LastPlayed:       "the matrix",
		MediaType:        "movie",
	}
}

func TestMerge_Idle(t *testing.T) {
	t.Parallel()

	m := NewMerger(NewFormatter(FixedClock(testNow)))
	u := sampleUser()
	r := m.Merge(&u, Idle{})

	want := map[string]any{
		KeyUserID:            "7",
		KeyUsername:          "alice",
		KeyFriendlyName:      "Alice",
		KeyTotalPlays:        int64(42),
		KeyTotalTimeWatched:  int64(90),
		KeyWatchTime:         "1 hour, 30 minutes",
		KeyIsWatching:        WatchedLabel,
		KeyLastPlayed:        "The Matrix",
		KeyMediaType:         "Movie",
		KeyProgressPercent:   "",
		KeyProgressTime:      "",
		KeyLastSeenFormatted: "2 Hours Ago",
		KeyMinutes:           int64(120),
	}
	for k, v := range want {
		if r[k] != v {
			t.Errorf("record[%q] = %#v, want %#v", k, r[k], v)
		}
	}
}

func TestMerge_IdleNothingPlayed(t *testing.T) {
	t.Parallel()

	m := NewMerger(NewFormatter(FixedClock(testNow)))
	u := UserRecord{UserID: "1"}
	r := m.Merge(&u, nil)

	if r[KeyLastPlayed] != NothingPlayed {
		t.Errorf("last_played = %v, want %q", r[KeyLastPlayed], NothingPlayed)
	}
	if r[KeyLastSeenFormatted] != "Never" {
		t.Errorf("last_seen_formatted = %v, want Never", r[KeyLastSeenFormatted])
	}
	if r[KeyMinutes] != int64(0) {
		t.Errorf("minutes = %v, want 0", r[KeyMinutes])
	}
	if r[KeyWatchTime] != NoWatchTime {
		t.Errorf("watch_time = %v, want %q", r[KeyWatchTime], NoWatchTime)
	}
}

func TestMerge_Watching(t *testing.T) {
	t.Parallel()

	m := NewMerger(NewFormatter(FixedClock(testNow)))
	u := sampleUser()
	session := LiveSession{
		UserID:          "7",
		CurrentMedia:    "breaking bad - pilot",
		MediaType:       "Episode",
		ProgressPercent: "37",
		ViewOffset:      65,
		Duration:        125,
	}
	r := m.Merge(&u, Watching{Session: session})

	want := map[string]any{
		KeyIsWatching:        WatchingLabel,
		KeyLastPlayed:        "Breaking Bad - Pilot",
		KeyMediaType:         "Episode",
		KeyProgressPercent:   "37%",
		KeyProgressTime:      "1:05 / 2:05",
		KeyLastSeenFormatted: OnlineMarker,
		KeyMinutes:           int64(120),
	}
	for k, v := range want {
		if r[k] != v {
			t.Errorf("record[%q] = %#v, want %#v", k, r[k], v)
		}
	}
}

func TestMerge_WatchingPercentNotDoubled(t *testing.T) {
	t.Parallel()

	m := NewMerger(NewFormatter(FixedClock(testNow)))
	u := sampleUser()
	r := m.Merge(&u, Watching{Session: LiveSession{ProgressPercent: "80%"}})

	if r[KeyProgressPercent] != "80%" {
		t.Errorf("progress_percent = %v, want 80%%", r[KeyProgressPercent])
	}
}

func TestMerge_WatchingEmptyPercent(t *testing.T) {
	t.Parallel()

	m := NewMerger(NewFormatter(FixedClock(testNow)))
	u := sampleUser()
	for _, raw := range []string{"", "  ", "%"} {
		r := m.Merge(&u, Watching{Session: LiveSession{ProgressPercent: raw}})
		if r[KeyProgressPercent] != "" {
			t.Errorf("progress_percent for %q = %v, want empty", raw, r[KeyProgressPercent])
		}
	}
}
