// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package tautulli

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestTautulliActivity_Unmarshal(t *testing.T) {
	t.Parallel()

	body := `{
		"response": {
			"result": "success",
			"message": null,
			"data": {
				"stream_count": "2",
				"sessions": [
					{"session_key": "12", "user_id": 1, "user": "alice", "media_type": "episode",
					 "title": "pilot", "parent_title": "Season 1", "grandparent_title": "the show",
					 "progress_percent": "42", "view_offset": 65000, "duration": "125000", "state": "playing"},
					{"session_key": 13, "user_id": "2", "media_type": "movie", "title": "heat",
					 "progress_percent": 7, "view_offset": null}
				]
			}
		}
	}`

	var activity TautulliActivity
	if err := json.Unmarshal([]byte(body), &activity); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	data := activity.Response.Data
	if data.StreamCount != 2 || len(data.Sessions) != 2 {
		t.Fatalf("stream_count = %d, sessions = %d", data.StreamCount, len(data.Sessions))
	}

	first := data.Sessions[0]
	if first.UserID != "1" || first.GrandparentTitle != "the show" {
		t.Errorf("first session = %+v", first)
	}
	if first.ViewOffset != 65000 || first.Duration != 125000 {
		t.Errorf("offsets = (%d, %d)", first.ViewOffset, first.Duration)
	}

	second := data.Sessions[1]
	if second.SessionKey != "13" || second.ProgressPercent != "7" || second.ViewOffset != 0 {
		t.Errorf("second session = %+v", second)
	}
}
