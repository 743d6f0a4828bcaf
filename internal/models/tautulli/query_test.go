// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package tautulli

import "testing"

func TestUsersTableQueryValues(t *testing.T) {
	q := DefaultUsersTableQuery()
	q.Search = "ali ce"
	q.Start = 20

	v := q.Values()
	want := map[string]string{
		"order_column": "friendly_name",
		"order_dir":    "asc",
		"search":       "ali ce",
		"start":        "20",
		"length":       "10",
	}
	for k, w := range want {
		if got := v.Get(k); got != w {
			t.Errorf("%s = %q, want %q", k, got, w)
		}
	}
	if len(v) != len(want) {
		t.Errorf("Values() has %d keys, want %d", len(v), len(want))
	}
}
