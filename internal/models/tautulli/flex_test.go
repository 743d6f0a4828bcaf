// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package tautulli

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want FlexInt
	}{
		{"number", `42`, 42},
		{"negative", `-7`, -7},
		{"float truncates", `12.9`, 12},
		{"numeric string", `"1700000000"`, 1700000000},
		{"padded string", `" 15 "`, 15},
		{"float string", `"3.5"`, 3},
		{"empty string", `""`, 0},
		{"garbage string", `"soon"`, 0},
		{"null", `null`, 0},
		{"true", `true`, 1},
		{"false", `false`, 0},
		{"object", `{"a":1}`, 0},
		{"array", `[1,2]`, 0},
		{"huge float", `1e300`, 0},
		{"huge float string", `"1e300"`, 0},
		{"huge negative", `"-1e300"`, 0},
		{"overflowing integer string", `"99999999999999999999"`, 0},
		{"large in range", `"1.5e9"`, 1500000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got struct {
				V FlexInt `json:"v"`
			}
			if err := json.Unmarshal([]byte(`{"v":`+tt.in+`}`), &got); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.in, err)
			}
			if got.V != tt.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tt.in, got.V, tt.want)
			}
		})
	}
}

func TestFlexString_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want FlexString
	}{
		{`"alice"`, "alice"},
		{`12345`, "12345"},
		{`true`, "true"},
		{`null`, ""},
		{`{"x":"y"}`, ""},
		{`[]`, ""},
	}
	for _, tt := range tests {
		var got struct {
			V FlexString `json:"v"`
		}
		if err := json.Unmarshal([]byte(`{"v":`+tt.in+`}`), &got); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", tt.in, err)
		}
		if got.V != tt.want {
			t.Errorf("Unmarshal(%s) = %q, want %q", tt.in, got.V, tt.want)
		}
	}
}

func TestFlexInt_Absent(t *testing.T) {
	t.Parallel()

	var got struct {
		V FlexInt    `json:"v"`
		S FlexString `json:"s"`
	}
	if err := json.Unmarshal([]byte(`{}`), &got); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if got.V != 0 || got.S != "" {
		t.Errorf("absent fields = (%d, %q), want (0, \"\")", got.V, got.S)
	}
}

func TestEnvelope_Status(t *testing.T) {
	t.Parallel()

	msg := "Invalid apikey"
	e := Envelope{Result: "error", Message: &msg}
	result, message := e.Status()
	if result != "error" || message != "Invalid apikey" {
		t.Errorf("Status() = (%q, %q)", result, message)
	}
	if e.Succeeded() {
		t.Error("Succeeded() = true for error envelope")
	}

	ok := Envelope{Result: "success"}
	if _, message := ok.Status(); message != "" {
		t.Errorf("Status() message = %q, want empty", message)
	}
}
