// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package tautulli

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// FlexInt decodes a JSON number, numeric string, boolean or null.
// Values that cannot be read as a number decode to 0 instead of failing.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	*f = 0
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}

	switch b[0] {
	case 'n', '{', '[':
		return nil
	case 't':
		*f = 1
		return nil
	case 'f':
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil //nolint:nilerr // malformed strings count as absent
		}
		*f = parseFlexInt(s)
		return nil
	default:
		*f = parseFlexInt(string(b))
		return nil
	}
}

func parseFlexInt(s string) FlexInt {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FlexInt(n)
	}
	v, err := strconv.ParseFloat(s, 64)
	// Values outside int64 have no defined conversion; treat them as garbage.
	if err != nil || math.IsNaN(v) || v < math.MinInt64 || v >= math.MaxInt64 {
		return 0
	}
	return FlexInt(math.Trunc(v))
}

// Int64 returns the decoded value.
func (f FlexInt) Int64() int64 { return int64(f) }

// FlexString decodes a JSON string, or the literal text of a number or
// boolean. null, objects and arrays decode to "".
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	*f = ""
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}

	switch b[0] {
	case 'n', '{', '[':
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil //nolint:nilerr // malformed strings count as absent
		}
		*f = FlexString(s)
		return nil
	default:
		*f = FlexString(b)
		return nil
	}
}

func (f FlexString) String() string { return string(f) }

// Envelope is the common response wrapper fields.
type Envelope struct {
	Result  string  `json:"result"`
	Message *string `json:"message,omitempty"`
}

// Status returns the result flag and the message, "" when absent.
func (e *Envelope) Status() (result, message string) {
	if e.Message != nil {
		message = *e.Message
	}
	return e.Result, message
}

// Succeeded reports whether Tautulli answered result=success.
func (e *Envelope) Succeeded() bool {
	return e.Result == "success"
}
