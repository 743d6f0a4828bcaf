// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package status

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Clock supplies the current time. Tests inject a fixed clock.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// Formatter computes the time-dependent display fields.
type Formatter struct {
	clock Clock
}

// NewFormatter returns a Formatter reading time from clock, or the wall
// clock when clock is nil.
func NewFormatter(clock Clock) Formatter {
	if clock == nil {
		clock = SystemClock
	}
	return Formatter{clock: clock}
}

// Now returns the formatter's current time.
func (f Formatter) Now() time.Time {
	if f.clock == nil {
		return time.Now()
	}
	return f.clock.Now()
}

// RelativeTime renders how long ago epochSeconds was: "Never", "Just Now",
// or "<n> Minute(s)/Hour(s)/Day(s) Ago". A zero timestamp means never seen.
// Timestamps in the future count as "Just Now".
func (f Formatter) RelativeTime(epochSeconds int64) string {
	if epochSeconds <= 0 {
		return "Never"
	}

	elapsed := f.Now().Unix() - epochSeconds
	switch {
	case elapsed < 60:
		return "Just Now"
	case elapsed < 3600:
		return agoString(elapsed/60, "Minute")
	case elapsed < 86400:
		return agoString(elapsed/3600, "Hour")
	default:
		return agoString(elapsed/86400, "Day")
	}
}

func agoString(n int64, unit string) string {
	if n != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s Ago", n, unit)
}

// MinutesSince returns whole minutes elapsed since epochSeconds, rounded
// down, or 0 when there is no timestamp.
func (f Formatter) MinutesSince(epochSeconds int64) int64 {
	if epochSeconds <= 0 {
		return 0
	}
	return floorDiv(f.Now().Unix()-epochSeconds, 60)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// TitleCase upper-cases the first letter of every whitespace-delimited
// word and leaves the rest of each word untouched, so "spider-man" becomes
// "Spider-man".
func TitleCase(s string) string {
	if s == "" {
		return ""
	}
	// A Caser keeps state and must not be shared between goroutines.
	caser := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	b.Grow(len(s))
	wordStart := true
	for i, r := range s {
		switch {
		case unicode.IsSpace(r):
			wordStart = true
			b.WriteRune(r)
		case wordStart:
			wordStart = false
			_, size := utf8.DecodeRuneInString(s[i:])
			b.WriteString(caser.String(s[i : i+size]))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DurationPair renders an offset and a total, both in seconds, as
// "m:ss / m:ss".
func DurationPair(offsetSeconds, totalSeconds int64) string {
	return clockString(offsetSeconds) + " / " + clockString(totalSeconds)
}

func clockString(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// NoWatchTime is returned by WatchTimeSpan when nothing was watched.
const NoWatchTime = "No watch time recorded"

// WatchTimeSpan renders a minute total as "1 day, 2 hours, 3 minutes",
// omitting zero components.
func WatchTimeSpan(totalMinutes int64) string {
	if totalMinutes <= 0 {
		return NoWatchTime
	}

	days := totalMinutes / 1440
	hours := (totalMinutes % 1440) / 60
	minutes := totalMinutes % 60

	parts := make([]string, 0, 3)
	for _, c := range []struct {
		n    int64
		unit string
	}{{days, "day"}, {hours, "hour"}, {minutes, "minute"}} {
		if c.n == 0 {
			continue
		}
		part := strconv.FormatInt(c.n, 10) + " " + c.unit
		if c.n != 1 {
			part += "s"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}
