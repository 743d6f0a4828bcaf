// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package status

import "strings"

// Merger combines a user record with its presence into a flat Record.
type Merger struct {
	formatter Formatter
}

func NewMerger(f Formatter) Merger {
	return Merger{formatter: f}
}

// Merge builds the record for u. A live session takes precedence over the
// stored last_played and media_type and marks the user as online.
func (m Merger) Merge(u *UserRecord, p Presence) Record {
	r := Record{
		KeyUserID:           u.UserID,
		KeyUsername:         u.Username,
		KeyFriendlyName:     u.FriendlyName,
		KeyEmail:            u.Email,
		KeyIsActive:         u.IsActive,
		KeyIsAdmin:          u.IsAdmin,
		KeyTotalPlays:       u.TotalPlays,
		KeyTotalTimeWatched: u.TotalTimeWatched,
		KeyWatchTime:        WatchTimeSpan(u.TotalTimeWatched),
		KeyLastSeen:         u.LastSeen,
		KeyMinutes:          m.formatter.MinutesSince(u.LastSeen),
	}

	switch p := p.(type) {
	case Watching:
		m.watching(r, &p.Session)
	case Idle:
		m.idle(r, u)
	default:
		// nil presence
		m.idle(r, u)
	}
	return r
}

func (m Merger) watching(r Record, s *LiveSession) {
	r[KeyIsWatching] = WatchingLabel
	r[KeyLastPlayed] = TitleCase(s.CurrentMedia)
	r[KeyMediaType] = s.MediaType
	r[KeyProgressPercent] = percentLabel(s.ProgressPercent)
	r[KeyProgressTime] = DurationPair(s.ViewOffset, s.Duration)
	r[KeyLastSeenFormatted] = OnlineMarker
}

func (m Merger) idle(r Record, u *UserRecord) {
	lastPlayed := NothingPlayed
	if u.LastPlayed != "" {
		lastPlayed = TitleCase(u.LastPlayed)
	}
	r[KeyIsWatching] = WatchedLabel
	r[KeyLastPlayed] = lastPlayed
	r[KeyMediaType] = TitleCase(u.MediaType)
	r[KeyProgressPercent] = ""
	r[KeyProgressTime] = ""
	r[KeyLastSeenFormatted] = m.formatter.RelativeTime(u.LastSeen)
}

// percentLabel appends a single "%" to a progress value, or returns "" when
// there is none.
func percentLabel(raw string) string {
	p := strings.TrimSuffix(strings.TrimSpace(raw), "%")
	if strings.TrimSpace(p) == "" {
		return ""
	}
	return p + "%"
}
