// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package status

import (
	"strings"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/models/tautulli"
)

// Keys of a merged record.
const (
	KeyUserID            = "user_id"
	KeyUsername          = "username"
	KeyFriendlyName      = "friendly_name"
	KeyEmail             = "email"
	KeyIsActive          = "is_active"
	KeyIsAdmin           = "is_admin"
	KeyTotalPlays        = "total_plays"
	KeyTotalTimeWatched  = "total_time_watched"
	KeyWatchTime         = "watch_time"
	KeyLastSeen          = "last_seen"
	KeyLastPlayed        = "last_played"
	KeyMediaType         = "media_type"
	KeyIsWatching        = "is_watching"
	KeyProgressPercent   = "progress_percent"
	KeyProgressTime      = "progress_time"
	KeyLastSeenFormatted = "last_seen_formatted"
	KeyMinutes           = "minutes"
)

// Fixed display values.
const (
	WatchingLabel = "Watching"
	WatchedLabel  = "Watched"
	OnlineMarker  = "Online Now"
	NothingPlayed = "Nothing"
)

// UserRecord is one upstream user row with defaults applied.
type UserRecord struct {
	UserID       string
	Username     string
	FriendlyName string
	Email        string
	IsActive     int64
	IsAdmin      int64
	TotalPlays   int64

	// TotalTimeWatched is in minutes.
	TotalTimeWatched int64

	// LastSeen is epoch seconds, 0 when never seen.
	LastSeen   int64
	LastPlayed string
	MediaType  string
}

// UserRecordFromRow copies the fields the pipeline uses out of a Tautulli
// row. Absent values are already 0 or "" thanks to the flex types.
func UserRecordFromRow(row *tautulli.TautulliUserRow) UserRecord {
	return UserRecord{
		UserID:           strings.TrimSpace(row.UserID.String()),
		Username:         row.Name(),
		FriendlyName:     row.FriendlyName.String(),
		Email:            row.Email.String(),
		IsActive:         row.IsActive.Int64(),
		IsAdmin:          row.IsAdmin.Int64(),
		TotalPlays:       row.PlayCount(),
		TotalTimeWatched: row.WatchedMinutes(),
		LastSeen:         row.LastSeen.Int64(),
		LastPlayed:       row.LastPlayed.String(),
		MediaType:        row.MediaType.String(),
	}
}

// Record is a flat, template-ready view of one user. Values are string or
// int64.
type Record map[string]any

// Text returns the template rendering of key.
func (r Record) Text(key string) string {
	return Stringify(r[key])
}
