// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package tautulli

// TautulliUsersTable is the get_users_table response.
type TautulliUsersTable struct {
	Response TautulliUsersTableResponse `json:"response"`
}

type TautulliUsersTableResponse struct {
	Envelope
	Data TautulliUsersTableData `json:"data"`
}

// TautulliUsersTableData is the DataTables-style page. Data is nil when the
// upstream omitted the row list or sent null, and non-nil (possibly empty)
// when a list was present.
type TautulliUsersTableData struct {
	RecordsTotal    FlexInt           `json:"recordsTotal"`
	RecordsFiltered FlexInt           `json:"recordsFiltered"`
	Draw            FlexInt           `json:"draw"`
	Data            []TautulliUserRow `json:"data"`
}

// Envelope exposes the response wrapper.
func (t *TautulliUsersTable) Envelope() *Envelope { return &t.Response.Envelope }

// TautulliUser is the get_user response.
type TautulliUser struct {
	Response TautulliUserResponse `json:"response"`
}

type TautulliUserResponse struct {
	Envelope
	Data *TautulliUserRow `json:"data"`
}

func (t *TautulliUser) Envelope() *Envelope { return &t.Response.Envelope }

// TautulliUserRow is one user as returned by get_users_table or get_user.
// The two endpoints name some fields differently (user vs username, plays
// vs total_plays, duration vs total_time_watched), so both spellings are
// decoded and resolved through the accessor methods.
type TautulliUserRow struct {
	UserID       FlexString `json:"user_id"`
	Username     FlexString `json:"username"`
	User         FlexString `json:"user"`
	FriendlyName FlexString `json:"friendly_name"`
	Email        FlexString `json:"email"`
	UserThumb    FlexString `json:"user_thumb"`

	IsActive FlexInt `json:"is_active"`
	IsAdmin  FlexInt `json:"is_admin"`

	TotalPlays       FlexInt `json:"total_plays"`
	Plays            FlexInt `json:"plays"`
	TotalTimeWatched FlexInt `json:"total_time_watched"` // minutes
	Duration         FlexInt `json:"duration"`           // seconds

	LastSeen   FlexInt    `json:"last_seen"` // epoch seconds
	LastPlayed FlexString `json:"last_played"`
	MediaType  FlexString `json:"media_type"`
}

// Name returns username, falling back to the users table "user" column.
func (r *TautulliUserRow) Name() string {
	if r.Username != "" {
		return r.Username.String()
	}
	return r.User.String()
}

// PlayCount returns total_plays, falling back to plays.
func (r *TautulliUserRow) PlayCount() int64 {
	if r.TotalPlays != 0 {
		return r.TotalPlays.Int64()
	}
	return r.Plays.Int64()
}

// WatchedMinutes returns total_time_watched, falling back to duration
// converted from seconds.
func (r *TautulliUserRow) WatchedMinutes() int64 {
	if r.TotalTimeWatched != 0 {
		return r.TotalTimeWatched.Int64()
	}
	return r.Duration.Int64() / 60
}

// TautulliUserWatchTimeStats is the get_user_watch_time_stats response.
type TautulliUserWatchTimeStats struct {
	Response TautulliUserWatchTimeStatsResponse `json:"response"`
}

type TautulliUserWatchTimeStatsResponse struct {
	Envelope
	Data []TautulliUserWatchTimeStatRow `json:"data"`
}

func (t *TautulliUserWatchTimeStats) Envelope() *Envelope { return &t.Response.Envelope }

type TautulliUserWatchTimeStatRow struct {
	QueryDays  FlexInt `json:"query_days"` // 0 means all time
	TotalTime  FlexInt `json:"total_time"` // seconds
	TotalPlays FlexInt `json:"total_plays"`
}

// AllTime returns the query_days == 0 row, if present.
func (t *TautulliUserWatchTimeStats) AllTime() (TautulliUserWatchTimeStatRow, bool) {
	for _, row := range t.Response.Data {
		if row.QueryDays == 0 {
			return row, true
		}
	}
	return TautulliUserWatchTimeStatRow{}, false
}
