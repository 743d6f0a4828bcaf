// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package status

import (
	"strings"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/models/tautulli"
)

// LiveSession is a stream in progress for one user.
type LiveSession struct {
	UserID string

	// CurrentMedia is the displayable title, "Show - Episode" for episodes.
	CurrentMedia string

	// MediaType is already title-cased.
	MediaType string

	// ProgressPercent is the raw upstream value, possibly ending in "%".
	ProgressPercent string

	// ViewOffset and Duration are in seconds.
	ViewOffset int64
	Duration   int64
}

// LiveSessionFromActivity converts a get_activity session. Tautulli reports
// offsets in milliseconds.
func LiveSessionFromActivity(s *tautulli.TautulliActivitySession) LiveSession {
	return LiveSession{
		UserID:          strings.TrimSpace(s.UserID.String()),
		CurrentMedia:    currentMedia(s),
		MediaType:       TitleCase(s.MediaType.String()),
		ProgressPercent: strings.TrimSpace(s.ProgressPercent.String()),
		ViewOffset:      s.ViewOffset.Int64() / 1000,
		Duration:        s.Duration.Int64() / 1000,
	}
}

func currentMedia(s *tautulli.TautulliActivitySession) string {
	title := s.Title.String()
	switch {
	case s.GrandparentTitle != "" && title != "":
		return s.GrandparentTitle.String() + " - " + title
	case s.ParentTitle != "" && title != "":
		return s.ParentTitle.String() + " - " + title
	case title != "":
		return title
	default:
		return s.FullTitle.String()
	}
}

// Presence is either Watching or Idle. The unexported method closes the set.
type Presence interface {
	isPresence()
}

// Watching carries the live session of a user who is streaming.
type Watching struct {
	Session LiveSession
}

// Idle means no live session matched the user.
type Idle struct{}

func (Watching) isPresence() {}
func (Idle) isPresence() {}

// SessionIndex is the per-request user_id -> LiveSession join table.
// Sessions live in one slice; the map holds positions into it.
type SessionIndex struct {
	sessions []LiveSession
	byUser   map[string]int
}

// NewSessionIndex indexes sessions by user id. Sessions without a user id
// are kept out of the index. When a user has several streams the first one
// in upstream order wins.
func NewSessionIndex(sessions []LiveSession) *SessionIndex {
	ix := &SessionIndex{
		sessions: sessions,
		byUser:   make(map[string]int, len(sessions)),
	}
	for i := range sessions {
		id := sessions[i].UserID
		if id == "" {
			continue
		}
		if _, seen := ix.byUser[id]; !seen {
			ix.byUser[id] = i
		}
	}
	return ix
}

// SessionIndexFromActivity builds the index from a get_activity response.
// A nil response yields an empty index.
func SessionIndexFromActivity(activity *tautulli.TautulliActivity) *SessionIndex {
	if activity == nil {
		return NewSessionIndex(nil)
	}
	raw := activity.Response.Data.Sessions
	sessions := make([]LiveSession, 0, len(raw))
	for i := range raw {
		sessions = append(sessions, LiveSessionFromActivity(&raw[i]))
	}
	return NewSessionIndex(sessions)
}

// Lookup returns the presence of userID. An empty id never matches.
// A nil index behaves as an empty one.
func (ix *SessionIndex) Lookup(userID string) Presence {
	if ix == nil || userID == "" {
		return Idle{}
	}
	if i, ok := ix.byUser[userID]; ok {
		return Watching{Session: ix.sessions[i]}
	}
	return Idle{}
}

// Len is the number of users with a live session.
func (ix *SessionIndex) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.byUser)
}
