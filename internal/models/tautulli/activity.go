// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package tautulli

// TautulliActivity is the get_activity response.
type TautulliActivity struct {
	Response TautulliActivityResponse `json:"response"`
}

type TautulliActivityResponse struct {
	Envelope
	Data TautulliActivityData `json:"data"`
}

func (t *TautulliActivity) Envelope() *Envelope { return &t.Response.Envelope }

type TautulliActivityData struct {
	StreamCount FlexInt                   `json:"stream_count"`
	Sessions    []TautulliActivitySession `json:"sessions"`
}

// TautulliActivitySession is one stream in progress. view_offset and
// duration are reported by Tautulli in milliseconds.
type TautulliActivitySession struct {
	SessionKey   FlexString `json:"session_key"`
	UserID       FlexString `json:"user_id"`
	User         FlexString `json:"user"`
	FriendlyName FlexString `json:"friendly_name"`

	MediaType        FlexString `json:"media_type"`
	Title            FlexString `json:"title"`
	ParentTitle      FlexString `json:"parent_title"`
	GrandparentTitle FlexString `json:"grandparent_title"`
	FullTitle        FlexString `json:"full_title"`

	State           FlexString `json:"state"`
	ProgressPercent FlexString `json:"progress_percent"`
	ViewOffset      FlexInt    `json:"view_offset"`
	Duration        FlexInt    `json:"duration"`
}
