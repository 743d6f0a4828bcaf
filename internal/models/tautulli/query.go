// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package tautulli

import (
	"net/url"
	"strconv"
)

// UsersTableQuery holds the get_users_table parameters passed through
// from the caller unchanged.
type UsersTableQuery struct {
	OrderColumn string `validate:"omitempty,max=64,orderColumn"`
	OrderDir    string `validate:"omitempty,oneof=asc desc"`
	Search      string `validate:"max=256"`
	Start       int    `validate:"min=0"`
	Length      int    `validate:"min=1,max=10000"`
}

// DefaultUsersTableQuery mirrors the dashboard defaults.
func DefaultUsersTableQuery() UsersTableQuery {
	return UsersTableQuery{
		OrderColumn: "friendly_name",
		OrderDir:    "asc",
		Length:      10,
	}
}

// Values encodes the query as Tautulli URL parameters.
func (q *UsersTableQuery) Values() url.Values {
	v := url.Values{}
	v.Set("order_column", q.OrderColumn)
	v.Set("order_dir", q.OrderDir)
	v.Set("search", q.Search)
	v.Set("start", strconv.Itoa(q.Start))
	v.Set("length", strconv.Itoa(q.Length))
	return v
}
