// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package upstream

import (
	"context"
	"net/url"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/models/tautulli"
)

// GetUsersTable fetches one page of the users table. Ordering, search and
// paging are applied by Tautulli.
func (c *TautulliClient) GetUsersTable(ctx context.Context, query tautulli.UsersTableQuery) (*tautulli.TautulliUsersTable, error) {
	return callTautulliAPI[tautulli.TautulliUsersTable](ctx, c, "get_users_table", query.Values())
}

// GetUser fetches a single user.
func (c *TautulliClient) GetUser(ctx context.Context, userID string) (*tautulli.TautulliUser, error) {
	params := url.Values{}
	params.Set("user_id", userID)
	return callTautulliAPI[tautulli.TautulliUser](ctx, c, "get_user", params)
}

// GetUserWatchTimeStats fetches watch totals for userID. queryDays is a
// comma separated list of day windows; "0" is all time.
func (c *TautulliClient) GetUserWatchTimeStats(ctx context.Context, userID string, queryDays string) (*tautulli.TautulliUserWatchTimeStats, error) {
	params := url.Values{}
	params.Set("user_id", userID)
	if queryDays != "" {
		params.Set("query_days", queryDays)
	}
	return callTautulliAPI[tautulli.TautulliUserWatchTimeStats](ctx, c, "get_user_watch_time_stats", params)
}
