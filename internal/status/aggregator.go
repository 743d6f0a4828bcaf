// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package status

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/logging"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/metrics"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/models/tautulli"
)

// Source is the subset of the Tautulli API the aggregator calls.
type Source interface {
	GetUsersTable(ctx context.Context, query tautulli.UsersTableQuery) (*tautulli.TautulliUsersTable, error)
	GetUser(ctx context.Context, userID string) (*tautulli.TautulliUser, error)
	GetActivity(ctx context.Context) (*tautulli.TautulliActivity, error)
	GetUserWatchTimeStats(ctx context.Context, userID string, queryDays string) (*tautulli.TautulliUserWatchTimeStats, error)
}

// Options controls which optional upstream calls the aggregator makes.
type Options struct {
	// LiveSessions fetches get_activity and merges running streams.
	LiveSessions bool

	// WatchStats fetches all-time watch totals on single-user lookups.
	WatchStats bool

	// Clock defaults to the wall clock.
	Clock Clock
}

// Aggregator sequences the upstream calls for a request and enriches the
// returned rows.
type Aggregator struct {
	source Source
	opts   Options
	merger Merger
}

func NewAggregator(source Source, opts Options) *Aggregator {
	return &Aggregator{
		source: source,
		opts:   opts,
		merger: NewMerger(NewFormatter(opts.Clock)),
	}
}

// UserPage is an enriched users table page.
type UserPage struct {
	Records         []Record
	RecordsTotal    int64
	RecordsFiltered int64
}

// ListUsers fetches one users table page and enriches it. Sorting, paging
// and searching are left to Tautulli; row order is preserved.
func (a *Aggregator) ListUsers(ctx context.Context, query tautulli.UsersTableQuery, fields []FormatField) (*UserPage, error) {
	var (
		table    *tautulli.TautulliUsersTable
		activity *tautulli.TautulliActivity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		table, err = a.source.GetUsersTable(gctx, query)
		return upstreamError("get_users_table", err)
	})
	if a.opts.LiveSessions {
		g.Go(func() error {
			var err error
			activity, err = a.source.GetActivity(gctx)
			return upstreamError("get_activity", err)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if table == nil {
		return nil, fmt.Errorf("get_users_table: %w", ErrInvalidPayloadShape)
	}
	records, err := a.Enrich(ctx, table.Response.Data.Data, SessionIndexFromActivity(activity), fields)
	if err != nil {
		return nil, err
	}

	return &UserPage{
		Records:         records,
		RecordsTotal:    table.Response.Data.RecordsTotal.Int64(),
		RecordsFiltered: table.Response.Data.RecordsFiltered.Int64(),
	}, nil
}

// GetUser fetches and enriches a single user. With WatchStats enabled the
// all-time totals are fetched once get_user has resolved the user id.
func (a *Aggregator) GetUser(ctx context.Context, userID string, fields []FormatField) (Record, error) {
	var (
		user     *tautulli.TautulliUser
		activity *tautulli.TautulliActivity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = a.source.GetUser(gctx, userID)
		return upstreamError("get_user", err)
	})
	if a.opts.LiveSessions {
		g.Go(func() error {
			var err error
			activity, err = a.source.GetActivity(gctx)
			return upstreamError("get_activity", err)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if user == nil || user.Response.Data == nil {
		return nil, fmt.Errorf("get_user: %w", ErrInvalidPayloadShape)
	}
	row := user.Response.Data

	if a.opts.WatchStats {
		resolved := row.UserID.String()
		if resolved == "" {
			resolved = userID
		}
		stats, err := a.source.GetUserWatchTimeStats(ctx, resolved, "0")
		if err != nil {
			return nil, upstreamError("get_user_watch_time_stats", err)
		}
		if stats == nil {
			return nil, fmt.Errorf("get_user_watch_time_stats: %w", ErrInvalidPayloadShape)
		}
		if total, ok := stats.AllTime(); ok {
			row.TotalPlays = total.TotalPlays
			row.TotalTimeWatched = tautulli.FlexInt(total.TotalTime.Int64() / 60)
		}
	}

	records, err := a.Enrich(ctx, []tautulli.TautulliUserRow{*row}, SessionIndexFromActivity(activity), fields)
	if err != nil {
		return nil, err
	}
	return records[0], nil
}

// Enrich merges each row with its live session and renders the format
// fields. A nil row list is a payload shape error; an empty one is not.
func (a *Aggregator) Enrich(ctx context.Context, rows []tautulli.TautulliUserRow, sessions *SessionIndex, fields []FormatField) ([]Record, error) {
	if rows == nil {
		return nil, ErrInvalidPayloadShape
	}

	records := make([]Record, 0, len(rows))
	for i := range rows {
		user := UserRecordFromRow(&rows[i])
		record := a.merger.Merge(&user, sessions.Lookup(user.UserID))
		records = append(records, ApplyFormatFields(fields, record))
	}

	metrics.RecordsEnriched.Add(float64(len(records)))
	metrics.LiveSessions.Set(float64(sessions.Len()))
	logging.Ctx(ctx).Debug().
		Int("rows", len(records)).
		Int("live_sessions", sessions.Len()).
		Int("format_fields", len(fields)).
		Msg("Enriched user rows")

	return records, nil
}

func upstreamError(cmd string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrUpstreamUnavailable, cmd, err)
}
