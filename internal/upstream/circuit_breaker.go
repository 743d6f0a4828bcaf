// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package upstream

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/config"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/logging"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/metrics"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/models/tautulli"
)

// ErrCircuitOpen is wrapped when the breaker rejects a call without
// contacting Tautulli.
var ErrCircuitOpen = errors.New("tautulli circuit breaker open")

const breakerName = "tautulli-api"

// CircuitBreakerClient wraps TautulliClient with a circuit breaker.
//
// The breaker uses wall-clock time for its interval and open timeout; tests
// exercise tripping, not recovery.
type CircuitBreakerClient struct {
	client *TautulliClient
	cb     *gobreaker.CircuitBreaker[any]
	name   string
}

// NewCircuitBreakerClient creates a client with breaker settings:
//   - at most 3 trial requests while half-open
//   - counts reset every minute while closed
//   - 2 minutes open before trying again
//   - trips at a 60% failure rate over at least 10 requests
func NewCircuitBreakerClient(cfg *config.TautulliConfig) *CircuitBreakerClient {
	client := NewTautulliClient(cfg)

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		// A caller that went away says nothing about Tautulli's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{client: client, cb: cb, name: breakerName}
}

// execute runs fn through the breaker and keeps the breaker metrics current.
func (cbc *CircuitBreakerClient) execute(fn func() (any, error)) (any, error) {
	result, err := cbc.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
		counts := cbc.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)
	return result, nil
}

// castResult type-asserts a breaker result.
func castResult[T any](result any, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// State reports the breaker state as "closed", "half-open" or "open".
func (cbc *CircuitBreakerClient) State() string {
	return stateToString(cbc.cb.State())
}

func (cbc *CircuitBreakerClient) Ping(ctx context.Context) error {
	_, err := cbc.execute(func() (any, error) {
		return nil, cbc.client.Ping(ctx)
	})
	return err
}

func (cbc *CircuitBreakerClient) GetUsersTable(ctx context.Context, query tautulli.UsersTableQuery) (*tautulli.TautulliUsersTable, error) {
	return castResult[tautulli.TautulliUsersTable](cbc.execute(func() (any, error) {
		return cbc.client.GetUsersTable(ctx, query)
	}))
}

func (cbc *CircuitBreakerClient) GetUser(ctx context.Context, userID string) (*tautulli.TautulliUser, error) {
	return castResult[tautulli.TautulliUser](cbc.execute(func() (any, error) {
		return cbc.client.GetUser(ctx, userID)
	}))
}

func (cbc *CircuitBreakerClient) GetUserWatchTimeStats(ctx context.Context, userID string, queryDays string) (*tautulli.TautulliUserWatchTimeStats, error) {
	return castResult[tautulli.TautulliUserWatchTimeStats](cbc.execute(func() (any, error) {
		return cbc.client.GetUserWatchTimeStats(ctx, userID, queryDays)
	}))
}

func (cbc *CircuitBreakerClient) GetActivity(ctx context.Context) (*tautulli.TautulliActivity, error) {
	return castResult[tautulli.TautulliActivity](cbc.execute(func() (any, error) {
		return cbc.client.GetActivity(ctx)
	}))
}
