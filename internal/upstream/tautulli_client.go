// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/config"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/logging"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/metrics"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/models/tautulli"
)

// maxErrorBodySize caps how much of a non-200 body is read into an error.
const maxErrorBodySize = 64 * 1024

var (
	// ErrHTTPStatus is wrapped by errors for non-200 upstream responses.
	ErrHTTPStatus = errors.New("unexpected HTTP status")

	// ErrAPIFailure is wrapped when the envelope result is not "success".
	ErrAPIFailure = errors.New("tautulli API returned failure")
)

// readBodyForError reads at most maxErrorBodySize bytes of r.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// TautulliClient talks to one Tautulli instance. Safe for concurrent use.
type TautulliClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	cfg     config.TautulliConfig
}

// NewTautulliClient builds a client from cfg. cfg.URL must already be
// cleaned (no trailing slash, no /api/v2 suffix).
func NewTautulliClient(cfg *config.TautulliConfig) *TautulliClient {
	c := &TautulliClient{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.APIKey,
		// Deadlines come from the request context; see timeoutFor.
		client: &http.Client{},
		cfg:    *cfg,
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return c
}

// timeoutFor returns the deadline for cmd, 0 meaning none.
func (c *TautulliClient) timeoutFor(cmd string) time.Duration {
	return c.cfg.TimeoutFor(cmd)
}

// enveloped is implemented by every decoded Tautulli response.
type enveloped interface {
	Envelope() *tautulli.Envelope
}

// do performs one GET for cmd and returns the open response. The caller
// closes the body and must call cancel once done with it.
func (c *TautulliClient) do(ctx context.Context, cmd string, params url.Values) (resp *http.Response, cancel context.CancelFunc, err error) {
	cancel = func() {}
	if d := c.timeoutFor(cmd); d > 0 {
		ctx, cancel = context.WithTimeout(ctx, d)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			cancel()
			return nil, nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("apikey", c.apiKey)
	params.Set("cmd", cmd)
	reqURL := c.baseURL + "/api/v2?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err = c.client.Do(req)
	if err != nil {
		cancel()
		// url.Error embeds the request URL, and with it the API key.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	return resp, cancel, nil
}

// callTautulliAPI runs cmd and decodes the response into T. Non-200
// statuses, decode failures and non-success envelopes are errors.
func callTautulliAPI[T any](ctx context.Context, c *TautulliClient, cmd string, params url.Values) (result *T, err error) {
	start := time.Now()
	statusCode := 0
	defer func() {
		metrics.RecordUpstreamRequest(cmd, time.Since(start), err)
		logger := logging.Ctx(ctx)
		// params carries the API key by now; log only the command.
		if err != nil {
			logger.Warn().Err(err).Str("cmd", cmd).Int("status", statusCode).Dur("duration", time.Since(start)).Msg("Tautulli request failed")
			return
		}
		logger.Debug().Str("cmd", cmd).Int("status", statusCode).Dur("duration", time.Since(start)).Msg("Tautulli request")
	}()

	resp, cancel, err := c.do(ctx, cmd, params)
	if err != nil {
		return nil, fmt.Errorf("failed to make %s request: %w", cmd, err)
	}
	defer cancel()
	defer resp.Body.Close()
	statusCode = resp.StatusCode

	if resp.StatusCode != http.StatusOK {
		body := readBodyForError(resp.Body)
		return nil, fmt.Errorf("%s request failed with status %d: %w: %s", cmd, resp.StatusCode, ErrHTTPStatus, strings.TrimSpace(string(body)))
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", cmd, err)
	}

	if e, ok := any(&out).(enveloped); ok {
		if env := e.Envelope(); !env.Succeeded() {
			_, msg := env.Status()
			return nil, fmt.Errorf("%s request failed: %w: %s", cmd, ErrAPIFailure, msg)
		}
	}
	return &out, nil
}

// Ping calls the arnold command. Any 200 response counts as reachable.
func (c *TautulliClient) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { metrics.RecordUpstreamRequest("arnold", time.Since(start), err) }()

	resp, cancel, err := c.do(ctx, "arnold", nil)
	if err != nil {
		return fmt.Errorf("failed to ping Tautulli: %w", err)
	}
	defer cancel()
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Tautulli ping failed with status %d: %w", resp.StatusCode, ErrHTTPStatus)
	}
	return nil
}
