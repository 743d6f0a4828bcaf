// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package upstream

import (
	"context"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/models/tautulli"
)

// GetActivity fetches every stream currently in progress.
func (c *TautulliClient) GetActivity(ctx context.Context) (*tautulli.TautulliActivity, error) {
	return callTautulliAPI[tautulli.TautulliActivity](ctx, c, "get_activity", nil)
}
