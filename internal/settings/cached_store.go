// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package settings

import (
	"context"
	"time"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/cache"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/metrics"
)

const cacheKey = "settings"

// CachedStore serves Load from memory for a short TTL. Save writes through
// and refreshes the cached copy. Callers always receive their own copy.
type CachedStore struct {
	next  Store
	cache *cache.Cache[string, *Settings]
}

func NewCachedStore(next Store, ttl time.Duration) *CachedStore {
	return &CachedStore{
		next:  next,
		cache: cache.New[string, *Settings](ttl),
	}
}

func (s *CachedStore) Load(ctx context.Context) (*Settings, error) {
	if cached, ok := s.cache.Get(cacheKey); ok {
		metrics.SettingsCacheHits.Inc()
		return cached.Clone(), nil
	}
	metrics.SettingsCacheMisses.Inc()

	loaded, err := s.next.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cacheKey, loaded.Clone())
	return loaded, nil
}

func (s *CachedStore) Save(ctx context.Context, settings *Settings) error {
	if err := s.next.Save(ctx, settings); err != nil {
		s.cache.Delete(cacheKey)
		return err
	}
	s.cache.Set(cacheKey, settings.Clone())
	return nil
}

func (s *CachedStore) Close() error {
	s.cache.Clear()
	return s.next.Close()
}
