// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package settings

import (
	"fmt"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/config"
)

// Backend names accepted in settings.store.
const (
	StoreFile   = "file"
	StoreBadger = "badger"
)

// NewStore opens the configured backend and puts a cache in front of it
// when cfg.CacheTTL is positive.
func NewStore(cfg *config.SettingsConfig) (Store, error) {
	var store Store
	switch cfg.Store {
	case StoreFile, "":
		store = NewFileStore(cfg.Path)
	case StoreBadger:
		bs, err := OpenBadgerStore(cfg.BadgerPath)
		if err != nil {
			return nil, err
		}
		store = bs
	default:
		return nil, fmt.Errorf("unknown settings store %q", cfg.Store)
	}

	if cfg.CacheTTL > 0 {
		return NewCachedStore(store, cfg.CacheTTL), nil
	}
	return store, nil
}
