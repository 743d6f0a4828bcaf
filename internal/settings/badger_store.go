// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/logging"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/metrics"
)

const (
	badgerStoreName   = "badger"
	badgerSettingsKey = "format_settings"
)

// BadgerStore keeps settings as one JSON value in a badger database.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens (or creates) the database at path.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for settings: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// NewBadgerStoreFromDB wraps an already open database. Close closes it.
func NewBadgerStoreFromDB(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

func (s *BadgerStore) Load(ctx context.Context) (result *Settings, err error) {
	defer func() { metrics.RecordSettingsOperation(badgerStoreName, "load", err) }()

	var settings Settings
	found := true
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(badgerSettingsKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			found = false
			return nil
		}
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &settings)
		})
	})
	if err != nil {
		return nil, err
	}
	if found {
		return normalize(&settings), nil
	}

	defaults := Defaults()
	if err := s.put(defaults); err != nil {
		return nil, err
	}
	logging.Ctx(ctx).Info().Msg("Created default format settings in badger")
	return defaults, nil
}

func (s *BadgerStore) Save(ctx context.Context, settings *Settings) (err error) {
	defer func() { metrics.RecordSettingsOperation(badgerStoreName, "save", err) }()

	if err := Validate(settings); err != nil {
		return err
	}
	if err := s.put(settings); err != nil {
		return err
	}
	logging.Ctx(ctx).Info().Int("fields", len(settings.Fields)).Msg("Saved format settings")
	return nil
}

func (s *BadgerStore) put(settings *Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(badgerSettingsKey), data); err != nil {
			return fmt.Errorf("set settings: %w", err)
		}
		return nil
	})
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
