// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/logging"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/metrics"
)

const fileStoreName = "file"

// FileStore keeps settings in a JSON file. Writes go to a temporary file in
// the same directory which is then renamed over the target, so readers
// never see a partial document.
type FileStore struct {
	path string
	mu   sync.RWMutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path is the settings file location.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load(ctx context.Context) (result *Settings, err error) {
	defer func() { metrics.RecordSettingsOperation(fileStoreName, "load", err) }()

	s.mu.RLock()
	data, err := os.ReadFile(s.path)
	s.mu.RUnlock()

	if errors.Is(err, fs.ErrNotExist) {
		return s.seed(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", s.path, err)
	}
	return normalize(&settings), nil
}

// seed writes the defaults unless another goroutine got there first.
func (s *FileStore) seed(ctx context.Context) (*Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read settings file: %w", err)
		}
		var settings Settings
		if err := json.Unmarshal(data, &settings); err != nil {
			return nil, fmt.Errorf("parse settings file %s: %w", s.path, err)
		}
		return normalize(&settings), nil
	}

	defaults := Defaults()
	if err := s.writeLocked(defaults); err != nil {
		return nil, err
	}
	logging.Ctx(ctx).Info().Str("path", s.path).Msg("Created default format settings")
	return defaults, nil
}

func (s *FileStore) Save(ctx context.Context, settings *Settings) (err error) {
	defer func() { metrics.RecordSettingsOperation(fileStoreName, "save", err) }()

	if err := Validate(settings); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeLocked(settings); err != nil {
		return err
	}
	logging.Ctx(ctx).Info().Str("path", s.path).Int("fields", len(settings.Fields)).Msg("Saved format settings")
	return nil
}

// writeLocked replaces the file atomically. The caller holds mu.
func (s *FileStore) writeLocked(settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write temp settings file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync temp settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp settings file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp settings file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		cleanup()
		return fmt.Errorf("replace settings file: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
