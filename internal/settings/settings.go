// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package settings

import (
	"context"
	"fmt"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/status"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/validation"
)

// Settings is the persisted document.
type Settings struct {
	Fields []status.FormatField `json:"fields" validate:"required,dive"`
}

// Defaults returns the settings a new installation starts with.
func Defaults() *Settings {
	return &Settings{Fields: status.DefaultFormatFields()}
}

// Clone returns a deep copy. FormatField holds only strings, so copying the
// slice is enough.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	fields := make([]status.FormatField, len(s.Fields))
	copy(fields, s.Fields)
	return &Settings{Fields: fields}
}

// Validate checks s and wraps any failure in status.ErrInvalidSettings.
func Validate(s *Settings) error {
	if s == nil {
		return fmt.Errorf("%w: fields is required", status.ErrInvalidSettings)
	}
	if verr := validation.ValidateStruct(s); verr != nil {
		return fmt.Errorf("%w: %s", status.ErrInvalidSettings, verr.Error())
	}
	return nil
}

// Store loads and saves Settings.
type Store interface {
	// Load returns the current settings, seeding defaults when none exist.
	Load(ctx context.Context) (*Settings, error)

	// Save validates and replaces the settings.
	Save(ctx context.Context, s *Settings) error

	Close() error
}

// normalize turns a stored document without a field list into an empty one.
func normalize(s *Settings) *Settings {
	if s.Fields == nil {
		s.Fields = []status.FormatField{}
	}
	return s
}
