// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

// Package settings persists the ordered list of format fields.
//
// Two backends implement Store: FileStore keeps a pretty-printed JSON file
// (config/settings.json by default) and BadgerStore keeps the same JSON
// document under one key in an embedded badger database. Either one seeds
// the default status_message field the first time it is read.
//
// CachedStore sits in front of a backend so that a dashboard polling
// several users does not re-read the file for every request.
package settings
