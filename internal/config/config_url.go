// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// CleanTautulliURL strips trailing slashes and a trailing /api/v2 so that
// both "http://host:8181/" and "http://host:8181/api/v2" work as base URLs.
func CleanTautulliURL(raw string) string {
	u := strings.TrimSpace(raw)
	u = strings.TrimRight(u, "/")
	u = strings.TrimSuffix(u, "/api/v2")
	return u
}

// validateHTTPURL checks scheme and host. A path is allowed so Tautulli can
// sit behind a reverse proxy under a sub-path; query strings are not.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %q", fieldName, parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}
	if parsedURL.RawQuery != "" || parsedURL.Fragment != "" {
		return fmt.Errorf("%s should not contain query parameters or fragments", fieldName)
	}
	return nil
}
