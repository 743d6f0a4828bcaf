// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

/*
Package supervisor runs the long-lived parts of the service under a suture v4
supervisor tree.

	RootSupervisor ("tautulli-user-api")
	├── UpstreamSupervisor ("upstream-layer")
	│   └── ProbeService          periodic Tautulli connectivity check
	└── APISupervisor ("api-layer")
	    └── HTTPServerService     the HTTP listener

A failing probe loop is restarted with backoff without touching the HTTP
listener, and the reverse. Supervisor events are logged through sutureslog
into the zerolog pipeline (see logging.NewSlogLogger).

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddUpstreamService(services.NewProbeService(state, client, interval, timeout))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	return tree.Serve(ctx)
*/
package supervisor
