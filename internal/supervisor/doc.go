// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package supervisor runs moodreel's long-lived services under a suture tree.

	moodreel (root)
	├── data-layer
	│   ├── dataset-warmup   (one shot, never restarted)
	│   └── cache-janitor    (periodic)
	└── api-layer
	    └── http-server

Services return suture.ErrDoNotRestart when they finish on purpose. Any other
error restarts the service with suture's failure backoff.

Usage:

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{})
	tree.AddDataService(services.NewDatasetService(store, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, 10*time.Second, logger))
	err := tree.Serve(ctx)
*/
package supervisor
