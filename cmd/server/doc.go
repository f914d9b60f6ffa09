// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Command server runs the moodreel HTTP service.
//
// Start-up order:
//
//  1. Configuration: defaults, then config.yaml, then environment (koanf)
//  2. Logging: zerolog, json or console
//  3. Dataset: file or URL source, optional badger snapshot, lazy Store
//  4. Recommendation engine and, when enabled, the classifier client
//  5. chi router
//  6. suture tree: dataset warm-up, cache janitor, HTTP server
//
// SIGINT and SIGTERM cancel the tree, which shuts the HTTP server down
// gracefully within SERVER_SHUTDOWN_TIMEOUT.
//
// Example:
//
//	export DATASET_SOURCE=https://example.com/tmdb.csv
//	export DATASET_SNAPSHOT_PATH=/var/lib/moodreel/snapshot
//	export CLASSIFIER_ENABLED=true
//	export CLASSIFIER_URL=http://localhost:5000
//	./moodreel
package main
