// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package config loads Moodreel configuration with Koanf.

Precedence, lowest to highest: built-in defaults, an optional YAML file
(CONFIG_PATH, ./config.yaml, /etc/moodreel/config.yaml), then environment
variables.

Example config.yaml:

	server:
	  port: 5000
	dataset:
	  source: https://example.org/tmdb.csv
	  delimiter: ","
	  snapshot_path: /var/lib/moodreel/snapshot
	recommend:
	  policy: weighted
	  default_limit: 8
	classifier:
	  enabled: true
	  url: http://classifier:5001

Only environment variables listed in envMappings are read; anything else in the
environment is ignored. CORS_ORIGINS accepts a comma-separated list.
*/
package config
