// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package middleware provides chi-compatible HTTP middleware.

  - RequestID: X-Request-ID propagation plus logging context
  - AccessLog: one structured log line per request
  - PrometheusMetrics: request count, latency and in-flight gauge

The router installs them in this order, around chi's RealIP and Recoverer:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
