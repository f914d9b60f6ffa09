// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package api is the HTTP surface of moodreel, built on chi.

Every JSON response uses the same envelope:

	{"status":"success","data":{...},"metadata":{"timestamp":"...","request_id":"...","query_time_ms":1}}
	{"status":"error","error":{"code":"VALIDATION_ERROR","message":"..."},"metadata":{...}}

Routes:

	GET  /api/health
	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /api/v1/emotions
	GET  /api/v1/emotions/{emotion}/message
	GET  /api/v1/recommend-movies/{emotion}?limit=8
	POST /api/v1/detect-emotion[?recommend=true]
	GET  /api/v1/dataset/status
	GET  /metrics

/api/recommend-movies/{emotion} and /api/detect-emotion are un-versioned
aliases of the v1 routes and share their rate limit.

Handlers depend on the small Recommender, Catalog and Classifier interfaces,
so tests can swap in fakes without loading a dataset.
*/
package api
