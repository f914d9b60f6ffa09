// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package classifier is the HTTP client for the external emotion-recognition
// service. The service owns the model; this side only forwards an image and
// reads back per-emotion scores.
//
// Endpoints used:
//
//	GET  {url}/health
//	POST {url}/detect   {"image": "<base64>"}
//	  -> {"dominantEmotion": "happy", "emotions": {"happy": 0.91, ...}}
//
// Outbound calls pass a token-bucket limiter (golang.org/x/time/rate) and a
// circuit breaker. 4xx answers return ErrRejected and do not trip the breaker.
package classifier
