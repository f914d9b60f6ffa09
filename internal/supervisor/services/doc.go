// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package services adapts moodreel components to suture.Service.
//
// Each service implements Serve(ctx) error and String() string. Serve blocks
// until ctx is canceled, except for one-shot services, which return
// suture.ErrDoNotRestart when done.
package services
