// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package emotion holds the fixed emotion vocabulary and its lookup tables:
// target genres, target keywords and an advisory message per emotion.
//
// The tables are package-level constants in all but syntax. Accessors return
// copies, so callers cannot mutate them.
package emotion
