// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package cache provides an in-process LRU cache with TTL expiry.
//
// The recommendation engine keys deterministic results by emotion and limit:
//
//	c := cache.NewLRU[*recommend.Response](256, 5*time.Minute)
//	c.Add("happy:8", resp)
//	if hit, ok := c.Get("happy:8"); ok {
//		...
//	}
//
// All operations are O(1) apart from CleanupExpired, which walks the list.
package cache
