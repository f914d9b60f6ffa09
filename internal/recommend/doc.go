// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package recommend ranks catalog movies for a detected emotion.
//
// # Policies
//
// The weighted policy (default) scores every record:
//
//	score = 0.4*genre + 0.2*keyword + 0.2*rating + 0.1*popularity + voteCountBonus
//
// where genre and keyword are the fraction of a record's genres or keywords
// matching the emotion's taxonomy entry (case-insensitive substring match,
// divided by the smaller of the two list lengths), rating is vote_average/10,
// popularity is popularity/100 capped at 1, and voteCountBonus is
// vote_count/10000 capped at 1, times 0.2. Records are stable-sorted by
// score, so ties keep catalog order and repeated calls return the same list.
//
// The sample policy keeps only records with a matching genre and, when more
// than limit qualify, draws a uniform random sample from a seeded RNG. Its
// output changes between calls and it is never cached.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), store, logger)
//	if err != nil {
//		return err
//	}
//	resp, err := engine.Recommend(ctx, "happy", 8)
//
// Recommend blocks until the catalog is loaded. A degraded catalog (snapshot
// or built-in fallback) still produces results; resp.Warning carries the
// load error for display.
package recommend
