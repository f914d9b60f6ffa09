// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package dataset ingests the TMDB-style movie catalog and holds it in memory.

The pipeline runs once per process:

	Source.Fetch -> Parse -> Materialize -> keep id > 0 -> Store

Parse is a lenient quote-aware tokenizer: it never fails, so one bad line can
not take the whole catalog down. Materialize drops rows whose field count
disagrees with the header and coerces every field to a typed value,
defaulting silently.

# Store lifecycle

A Store starts uninitialized. The first EnsureLoaded call starts the load
in the background and every caller, including later concurrent ones, waits
on that same load:

	store := dataset.NewStore(dataset.NewFileSource("data/tmdb.csv"), dataset.Options{}, logger)
	out := store.EnsureLoaded(ctx)
	if out.Err != nil {
		// out.Origin is "snapshot" or "fallback"; records are still usable
	}

When the source cannot be fetched or yields nothing usable, the store is
populated from the last good snapshot (if a Snapshot is configured) or from
the small built-in Fallback catalog, and the triggering error is kept. Once
ready, the store never reloads.
*/
package dataset
