// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package dataset

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodreel/internal/metrics"
	"github.com/tomtom215/moodreel/internal/models"
)

// ErrNoRecords means the source parsed but yielded no record with a positive id.
var ErrNoRecords = errors.New("dataset: no valid records")

// State is the lifecycle position of a Store.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Origin names what populated a ready Store.
type Origin string

const (
	OriginNone     Origin = ""
	OriginSource   Origin = "source"
	OriginSnapshot Origin = "snapshot"
	OriginFallback Origin = "fallback"
)

// Outcome is the result of EnsureLoaded.
type Outcome struct {
	// Ready is false only when the caller's context ended before the load finished.
	Ready bool

	// UsedFallback is true when the built-in catalog was substituted.
	UsedFallback bool

	Origin Origin

	// Count is the number of records now held.
	Count int

	// Err is the error that forced a snapshot or fallback load, or the
	// caller's context error when Ready is false.
	Err error
}

// Status is a point-in-time view of a Store for health and diagnostics.
type Status struct {
	State    string    `json:"state"`
	Origin   string    `json:"origin,omitempty"`
	Source   string    `json:"source"`
	Records  int       `json:"records"`
	Skipped  int       `json:"skipped_rows"`
	LoadedAt time.Time `json:"loaded_at,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// Options configures a Store.
type Options struct {
	// Delimiter separates fields in the source text. Default: ','
	Delimiter rune

	// LoadTimeout bounds the one-time load. Default: 30s
	LoadTimeout time.Duration

	// Snapshot, when set, keeps the last good source text for outages.
	Snapshot *Snapshot
}

// Store is the in-memory movie catalog. It loads lazily on the first
// EnsureLoaded call and at most once; afterwards the record slice is never
// modified.
type Store struct {
	source Source
	opts   Options
	logger zerolog.Logger

	mu       sync.Mutex
	state    State
	done     chan struct{}
	movies   []models.Movie
	origin   Origin
	err      error
	skipped  int
	loadedAt time.Time
}

// NewStore creates an unloaded Store reading from source.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewStore(source Source, opts Options, logger zerolog.Logger) *Store {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	if opts.LoadTimeout <= 0 {
		opts.LoadTimeout = 30 * time.Second
	}
	return &Store{
		source: source,
		opts:   opts,
		logger: logger.With().Str("component", "dataset").Logger(),
	}
}

// EnsureLoaded loads the catalog if no load has started, then waits for it.
// Concurrent callers share a single load. The load does not inherit ctx's
// cancellation, so a caller that gives up does not leave the store half-built;
// that caller gets Ready=false and the load carries on for the others.
func (s *Store) EnsureLoaded(ctx context.Context) Outcome {
	s.mu.Lock()
	if s.state == StateReady {
		out := s.outcomeLocked()
		s.mu.Unlock()
		return out
	}
	if s.state == StateUninitialized {
		s.state = StateLoading
		s.done = make(chan struct{})
		go s.load(context.WithoutCancel(ctx))
	}
	done := s.done
	s.mu.Unlock()

	select {
	case <-done:
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.outcomeLocked()
	case <-ctx.Done():
		return Outcome{Err: ctx.Err()}
	}
}

func (s *Store) outcomeLocked() Outcome {
	return Outcome{
		Ready:        s.state == StateReady,
		UsedFallback: s.origin == OriginFallback,
		Origin:       s.origin,
		Count:        len(s.movies),
		Err:          s.err,
	}
}

func (s *Store) load(ctx context.Context) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, s.opts.LoadTimeout)
	defer cancel()

	text, movies, skipped, err := s.fetchAndBuild(ctx)
	origin := OriginSource
	if err != nil {
		s.logger.Warn().Err(err).Str("source", s.source.Name()).Msg("Dataset source failed")
		origin = OriginFallback
		movies, skipped = Fallback(), 0
		if snap, snapSkipped, ok := s.fromSnapshot(); ok {
			origin, movies, skipped = OriginSnapshot, snap, snapSkipped
		}
	} else if s.opts.Snapshot != nil {
		s.saveSnapshot(ctx, text, len(movies))
	}

	s.mu.Lock()
	s.movies = movies
	s.origin = origin
	s.err = err
	s.skipped = skipped
	s.loadedAt = time.Now()
	s.state = StateReady
	close(s.done)
	s.mu.Unlock()

	metrics.RecordDatasetLoad(string(origin), len(movies), skipped, time.Since(start))

	event := s.logger.Info()
	if err != nil {
		event = s.logger.Warn().Err(err)
	}
	event.
		Str("origin", string(origin)).
		Int("records", len(movies)).
		Int("skipped_rows", skipped).
		Dur("duration", time.Since(start)).
		Msg("Dataset ready")
}

// fetchAndBuild runs the full source pipeline. A panic anywhere in it is
// turned into an error so the caller can fall back.
func (s *Store) fetchAndBuild(ctx context.Context) (text string, movies []models.Movie, skipped int, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, movies, skipped = "", nil, 0
			err = fmt.Errorf("dataset: panic while loading: %v", r)
		}
	}()

	text, err = s.source.Fetch(ctx)
	if err != nil {
		return "", nil, 0, err
	}
	movies, skipped, err = s.build(text)
	return text, movies, skipped, err
}

// build parses text, materializes it and keeps records with a positive id.
func (s *Store) build(text string) ([]models.Movie, int, error) {
	rows := Parse(text, s.opts.Delimiter)
	m, err := Materialize(rows, s.logger)
	if err != nil {
		return nil, 0, err
	}

	valid := make([]models.Movie, 0, len(m.Movies))
	for i := range m.Movies {
		if m.Movies[i].ID > 0 {
			valid = append(valid, m.Movies[i])
		}
	}
	if len(valid) == 0 {
		return nil, m.Skipped, fmt.Errorf("%w: %d data rows, %d skipped", ErrNoRecords, len(rows)-1, m.Skipped)
	}
	return valid, m.Skipped, nil
}

func (s *Store) fromSnapshot() (movies []models.Movie, skipped int, ok bool) {
	if s.opts.Snapshot == nil {
		return nil, 0, false
	}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Msg("Snapshot could not be materialized")
			movies, skipped, ok = nil, 0, false
		}
	}()

	entry, found, err := s.opts.Snapshot.Load(s.source.Name())
	if err != nil {
		s.logger.Warn().Err(err).Msg("Snapshot lookup failed")
		return nil, 0, false
	}
	if !found {
		return nil, 0, false
	}
	movies, skipped, err = s.build(entry.Text)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Snapshot is unusable")
		return nil, 0, false
	}
	s.logger.Info().Time("saved_at", entry.SavedAt).Int("records", len(movies)).Msg("Restored dataset from snapshot")
	return movies, skipped, true
}

func (s *Store) saveSnapshot(ctx context.Context, text string, records int) {
	if ctx.Err() != nil {
		return
	}
	if err := s.opts.Snapshot.Save(s.source.Name(), text, records); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to save dataset snapshot")
	}
}

// IsReady reports whether a load has completed.
func (s *Store) IsReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateReady
}

// Records returns the loaded catalog, or nil before the store is ready.
// The slice is shared; callers must not modify it.
func (s *Store) Records() []models.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.movies
}

// Err returns the error recorded by the load, if any.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Status returns a snapshot of the store's lifecycle.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Status{
		State:    s.state.String(),
		Origin:   string(s.origin),
		Source:   s.source.Name(),
		Records:  len(s.movies),
		Skipped:  s.skipped,
		LoadedAt: s.loadedAt,
	}
	if s.err != nil {
		st.Error = s.err.Error()
	}
	return st
}
