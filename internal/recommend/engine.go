// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodreel/internal/cache"
	"github.com/tomtom215/moodreel/internal/dataset"
	"github.com/tomtom215/moodreel/internal/emotion"
	"github.com/tomtom215/moodreel/internal/logging"
	"github.com/tomtom215/moodreel/internal/metrics"
	"github.com/tomtom215/moodreel/internal/models"
)

// ErrDatasetNotReady is returned when the caller's context ends before the
// catalog finished loading.
var ErrDatasetNotReady = errors.New("recommend: dataset not ready")

// ErrLimitExceeded is returned when a limit above Config.MaxLimit is requested.
var ErrLimitExceeded = errors.New("recommend: limit exceeds maximum")

// Catalog is the record collection the engine scores. *dataset.Store
// implements it.
type Catalog interface {
	EnsureLoaded(ctx context.Context) dataset.Outcome
	Records() []models.Movie
}

// Engine turns an emotion label into a ranked list of movies.
// It is safe for concurrent use.
type Engine struct {
	config  *Config
	catalog Catalog
	logger  zerolog.Logger

	// nil when caching is disabled or the policy is not deterministic
	cache *cache.LRU[*Response]

	// rng drives the sample policy; rand.Rand is not safe for concurrent use.
	rng   *rand.Rand
	rngMu sync.Mutex

	requestCount  atomic.Int64
	errorCount    atomic.Int64
	degradedCount atomic.Int64
}

// NewEngine creates a recommendation engine over catalog.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(cfg *Config, catalog Catalog, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Policy == "" {
		cfg.Policy = PolicyWeighted
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if catalog == nil {
		return nil, errors.New("recommend: catalog is required")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = 42
	}

	e := &Engine{
		config:  cfg,
		catalog: catalog,
		logger:  logger.With().Str("component", "recommend").Logger(),
		rng:     rand.New(rand.NewSource(seed)), //nolint:gosec // sampling, not security
	}
	if cfg.Cache.Enabled && cfg.Policy == PolicyWeighted {
		e.cache = cache.NewLRU[*Response](cfg.Cache.Size, cfg.Cache.TTL)
	}
	return e, nil
}

// Policy returns the active scoring policy.
func (e *Engine) Policy() Policy {
	return e.config.Policy
}

// Recommend returns at most limit movies for the emotion label, best first.
// Unknown labels are scored as neutral. A non-positive limit selects the
// configured default.
//
// The call waits for the catalog to load. When the catalog came from a
// snapshot or the built-in fallback, the response still carries items and
// Warning holds the load error. An error is returned when ctx ends first or
// limit exceeds a configured MaxLimit.
func (e *Engine) Recommend(ctx context.Context, label string, limit int) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	emo, known := emotion.Resolve(label)
	limit, err := e.normalizeLimit(limit)
	if err != nil {
		e.errorCount.Add(1)
		return nil, err
	}
	logger := e.logger.With().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Str("emotion", emo.String()).
		Int("limit", limit).
		Logger()

	key := cacheKey(emo, limit)
	if resp := e.cachedResponse(key, label, known, start); resp != nil {
		logger.Debug().Msg("cache hit")
		return resp, nil
	}

	out := e.catalog.EnsureLoaded(ctx)
	if !out.Ready {
		e.errorCount.Add(1)
		if out.Err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDatasetNotReady, out.Err)
		}
		return nil, ErrDatasetNotReady
	}

	records := e.catalog.Records()
	t := targetsFor(emo)

	var (
		items      []models.ScoredMovie
		candidates int
	)
	switch e.config.Policy {
	case PolicySample:
		e.rngMu.Lock()
		items, candidates = sampleByGenre(records, t, limit, e.rng)
		e.rngMu.Unlock()
	default:
		items = rankWeighted(records, t, e.config.Weights, limit)
		candidates = len(records)
	}

	resp := &Response{
		Emotion:          emo.String(),
		RequestedEmotion: label,
		Known:            known,
		Message:          emotion.Message(emo),
		Policy:           string(e.config.Policy),
		Items:            items,
		TotalCandidates:  candidates,
		DatasetOrigin:    string(out.Origin),
		GeneratedAt:      time.Now().UTC(),
	}
	if out.Err != nil {
		e.degradedCount.Add(1)
		resp.Warning = out.Err.Error()
	}

	if e.cache != nil {
		e.cache.Add(key, resp.clone())
	}

	elapsed := time.Since(start)
	resp.LatencyMS = elapsed.Milliseconds()
	metrics.RecordRecommendation(emo.String(), string(e.config.Policy), elapsed)

	logger.Debug().
		Int("candidates", candidates).
		Int("returned", len(items)).
		Str("origin", resp.DatasetOrigin).
		Int64("latency_ms", resp.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// RecommendationMessage returns the advisory message for the emotion label.
func (e *Engine) RecommendationMessage(label string) string {
	emo, _ := emotion.Resolve(label)
	return emotion.Message(emo)
}

// Metrics returns a snapshot of the engine counters.
func (e *Engine) Metrics() Metrics {
	m := Metrics{
		RequestCount:  e.requestCount.Load(),
		ErrorCount:    e.errorCount.Load(),
		DegradedCount: e.degradedCount.Load(),
	}
	if e.cache != nil {
		m.CacheHits, m.CacheMisses, m.CacheSize = e.cache.Stats()
	}
	return m
}

// normalizeLimit applies the default limit. A limit above MaxLimit is an
// error, never a silent truncation.
func (e *Engine) normalizeLimit(limit int) (int, error) {
	if limit <= 0 {
		return e.config.DefaultLimit, nil
	}
	if e.config.MaxLimit > 0 && limit > e.config.MaxLimit {
		return 0, fmt.Errorf("%w: %d > %d", ErrLimitExceeded, limit, e.config.MaxLimit)
	}
	return limit, nil
}

// cachedResponse returns a copy of the cached response for key, or nil.
// The requested label is restored on the copy since "HAPPY" and "happy"
// share an entry.
func (e *Engine) cachedResponse(key, label string, known bool, start time.Time) *Response {
	if e.cache == nil {
		return nil
	}
	hit, ok := e.cache.Get(key)
	metrics.RecordCacheLookup(ok)
	if !ok {
		return nil
	}

	resp := hit.clone()
	resp.RequestedEmotion = label
	resp.Known = known
	resp.Cached = true
	resp.LatencyMS = time.Since(start).Milliseconds()
	if resp.Warning != "" {
		e.degradedCount.Add(1)
	}
	return resp
}

func cacheKey(e emotion.Emotion, limit int) string {
	return e.String() + ":" + strconv.Itoa(limit)
}

// PruneCache drops expired cached responses and returns how many were removed.
func (e *Engine) PruneCache() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.CleanupExpired()
}
