// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// CachePruner is implemented by *recommend.Engine.
type CachePruner interface {
	PruneCache() int
}

// CacheJanitorService drops expired recommendation responses on an interval.
// Expired entries are also skipped on read; the janitor only returns their
// memory sooner.
type CacheJanitorService struct {
	pruner   CachePruner
	interval time.Duration
	logger   zerolog.Logger
}

// NewCacheJanitorService creates a janitor. A non-positive interval means 1m.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCacheJanitorService(pruner CachePruner, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheJanitorService{
		pruner:   pruner,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := s.pruner.PruneCache(); n > 0 {
				s.logger.Debug().Int("removed", n).Msg("Pruned expired responses")
			}
		}
	}
}

func (s *CacheJanitorService) String() string {
	return "cache-janitor"
}
