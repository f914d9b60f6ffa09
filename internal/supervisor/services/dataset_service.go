// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/moodreel/internal/dataset"
)

// DatasetLoader is implemented by *dataset.Store.
type DatasetLoader interface {
	EnsureLoaded(ctx context.Context) dataset.Outcome
}

// DatasetService triggers the one-time dataset load at start-up so the first
// request does not pay for it. The store loads at most once, so the service
// never needs restarting.
type DatasetService struct {
	loader DatasetLoader
	logger zerolog.Logger
}

// NewDatasetService creates a warm-up service for loader.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewDatasetService(loader DatasetLoader, logger zerolog.Logger) *DatasetService {
	return &DatasetService{
		loader: loader,
		logger: logger.With().Str("service", "dataset-warmup").Logger(),
	}
}

// Serve implements suture.Service.
func (s *DatasetService) Serve(ctx context.Context) error {
	out := s.loader.EnsureLoaded(ctx)

	switch {
	case !out.Ready:
		// Shutdown arrived before the load finished.
		s.logger.Debug().Err(out.Err).Msg("Dataset warm-up interrupted")
		return ctx.Err()
	case out.Err != nil:
		s.logger.Warn().
			Err(out.Err).
			Str("origin", string(out.Origin)).
			Int("records", out.Count).
			Msg("Dataset warmed up in degraded mode")
	default:
		s.logger.Info().Int("records", out.Count).Msg("Dataset warmed up")
	}
	return suture.ErrDoNotRestart
}

func (s *DatasetService) String() string {
	return "dataset-warmup"
}
