// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package main

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodreel/internal/api"
	"github.com/tomtom215/moodreel/internal/classifier"
	"github.com/tomtom215/moodreel/internal/config"
	"github.com/tomtom215/moodreel/internal/dataset"
	"github.com/tomtom215/moodreel/internal/recommend"
)

// app holds the wired components.
type app struct {
	store    *dataset.Store
	engine   *recommend.Engine
	snapshot *dataset.Snapshot
	handler  http.Handler
	logger   zerolog.Logger
}

// build wires every component from cfg. It does not start the dataset load.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func build(cfg *config.Config, logger zerolog.Logger) (*app, error) {
	a := &app{logger: logger}

	if cfg.Dataset.SnapshotPath != "" {
		snap, err := dataset.OpenSnapshot(cfg.Dataset.SnapshotPath)
		if err != nil {
			// Snapshots are an optimization; run without one.
			logger.Warn().Err(err).Str("path", cfg.Dataset.SnapshotPath).Msg("Dataset snapshot disabled")
		} else {
			a.snapshot = snap
		}
	}

	a.store = dataset.NewStore(newSource(cfg.Dataset), dataset.Options{
		Delimiter:   cfg.Dataset.DelimiterRune(),
		LoadTimeout: cfg.Dataset.LoadTimeout,
		Snapshot:    a.snapshot,
	}, logger)

	engine, err := recommend.NewEngine(engineConfig(cfg.Recommend), a.store, logger)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("recommend engine: %w", err)
	}
	a.engine = engine

	// A nil *classifier.Client must not reach the handler as a non-nil interface.
	var cls api.Classifier
	if cfg.Classifier.Enabled {
		cls = classifier.New(classifier.Config{
			URL:       cfg.Classifier.URL,
			Timeout:   cfg.Classifier.Timeout,
			RateLimit: cfg.Classifier.RateLimit,
			Burst:     cfg.Classifier.Burst,
		}, logger)
	}

	handler := api.NewHandler(engine, a.store, cls, api.HandlerConfig{
		DefaultLimit: cfg.Recommend.DefaultLimit,
		MaxLimit:     cfg.Recommend.MaxLimit,
	})
	a.handler = api.NewRouter(handler, middlewareConfig(cfg.Security), logger).Setup()
	return a, nil
}

func (a *app) close() {
	if a.snapshot == nil {
		return
	}
	if err := a.snapshot.Close(); err != nil {
		a.logger.Error().Err(err).Msg("Failed to close dataset snapshot")
	}
}

func newSource(cfg config.DatasetConfig) dataset.Source {
	if cfg.IsRemote() {
		return dataset.NewHTTPSource(cfg.Source, cfg.HTTPTimeout)
	}
	return dataset.NewFileSource(cfg.Source)
}

// engineConfig maps the recommend section onto the engine. max_limit is left to
// the API handler, which rejects larger limits with 400.
func engineConfig(rc config.RecommendConfig) *recommend.Config {
	cfg := recommend.DefaultConfig()
	if p, err := recommend.ParsePolicy(rc.Policy); err == nil {
		cfg.Policy = p
	}
	if rc.DefaultLimit > 0 {
		cfg.DefaultLimit = rc.DefaultLimit
	}
	if rc.Seed != 0 {
		cfg.Seed = rc.Seed
	}
	cfg.Cache.Enabled = rc.CacheEnabled
	if rc.CacheTTL > 0 {
		cfg.Cache.TTL = rc.CacheTTL
	}
	if rc.CacheSize > 0 {
		cfg.Cache.Size = rc.CacheSize
	}
	return cfg
}

func middlewareConfig(sc config.SecurityConfig) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = sc.CORSOrigins
	if sc.RateLimitReqs > 0 {
		mw.RateLimitRequests = sc.RateLimitReqs
	}
	if sc.RateLimitWindow > 0 {
		mw.RateLimitWindow = sc.RateLimitWindow
	}
	mw.RateLimitDisabled = sc.RateLimitDisabled
	return mw
}
