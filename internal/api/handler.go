// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package api

import (
	"context"
	"time"

	"github.com/tomtom215/moodreel/internal/classifier"
	"github.com/tomtom215/moodreel/internal/dataset"
	"github.com/tomtom215/moodreel/internal/recommend"
)

// Recommender produces recommendations. *recommend.Engine implements it.
type Recommender interface {
	Recommend(ctx context.Context, label string, limit int) (*recommend.Response, error)
	RecommendationMessage(label string) string
	Metrics() recommend.Metrics
	Policy() recommend.Policy
}

// Catalog reports dataset state. *dataset.Store implements it.
type Catalog interface {
	IsReady() bool
	Status() dataset.Status
}

// Classifier detects emotions in images. *classifier.Client implements it.
type Classifier interface {
	Health(ctx context.Context) error
	Detect(ctx context.Context, image string) (*classifier.Detection, error)
	BreakerState() string
}

// HandlerConfig carries the request-level limits the handlers enforce.
type HandlerConfig struct {
	DefaultLimit int
	MaxLimit     int

	// HealthTimeout bounds the classifier health check in /api/health.
	HealthTimeout time.Duration
}

// Handler serves the HTTP API.
type Handler struct {
	recommender Recommender
	catalog     Catalog
	classifier  Classifier // nil when detection is disabled
	config      HandlerConfig
	startTime   time.Time
}

// NewHandler creates a Handler. classifier may be nil.
func NewHandler(recommender Recommender, catalog Catalog, classifier Classifier, cfg HandlerConfig) *Handler {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 8
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = 100
	}
	if cfg.HealthTimeout <= 0 {
		cfg.HealthTimeout = 2 * time.Second
	}
	return &Handler{
		recommender: recommender,
		catalog:     catalog,
		classifier:  classifier,
		config:      cfg,
		startTime:   time.Now(),
	}
}
