// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moodreel/internal/middleware"
)

// Router wires the handlers to chi routes.
type Router struct {
	handler    *Handler
	middleware *ChiMiddleware
	logger     zerolog.Logger
}

// NewRouter creates a Router. A nil mwConfig uses the defaults.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewRouter(handler *Handler, mwConfig *ChiMiddlewareConfig, logger zerolog.Logger) *Router {
	return &Router{
		handler:    handler,
		middleware: NewChiMiddleware(mwConfig),
		logger:     logger.With().Str("component", "api").Logger(),
	}
}

// Setup builds the http.Handler.
//
// Global middleware, outermost first:
//  1. request ID and correlation ID
//  2. real client IP
//  3. access log
//  4. panic recovery
//  5. prometheus metrics
//  6. CORS
//
// The /api/v1 group adds per-IP rate limiting.
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(rt.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(rt.middleware.CORS())

	h := rt.handler

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, apiError(ErrCodeNotFound, "Route not found"), nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed,
			apiError(ErrCodeMethodNotAllowed, "Method not allowed"), nil)
	})

	r.Get("/api/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	// One limiter instance so the aliases share the versioned routes' budget.
	rateLimit := rt.middleware.RateLimit()

	r.Group(func(r chi.Router) {
		r.Use(rateLimit)
		r.Get("/api/recommend-movies/{emotion}", h.RecommendMovies)
		r.Post("/api/detect-emotion", h.DetectEmotion)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rateLimit)

		r.Route("/health", func(r chi.Router) {
			r.Get("/live", h.HealthLive)
			r.Get("/ready", h.HealthReady)
			r.Get("/", h.Health)
		})

		r.Get("/emotions", h.Emotions)
		r.Get("/emotions/{emotion}/message", h.EmotionMessage)
		r.Get("/recommend-movies/{emotion}", h.RecommendMovies)
		r.Post("/detect-emotion", h.DetectEmotion)
		r.Get("/dataset/status", h.DatasetStatus)
	})

	return r
}
