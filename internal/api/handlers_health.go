// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/moodreel/internal/recommend"
)

// DatasetHealth is the dataset part of the health report.
type DatasetHealth struct {
	Ready  bool   `json:"ready"`
	State  string `json:"state"`
	Origin string `json:"origin,omitempty"`
	Count  int    `json:"count"`
	Error  string `json:"error,omitempty"`
}

// ClassifierHealth is the classifier part of the health report.
type ClassifierHealth struct {
	Enabled   bool   `json:"enabled"`
	Reachable bool   `json:"reachable"`
	Breaker   string `json:"breaker,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HealthReport is returned by /api/health.
type HealthReport struct {
	Status     string            `json:"status"`
	Uptime     float64           `json:"uptime"`
	Policy     string            `json:"policy"`
	Dataset    DatasetHealth     `json:"dataset"`
	Classifier ClassifierHealth  `json:"classifier"`
	Engine     recommend.Metrics `json:"engine"`
}

// Health reports dataset and classifier state. It does not trigger a dataset
// load. Status is "ok" when the store is ready from its source, "degraded"
// when it is serving a snapshot or the fallback catalog or the classifier is
// unreachable, and "starting" before the first load completes.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	st := h.catalog.Status()

	report := HealthReport{
		Status: "ok",
		Uptime: time.Since(h.startTime).Seconds(),
		Policy: string(h.recommender.Policy()),
		Engine: h.recommender.Metrics(),
		Dataset: DatasetHealth{
			Ready:  h.catalog.IsReady(),
			State:  st.State,
			Origin: st.Origin,
			Count:  st.Records,
			Error:  st.Error,
		},
	}

	switch {
	case !report.Dataset.Ready:
		report.Status = "starting"
	case st.Error != "":
		report.Status = "degraded"
	}

	if h.classifier != nil {
		report.Classifier.Enabled = true
		report.Classifier.Breaker = h.classifier.BreakerState()
		ctx, cancel := context.WithTimeout(r.Context(), h.config.HealthTimeout)
		err := h.classifier.Health(ctx)
		cancel()
		if err != nil {
			report.Classifier.Error = err.Error()
			if report.Status == "ok" {
				report.Status = "degraded"
			}
		} else {
			report.Classifier.Reachable = true
		}
	}

	respondSuccess(w, r, report, start, false)
}

// HealthLive always answers while the process is serving.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, time.Now(), false)
}

// HealthReady answers 200 once the dataset is loaded and 503 before.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.catalog.IsReady() {
		respondError(w, r, http.StatusServiceUnavailable,
			apiError(ErrCodeServiceUnavailable, "Dataset is still loading"), nil)
		return
	}
	st := h.catalog.Status()
	respondSuccess(w, r, map[string]interface{}{
		"ready":   true,
		"origin":  st.Origin,
		"records": st.Records,
	}, time.Now(), false)
}

// DatasetStatus returns the store's lifecycle view.
func (h *Handler) DatasetStatus(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, h.catalog.Status(), time.Now(), false)
}
