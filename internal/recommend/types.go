// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package recommend

import (
	"time"

	"github.com/tomtom215/moodreel/internal/models"
)

// Response is the result of a recommendation request.
type Response struct {
	// Emotion is the label the taxonomy resolved to.
	Emotion string `json:"emotion"`

	// RequestedEmotion is the label as the caller sent it.
	RequestedEmotion string `json:"requested_emotion"`

	// Known is false when RequestedEmotion was not recognized and neutral was used.
	Known bool `json:"known"`

	Message string `json:"message"`
	Policy  string `json:"policy"`

	// Items are the recommended movies, best first.
	Items []models.ScoredMovie `json:"items"`

	// TotalCandidates is the number of records the policy considered.
	TotalCandidates int `json:"total_candidates"`

	// DatasetOrigin is "source", "snapshot" or "fallback".
	DatasetOrigin string `json:"dataset_origin"`

	// Warning carries the dataset load error when the catalog is degraded.
	Warning string `json:"warning,omitempty"`

	Cached      bool      `json:"cached"`
	LatencyMS   int64     `json:"latency_ms"`
	GeneratedAt time.Time `json:"generated_at"`
}

// clone returns a copy whose Items slice is not shared with r.
func (r *Response) clone() *Response {
	out := *r
	out.Items = append([]models.ScoredMovie(nil), r.Items...)
	return &out
}

// Metrics contains engine-level counters.
type Metrics struct {
	RequestCount int64 `json:"request_count"`
	CacheHits    int64 `json:"cache_hits"`
	CacheMisses  int64 `json:"cache_misses"`
	CacheSize    int   `json:"cache_size"`
	ErrorCount   int64 `json:"error_count"`

	// DegradedCount counts responses served from a snapshot or fallback catalog.
	DegradedCount int64 `json:"degraded_count"`
}
