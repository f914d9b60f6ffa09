// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package validation

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

// MaxImageChars bounds a base64 image payload (about 10 MiB decoded). It
// matches the max tag on DetectRequest.Image.
const MaxImageChars = 14 << 20

// RecommendRequest is the recommendation query.
type RecommendRequest struct {
	Emotion string `json:"emotion" validate:"required,max=32,alpha"`
	Limit   int    `json:"limit" validate:"min=1"`

	// MaxLimit is the configured upper bound for Limit. Zero means unbounded.
	MaxLimit int `json:"-"`
}

// DetectRequest is the detect-emotion body.
type DetectRequest struct {
	Image string `json:"image" validate:"required,max=14680064"`
}

// recommendRequestLimit reports Limit above the configured MaxLimit as a
// "max" failure so it reads like a static bound.
func recommendRequestLimit(sl validator.StructLevel) {
	r, ok := sl.Current().Interface().(RecommendRequest)
	if !ok {
		return
	}
	if r.MaxLimit > 0 && r.Limit > r.MaxLimit {
		sl.ReportError(r.Limit, "limit", "Limit", "max", strconv.Itoa(r.MaxLimit))
	}
}
