// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package validation checks API request structs with go-playground/validator
// and turns failures into the VALIDATION_ERROR envelope.
//
//	req := validation.RecommendRequest{Emotion: "happy", Limit: 8, MaxLimit: 100}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//		respondError(w, http.StatusBadRequest, verr.ToAPIError())
//		return
//	}
//
// The validator is a process-wide singleton because it caches struct
// metadata.
package validation
