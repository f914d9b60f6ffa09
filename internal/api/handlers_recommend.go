// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/moodreel/internal/classifier"
	"github.com/tomtom215/moodreel/internal/emotion"
	"github.com/tomtom215/moodreel/internal/recommend"
	"github.com/tomtom215/moodreel/internal/validation"
)

// detectBodyLimit leaves room for the JSON wrapper around the image.
const detectBodyLimit = validation.MaxImageChars + 1024

// DetectResponse is returned by the detect-emotion endpoint.
type DetectResponse struct {
	DominantEmotion string             `json:"dominant_emotion"`
	Emotion         string             `json:"emotion"`
	Known           bool               `json:"known"`
	Emotions        map[string]float64 `json:"emotions"`
	FaceDetected    bool               `json:"face_detected"`
	Message         string             `json:"message"`

	Recommendations *recommend.Response `json:"recommendations,omitempty"`
}

// RecommendMovies serves GET /api/v1/recommend-movies/{emotion}?limit=N.
func (h *Handler) RecommendMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := validation.RecommendRequest{
		Emotion:  chi.URLParam(r, "emotion"),
		Limit:    h.config.DefaultLimit,
		MaxLimit: h.config.MaxLimit,
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, r, http.StatusBadRequest,
				apiError(ErrCodeValidation, "limit must be an integer"), nil)
			return
		}
		req.Limit = n
	}
	if verr := validation.ValidateStruct(req); verr != nil {
		respondError(w, r, http.StatusBadRequest, verr.ToAPIError(), nil)
		return
	}

	resp, err := h.recommender.Recommend(r.Context(), req.Emotion, req.Limit)
	if err != nil {
		h.respondRecommendError(w, r, err)
		return
	}
	respondSuccess(w, r, resp, start, resp.Cached)
}

func (h *Handler) respondRecommendError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, recommend.ErrLimitExceeded) {
		respondError(w, r, http.StatusBadRequest, apiError(ErrCodeValidation, err.Error()), nil)
		return
	}
	if errors.Is(err, recommend.ErrDatasetNotReady) {
		respondError(w, r, http.StatusServiceUnavailable,
			apiError(ErrCodeServiceUnavailable, "Movie catalog is not ready yet"), err)
		return
	}
	respondError(w, r, http.StatusInternalServerError,
		apiError(ErrCodeInternal, "Failed to compute recommendations"), err)
}

// DetectEmotion serves POST /api/v1/detect-emotion. The image is forwarded to
// the classifier. With ?recommend=true the response also carries
// recommendations for the detected emotion.
func (h *Handler) DetectEmotion(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.classifier == nil {
		respondError(w, r, http.StatusServiceUnavailable,
			apiError(ErrCodeServiceUnavailable, "Emotion detection is disabled"), nil)
		return
	}

	var req validation.DetectRequest
	if err := decodeJSONBody(w, r, detectBodyLimit, &req); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errBodyTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		respondError(w, r, status, apiError(ErrCodeValidation, err.Error()), nil)
		return
	}
	if verr := validation.ValidateStruct(req); verr != nil {
		respondError(w, r, http.StatusBadRequest, verr.ToAPIError(), nil)
		return
	}

	det, err := h.classifier.Detect(r.Context(), req.Image)
	if err != nil {
		h.respondClassifierError(w, r, err)
		return
	}

	resolved, known := emotion.Resolve(det.DominantEmotion)
	out := DetectResponse{
		DominantEmotion: det.DominantEmotion,
		Emotion:         resolved.String(),
		Known:           known,
		Emotions:        det.Emotions,
		FaceDetected:    det.FaceDetected,
		Message:         h.recommender.RecommendationMessage(det.DominantEmotion),
	}

	if want, _ := strconv.ParseBool(r.URL.Query().Get("recommend")); want {
		resp, err := h.recommender.Recommend(r.Context(), det.DominantEmotion, h.config.DefaultLimit)
		if err != nil {
			h.respondRecommendError(w, r, err)
			return
		}
		out.Recommendations = resp
	}

	respondSuccess(w, r, out, start, false)
}

func (h *Handler) respondClassifierError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, classifier.ErrCircuitOpen):
		w.Header().Set("Retry-After", "30")
		respondError(w, r, http.StatusServiceUnavailable,
			apiError(ErrCodeServiceUnavailable, "Emotion detection is temporarily unavailable"), err)
	case errors.Is(err, classifier.ErrRejected):
		respondError(w, r, http.StatusBadRequest,
			apiError(ErrCodeValidation, "The image could not be processed"), err)
	case errors.Is(err, classifier.ErrUnavailable):
		respondError(w, r, http.StatusBadGateway,
			apiError(ErrCodeUpstream, "Emotion detection service failed"), err)
	default:
		respondError(w, r, http.StatusGatewayTimeout,
			apiError(ErrCodeUpstream, "Emotion detection did not complete"), err)
	}
}
