// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/moodreel/internal/emotion"
)

// EmotionInfo describes one taxonomy entry.
type EmotionInfo struct {
	Emotion  string   `json:"emotion"`
	Title    string   `json:"title"`
	Genres   []string `json:"genres"`
	Keywords []string `json:"keywords"`
	Message  string   `json:"message"`
}

// MessageResponse is returned by the message endpoint.
type MessageResponse struct {
	RequestedEmotion string `json:"requested_emotion"`
	Emotion          string `json:"emotion"`
	Known            bool   `json:"known"`
	Message          string `json:"message"`
}

// Emotions lists the taxonomy in its fixed order.
func (h *Handler) Emotions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	all := emotion.All()
	out := make([]EmotionInfo, 0, len(all))
	for _, e := range all {
		out = append(out, EmotionInfo{
			Emotion:  e.String(),
			Title:    e.Title(),
			Genres:   emotion.Genres(e),
			Keywords: emotion.Keywords(e),
			Message:  emotion.Message(e),
		})
	}
	respondSuccess(w, r, out, start, false)
}

// EmotionMessage returns the message for an emotion. Unknown labels get the
// neutral message.
func (h *Handler) EmotionMessage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	label := chi.URLParam(r, "emotion")
	resolved, known := emotion.Resolve(label)
	respondSuccess(w, r, MessageResponse{
		RequestedEmotion: label,
		Emotion:          resolved.String(),
		Known:            known,
		Message:          h.recommender.RecommendationMessage(label),
	}, start, false)
}
