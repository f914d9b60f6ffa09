// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package recommend

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/tomtom215/moodreel/internal/emotion"
	"github.com/tomtom215/moodreel/internal/models"
)

const (
	popularityCeiling = 100.0
	voteCountCeiling  = 10000.0
)

// targets holds an emotion's genres and keywords, lowercased once per request.
type targets struct {
	genres   []string
	keywords []string
}

func targetsFor(e emotion.Emotion) targets {
	return targets{
		genres:   lowerAll(emotion.Genres(e)),
		keywords: lowerAll(emotion.Keywords(e)),
	}
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

// matchCount counts the values that contain at least one target as a
// case-insensitive substring. targets must already be lowercase.
func matchCount(values, targets []string) int {
	n := 0
	for _, v := range values {
		lv := strings.ToLower(v)
		for _, t := range targets {
			if strings.Contains(lv, t) {
				n++
				break
			}
		}
	}
	return n
}

// matchScore is matches / min(|targets|, |values|), or 0 when either side is empty.
func matchScore(values, targets []string) float64 {
	denom := min(len(targets), len(values))
	if denom == 0 {
		return 0
	}
	return float64(matchCount(values, targets)) / float64(denom)
}

// score computes the weighted policy score of m for t.
func (w Weights) score(m *models.Movie, t targets) float64 {
	genre := matchScore(m.Genres, t.genres)
	keyword := matchScore(m.Keywords, t.keywords)
	rating := m.VoteAverage / 10
	popularity := math.Min(m.Popularity/popularityCeiling, 1)
	bonus := math.Min(float64(m.VoteCount)/voteCountCeiling, 1) * w.VoteCountBonus

	s := w.Genre*genre + w.Keyword*keyword + w.Rating*rating + w.Popularity*popularity + bonus
	if math.IsNaN(s) {
		return 0
	}
	return s
}

// rankWeighted scores every record and returns the best limit of them.
// Equal scores keep catalog order.
func rankWeighted(records []models.Movie, t targets, w Weights, limit int) []models.ScoredMovie {
	scored := make([]models.ScoredMovie, len(records))
	for i := range records {
		scored[i] = models.ScoredMovie{Movie: records[i], Score: w.score(&records[i], t)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// sampleByGenre keeps records with at least one matching genre. When more
// than limit qualify, a uniform sample of limit is drawn with rng.
// It also returns how many records qualified.
func sampleByGenre(records []models.Movie, t targets, limit int, rng *rand.Rand) ([]models.ScoredMovie, int) {
	matches := make([]int, 0, len(records))
	for i := range records {
		if matchCount(records[i].Genres, t.genres) > 0 {
			matches = append(matches, i)
		}
	}

	if len(matches) > limit {
		// Partial Fisher-Yates: the first limit slots become the sample.
		for i := 0; i < limit; i++ {
			j := i + rng.Intn(len(matches)-i)
			matches[i], matches[j] = matches[j], matches[i]
		}
	}

	n := min(limit, len(matches))
	out := make([]models.ScoredMovie, n)
	for i := 0; i < n; i++ {
		out[i] = models.ScoredMovie{Movie: records[matches[i]]}
	}
	return out, len(matches)
}
