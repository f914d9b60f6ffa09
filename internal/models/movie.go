// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package models

// Movie is one materialized catalog record. Records are immutable once built;
// callers that need to change a field must copy the value first.
//
// Multi-valued columns (genres, keywords, ...) are comma-joined in the source
// file and split into ordered, trimmed lists here. Absent list columns are
// empty slices, never nil, so they encode as [] rather than null.
type Movie struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title,omitempty"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
	Status           string  `json:"status,omitempty"`
	ReleaseDate      string  `json:"release_date"`
	Revenue          float64 `json:"revenue"`
	Runtime          float64 `json:"runtime"`
	Adult            bool    `json:"adult"`
	BackdropPath     string  `json:"backdrop_path,omitempty"`
	Budget           float64 `json:"budget"`
	Homepage         string  `json:"homepage"`
	IMDbID           string  `json:"imdb_id"`
	OriginalLanguage string  `json:"original_language"`
	Overview         string  `json:"overview"`
	Popularity       float64 `json:"popularity"`
	PosterPath       string  `json:"poster_path,omitempty"`
	Tagline          string  `json:"tagline"`

	Genres              []string `json:"genres"`
	ProductionCompanies []string `json:"production_companies"`
	ProductionCountries []string `json:"production_countries"`
	SpokenLanguages     []string `json:"spoken_languages"`
	Keywords            []string `json:"keywords"`

	// Year is the leading numeric component of ReleaseDate, 0 when absent.
	Year int `json:"year"`

	// Rating is VoteAverage/2 rounded to one decimal (0-5 scale).
	Rating float64 `json:"rating"`
}

// ScoredMovie is a Movie with the relevance score computed for one request.
// The score is not part of the stored record.
type ScoredMovie struct {
	Movie
	Score float64 `json:"score"`
}
