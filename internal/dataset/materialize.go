// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package dataset

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodreel/internal/models"
)

// Column names expected in the header row.
const (
	colID                  = "id"
	colTitle               = "title"
	colVoteAverage         = "vote_average"
	colVoteCount           = "vote_count"
	colStatus              = "status"
	colReleaseDate         = "release_date"
	colRevenue             = "revenue"
	colRuntime             = "runtime"
	colAdult               = "adult"
	colBackdropPath        = "backdrop_path"
	colBudget              = "budget"
	colHomepage            = "homepage"
	colIMDbID              = "imdb_id"
	colOriginalLanguage    = "original_language"
	colOriginalTitle       = "original_title"
	colOverview            = "overview"
	colPopularity          = "popularity"
	colPosterPath          = "poster_path"
	colTagline             = "tagline"
	colGenres              = "genres"
	colProductionCompanies = "production_companies"
	colProductionCountries = "production_countries"
	colSpokenLanguages     = "spoken_languages"
	colKeywords            = "keywords"
)

// ErrNoRows is returned when there is not even a header row to work with.
var ErrNoRows = errors.New("dataset: no rows to materialize")

// Materialized is the output of Materialize.
type Materialized struct {
	// Movies holds every well-shaped data row, including ones with id <= 0.
	Movies []models.Movie

	// Skipped counts data rows whose field count did not match the header.
	Skipped int
}

// Materialize turns parsed rows into movie records. The first row is the
// header. Data rows with a different number of fields are logged and skipped;
// the rest of the batch is unaffected. Field coercion never fails: numbers
// that do not parse and missing columns take their zero value.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Materialize(rows [][]string, logger zerolog.Logger) (Materialized, error) {
	if len(rows) == 0 {
		return Materialized{}, ErrNoRows
	}

	header := normalizeHeader(rows[0])
	out := Materialized{Movies: make([]models.Movie, 0, len(rows)-1)}

	for i, row := range rows[1:] {
		if len(row) != len(header) {
			out.Skipped++
			logger.Warn().
				Int("row", i+2).
				Int("fields", len(row)).
				Int("expected", len(header)).
				Msg("Skipping row with mismatched field count")
			continue
		}

		fields := make(map[string]string, len(header))
		for j, name := range header {
			fields[name] = row[j]
		}
		out.Movies = append(out.Movies, buildMovie(fields))
	}

	if out.Skipped > 0 {
		logger.Warn().
			Int("skipped", out.Skipped).
			Int("kept", len(out.Movies)).
			Msg("Some dataset rows were skipped")
	}
	return out, nil
}

func normalizeHeader(raw []string) []string {
	header := make([]string, len(raw))
	for i, h := range raw {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return header
}

func buildMovie(f map[string]string) models.Movie {
	voteAverage := parseFloat(f[colVoteAverage])
	releaseDate := f[colReleaseDate]

	return models.Movie{
		ID:               parseInt(f[colID]),
		Title:            f[colTitle],
		OriginalTitle:    f[colOriginalTitle],
		VoteAverage:      voteAverage,
		VoteCount:        parseInt(f[colVoteCount]),
		Status:           f[colStatus],
		ReleaseDate:      releaseDate,
		Revenue:          parseFloat(f[colRevenue]),
		Runtime:          parseFloat(f[colRuntime]),
		Adult:            parseBool(f[colAdult]),
		BackdropPath:     f[colBackdropPath],
		Budget:           parseFloat(f[colBudget]),
		Homepage:         f[colHomepage],
		IMDbID:           f[colIMDbID],
		OriginalLanguage: f[colOriginalLanguage],
		Overview:         f[colOverview],
		Popularity:       parseFloat(f[colPopularity]),
		PosterPath:       f[colPosterPath],
		Tagline:          f[colTagline],

		Genres:              splitList(f[colGenres]),
		ProductionCompanies: splitList(f[colProductionCompanies]),
		ProductionCountries: splitList(f[colProductionCountries]),
		SpokenLanguages:     splitList(f[colSpokenLanguages]),
		Keywords:            splitList(f[colKeywords]),

		Year:   DeriveYear(releaseDate),
		Rating: DeriveRating(voteAverage),
	}
}

// DeriveYear returns the leading run of digits in a release date, so
// "2010-07-15" gives 2010. A day-first date such as "15-07-2010" gives 15;
// the format is taken as-is rather than guessed.
func DeriveYear(releaseDate string) int {
	s := strings.TrimSpace(releaseDate)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	year, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return year
}

// DeriveRating converts a 0-10 vote average to a 0-5 rating with one decimal.
func DeriveRating(voteAverage float64) float64 {
	return math.Round(voteAverage/2*10) / 10
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// parseInt accepts integral floats such as "1200.0", which some exports emit.
func parseInt(s string) int64 {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	f := parseFloat(s)
	if f != math.Trunc(f) || f >= 1<<63 || f < -(1<<63) {
		return 0
	}
	return int64(f)
}

func parseBool(s string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && v
}

// splitList splits a comma-joined column. Empty tokens are dropped and the
// result is never nil.
func splitList(s string) []string {
	out := []string{}
	if strings.TrimSpace(s) == "" {
		return out
	}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
