// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package dataset

import "github.com/tomtom215/moodreel/internal/models"

// fallbackMovies is the catalog used when the configured source cannot be
// loaded. It covers every emotion with at least one strong genre match.
var fallbackMovies = []models.Movie{
	{
		ID: 27205, Title: "Inception", OriginalTitle: "Inception",
		VoteAverage: 8.364, VoteCount: 34495, Status: "Released", ReleaseDate: "2010-07-15",
		Revenue: 825532764, Runtime: 148, Budget: 160000000, Popularity: 83.952,
		IMDbID: "tt1375666", OriginalLanguage: "en", Homepage: "https://www.warnerbros.com/movies/inception",
		Overview: "Cobb, a skilled thief who commits corporate espionage by infiltrating the subconscious of his targets, is offered a chance to regain his old life.",
		Tagline:  "Your mind is the scene of the crime.",
		Genres:   []string{"Action", "Science Fiction", "Adventure"},
		Keywords: []string{"rescue", "mission", "dream", "airplane", "paris, france", "virtual reality", "kidnapping", "subconscious", "heist", "mind-bending"},
	},
	{
		ID: 862, Title: "Toy Story", OriginalTitle: "Toy Story",
		VoteAverage: 7.97, VoteCount: 17200, Status: "Released", ReleaseDate: "1995-10-30",
		Revenue: 394436586, Runtime: 81, Budget: 30000000, Popularity: 100.1,
		IMDbID: "tt0114709", OriginalLanguage: "en",
		Overview: "Led by Woody, Andy's toys live happily in his room until Andy's birthday brings Buzz Lightyear onto the scene.",
		Tagline:  "The adventure takes off!",
		Genres:   []string{"Animation", "Adventure", "Family", "Comedy"},
		Keywords: []string{"rivalry", "toy", "friendship", "buddy", "walking dead"},
	},
	{
		ID: 278, Title: "The Shawshank Redemption", OriginalTitle: "The Shawshank Redemption",
		VoteAverage: 8.7, VoteCount: 24649, Status: "Released", ReleaseDate: "1994-09-23",
		Revenue: 28341469, Runtime: 142, Budget: 25000000, Popularity: 99.8,
		IMDbID: "tt0111161", OriginalLanguage: "en",
		Overview: "Imprisoned in the 1940s for the double murder of his wife and her lover, upstanding banker Andy Dufresne begins a new life at the Shawshank prison.",
		Tagline:  "Fear can hold you prisoner. Hope can set you free.",
		Genres:   []string{"Drama", "Crime"},
		Keywords: []string{"prison", "friendship", "hope", "redemption", "based on novel or book"},
	},
	{
		ID: 138843, Title: "The Conjuring", OriginalTitle: "The Conjuring",
		VoteAverage: 7.5, VoteCount: 10500, Status: "Released", ReleaseDate: "2013-07-18",
		Revenue: 318000141, Runtime: 112, Budget: 20000000, Popularity: 61.2,
		IMDbID: "tt1457767", OriginalLanguage: "en",
		Overview: "Paranormal investigators Ed and Lorraine Warren work to help a family terrorized by a dark presence in their farmhouse.",
		Tagline:  "Based on the true case files of the Warrens.",
		Genres:   []string{"Horror", "Thriller"},
		Keywords: []string{"haunted house", "supernatural", "exorcism", "paranormal", "based on true story"},
	},
	{
		ID: 76341, Title: "Mad Max: Fury Road", OriginalTitle: "Mad Max: Fury Road",
		VoteAverage: 7.6, VoteCount: 21000, Status: "Released", ReleaseDate: "2015-05-13",
		Revenue: 378858340, Runtime: 121, Budget: 150000000, Popularity: 65.4,
		IMDbID: "tt1392190", OriginalLanguage: "en",
		Overview: "An apocalyptic story set in the furthest reaches of our planet, in a stark desert landscape where humanity is broken.",
		Tagline:  "What a lovely day.",
		Genres:   []string{"Action", "Adventure", "Science Fiction"},
		Keywords: []string{"future", "survival", "escape", "chase", "post-apocalyptic future"},
	},
	{
		ID: 496243, Title: "Parasite", OriginalTitle: "기생충",
		VoteAverage: 8.5, VoteCount: 16000, Status: "Released", ReleaseDate: "2019-05-30",
		Revenue: 257591776, Runtime: 133, Budget: 11363000, Popularity: 70.3,
		IMDbID: "tt6751668", OriginalLanguage: "ko",
		Overview: "All unemployed, Ki-taek's family takes peculiar interest in the wealthy and glamorous Parks for their livelihood.",
		Tagline:  "Act like you own the place.",
		Genres:   []string{"Comedy", "Thriller", "Drama"},
		Keywords: []string{"dark comedy", "satire", "class differences", "plot twist", "con artist"},
	},
	{
		ID: 11324, Title: "Shutter Island", OriginalTitle: "Shutter Island",
		VoteAverage: 8.2, VoteCount: 22000, Status: "Released", ReleaseDate: "2010-02-14",
		Revenue: 294804195, Runtime: 138, Budget: 80000000, Popularity: 48.7,
		IMDbID: "tt1130884", OriginalLanguage: "en",
		Overview: "World War II soldier-turned-U.S. Marshal Teddy Daniels investigates the disappearance of a patient from a hospital for the criminally insane.",
		Tagline:  "Someone is missing.",
		Genres:   []string{"Drama", "Thriller", "Mystery"},
		Keywords: []string{"island", "asylum", "plot twist", "conspiracy", "investigation"},
	},
	{
		ID: 515042, Title: "Free Solo", OriginalTitle: "Free Solo",
		VoteAverage: 7.9, VoteCount: 1200, Status: "Released", ReleaseDate: "2018-08-31",
		Revenue: 29000000, Runtime: 100, Budget: 0, Popularity: 12.5,
		IMDbID: "tt7775622", OriginalLanguage: "en",
		Overview: "Alex Honnold attempts to become the first person to ever free solo climb El Capitan.",
		Genres:   []string{"Documentary"},
		Keywords: []string{"biography", "nature", "climbing", "based on true story"},
	},
}

// Fallback returns a fresh copy of the built-in catalog with derived fields
// filled in.
func Fallback() []models.Movie {
	out := make([]models.Movie, len(fallbackMovies))
	for i, m := range fallbackMovies {
		m.Genres = cloneList(m.Genres)
		m.Keywords = cloneList(m.Keywords)
		m.ProductionCompanies = cloneList(m.ProductionCompanies)
		m.ProductionCountries = cloneList(m.ProductionCountries)
		m.SpokenLanguages = cloneList(m.SpokenLanguages)
		m.Year = DeriveYear(m.ReleaseDate)
		m.Rating = DeriveRating(m.VoteAverage)
		out[i] = m
	}
	return out
}

func cloneList(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
