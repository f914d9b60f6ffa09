// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package emotion

import "strings"

// Emotion is one of the seven mood categories the classifier can report.
type Emotion string

const (
	Angry    Emotion = "angry"
	Disgust  Emotion = "disgust"
	Fear     Emotion = "fear"
	Happy    Emotion = "happy"
	Sad      Emotion = "sad"
	Surprise Emotion = "surprise"
	Neutral  Emotion = "neutral"
)

// String returns the lowercase label.
func (e Emotion) String() string { return string(e) }

// Title returns the display label, e.g. "Happy".
func (e Emotion) Title() string {
	if e == "" {
		return ""
	}
	return strings.ToUpper(string(e[:1])) + string(e[1:])
}

type entry struct {
	genres   []string
	keywords []string
	message  string
}

// order matches the classifier's output index order.
var order = []Emotion{Angry, Disgust, Fear, Happy, Sad, Surprise, Neutral}

// Genre names follow TMDB's genre vocabulary so substring matching works
// against the catalog's genres column.
var table = map[Emotion]entry{
	Happy: {
		genres:   []string{"Comedy", "Animation", "Adventure", "Family", "Music"},
		keywords: []string{"friendship", "love", "family", "celebration", "hope", "dream", "road trip", "musical"},
		message:  "You're in a great mood! Here are some feel-good movies to keep the good vibes going.",
	},
	Sad: {
		genres:   []string{"Drama", "Romance"},
		keywords: []string{"loss", "grief", "love", "friendship", "redemption", "hope", "coming of age", "tearjerker"},
		message:  "Feeling down? These heartfelt stories might help you process your emotions.",
	},
	Angry: {
		genres:   []string{"Action", "Thriller", "Crime"},
		keywords: []string{"revenge", "fight", "justice", "martial arts", "vigilante", "heist", "escape", "rivalry"},
		message:  "Channel that energy! Here are some intense movies to help you blow off steam.",
	},
	Fear: {
		genres:   []string{"Horror", "Thriller", "Mystery"},
		keywords: []string{"haunted house", "supernatural", "monster", "survival", "serial killer", "ghost", "suspense", "paranormal"},
		message:  "Feeling brave? Lean into it with these spine-chilling picks.",
	},
	Disgust: {
		genres:   []string{"Horror", "Comedy"},
		keywords: []string{"satire", "dark comedy", "gore", "parody", "absurd", "black humor", "body horror"},
		message:  "Something rubbed you the wrong way? These darkly funny and unsettling films lean right into it.",
	},
	Surprise: {
		genres:   []string{"Mystery", "Science Fiction", "Thriller", "Fantasy"},
		keywords: []string{"plot twist", "time travel", "alternate reality", "mind-bending", "artificial intelligence", "space", "puzzle", "conspiracy"},
		message:  "Full of surprises! Here are some mind-bending movies with twists you won't see coming.",
	},
	Neutral: {
		genres:   []string{"Documentary", "Drama", "History"},
		keywords: []string{"biography", "based on true story", "nature", "history", "journalism", "politics", "biopic"},
		message:  "Here's a balanced mix of thoughtful movies to suit any mood.",
	},
}

// All returns every emotion in classifier order.
func All() []Emotion {
	out := make([]Emotion, len(order))
	copy(out, order)
	return out
}

// Resolve maps a free-form label onto an Emotion. Matching ignores case and
// surrounding whitespace. Unknown labels resolve to Neutral with ok=false.
func Resolve(label string) (e Emotion, ok bool) {
	e = Emotion(strings.ToLower(strings.TrimSpace(label)))
	if _, known := table[e]; known {
		return e, true
	}
	return Neutral, false
}

// Genres returns the target genres for e (Neutral's for unknown values).
func Genres(e Emotion) []string {
	return cloneStrings(lookup(e).genres)
}

// Keywords returns the target keywords for e (Neutral's for unknown values).
func Keywords(e Emotion) []string {
	return cloneStrings(lookup(e).keywords)
}

// Message returns the advisory message shown with recommendations.
func Message(e Emotion) string {
	return lookup(e).message
}

func lookup(e Emotion) entry {
	if v, ok := table[e]; ok {
		return v
	}
	return table[Neutral]
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
