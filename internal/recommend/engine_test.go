// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodreel/internal/dataset"
	"github.com/tomtom215/moodreel/internal/emotion"
	"github.com/tomtom215/moodreel/internal/models"
)

// fakeCatalog serves a fixed record set with a fixed outcome.
type fakeCatalog struct {
	movies  []models.Movie
	outcome dataset.Outcome
	loads   atomic.Int32
}

func newFakeCatalog(movies []models.Movie) *fakeCatalog {
	return &fakeCatalog{
		movies:  movies,
		outcome: dataset.Outcome{Ready: true, Origin: dataset.OriginSource, Count: len(movies)},
	}
}

func (f *fakeCatalog) EnsureLoaded(context.Context) dataset.Outcome {
	f.loads.Add(1)
	return f.outcome
}

func (f *fakeCatalog) Records() []models.Movie { return f.movies }

func movie(id int64, title string, genres []string, voteAverage, popularity float64, voteCount int64) models.Movie {
	return models.Movie{
		ID:          id,
		Title:       title,
		Genres:      genres,
		Keywords:    []string{},
		VoteAverage: voteAverage,
		Popularity:  popularity,
		VoteCount:   voteCount,
	}
}

func testCatalog() []models.Movie {
	return []models.Movie{
		movie(1, "Grim Drama", []string{"Drama"}, 7.0, 20, 500),
		movie(2, "Big Comedy", []string{"Comedy", "Family"}, 7.5, 60, 9000),
		movie(3, "Cartoon", []string{"Animation", "Comedy"}, 8.0, 80, 12000),
		movie(4, "Shooter", []string{"Action", "Thriller"}, 6.5, 40, 3000),
		movie(5, "Scary Night", []string{"Horror"}, 6.0, 30, 1500),
		movie(6, "Space Trip", []string{"Science Fiction", "Adventure"}, 7.8, 70, 7000),
		movie(7, "No Genre", []string{}, 9.0, 10, 100),
		movie(8, "Small Comedy", []string{"Comedy"}, 5.0, 5, 50),
	}
}

func newTestEngine(t *testing.T, cfg *Config, catalog Catalog) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, catalog, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func ids(items []models.ScoredMovie) []int64 {
	out := make([]int64, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}

func TestWeightedScoreFormula(t *testing.T) {
	m := models.Movie{
		Genres:      []string{"Comedy", "Drama"},
		Keywords:    []string{"Friendship"},
		VoteAverage: 8,
		Popularity:  50,
		VoteCount:   5000,
	}
	got := DefaultWeights().score(&m, targetsFor(emotion.Happy))

	// genre 1/min(5,2)=0.5, keyword 1/min(8,1)=1, rating 0.8, popularity 0.5, bonus 0.1
	want := 0.4*0.5 + 0.2*1 + 0.2*0.8 + 0.1*0.5 + 0.1
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("score = %v, want %v", got, want)
	}
}

func TestWeightedScoreCaps(t *testing.T) {
	m := models.Movie{Popularity: 5000, VoteCount: 1_000_000}
	got := DefaultWeights().score(&m, targetsFor(emotion.Happy))
	if math.Abs(got-(0.1+0.2)) > 1e-9 {
		t.Errorf("score = %v, want popularity and bonus capped at 0.3", got)
	}
}

func TestWeightedScoreNoGenres(t *testing.T) {
	m := models.Movie{}
	if got := DefaultWeights().score(&m, targetsFor(emotion.Sad)); got != 0 {
		t.Errorf("score of empty record = %v, want 0", got)
	}
}

func TestScoreMonotonicInVoteCount(t *testing.T) {
	w := DefaultWeights()
	tg := targetsFor(emotion.Happy)
	counts := []int64{0, 1, 100, 5000, 9999, 10000, 50000}
	prev := -1.0
	for _, c := range counts {
		m := movie(1, "x", []string{"Comedy"}, 7, 50, c)
		s := w.score(&m, tg)
		if s < prev {
			t.Errorf("score(voteCount=%d) = %v < previous %v", c, s, prev)
		}
		prev = s
	}

	// The more-voted twin ranks first even though it comes second.
	low := movie(1, "Low", []string{"Comedy"}, 7, 50, 10)
	high := movie(2, "High", []string{"Comedy"}, 7, 50, 8000)
	e := newTestEngine(t, nil, newFakeCatalog([]models.Movie{low, high}))
	resp, err := e.Recommend(context.Background(), "happy", 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := ids(resp.Items); !reflect.DeepEqual(got, []int64{2, 1}) {
		t.Errorf("order = %v, want [2 1]", got)
	}
}

func TestMatchCountSubstring(t *testing.T) {
	tests := []struct {
		values  []string
		targets []string
		want    int
	}{
		{[]string{"Comedy"}, []string{"comedy"}, 1},
		{[]string{"ROMANTIC COMEDY"}, []string{"comedy"}, 1},
		{[]string{"Drama", "Romance"}, []string{"drama", "romance"}, 2},
		{[]string{"Documentary"}, []string{"drama"}, 0},
		{[]string{"Comedy-Drama"}, []string{"comedy", "drama"}, 1},
		{nil, []string{"comedy"}, 0},
	}
	for _, tt := range tests {
		if got := matchCount(tt.values, tt.targets); got != tt.want {
			t.Errorf("matchCount(%q, %q) = %d, want %d", tt.values, tt.targets, got, tt.want)
		}
	}
}

func TestRecommendRanksByScore(t *testing.T) {
	e := newTestEngine(t, nil, newFakeCatalog(testCatalog()))

	resp, err := e.Recommend(context.Background(), "happy", 3)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if got := ids(resp.Items); !reflect.DeepEqual(got, []int64{3, 2, 6}) {
		t.Errorf("happy top 3 = %v, want [3 2 6]", got)
	}
	for i := 1; i < len(resp.Items); i++ {
		if resp.Items[i].Score > resp.Items[i-1].Score {
			t.Errorf("items not sorted at %d: %v > %v", i, resp.Items[i].Score, resp.Items[i-1].Score)
		}
	}
	if resp.Emotion != "happy" || !resp.Known || resp.Policy != "weighted" {
		t.Errorf("response header = %+v", resp)
	}
	if resp.Message != emotion.Message(emotion.Happy) {
		t.Errorf("Message = %q", resp.Message)
	}
	if resp.TotalCandidates != len(testCatalog()) {
		t.Errorf("TotalCandidates = %d", resp.TotalCandidates)
	}
	if resp.DatasetOrigin != "source" || resp.Warning != "" {
		t.Errorf("origin/warning = %q/%q", resp.DatasetOrigin, resp.Warning)
	}
}

func TestRecommendDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.Enabled = false
	e := newTestEngine(t, cfg, newFakeCatalog(testCatalog()))

	first, err := e.Recommend(context.Background(), "happy", 8)
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Recommend(context.Background(), "happy", 8)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first.Items, second.Items) {
		t.Errorf("results differ between calls:\n%v\n%v", ids(first.Items), ids(second.Items))
	}
}

func TestRecommendStableTies(t *testing.T) {
	twins := []models.Movie{
		movie(10, "A", []string{"Drama"}, 7, 10, 10),
		movie(11, "B", []string{"Drama"}, 7, 10, 10),
		movie(12, "C", []string{"Drama"}, 7, 10, 10),
	}
	e := newTestEngine(t, nil, newFakeCatalog(twins))
	resp, err := e.Recommend(context.Background(), "sad", 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := ids(resp.Items); !reflect.DeepEqual(got, []int64{10, 11, 12}) {
		t.Errorf("tie order = %v, want input order", got)
	}
}

func TestRecommendCaseInsensitive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.Enabled = false
	e := newTestEngine(t, cfg, newFakeCatalog(testCatalog()))

	lower, err := e.Recommend(context.Background(), "happy", 5)
	if err != nil {
		t.Fatal(err)
	}
	upper, err := e.Recommend(context.Background(), "HAPPY", 5)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(lower.Items, upper.Items) {
		t.Errorf("HAPPY = %v, happy = %v", ids(upper.Items), ids(lower.Items))
	}
	if upper.RequestedEmotion != "HAPPY" || upper.Emotion != "happy" {
		t.Errorf("labels = %q/%q", upper.RequestedEmotion, upper.Emotion)
	}
}

func TestRecommendLimit(t *testing.T) {
	e := newTestEngine(t, nil, newFakeCatalog(testCatalog()))

	tests := []struct {
		limit int
		want  int
	}{
		{limit: 1, want: 1},
		{limit: 3, want: 3},
		{limit: 8, want: 8},
		{limit: 50, want: 8}, // only 8 records exist
		{limit: 0, want: 8},  // default limit
		{limit: -3, want: 8},
	}
	for _, tt := range tests {
		resp, err := e.Recommend(context.Background(), "fear", tt.limit)
		if err != nil {
			t.Fatalf("Recommend(limit=%d) error = %v", tt.limit, err)
		}
		if len(resp.Items) != tt.want {
			t.Errorf("Recommend(limit=%d) returned %d items, want %d", tt.limit, len(resp.Items), tt.want)
		}
	}
}

func TestRecommendLargeLimitIsNotTruncated(t *testing.T) {
	records := make([]models.Movie, 150)
	for i := range records {
		records[i] = movie(int64(i+1), fmt.Sprintf("Comedy %d", i+1), []string{"Comedy"}, 7, 50, 2000)
	}
	cfg := DefaultConfig()
	cfg.Cache.Enabled = false
	e := newTestEngine(t, cfg, newFakeCatalog(records))

	for _, limit := range []int{101, 120, 150} {
		resp, err := e.Recommend(context.Background(), "happy", limit)
		if err != nil {
			t.Fatalf("Recommend(limit=%d) error = %v", limit, err)
		}
		if len(resp.Items) != limit {
			t.Errorf("Recommend(limit=%d) returned %d items, want %d", limit, len(resp.Items), limit)
		}
	}
}

func TestRecommendMaxLimitRejects(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultLimit = 2
	cfg.MaxLimit = 3
	e := newTestEngine(t, cfg, newFakeCatalog(testCatalog()))

	resp, err := e.Recommend(context.Background(), "happy", 4)
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("Recommend(limit=4) error = %v, want ErrLimitExceeded", err)
	}
	if resp != nil {
		t.Errorf("Recommend(limit=4) returned %+v, want nil", resp)
	}

	resp, err = e.Recommend(context.Background(), "happy", 3)
	if err != nil || len(resp.Items) != 3 {
		t.Errorf("Recommend(limit=3) = %v items, %v", resp, err)
	}
}

func TestRecommendUnknownEmotionUsesNeutral(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.Enabled = false
	e := newTestEngine(t, cfg, newFakeCatalog(testCatalog()))

	unknown, err := e.Recommend(context.Background(), "bored", 4)
	if err != nil {
		t.Fatal(err)
	}
	neutral, err := e.Recommend(context.Background(), "neutral", 4)
	if err != nil {
		t.Fatal(err)
	}
	if unknown.Known || unknown.Emotion != "neutral" {
		t.Errorf("unknown label resolved to %q (known=%v)", unknown.Emotion, unknown.Known)
	}
	if !reflect.DeepEqual(unknown.Items, neutral.Items) {
		t.Errorf("bored = %v, neutral = %v", ids(unknown.Items), ids(neutral.Items))
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	e := newTestEngine(t, nil, newFakeCatalog(nil))
	resp, err := e.Recommend(context.Background(), "happy", 5)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Items) != 0 {
		t.Errorf("Items = %v, want none", resp.Items)
	}
}

func TestRecommendDegradedCatalogWarns(t *testing.T) {
	cat := newFakeCatalog(dataset.Fallback())
	cat.outcome = dataset.Outcome{
		Ready:        true,
		UsedFallback: true,
		Origin:       dataset.OriginFallback,
		Count:        len(cat.movies),
		Err:          errors.New("fetch dataset: connection refused"),
	}
	e := newTestEngine(t, nil, cat)

	resp, err := e.Recommend(context.Background(), "happy", 3)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Items) == 0 {
		t.Error("degraded catalog returned no items")
	}
	if resp.Warning != "fetch dataset: connection refused" || resp.DatasetOrigin != "fallback" {
		t.Errorf("warning/origin = %q/%q", resp.Warning, resp.DatasetOrigin)
	}
	if e.Metrics().DegradedCount != 1 {
		t.Errorf("DegradedCount = %d, want 1", e.Metrics().DegradedCount)
	}
}

// failingSource never yields a catalog.
type failingSource struct{ calls atomic.Int32 }

func (s *failingSource) Name() string { return "unreachable" }

func (s *failingSource) Fetch(context.Context) (string, error) {
	s.calls.Add(1)
	return "", errors.New("network unreachable")
}

func TestRecommendOverFallbackStore(t *testing.T) {
	src := &failingSource{}
	store := dataset.NewStore(src, dataset.Options{}, zerolog.Nop())
	e := newTestEngine(t, nil, store)

	for _, label := range []string{"happy", "sad", "angry"} {
		resp, err := e.Recommend(context.Background(), label, 8)
		if err != nil {
			t.Fatalf("Recommend(%q) error = %v", label, err)
		}
		if len(resp.Items) == 0 {
			t.Errorf("Recommend(%q) returned nothing", label)
		}
		if resp.Warning == "" {
			t.Errorf("Recommend(%q) has no warning", label)
		}
	}
	if n := src.calls.Load(); n != 1 {
		t.Errorf("source fetched %d times, want 1", n)
	}
}

func TestRecommendNotReady(t *testing.T) {
	cat := newFakeCatalog(testCatalog())
	cat.outcome = dataset.Outcome{Err: context.Canceled}
	e := newTestEngine(t, nil, cat)

	resp, err := e.Recommend(context.Background(), "happy", 3)
	if resp != nil {
		t.Errorf("resp = %+v, want nil", resp)
	}
	if !errors.Is(err, ErrDatasetNotReady) || !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want ErrDatasetNotReady wrapping context.Canceled", err)
	}
	if e.Metrics().ErrorCount != 1 {
		t.Errorf("ErrorCount = %d, want 1", e.Metrics().ErrorCount)
	}
}

func TestRecommendCache(t *testing.T) {
	cat := newFakeCatalog(testCatalog())
	e := newTestEngine(t, nil, cat)

	first, err := e.Recommend(context.Background(), "happy", 4)
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Recommend(context.Background(), "Happy", 4)
	if err != nil {
		t.Fatal(err)
	}

	if first.Cached || !second.Cached {
		t.Errorf("Cached = %v, %v; want false, true", first.Cached, second.Cached)
	}
	if second.RequestedEmotion != "Happy" {
		t.Errorf("cached RequestedEmotion = %q, want Happy", second.RequestedEmotion)
	}
	if !reflect.DeepEqual(ids(first.Items), ids(second.Items)) {
		t.Errorf("cached items differ")
	}
	if n := cat.loads.Load(); n != 1 {
		t.Errorf("catalog consulted %d times, want 1", n)
	}

	// Mutating a returned response must not leak into the cache.
	second.Items[0].Title = "changed"
	third, _ := e.Recommend(context.Background(), "happy", 4)
	if third.Items[0].Title == "changed" {
		t.Error("cache entry shares Items with returned response")
	}

	m := e.Metrics()
	if m.RequestCount != 3 || m.CacheHits != 2 || m.CacheMisses != 1 || m.CacheSize != 1 {
		t.Errorf("Metrics() = %+v", m)
	}
}

func TestSamplePolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy = PolicySample
	cat := newFakeCatalog(testCatalog())
	e := newTestEngine(t, cfg, cat)

	t.Run("fewer matches than limit returns all in order", func(t *testing.T) {
		resp, err := e.Recommend(context.Background(), "angry", 5)
		if err != nil {
			t.Fatal(err)
		}
		if got := ids(resp.Items); !reflect.DeepEqual(got, []int64{4}) {
			t.Errorf("angry = %v, want [4]", got)
		}
		if resp.TotalCandidates != 1 || resp.Policy != "sample" {
			t.Errorf("TotalCandidates/Policy = %d/%q", resp.TotalCandidates, resp.Policy)
		}
	})

	t.Run("more matches than limit draws a sample", func(t *testing.T) {
		// happy matches 2, 3, 6 and 8
		happy := map[int64]bool{2: true, 3: true, 6: true, 8: true}
		for i := 0; i < 20; i++ {
			resp, err := e.Recommend(context.Background(), "happy", 2)
			if err != nil {
				t.Fatal(err)
			}
			if len(resp.Items) != 2 {
				t.Fatalf("len(Items) = %d, want 2", len(resp.Items))
			}
			if resp.Items[0].ID == resp.Items[1].ID {
				t.Errorf("duplicate pick %d", resp.Items[0].ID)
			}
			for _, it := range resp.Items {
				if !happy[it.ID] {
					t.Errorf("picked non-matching id %d", it.ID)
				}
			}
			if resp.Cached {
				t.Error("sample policy response was cached")
			}
		}
	})

	t.Run("same seed same sequence", func(t *testing.T) {
		a := newTestEngine(t, cfg, newFakeCatalog(testCatalog()))
		b := newTestEngine(t, cfg, newFakeCatalog(testCatalog()))
		for i := 0; i < 5; i++ {
			ra, _ := a.Recommend(context.Background(), "happy", 2)
			rb, _ := b.Recommend(context.Background(), "happy", 2)
			if !reflect.DeepEqual(ids(ra.Items), ids(rb.Items)) {
				t.Fatalf("draw %d differs: %v vs %v", i, ids(ra.Items), ids(rb.Items))
			}
		}
	})
}

func TestRecommendationMessage(t *testing.T) {
	e := newTestEngine(t, nil, newFakeCatalog(nil))
	if got := e.RecommendationMessage("SAD"); got != emotion.Message(emotion.Sad) {
		t.Errorf("RecommendationMessage(SAD) = %q", got)
	}
	if got := e.RecommendationMessage("???"); got != emotion.Message(emotion.Neutral) {
		t.Errorf("RecommendationMessage(???) = %q", got)
	}
}

func TestNewEngineValidation(t *testing.T) {
	if _, err := NewEngine(nil, nil, zerolog.Nop()); err == nil {
		t.Error("NewEngine(nil catalog) succeeded")
	}

	bad := DefaultConfig()
	bad.Policy = "roulette"
	if _, err := NewEngine(bad, newFakeCatalog(nil), zerolog.Nop()); err == nil {
		t.Error("NewEngine(bad policy) succeeded")
	}

	bad = DefaultConfig()
	bad.Weights.Genre = -1
	if _, err := NewEngine(bad, newFakeCatalog(nil), zerolog.Nop()); err == nil {
		t.Error("NewEngine(negative weight) succeeded")
	}
}

func TestParsePolicy(t *testing.T) {
	tests := map[string]Policy{"": PolicyWeighted, "weighted": PolicyWeighted, "sample": PolicySample}
	for in, want := range tests {
		got, err := ParsePolicy(in)
		if err != nil || got != want {
			t.Errorf("ParsePolicy(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParsePolicy("random"); err == nil {
		t.Error("ParsePolicy(random) succeeded")
	}
}
