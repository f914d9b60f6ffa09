// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package dataset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte(twoMovies), 0o600); err != nil {
		t.Fatal(err)
	}

	src := NewFileSource(path)
	if src.Name() != path {
		t.Errorf("Name() = %q, want %q", src.Name(), path)
	}
	text, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if text != twoMovies {
		t.Errorf("Fetch() = %q", text)
	}
}

func TestFileSourceMissing(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "absent.csv"))
	_, err := src.Fetch(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Fetch() error = %v, want not-exist", err)
	}
}

func TestFileSourceCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewFileSource("whatever").Fetch(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch() error = %v, want canceled", err)
	}
}

func TestHTTPSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/movies.csv":
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte(twoMovies))
		default:
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	t.Run("ok", func(t *testing.T) {
		src := NewHTTPSource(server.URL+"/movies.csv", 5*time.Second)
		text, err := src.Fetch(context.Background())
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if text != twoMovies {
			t.Errorf("Fetch() = %q", text)
		}
	})

	t.Run("server error", func(t *testing.T) {
		src := NewHTTPSource(server.URL+"/broken", 5*time.Second)
		_, err := src.Fetch(context.Background())
		if !errors.Is(err, ErrSourceStatus) {
			t.Errorf("Fetch() error = %v, want ErrSourceStatus", err)
		}
	})
}

func TestHTTPSourceRepeatedFailuresReachServer(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer server.Close()

	src := NewHTTPSource(server.URL, 5*time.Second)
	for i := 0; i < 6; i++ {
		if _, err := src.Fetch(context.Background()); !errors.Is(err, ErrSourceStatus) {
			t.Fatalf("Fetch() #%d error = %v, want ErrSourceStatus", i+1, err)
		}
	}
	if n := hits.Load(); n != 6 {
		t.Errorf("server saw %d requests, want 6", n)
	}
}

func TestHTTPSourceThroughStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(twoMovies))
	}))
	defer server.Close()

	store := NewStore(NewHTTPSource(server.URL, 5*time.Second), Options{}, zerolog.Nop())
	out := store.EnsureLoaded(context.Background())
	if out.Err != nil || out.Origin != OriginSource || out.Count != 2 {
		t.Errorf("EnsureLoaded() = %+v", out)
	}
}
