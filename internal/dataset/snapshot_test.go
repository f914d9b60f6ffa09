// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

func newTestSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		t.Fatalf("open in-memory badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewSnapshot(db)
}

func TestSnapshotSaveLoad(t *testing.T) {
	snap := newTestSnapshot(t)

	if err := snap.Save("data/tmdb.csv", twoMovies, 2); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	entry, ok, err := snap.Load("data/tmdb.csv")
	if err != nil || !ok {
		t.Fatalf("Load() = ok %v, err %v", ok, err)
	}
	if entry.Text != twoMovies || entry.Records != 2 || entry.Source != "data/tmdb.csv" {
		t.Errorf("Load() entry = %+v", entry)
	}
	if entry.SavedAt.IsZero() {
		t.Error("SavedAt is zero")
	}
}

func TestSnapshotLoadMissing(t *testing.T) {
	snap := newTestSnapshot(t)

	_, ok, err := snap.Load("nowhere")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ok {
		t.Error("Load() ok = true for a missing key")
	}
}

func TestSnapshotCloseLeavesBorrowedDBOpen(t *testing.T) {
	snap := newTestSnapshot(t)
	if err := snap.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := snap.Save("still-open", "id\n1\n", 1); err != nil {
		t.Errorf("Save() after Close() on borrowed db = %v", err)
	}
}

func TestStoreSavesAndRestoresSnapshot(t *testing.T) {
	snap := newTestSnapshot(t)

	good := NewStore(&fakeSource{text: twoMovies}, Options{Snapshot: snap}, zerolog.Nop())
	if out := good.EnsureLoaded(context.Background()); out.Origin != OriginSource {
		t.Fatalf("first load origin = %q, want source", out.Origin)
	}

	failing := &fakeSource{err: errors.New("upstream down")}
	store := NewStore(failing, Options{Snapshot: snap}, zerolog.Nop())
	out := store.EnsureLoaded(context.Background())

	if out.Origin != OriginSnapshot || out.UsedFallback {
		t.Fatalf("EnsureLoaded() = %+v, want snapshot origin", out)
	}
	if out.Err == nil {
		t.Error("Err = nil, want the source error to be kept")
	}
	if out.Count != 2 || store.Records()[0].Title != "Up" {
		t.Errorf("restored records = %+v", store.Records())
	}
}

func TestStoreSkipsUnusableSnapshot(t *testing.T) {
	snap := newTestSnapshot(t)
	if err := snap.Save("fake", "id,title\n0,Nothing\n", 0); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	store := NewStore(&fakeSource{err: errors.New("down")}, Options{Snapshot: snap}, zerolog.Nop())
	out := store.EnsureLoaded(context.Background())
	if out.Origin != OriginFallback {
		t.Errorf("Origin = %q, want fallback", out.Origin)
	}
}
