// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package dataset

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const snapshotKeyPrefix = "snapshot:"

// SnapshotEntry is the last source text that loaded successfully.
type SnapshotEntry struct {
	Source  string    `json:"source"`
	Text    string    `json:"text"`
	Records int       `json:"records"`
	SavedAt time.Time `json:"saved_at"`
}

// Snapshot persists the last good catalog text in BadgerDB so that a restart
// during a source outage still serves the real catalog.
type Snapshot struct {
	db     *badger.DB
	closer bool
}

// OpenSnapshot opens (or creates) a BadgerDB directory at path.
func OpenSnapshot(path string) (*Snapshot, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}
	return &Snapshot{db: db, closer: true}, nil
}

// NewSnapshot wraps an already open database. Close leaves db open.
func NewSnapshot(db *badger.DB) *Snapshot {
	return &Snapshot{db: db}
}

// Save stores text as the snapshot for source.
func (s *Snapshot) Save(source, text string, records int) error {
	data, err := json.Marshal(SnapshotEntry{
		Source:  source,
		Text:    text,
		Records: records,
		SavedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(snapshotKeyPrefix+source), data)
	})
}

// Load returns the snapshot for source. ok is false when none exists.
func (s *Snapshot) Load(source string) (entry SnapshotEntry, ok bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(snapshotKeyPrefix + source))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get snapshot: %w", err)
		}
		ok = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})
	if err != nil {
		return SnapshotEntry{}, false, err
	}
	return entry, ok, nil
}

// Close closes the database if OpenSnapshot created it.
func (s *Snapshot) Close() error {
	if !s.closer {
		return nil
	}
	return s.db.Close()
}
