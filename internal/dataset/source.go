// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// maxSourceBytes bounds how much of a remote body is read.
const maxSourceBytes = 256 << 20

// ErrSourceStatus is wrapped when a remote source answers with a non-200 status.
var ErrSourceStatus = errors.New("dataset: unexpected source status")

// Source supplies the raw delimited text of the catalog.
type Source interface {
	// Fetch returns the whole catalog text.
	Fetch(ctx context.Context) (string, error)

	// Name identifies the source in logs and snapshot keys.
	Name() string
}

// FileSource reads the catalog from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource returns a Source reading path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the file path.
func (s *FileSource) Name() string { return s.path }

// Fetch reads the file.
func (s *FileSource) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("read dataset file: %w", err)
	}
	return string(data), nil
}

// HTTPSource downloads the catalog over HTTP. The store calls Fetch at most
// once per process, so every call goes to the network.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource returns a Source that GETs url.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Name returns the URL.
func (s *HTTPSource) Name() string { return s.url }

// Fetch downloads the catalog.
func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("build dataset request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/tab-separated-values, text/plain, */*")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch dataset: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s returned %d", ErrSourceStatus, s.url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceBytes))
	if err != nil {
		return "", fmt.Errorf("read dataset body: %w", err)
	}
	return string(body), nil
}
