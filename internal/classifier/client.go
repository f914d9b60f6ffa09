// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package classifier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/moodreel/internal/breaker"
	"github.com/tomtom215/moodreel/internal/metrics"
)

// maxResponseBytes bounds how much of a classifier response is read.
const maxResponseBytes = 1 << 20

var (
	// ErrUnavailable is wrapped when the classifier cannot be reached or
	// answers with a server error.
	ErrUnavailable = errors.New("classifier: unavailable")

	// ErrRejected is wrapped when the classifier refuses the request (4xx),
	// typically because the image could not be decoded.
	ErrRejected = errors.New("classifier: request rejected")

	// ErrCircuitOpen is returned without contacting the classifier while its
	// circuit breaker is open.
	ErrCircuitOpen = errors.New("classifier: circuit open")
)

// Detection is the classifier's verdict for one image.
type Detection struct {
	DominantEmotion string             `json:"dominantEmotion"`
	Emotions        map[string]float64 `json:"emotions"`
	FaceDetected    bool               `json:"faceDetected"`
}

// Config configures a Client.
type Config struct {
	URL     string
	Timeout time.Duration

	// RateLimit is requests per second sent upstream. Zero disables limiting.
	RateLimit float64
	Burst     int
}

// Client talks to the emotion-classification service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *breaker.Breaker
	logger     zerolog.Logger
}

// New creates a classifier client.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(cfg Config, logger zerolog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}

	logger = logger.With().Str("component", "classifier").Logger()
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, cfg.Burst),
		breaker:    breaker.New(breaker.Settings{Name: "classifier"}, logger),
		logger:     logger,
	}
}

// URL returns the classifier base URL.
func (c *Client) URL() string { return c.baseURL }

// BreakerState returns the circuit state: closed, half-open or open.
func (c *Client) BreakerState() string { return c.breaker.State() }

// Health checks that the classifier answers GET /health with a 2xx.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.call(ctx, "health", http.MethodGet, "/health", nil)
	return err
}

// Detect sends a base64 (optionally data-URL prefixed) image to the classifier.
func (c *Client) Detect(ctx context.Context, image string) (*Detection, error) {
	body, err := json.Marshal(map[string]string{"image": image})
	if err != nil {
		return nil, fmt.Errorf("encode detect request: %w", err)
	}

	raw, err := c.call(ctx, "detect", http.MethodPost, "/detect", body)
	if err != nil {
		return nil, err
	}

	var det Detection
	if err := json.Unmarshal(raw, &det); err != nil {
		return nil, fmt.Errorf("%w: decode detect response: %w", ErrUnavailable, err)
	}
	if det.DominantEmotion == "" {
		det.DominantEmotion = strongest(det.Emotions)
	}
	det.DominantEmotion = strings.ToLower(det.DominantEmotion)
	return &det, nil
}

// upstreamReply carries a non-5xx answer out of the breaker.
type upstreamReply struct {
	status int
	body   []byte
}

// call rate-limits, then runs the request through the breaker. Only
// transport failures and 5xx responses count against the circuit.
func (c *Client) call(ctx context.Context, endpoint, method, path string, body []byte) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		metrics.RecordClassifierRequest(endpoint, "throttled")
		return nil, fmt.Errorf("classifier rate limit: %w", err)
	}

	reply, err := breaker.Execute(c.breaker, func() (upstreamReply, error) {
		return c.do(ctx, method, path, body)
	})
	if err != nil {
		if breaker.IsRejected(err) {
			metrics.RecordClassifierRequest(endpoint, "circuit_open")
			return nil, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}
		metrics.RecordClassifierRequest(endpoint, "error")
		c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Classifier request failed")
		return nil, err
	}

	if reply.status < 200 || reply.status > 299 {
		metrics.RecordClassifierRequest(endpoint, "rejected")
		return nil, fmt.Errorf("%w: %s returned %d: %s", ErrRejected, path, reply.status, snippet(reply.body))
	}
	metrics.RecordClassifierRequest(endpoint, "ok")
	return reply.body, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (upstreamReply, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return upstreamReply{}, fmt.Errorf("build classifier request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return upstreamReply{}, ctxErr
		}
		return upstreamReply{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return upstreamReply{}, fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}
	if resp.StatusCode >= 500 {
		return upstreamReply{}, fmt.Errorf("%w: %s returned %d: %s", ErrUnavailable, path, resp.StatusCode, snippet(data))
	}
	return upstreamReply{status: resp.StatusCode, body: data}, nil
}

// strongest returns the label with the highest score. Ties go to the
// alphabetically first label so the result does not depend on map order.
func strongest(scores map[string]float64) string {
	labels := make([]string, 0, len(scores))
	for label := range scores {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	best, bestScore := "", 0.0
	for _, label := range labels {
		if s := scores[label]; best == "" || s > bestScore {
			best, bestScore = label, s
		}
	}
	return best
}

func snippet(b []byte) string {
	const n = 200
	s := strings.TrimSpace(string(b))
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
