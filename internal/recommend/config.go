// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package recommend

import (
	"fmt"
	"time"
)

// Policy selects how candidates are chosen and ordered.
type Policy string

const (
	// PolicyWeighted ranks every record by a multi-factor score. Deterministic.
	PolicyWeighted Policy = "weighted"

	// PolicySample filters by genre and draws a random sample. Not cacheable.
	PolicySample Policy = "sample"
)

// ParsePolicy converts a configuration value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyWeighted, PolicySample:
		return Policy(s), nil
	case "":
		return PolicyWeighted, nil
	default:
		return "", fmt.Errorf("unknown recommendation policy %q", s)
	}
}

// Config contains all configuration for the recommendation engine.
type Config struct {
	Policy Policy `json:"policy"`

	// DefaultLimit is used when a caller passes a non-positive limit.
	DefaultLimit int `json:"default_limit"`

	// MaxLimit rejects larger limits with ErrLimitExceeded. Zero means no bound;
	// the HTTP layer enforces its own maximum.
	MaxLimit int `json:"max_limit"`

	// Seed feeds the sample policy's RNG. If zero, 42 is used.
	Seed int64 `json:"seed"`

	Weights Weights     `json:"weights"`
	Cache   CacheConfig `json:"cache"`
}

// Weights are the coefficients of the weighted policy score.
// Genre, Keyword, Rating and Popularity sum to 0.9 by default; VoteCountBonus
// is additive headroom on top.
type Weights struct {
	Genre          float64 `json:"genre"`
	Keyword        float64 `json:"keyword"`
	Rating         float64 `json:"rating"`
	Popularity     float64 `json:"popularity"`
	VoteCountBonus float64 `json:"vote_count_bonus"`
}

// CacheConfig contains response caching parameters.
type CacheConfig struct {
	Enabled bool          `json:"enabled"`
	TTL     time.Duration `json:"ttl"`
	Size    int           `json:"size"`
}

// DefaultWeights returns the standard scoring coefficients.
func DefaultWeights() Weights {
	return Weights{
		Genre:          0.4,
		Keyword:        0.2,
		Rating:         0.2,
		Popularity:     0.1,
		VoteCountBonus: 0.2,
	}
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Policy:       PolicyWeighted,
		DefaultLimit: 8,
		Seed:         42,
		Weights:      DefaultWeights(),
		Cache: CacheConfig{
			Enabled: true,
			TTL:     5 * time.Minute,
			Size:    256,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := ParsePolicy(string(c.Policy)); err != nil {
		return err
	}
	if c.DefaultLimit < 1 {
		return fmt.Errorf("default_limit must be positive, got %d", c.DefaultLimit)
	}
	if c.MaxLimit < 0 {
		return fmt.Errorf("max_limit must be non-negative, got %d", c.MaxLimit)
	}
	if c.MaxLimit > 0 && c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("max_limit (%d) must be >= default_limit (%d)", c.MaxLimit, c.DefaultLimit)
	}

	w := c.Weights
	for name, v := range map[string]float64{
		"genre":            w.Genre,
		"keyword":          w.Keyword,
		"rating":           w.Rating,
		"popularity":       w.Popularity,
		"vote_count_bonus": w.VoteCountBonus,
	} {
		if v < 0 {
			return fmt.Errorf("weights.%s must be non-negative, got %f", name, v)
		}
	}

	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
		if c.Cache.Size < 1 {
			return fmt.Errorf("cache.size must be positive, got %d", c.Cache.Size)
		}
	}
	return nil
}
