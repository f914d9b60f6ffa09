// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package config

import (
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Dataset    DatasetConfig    `koanf:"dataset"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Classifier ClassifierConfig `koanf:"classifier"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DatasetConfig describes where the movie catalog comes from.
//
// Environment Variables:
//   - DATASET_SOURCE: file path or http(s) URL (default: data/tmdb.csv)
//   - DATASET_DELIMITER: "," or "tab" (default: ",")
//   - DATASET_LOAD_TIMEOUT: upper bound for the one-time load (default: 30s)
//   - DATASET_HTTP_TIMEOUT: per-request timeout for URL sources (default: 15s)
//   - DATASET_SNAPSHOT_PATH: badger directory for the last good copy (default: disabled)
type DatasetConfig struct {
	Source       string        `koanf:"source"`
	Delimiter    string        `koanf:"delimiter"`
	LoadTimeout  time.Duration `koanf:"load_timeout"`
	HTTPTimeout  time.Duration `koanf:"http_timeout"`
	SnapshotPath string        `koanf:"snapshot_path"`
}

// DelimiterRune returns the configured field delimiter. "tab" and "\t" both mean a tab.
func (d DatasetConfig) DelimiterRune() rune {
	switch strings.ToLower(d.Delimiter) {
	case "tab", `\t`, "\t":
		return '\t'
	case "":
		return ','
	}
	r := []rune(d.Delimiter)
	return r[0]
}

// IsRemote reports whether the source is an http(s) URL.
func (d DatasetConfig) IsRemote() bool {
	s := strings.ToLower(d.Source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// RecommendConfig holds scoring engine settings.
//
// Environment Variables:
//   - RECOMMEND_POLICY: weighted or sample (default: weighted)
//   - RECOMMEND_DEFAULT_LIMIT: results when no limit is given (default: 8)
//   - RECOMMEND_MAX_LIMIT: largest limit the API accepts (default: 100)
//   - RECOMMEND_SEED: random seed for the sample policy (default: 42)
//   - RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_TTL, RECOMMEND_CACHE_SIZE
type RecommendConfig struct {
	Policy       string        `koanf:"policy"`
	DefaultLimit int           `koanf:"default_limit"`
	MaxLimit     int           `koanf:"max_limit"`
	Seed         int64         `koanf:"seed"`
	CacheEnabled bool          `koanf:"cache_enabled"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`
	CacheSize    int           `koanf:"cache_size"`
}

// ClassifierConfig points at the external emotion-classification service.
type ClassifierConfig struct {
	Enabled bool          `koanf:"enabled"`
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`

	// RateLimit is the sustained requests per second sent upstream.
	RateLimit float64 `koanf:"rate_limit"`
	Burst     int     `koanf:"burst"`
}

// SecurityConfig holds CORS and API rate limit settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json (production) or console (development).
	Format string `koanf:"format"`

	Caller bool `koanf:"caller"`
}
