// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package config

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/tomtom215/moodreel/internal/logging"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateDataset(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateClassifier(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateDataset() error {
	if strings.TrimSpace(c.Dataset.Source) == "" {
		return fmt.Errorf("DATASET_SOURCE is required")
	}
	if c.Dataset.IsRemote() {
		if err := validateHTTPURL(c.Dataset.Source, "DATASET_SOURCE", true); err != nil {
			return err
		}
	}
	switch strings.ToLower(c.Dataset.Delimiter) {
	case "", "tab", `\t`, "\t":
	default:
		if utf8.RuneCountInString(c.Dataset.Delimiter) != 1 {
			return fmt.Errorf("DATASET_DELIMITER must be a single character or \"tab\", got %q", c.Dataset.Delimiter)
		}
		if c.Dataset.Delimiter == `"` || c.Dataset.Delimiter == "\n" || c.Dataset.Delimiter == "\r" {
			return fmt.Errorf("DATASET_DELIMITER cannot be a quote or newline")
		}
	}
	if c.Dataset.LoadTimeout <= 0 {
		return fmt.Errorf("DATASET_LOAD_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	switch c.Recommend.Policy {
	case "weighted", "sample":
	default:
		return fmt.Errorf("RECOMMEND_POLICY must be weighted or sample, got %q", c.Recommend.Policy)
	}
	if c.Recommend.DefaultLimit < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_LIMIT must be at least 1")
	}
	if c.Recommend.MaxLimit < c.Recommend.DefaultLimit {
		return fmt.Errorf("RECOMMEND_MAX_LIMIT (%d) must be >= RECOMMEND_DEFAULT_LIMIT (%d)",
			c.Recommend.MaxLimit, c.Recommend.DefaultLimit)
	}
	if c.Recommend.CacheEnabled && c.Recommend.CacheSize < 1 {
		return fmt.Errorf("RECOMMEND_CACHE_SIZE must be at least 1 when caching is enabled")
	}
	return nil
}

func (c *Config) validateClassifier() error {
	if !c.Classifier.Enabled {
		return nil
	}
	if c.Classifier.URL == "" {
		return fmt.Errorf("CLASSIFIER_URL is required when CLASSIFIER_ENABLED=true")
	}
	if err := validateHTTPURL(c.Classifier.URL, "CLASSIFIER_URL", false); err != nil {
		return err
	}
	if c.Classifier.RateLimit <= 0 {
		return fmt.Errorf("CLASSIFIER_RATE_LIMIT must be positive")
	}
	if c.Classifier.Burst < 1 {
		return fmt.Errorf("CLASSIFIER_BURST must be at least 1")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQS must be at least 1")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// validateHTTPURL checks scheme and host. allowPath permits a path component,
// which dataset URLs need and service base URLs must not have.
func validateHTTPURL(rawURL, fieldName string, allowPath bool) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}
	if !allowPath && parsed.Path != "" && parsed.Path != "/" {
		return fmt.Errorf("%s should be base URL only, remove path: %s", fieldName, parsed.Path)
	}
	return nil
}
