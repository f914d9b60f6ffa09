// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package breaker wraps sony/gobreaker with logging and Prometheus metrics.
// It guards the two outbound HTTP dependencies: the remote dataset source and
// the emotion classifier.
package breaker

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/moodreel/internal/metrics"
)

// Settings configures a Breaker. Zero values take the defaults below.
type Settings struct {
	Name string

	// MaxRequests allowed through while half-open. Default: 3
	MaxRequests uint32

	// Interval after which closed-state counts reset. Default: 1m
	Interval time.Duration

	// Timeout spent open before probing again. Default: 30s
	Timeout time.Duration

	// MinRequests before the failure ratio is considered. Default: 5
	MinRequests uint32

	// FailureRatio at or above which the circuit opens. Default: 0.6
	FailureRatio float64
}

func (s *Settings) applyDefaults() {
	if s.MaxRequests == 0 {
		s.MaxRequests = 3
	}
	if s.Interval == 0 {
		s.Interval = time.Minute
	}
	if s.Timeout == 0 {
		s.Timeout = 30 * time.Second
	}
	if s.MinRequests == 0 {
		s.MinRequests = 5
	}
	if s.FailureRatio == 0 {
		s.FailureRatio = 0.6
	}
}

// Breaker is a named circuit breaker.
type Breaker struct {
	cb     *gobreaker.CircuitBreaker[any]
	name   string
	logger zerolog.Logger
}

// New creates a Breaker and initializes its state gauge to closed.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(s Settings, logger zerolog.Logger) *Breaker {
	s.applyDefaults()
	b := &Breaker{
		name:   s.Name,
		logger: logger.With().Str("breaker", s.Name).Logger(),
	}

	metrics.CircuitBreakerState.WithLabelValues(s.Name).Set(0)

	b.cb = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= s.FailureRatio {
				b.logger.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("Opening circuit")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := StateString(from), StateString(to)
			b.logger.Info().Str("from", fromStr).Str("to", toStr).Msg("Circuit state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
		// A caller giving up is not a sign the upstream is unhealthy.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
	return b
}

// Name returns the breaker name used in metrics.
func (b *Breaker) Name() string { return b.name }

// State returns the current state as a string: closed, half-open or open.
func (b *Breaker) State() string { return StateString(b.cb.State()) }

// Execute runs fn through the breaker. When the circuit is open, fn is not
// called and the returned error satisfies IsRejected.
func Execute[T any](b *Breaker, fn func() (T, error)) (T, error) {
	var zero T
	result, err := b.cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		if IsRejected(err) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			b.logger.Warn().Err(err).Msg("Request rejected by open circuit")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		}
		return zero, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()

	if result == nil {
		return zero, nil
	}
	typed, ok := result.(T)
	if !ok {
		return zero, errors.New("breaker: unexpected result type")
	}
	return typed, nil
}

// IsRejected reports whether err came from an open or saturated circuit
// rather than from the guarded call.
func IsRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// StateString converts a gobreaker state to its metric label.
func StateString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
