// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package breaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
)

func newTestBreaker(name string) *Breaker {
	return New(Settings{
		Name:         name,
		MinRequests:  3,
		FailureRatio: 0.5,
		Timeout:      time.Hour,
	}, zerolog.Nop())
}

func TestExecuteReturnsTypedResult(t *testing.T) {
	b := newTestBreaker("test-typed")
	got, err := Execute(b, func() (string, error) { return "payload", nil })
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != "payload" {
		t.Errorf("Execute() = %q, want payload", got)
	}
}

func TestExecuteNilPointerResult(t *testing.T) {
	b := newTestBreaker("test-nil")
	got, err := Execute(b, func() (*int, error) { return nil, nil })
	if err != nil || got != nil {
		t.Errorf("Execute() = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestCircuitOpensAfterFailures(t *testing.T) {
	b := newTestBreaker("test-trip")
	boom := errors.New("upstream down")

	for i := 0; i < 3; i++ {
		_, err := Execute(b, func() (string, error) { return "", boom })
		if !errors.Is(err, boom) {
			t.Fatalf("call %d: error = %v, want upstream error", i, err)
		}
	}

	if b.State() != "open" {
		t.Fatalf("State() = %s, want open", b.State())
	}

	called := false
	_, err := Execute(b, func() (string, error) {
		called = true
		return "", nil
	})
	if called {
		t.Error("guarded function ran while circuit was open")
	}
	if !IsRejected(err) {
		t.Errorf("error = %v, want rejection", err)
	}
}

func TestCanceledCallsDoNotTrip(t *testing.T) {
	b := newTestBreaker("test-cancel")
	for i := 0; i < 5; i++ {
		_, _ = Execute(b, func() (string, error) { return "", context.Canceled })
	}
	if b.State() != "closed" {
		t.Errorf("State() = %s, want closed", b.State())
	}
}

func TestStateString(t *testing.T) {
	tests := map[gobreaker.State]string{
		gobreaker.StateClosed:   "closed",
		gobreaker.StateHalfOpen: "half-open",
		gobreaker.StateOpen:     "open",
	}
	for state, want := range tests {
		if got := StateString(state); got != want {
			t.Errorf("StateString(%v) = %q, want %q", state, got, want)
		}
	}
}
