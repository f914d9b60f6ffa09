// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package services

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/moodreel/internal/dataset"
)

// mockHTTPServer blocks in ListenAndServe until Shutdown is called, unless
// listenErr is set.
type mockHTTPServer struct {
	listenErr   error
	shutdownErr error
	started     chan struct{}
	stop        chan struct{}
	shutdowns   atomic.Int32
}

func newMockHTTPServer() *mockHTTPServer {
	return &mockHTTPServer{started: make(chan struct{}, 1), stop: make(chan struct{})}
}

func (m *mockHTTPServer) ListenAndServe() error {
	m.started <- struct{}{}
	if m.listenErr != nil {
		return m.listenErr
	}
	<-m.stop
	return http.ErrServerClosed
}

func (m *mockHTTPServer) Shutdown(context.Context) error {
	m.shutdowns.Add(1)
	close(m.stop)
	return m.shutdownErr
}

func TestHTTPServerServiceGracefulShutdown(t *testing.T) {
	srv := newMockHTTPServer()
	svc := NewHTTPServerService(srv, ":0", time.Second, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	<-srv.started
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	if srv.shutdowns.Load() != 1 {
		t.Errorf("Shutdown called %d times, want 1", srv.shutdowns.Load())
	}
}

func TestHTTPServerServiceListenError(t *testing.T) {
	srv := newMockHTTPServer()
	srv.listenErr = errors.New("address already in use")
	svc := NewHTTPServerService(srv, ":0", 0, zerolog.Nop())

	err := svc.Serve(context.Background())
	if err == nil || !errors.Is(err, srv.listenErr) {
		t.Errorf("Serve() = %v, want wrapped listen error", err)
	}
	if svc.shutdownTimeout != 10*time.Second {
		t.Errorf("default shutdown timeout = %v", svc.shutdownTimeout)
	}
}

func TestHTTPServerServiceShutdownError(t *testing.T) {
	srv := newMockHTTPServer()
	srv.shutdownErr = errors.New("connections still open")
	svc := NewHTTPServerService(srv, ":0", time.Second, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()
	<-srv.started
	cancel()

	if err := <-done; !errors.Is(err, srv.shutdownErr) {
		t.Errorf("Serve() = %v, want shutdown error", err)
	}
}

type fakeLoader struct {
	out   dataset.Outcome
	calls atomic.Int32
}

func (f *fakeLoader) EnsureLoaded(context.Context) dataset.Outcome {
	f.calls.Add(1)
	return f.out
}

func TestDatasetService(t *testing.T) {
	tests := []struct {
		name    string
		out     dataset.Outcome
		wantErr error
	}{
		{
			name:    "loaded from source",
			out:     dataset.Outcome{Ready: true, Origin: dataset.OriginSource, Count: 10},
			wantErr: suture.ErrDoNotRestart,
		},
		{
			name: "degraded load",
			out: dataset.Outcome{
				Ready: true, UsedFallback: true, Origin: dataset.OriginFallback,
				Count: 5, Err: errors.New("unreachable"),
			},
			wantErr: suture.ErrDoNotRestart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := &fakeLoader{out: tt.out}
			svc := NewDatasetService(loader, zerolog.Nop())
			if err := svc.Serve(context.Background()); !errors.Is(err, tt.wantErr) {
				t.Errorf("Serve() = %v, want %v", err, tt.wantErr)
			}
			if loader.calls.Load() != 1 {
				t.Errorf("EnsureLoaded called %d times", loader.calls.Load())
			}
		})
	}
}

func TestDatasetServiceInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	loader := &fakeLoader{out: dataset.Outcome{Err: context.Canceled}}

	err := NewDatasetService(loader, zerolog.Nop()).Serve(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}

type countingPruner struct {
	calls atomic.Int32
}

func (p *countingPruner) PruneCache() int {
	p.calls.Add(1)
	return 1
}

func TestCacheJanitorService(t *testing.T) {
	pruner := &countingPruner{}
	svc := NewCacheJanitorService(pruner, 5*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v", err)
	}
	if pruner.calls.Load() < 2 {
		t.Errorf("PruneCache called %d times, want several", pruner.calls.Load())
	}
}

func TestServiceNames(t *testing.T) {
	names := map[string]interface{ String() string }{
		"http-server":    NewHTTPServerService(newMockHTTPServer(), ":0", 0, zerolog.Nop()),
		"dataset-warmup": NewDatasetService(&fakeLoader{}, zerolog.Nop()),
		"cache-janitor":  NewCacheJanitorService(&countingPruner{}, 0, zerolog.Nop()),
	}
	for want, svc := range names {
		if got := svc.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
