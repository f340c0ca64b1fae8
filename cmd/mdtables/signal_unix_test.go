//go:build !windows

package main

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestNotifyContext_Signal - Shutdown signals cancel the context
// ---------------------------------------------------------------------------

// Not parallel: the signal goes to the whole test process, and parallel
// tests only start once the sequential ones are done.
func TestNotifyContext_Signal(t *testing.T) {
	tests := []struct {
		name string
		sig  syscall.Signal
	}{
		{name: "interrupt", sig: syscall.SIGINT},
		{name: "terminate", sig: syscall.SIGTERM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, stop := notifyContext(context.Background())
			defer stop()

			if err := syscall.Kill(syscall.Getpid(), tt.sig); err != nil {
				t.Fatalf("kill: %v", err)
			}

			select {
			case <-ctx.Done():
				if !errors.Is(ctx.Err(), context.Canceled) {
					t.Errorf("ctx.Err() = %v, want context.Canceled", ctx.Err())
				}
			case <-time.After(5 * time.Second):
				t.Fatalf("context not cancelled after %v", tt.sig)
			}
		})
	}
}

func TestShutdownSignals(t *testing.T) {
	t.Parallel()

	want := map[string]bool{syscall.SIGINT.String(): true, syscall.SIGTERM.String(): true}
	if len(shutdownSignals) != len(want) {
		t.Fatalf("got %d shutdown signals, want %d", len(shutdownSignals), len(want))
	}
	for _, s := range shutdownSignals {
		if !want[s.String()] {
			t.Errorf("unexpected shutdown signal %v", s)
		}
	}
}
