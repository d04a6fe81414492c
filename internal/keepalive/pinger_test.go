package keepalive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jaiidees/riser-gacha/internal/testutil"
)

func TestRunPingsHealthEndpoint(t *testing.T) {
	var pings atomic.Int32
	var lastPath atomic.Value

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastPath.Store(r.URL.Path)
		pings.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	pinger := New(Config{
		SelfURL:      server.URL,
		InitialDelay: time.Millisecond,
		Interval:     5 * time.Millisecond,
	}, testutil.NopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		pinger.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return pings.Load() >= 3
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pinger did not stop after cancellation")
	}

	assert.Equal(t, "/api/health", lastPath.Load())
}

func TestRunWithoutSelfURLReturnsImmediately(t *testing.T) {
	pinger := New(Config{}, testutil.NopLogger())

	done := make(chan struct{})
	go func() {
		pinger.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pinger should return when no self URL is configured")
	}
}

func TestRunCancelledDuringInitialDelay(t *testing.T) {
	pinger := New(Config{
		SelfURL:      "http://127.0.0.1:1",
		InitialDelay: time.Hour,
	}, testutil.NopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		pinger.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pinger did not honor cancellation during initial delay")
	}
}
