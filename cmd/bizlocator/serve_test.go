package main

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeServer) record(e string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
}

func (f *fakeServer) Serve(string) {}

func (f *fakeServer) Shutdown(ctx context.Context) error {
	f.record("shutdown")
	return ctx.Err()
}

func TestRun_ClosesSessionsBeforeShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	srv := &fakeServer{}
	require.NoError(t, run(ctx, srv, ":0", func() { srv.record("close sessions") }))

	srv.mu.Lock()
	defer srv.mu.Unlock()
	assert.Equal(t, []string{"close sessions", "shutdown"}, srv.events)
}
