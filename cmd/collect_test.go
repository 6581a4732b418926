package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"distsn/adapters"
	"distsn/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
)

func TestRunCollector(t *testing.T) {
	var timelineRequests atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/timelines/public" {
			timelineRequests.Add(1)
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	collector := adapters.NewInstanceCollector(ts.Client(), &mock.InstanceStoreMock{}, log.NewNopLogger(),
		adapters.WithHostBaseURL(func(string) string { return ts.URL }))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		runCollector(ctx, collector, []string{"a.example"}, 10*time.Millisecond, 1000, log.NewNopLogger())
		close(done)
	}()

	assert.Eventually(t, func() bool { return timelineRequests.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("collector did not stop")
	}
}
