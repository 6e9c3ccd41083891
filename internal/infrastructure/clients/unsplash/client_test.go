package unsplash

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankorline/yachtcharterdiscovery/backend/pkg/retry"
)

func fastRetry() retry.Config {
	return retry.Config{
		MaxAttempts:     3,
		InitialDelay:    time.Millisecond,
		MaxDelay:        5 * time.Millisecond,
		BackoffFactor:   2.0,
		MaxTotalTimeout: time.Second,
	}
}

func TestClient_SearchImageURLs_PrefersRawVariant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[
			{"id":"a","urls":{"raw":"https://img.test/raw?ixid=1","regular":"https://img.test/regular"}},
			{"id":"b","urls":{"full":"https://img.test/full","small":"https://img.test/small"}},
			{"id":"c","urls":{"small":"https://img.test/small-only"}},
			{"id":"d"},
			{"id":"e","urls":{}}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	client.retryCfg = fastRetry()

	urls, err := client.SearchImageURLs(context.Background())
	require.NoError(t, err)

	// one URL per photo with a usable variant, presized for display
	require.Len(t, urls, 3)
	assert.Equal(t, "https://img.test/raw?ixid=1&"+displayParams, urls[0])
	assert.Equal(t, "https://img.test/full?"+displayParams, urls[1])
	assert.Equal(t, "https://img.test/small-only?"+displayParams, urls[2])
}

func TestClient_SearchImageURLs_EmptyResultsAreValid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	client.retryCfg = fastRetry()

	urls, err := client.SearchImageURLs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestClient_SearchImageURLs_RetriesTransientFailures(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"results":[{"id":"a","urls":{"regular":"https://img.test/regular"}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	client.retryCfg = fastRetry()

	urls, err := client.SearchImageURLs(context.Background())
	require.NoError(t, err)
	require.Len(t, urls, 1)
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestClient_SearchImageURLs_GivesUpAfterMaxAttempts(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	client.retryCfg = fastRetry()

	urls, err := client.SearchImageURLs(context.Background())

	assert.Nil(t, urls)
	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}
