package analytics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchEvent(t *testing.T) {
	e := NewSearchEvent("d", "France")
	assert.Equal(t, "search", e.Name)
	assert.Equal(t, "JobExplorer", e.Category)
	assert.Equal(t, "France", e.Label)
	assert.Equal(t, "d", e.SearchTerm)
}

func TestWebhookTrackerPostsEvent(t *testing.T) {
	received := make(chan Event, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var e Event
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&e))
		received <- e
	}))
	defer srv.Close()

	done := make(chan error, 1)
	tr := NewWebhookTracker(srv.URL)
	tr.sent = func(err error) { done <- err }

	tr.TrackSearch("", "Germany")

	select {
	case e := <-received:
		assert.Equal(t, "Germany", e.Label)
		assert.Equal(t, "", e.SearchTerm)
	case <-time.After(5 * time.Second):
		t.Fatal("webhook was not called")
	}
	require.NoError(t, <-done)
}

func TestWebhookTrackerReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	done := make(chan error, 1)
	tr := NewWebhookTracker(srv.URL)
	tr.sent = func(err error) { done <- err }

	tr.TrackSearch("x", "Spain")

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("webhook result was not reported")
	}
}

func TestNopAndLogTrackerDoNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop{}.TrackSearch("a", "b")
		LogTracker{}.TrackSearch("a", "b")
	})
}
