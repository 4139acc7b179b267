// Package analytics reports search events to an optional collaborator.
// Reporting is fire-and-forget: it never returns a value and never changes
// what the caller does next.
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/fr4nk3nst1ner/jobexplorer/internal/client"
)

// EventCategory groups every event sent by the explorer
const EventCategory = "JobExplorer"

// Tracker receives one call per browse-mode search
type Tracker interface {
	TrackSearch(query, country string)
}

// Event is the payload describing a search
type Event struct {
	Name       string    `json:"event"`
	Category   string    `json:"event_category"`
	Label      string    `json:"event_label"`
	SearchTerm string    `json:"search_term"`
	Time       time.Time `json:"time"`
}

// NewSearchEvent builds the event for a (query, country) pair
func NewSearchEvent(query, country string) Event {
	return Event{
		Name:       "search",
		Category:   EventCategory,
		Label:      country,
		SearchTerm: query,
		Time:       time.Now().UTC(),
	}
}

// Nop discards every event
type Nop struct{}

// TrackSearch does nothing
func (Nop) TrackSearch(string, string) {}

// LogTracker writes each event to the standard logger
type LogTracker struct{}

// TrackSearch logs the event
func (LogTracker) TrackSearch(query, country string) {
	log.Printf("search event: category=%s label=%q term=%q", EventCategory, country, query)
}

// WebhookTracker posts events as JSON to a URL. Delivery happens on a
// separate goroutine; failures are logged and dropped.
type WebhookTracker struct {
	URL        string
	httpClient *http.Client
	timeout    time.Duration
	sent       func(error)
}

// NewWebhookTracker creates a tracker posting to url
func NewWebhookTracker(url string) *WebhookTracker {
	return &WebhookTracker{
		URL:        url,
		httpClient: client.CreateHTTPClient(),
		timeout:    5 * time.Second,
	}
}

// TrackSearch sends the event without waiting for the response
func (w *WebhookTracker) TrackSearch(query, country string) {
	event := NewSearchEvent(query, country)
	go func() {
		err := w.post(event)
		if err != nil {
			log.Printf("Failed to send analytics event: %v", err)
		}
		if w.sent != nil {
			w.sent(err)
		}
	}()
}

func (w *WebhookTracker) post(event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &client.StatusError{URL: w.URL, StatusCode: resp.StatusCode}
	}
	return nil
}
