package tsv

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fr4nk3nst1ner/jobexplorer/internal/client"
)

// Loader fetches tables from disk or over HTTP
type Loader struct {
	httpClient *http.Client
	baseURL    string
	dataDir    string
	debug      bool
}

// Option configures a Loader
type Option func(*Loader)

// WithHTTPClient sets the client used for http(s) resources
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		l.httpClient = c
	}
}

// WithBaseURL makes relative paths resolve against base instead of the data directory
func WithBaseURL(base string) Option {
	return func(l *Loader) {
		l.baseURL = base
	}
}

// WithDataDir sets the directory relative file paths are read from
func WithDataDir(dir string) Option {
	return func(l *Loader) {
		l.dataDir = dir
	}
}

// WithDebug enables verbose logging
func WithDebug(debug bool) Option {
	return func(l *Loader) {
		l.debug = debug
	}
}

// NewLoader creates a Loader. Without options it reads relative paths from the
// working directory and uses the shared HTTP client for absolute URLs.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.httpClient == nil {
		l.httpClient = client.CreateHTTPClient()
	}
	return l
}

// Resolve returns the location path will be read from: an absolute URL or a file path
func (l *Loader) Resolve(path string) (string, error) {
	if isHTTP(path) {
		return path, nil
	}

	if l.baseURL != "" {
		base, err := url.Parse(l.baseURL)
		if err != nil {
			return "", fmt.Errorf("invalid base URL %q: %w", l.baseURL, err)
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		ref, err := url.Parse(path)
		if err != nil {
			return "", fmt.Errorf("invalid resource path %q: %w", path, err)
		}
		return base.ResolveReference(ref).String(), nil
	}

	if filepath.IsAbs(path) || l.dataDir == "" {
		return path, nil
	}
	return filepath.Join(l.dataDir, path), nil
}

// Fetch returns the raw content of path
func (l *Loader) Fetch(ctx context.Context, path string) ([]byte, error) {
	location, err := l.Resolve(path)
	if err != nil {
		return nil, err
	}

	if isHTTP(location) {
		if l.debug {
			log.Printf("[DEBUG] Fetching %s", location)
		}
		return client.Get(ctx, l.httpClient, location)
	}

	if l.debug {
		log.Printf("[DEBUG] Reading %s", location)
	}
	return os.ReadFile(location)
}

// Load fetches and parses path. It never fails: a resource that cannot be
// fetched is logged and loads as an empty table.
func (l *Loader) Load(ctx context.Context, path string) Table {
	data, err := l.Fetch(ctx, path)
	if err != nil {
		log.Printf("Failed to load %s: %v", path, err)
		return Table{}
	}

	table := Parse(string(data))
	if l.debug {
		log.Printf("[DEBUG] Loaded %d rows from %s (columns: %s)", table.Len(), path, strings.Join(table.Header, ", "))
	}
	return table
}

func isHTTP(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
