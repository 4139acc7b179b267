package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/fr4nk3nst1ner/jobexplorer/internal/currency"
	"github.com/fr4nk3nst1ner/jobexplorer/internal/models"
	"github.com/fr4nk3nst1ner/jobexplorer/internal/query"
)

// Server exposes the query engine as a web page and a JSON API
type Server struct {
	engine *query.Engine
	conv   *currency.Converter
	debug  bool
}

// NewServer creates a Server
func NewServer(engine *query.Engine, conv *currency.Converter, debug bool) *Server {
	return &Server{engine: engine, conv: conv, debug: debug}
}

// Handler returns the routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/results", s.handleResults)
	mux.HandleFunc("/api/search", s.handleAPISearch)
	mux.HandleFunc("/api/countries", s.handleAPICountries)
	mux.HandleFunc("/", s.handleIndex)
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Web server listening on http://localhost%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Printf("Shutting down web server")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	country, q := searchParams(r)
	result := s.search(country, q)

	options := make([]countryOption, 0)
	for _, c := range s.engine.Countries() {
		options = append(options, countryOption{Name: c, Selected: c == country})
	}

	data := pageData{
		Countries: options,
		Query:     r.URL.Query().Get("q"),
		Result:    s.resultView(result),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		log.Printf("Failed to render page: %v", err)
	}
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	country, q := searchParams(r)
	result := s.search(country, q)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := resultsTemplate.Execute(w, s.resultView(result)); err != nil {
		log.Printf("Failed to render results: %v", err)
	}
}

// SearchResponse is the JSON body of /api/search
type SearchResponse struct {
	models.SearchResult
	SalaryUSD *currency.SalaryRange `json:"salary_usd,omitempty"`
}

func (s *Server) handleAPISearch(w http.ResponseWriter, r *http.Request) {
	country, q := searchParams(r)
	result := s.search(country, q)

	resp := SearchResponse{SearchResult: result}
	if result.Salary != nil {
		rng := s.conv.SalaryRange(*result.Salary)
		resp.SalaryUSD = &rng
	}

	writeJSON(w, resp)
}

func (s *Server) handleAPICountries(w http.ResponseWriter, r *http.Request) {
	countries := s.engine.Countries()
	if countries == nil {
		countries = []string{}
	}
	writeJSON(w, countries)
}

func (s *Server) search(country, q string) models.SearchResult {
	if s.debug {
		log.Printf("[DEBUG] search country=%q q=%q", country, q)
	}
	return s.engine.Search(country, q)
}

func searchParams(r *http.Request) (string, string) {
	v := r.URL.Query()
	return v.Get("country"), v.Get("q")
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

type countryOption struct {
	Name     string
	Selected bool
}

type pageData struct {
	Countries []countryOption
	Query     string
	Result    resultView
}

type barView struct {
	Title string
	Count int
	Width string
}

type resultView struct {
	Active  bool
	Summary bool
	Salary  *currency.SalaryRange
	Jobs    []models.JobRecord
	Facts   *models.FunFacts
	Bars    []barView
}

func (s *Server) resultView(r models.SearchResult) resultView {
	v := resultView{
		Active:  r.Mode != models.ModeNone,
		Summary: r.Mode == models.ModeSummary,
		Jobs:    r.Jobs,
		Facts:   r.FunFacts,
	}
	if r.Salary != nil {
		rng := s.conv.SalaryRange(*r.Salary)
		v.Salary = &rng
	}
	if r.FunFacts != nil {
		v.Bars = barViews(r.FunFacts.Top)
	}
	return v
}

// barViews scales every count against the largest one
func barViews(top []models.TitleCount) []barView {
	if len(top) == 0 {
		return nil
	}
	highest := top[0].Count
	bars := make([]barView, 0, len(top))
	for _, tc := range top {
		width := float64(tc.Count) / float64(highest) * 100
		bars = append(bars, barView{
			Title: tc.Title,
			Count: tc.Count,
			Width: strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", width), "0"), "."),
		})
	}
	return bars
}
