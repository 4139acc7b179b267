package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cheggaaa/pb/v3"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/jobexplorer/internal/analytics"
	"github.com/fr4nk3nst1ner/jobexplorer/internal/client"
	"github.com/fr4nk3nst1ner/jobexplorer/internal/config"
	"github.com/fr4nk3nst1ner/jobexplorer/internal/currency"
	"github.com/fr4nk3nst1ner/jobexplorer/internal/dataset"
	"github.com/fr4nk3nst1ner/jobexplorer/internal/query"
	"github.com/fr4nk3nst1ner/jobexplorer/internal/tsv"
	"github.com/fr4nk3nst1ner/jobexplorer/internal/ui"
	"github.com/fr4nk3nst1ner/jobexplorer/internal/web"
)

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 Job Explorer Usage Examples 📋")
	fmt.Println("\n1. Show the salary range and job overview for France:")
	fmt.Println("   jobexplorer -country France")

	fmt.Println("\n2. Search French job listings whose title contains \"engineer\":")
	fmt.Println("   jobexplorer -country France -q engineer")

	fmt.Println("\n3. Load the datasets from a web server instead of the local directory:")
	fmt.Println("   jobexplorer -base-url https://example.com/data/ -country Germany -q nurse")

	fmt.Println("\n4. Pick a country and search interactively:")
	fmt.Println("   jobexplorer -interactive")

	fmt.Println("\n5. Serve the explorer page and JSON API on port 9090:")
	fmt.Println("   jobexplorer -web -port 9090")

	fmt.Println("\n6. List the countries with salary data as JSON:")
	fmt.Println("   jobexplorer -countries -json")
	os.Exit(0)
}

func main() {
	configPath := flag.String("config", "", "Path to the config file (default: jobexplorer.yaml)")
	jobsPath := flag.String("jobs", "", "Jobs table (tab separated)")
	salariesPath := flag.String("salaries", "", "Salary table (tab separated)")
	dataDir := flag.String("data-dir", "", "Directory relative table paths are read from")
	baseURL := flag.String("base-url", "", "Fetch relative table paths from this URL")
	proxyURL := flag.String("proxy", "", "Proxy URL to use for HTTP fetches")
	country := flag.String("country", "", "Country to query")
	jobQuery := flag.String("q", "", "Job title search term (fewer than 2 characters shows the country overview)")
	limit := flag.Int("limit", 0, "Maximum number of job listings to show (default 10)")
	strict := flag.Bool("strict", false, "Fail on missing columns and short rows")
	interactive := flag.Bool("interactive", false, "Pick a country and search interactively")
	webMode := flag.Bool("web", false, "Run the web server")
	port := flag.Int("port", 0, "Web server port (default 8080)")
	countries := flag.Bool("countries", false, "List the countries with salary data")
	jsonOut := flag.Bool("json", false, "Print results as JSON")
	hyperlinks := flag.Bool("hyperlinks", false, "Print job links as clickable terminal hyperlinks")
	debug := flag.Bool("debug", false, "Enable debug mode")
	examples := flag.Bool("examples", false, "Show usage examples")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	if *examples {
		printExamples()
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Flags given on the command line win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "jobs":
			cfg.Data.Jobs = *jobsPath
		case "salaries":
			cfg.Data.Salaries = *salariesPath
		case "data-dir":
			cfg.Data.Dir = *dataDir
		case "base-url":
			cfg.Data.BaseURL = *baseURL
		case "proxy":
			cfg.Data.Proxy = *proxyURL
		case "strict":
			cfg.Data.Strict = *strict
		case "limit":
			cfg.Query.JobLimit = *limit
		case "port":
			cfg.Web.Port = *port
		case "hyperlinks":
			cfg.Display.Hyperlinks = *hyperlinks
		}
	})

	if *jsonOut {
		pterm.DisableOutput()
	}
	ui.PrintBanner(*silence || *noBanner || *jsonOut || !cfg.Display.Banner)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := tsv.NewLoader(
		tsv.WithHTTPClient(client.CreateProxyHTTPClient(cfg.Data.Proxy)),
		tsv.WithBaseURL(cfg.Data.BaseURL),
		tsv.WithDataDir(cfg.Data.Dir),
		tsv.WithDebug(*debug),
	)

	var bar *pb.ProgressBar
	if !*jsonOut {
		bar = pb.New(2).SetTemplate(pb.Simple).SetWriter(os.Stderr)
		bar.Start()
	}

	ds, err := dataset.Load(ctx, loader, dataset.Sources{
		Jobs:     cfg.Data.Jobs,
		Salaries: cfg.Data.Salaries,
	}, dataset.Options{Strict: cfg.Data.Strict, Bar: bar})
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		log.Fatalf("Error loading data: %v", err)
	}

	if *debug {
		log.Printf("[DEBUG] Jobs loaded: %d", len(ds.Jobs()))
		log.Printf("[DEBUG] Salaries loaded: %d", len(ds.Salaries()))
		if len(ds.Jobs()) > 0 {
			log.Printf("[DEBUG] Sample job row: %+v", ds.Jobs()[0])
		}
	}

	engine := query.NewEngine(ds,
		query.WithJobLimit(cfg.Query.JobLimit),
		query.WithTopTitles(cfg.Query.TopTitles),
		query.WithMinQueryLength(cfg.Query.MinQueryLength),
		query.WithTracker(newTracker(cfg)),
	)
	conv := currency.NewConverter(cfg.Currency.Rates)
	renderer := ui.NewRenderer(conv, cfg.Display.Hyperlinks)

	switch {
	case *countries:
		if *jsonOut {
			printJSON(engine.Countries())
			return
		}
		if err := ui.Countries(os.Stdout, engine.Countries()); err != nil {
			log.Fatalf("Error printing countries: %v", err)
		}

	case *webMode:
		srv := web.NewServer(engine, conv, *debug)
		if err := srv.ListenAndServe(ctx, fmt.Sprintf(":%d", cfg.Web.Port)); err != nil {
			log.Fatalf("Web server failed: %v", err)
		}

	case *interactive:
		runInteractive(engine, renderer)

	default:
		if *country == "" {
			log.Fatal("Country is required (or use -interactive, -web or -countries)")
		}

		result := engine.Search(*country, *jobQuery)
		if *jsonOut {
			resp := web.SearchResponse{SearchResult: result}
			if result.Salary != nil {
				rng := conv.SalaryRange(*result.Salary)
				resp.SalaryUSD = &rng
			}
			printJSON(resp)
			return
		}
		if err := renderer.Render(os.Stdout, result); err != nil {
			log.Fatalf("Error rendering results: %v", err)
		}
	}
}

// newTracker picks the analytics collaborator for the configured settings
func newTracker(cfg *config.AppConfig) analytics.Tracker {
	if !cfg.Analytics.Enabled {
		return nil
	}
	if cfg.Analytics.Webhook != "" {
		return analytics.NewWebhookTracker(cfg.Analytics.Webhook)
	}
	return analytics.LogTracker{}
}

func runInteractive(engine *query.Engine, renderer *ui.Renderer) {
	countries := engine.Countries()
	if len(countries) == 0 {
		pterm.Warning.Println("No countries loaded, nothing to explore.")
		return
	}

	for {
		country, err := pterm.DefaultInteractiveSelect.
			WithOptions(countries).
			WithDefaultText("Select country").
			WithMaxHeight(10).
			Show()
		if err != nil {
			log.Printf("Selection aborted: %v", err)
			return
		}

		for {
			jobQuery, err := pterm.DefaultInteractiveTextInput.
				WithDefaultText(fmt.Sprintf("%s job title (:c change country, :q quit)", country)).
				Show()
			if err != nil {
				log.Printf("Input aborted: %v", err)
				return
			}

			command := strings.TrimSpace(jobQuery)
			if command == ":q" {
				return
			}
			if command == ":c" {
				break
			}

			if err := renderer.Render(os.Stdout, engine.Search(country, jobQuery)); err != nil {
				log.Printf("Error rendering results: %v", err)
			}
		}
	}
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("Error encoding JSON: %v", err)
	}
}
