package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name searched for when no path is given
const DefaultFile = "jobexplorer.yaml"

// AppConfig represents the application configuration
type AppConfig struct {
	Data      DataConfig      `yaml:"data"`
	Query     QueryConfig     `yaml:"query"`
	Currency  CurrencyConfig  `yaml:"currency"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Web       WebConfig       `yaml:"web"`
	Display   DisplayConfig   `yaml:"display"`
}

type DataConfig struct {
	Dir      string `yaml:"dir"`
	BaseURL  string `yaml:"base_url"`
	Jobs     string `yaml:"jobs"`
	Salaries string `yaml:"salaries"`
	Strict   bool   `yaml:"strict"`
	Proxy    string `yaml:"proxy"`
}

type QueryConfig struct {
	JobLimit       int `yaml:"job_limit"`
	TopTitles      int `yaml:"top_titles"`
	MinQueryLength int `yaml:"min_query_length"`
}

type CurrencyConfig struct {
	Rates map[string]float64 `yaml:"rates"`
}

type AnalyticsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Webhook string `yaml:"webhook"` // Prefer JOBEXPLORER_ANALYTICS_WEBHOOK env var
}

type WebConfig struct {
	Port int `yaml:"port"`
}

type DisplayConfig struct {
	Hyperlinks bool `yaml:"hyperlinks"`
	Banner     bool `yaml:"banner"`
}

// Load reads the config at path, or the first config file found in the usual
// locations when path is empty. A missing file yields the defaults. Values from
// .env and the environment are applied on top.
func Load(path string) (*AppConfig, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = findConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

func findConfigPath() string {
	paths := []string{DefaultFile}
	if home, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(home, "jobexplorer", DefaultFile))
	}
	paths = append(paths, filepath.Join("/etc/jobexplorer", DefaultFile))

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return DefaultFile
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("JOBEXPLORER_DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("JOBEXPLORER_BASE_URL"); v != "" {
		cfg.Data.BaseURL = v
	}
	if v := os.Getenv("JOBEXPLORER_ANALYTICS_WEBHOOK"); v != "" {
		cfg.Analytics.Webhook = v
		cfg.Analytics.Enabled = true
	}
}

// Default returns the built-in configuration
func Default() *AppConfig {
	return &AppConfig{
		Data: DataConfig{
			Jobs:     "jobs.csv",
			Salaries: "salary.csv",
		},
		Query: QueryConfig{
			JobLimit:       10,
			TopTitles:      5,
			MinQueryLength: 2,
		},
		Web: WebConfig{
			Port: 8080,
		},
		Display: DisplayConfig{
			Banner: true,
		},
	}
}
