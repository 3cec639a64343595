package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/fehwiki/goquery"
	"github.com/fwojciec/fehwiki/lookup"
	"github.com/fwojciec/fehwiki/sqlite"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the settings read from the YAML config file.
type Config struct {
	WikiURL           string        `yaml:"wiki_url"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	MaxHops           int           `yaml:"max_hops"`
	Concurrency       int           `yaml:"concurrency"`
	DBPath            string        `yaml:"db_path"`
	CacheTTL          time.Duration `yaml:"cache_ttl"`
	AmbiguousNames    []string      `yaml:"ambiguous_names"`
	StubMarker        string        `yaml:"stub_marker"`
	CategoryPreview   int           `yaml:"category_preview"`
}

// DefaultWikiURL is the root of the wiki.
const DefaultWikiURL = "https://feheroes.fandom.com"

// APIURL returns the MediaWiki API endpoint.
func (c *Config) APIURL() string {
	return strings.TrimRight(c.WikiURL, "/") + "/api.php"
}

// PageURL returns the base URL of article pages.
func (c *Config) PageURL() string {
	return strings.TrimRight(c.WikiURL, "/") + "/wiki"
}

// LoadConfig reads the config file at path. A missing file is not an error
// unless required is set. Environment variables in the file are expanded
// and FEHWIKI_URL and FEHWIKI_DB override the file.
func LoadConfig(path string, required bool) (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !required:
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if u := os.Getenv("FEHWIKI_URL"); u != "" {
		cfg.WikiURL = u
	}
	if p := os.Getenv("FEHWIKI_DB"); p != "" {
		cfg.DBPath = p
	}

	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.WikiURL == "" {
		cfg.WikiURL = DefaultWikiURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = 5
	}
	if cfg.MaxHops == 0 {
		cfg.MaxHops = goquery.DefaultMaxHops
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = lookup.DefaultConcurrency
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath()
	}
	switch {
	case cfg.CacheTTL == 0:
		cfg.CacheTTL = sqlite.DefaultDocumentTTL
	case cfg.CacheTTL < 0:
		// Never expire.
		cfg.CacheTTL = 0
	}
	if cfg.AmbiguousNames == nil {
		cfg.AmbiguousNames = goquery.DefaultAmbiguousNames
	}
	if cfg.StubMarker == "" {
		cfg.StubMarker = goquery.DefaultStubMarker
	}
	if cfg.CategoryPreview == 0 {
		cfg.CategoryPreview = goquery.DefaultCategoryPreview
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if cfg.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must not be negative")
	}
	if cfg.MaxHops < 0 {
		return fmt.Errorf("max_hops must not be negative")
	}
	if cfg.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative")
	}
	if cfg.CategoryPreview < 0 {
		return fmt.Errorf("category_preview must not be negative")
	}
	return nil
}

func defaultConfigPath() string {
	if path := os.Getenv("FEHWIKI_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".fehwiki", "config.yaml")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "fehwiki.db"
	}
	dir := filepath.Join(home, ".fehwiki")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "fehwiki.db")
}
