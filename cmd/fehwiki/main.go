package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/fehwiki/goquery"
	"github.com/fwojciec/fehwiki/htmltomarkdown"
	fehhttp "github.com/fwojciec/fehwiki/http"
	"github.com/fwojciec/fehwiki/lookup"
	fehslog "github.com/fwojciec/fehwiki/slog"
	"github.com/fwojciec/fehwiki/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config is the loaded configuration. Set by Run.
	Config *Config

	// SQLite database used by the alias, family and page stores.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("fehwiki"),
		kong.Description("Look up Fire Emblem Heroes wiki pages from the command line."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'fehwiki --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	configPath := cli.Config
	if configPath == "" {
		configPath = defaultConfigPath()
	}
	cfg, err := LoadConfig(configPath, cli.Config != "")
	if err != nil {
		return err
	}
	if cli.DB != "" {
		cfg.DBPath = cli.DB
	}
	m.Config = cfg

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m.DB = sqlite.NewDB(cfg.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set FEHWIKI_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cfg.DBPath, err)
	}
	defer m.Close()

	m.wire(deps, logger)

	return kongCtx.Run(deps)
}

// wire builds the services used by the commands.
func (m *Main) wire(deps *Dependencies, logger *slog.Logger) {
	cfg := m.Config

	client := fehhttp.NewClient(
		fehhttp.WithAPIURL(cfg.APIURL()),
		fehhttp.WithTimeout(cfg.Timeout),
		fehhttp.WithRateLimit(cfg.RequestsPerSecond),
	)

	cache := sqlite.NewDocumentCache(m.DB,
		fehslog.NewLoggingDocumentFetcher(fehhttp.NewDocumentService(client), logger))
	cache.TTL = cfg.CacheTTL

	assembler := goquery.NewAssembler(cache, fehhttp.NewIconService(client), fehhttp.NewCategoryService(client))
	assembler.Converter = htmltomarkdown.NewConverter()
	assembler.BaseURL = cfg.PageURL()
	assembler.MaxHops = cfg.MaxHops
	assembler.StubMarker = cfg.StubMarker
	assembler.AmbiguousNames = cfg.AmbiguousNames
	assembler.CategoryPreview = cfg.CategoryPreview

	aliases := sqlite.NewAliasService(m.DB)
	families := sqlite.NewFamilyService(m.DB)
	resolver := &lookup.Resolver{
		Families: families,
		Aliases:  aliases,
		Searcher: fehhttp.NewSearchService(client),
	}

	deps.Logger = logger
	deps.Aliases = aliases
	deps.Families = families
	deps.Cache = cache
	deps.Roster = fehslog.NewLoggingRosterSource(goquery.NewRosterService(cache), logger)
	deps.Resolver = fehslog.NewLoggingNameResolver(resolver, logger)
	deps.Lookup = &lookup.Service{
		Resolver:    deps.Resolver,
		Assembler:   fehslog.NewLoggingAssembler(assembler, logger),
		Concurrency: cfg.Concurrency,
	}
}
