package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/fs"
	"github.com/fwojciec/docscrape/goquery"
	docshttp "github.com/fwojciec/docscrape/http"
	"github.com/fwojciec/docscrape/pretty"
	"github.com/fwojciec/docscrape/scrape"
	docslog "github.com/fwojciec/docscrape/slog"
	"github.com/fwojciec/docscrape/sqlite"
	"github.com/fwojciec/docscrape/yaml"
	"github.com/google/uuid"
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
	// SQLite database backing the response cache.
	DB *sqlite.DB

	// Log file opened for the run.
	LogFile io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var err error
	if m.DB != nil {
		err = m.DB.Close()
	}
	if m.LogFile != nil {
		if cerr := m.LogFile.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Run executes the CLI with the given arguments.
// Argument and setup errors are returned. Failures of the scraping run
// itself are logged and Run returns nil.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docscrape"),
		kong.Description("Scrape the Python documentation and PEP index"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no mode specified. Run 'docscrape --help' to see available modes")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logFile, err := openLogFile(cli.Dir)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	m.LogFile = logFile
	defer m.Close()

	logger := newLogger(stderr, logFile, cli.LogLevel).With("run", uuid.NewString())

	logger.Info("parser started")
	logger.Info("command line arguments",
		"mode", cli.Mode,
		"output", cli.Output,
		"clear_cache", cli.ClearCache,
		"dir", cli.Dir,
	)

	deps, err := m.wire(ctx, cli, stdout, stderr, logger)
	if err != nil {
		logger.Error("setup failed", "err", err)
		return err
	}

	cmd := &ScrapeCmd{
		Mode:   docscrape.Mode(cli.Mode),
		Output: docscrape.Output(cli.Output),
	}
	if err := cmd.Run(deps); err != nil {
		logger.Error("parser failed", "err", err, "code", docscrape.ErrorCode(err))
	}

	logger.Info("parser finished")
	return nil
}

// wire opens the response cache and builds the services for one run.
func (m *Main) wire(ctx context.Context, cli *CLI, stdout, stderr io.Writer, logger *slog.Logger) (*Dependencies, error) {
	cachePath := cli.cachePath()
	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	m.DB = sqlite.NewDB(cachePath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set DOCSCRAPE_CACHE to use a different cache path")
		return nil, fmt.Errorf("failed to open cache at %q: %w", cachePath, err)
	}

	cache := docslog.NewLoggingResponseCache(sqlite.NewResponseCache(m.DB), logger)
	if cli.ClearCache {
		if err := cache.Clear(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear cache: %w", err)
		}
	}

	statuses, err := cli.statusTable()
	if err != nil {
		return nil, err
	}

	fetcher := docslog.NewLoggingFetcher(
		docshttp.NewFetcher(
			docshttp.WithTimeout(cli.Timeout),
			docshttp.WithCache(cache),
			docshttp.WithRateLimit(cli.Rate),
		),
		logger,
	)

	return &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Scraper: &scrape.Scraper{
			Fetcher:  fetcher,
			Parser:   docslog.NewLoggingParser(goquery.NewParser(), logger),
			Statuses: statuses,
			Archives: fs.NewArchiveStore(filepath.Join(cli.Dir, DownloadsDir)),
			Logger:   logger,
			DocsURL:  cli.DocsURL,
			PEPURL:   cli.PEPURL,
		},
		Writers: map[docscrape.Output]docscrape.ReportWriter{
			docscrape.OutputEcho:   docscrape.NewEchoWriter(stdout),
			docscrape.OutputPretty: pretty.NewTableWriter(stdout),
			docscrape.OutputFile:   fs.NewCSVWriter(filepath.Join(cli.Dir, ResultsDir), logger),
		},
	}, nil
}

func (c *CLI) statusTable() (*docscrape.StatusTable, error) {
	if c.Statuses == "" {
		return yaml.DefaultStatusTable()
	}
	return yaml.LoadStatusTableFile(c.Statuses)
}
