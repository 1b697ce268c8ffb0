package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/scrape"
)

// Subdirectories of the base directory.
const (
	ResultsDir   = "results"
	DownloadsDir = "downloads"
	LogsDir      = "logs"
	LogFileName  = "parser.log"
	CacheName    = "docscrape_cache.sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Scraper *scrape.Scraper
	Writers map[docscrape.Output]docscrape.ReportWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Mode       string        `arg:"" enum:"whats-new,latest-versions,download,pep" help:"Parser mode (${enum})"`
	Output     string        `short:"o" help:"Result output: pretty or file (default: print rows)"`
	ClearCache bool          `short:"c" help:"Clear the response cache before running"`
	Dir        string        `default:"." env:"DOCSCRAPE_DIR" type:"path" help:"Base directory for results, downloads and logs"`
	Cache      string        `env:"DOCSCRAPE_CACHE" help:"Response cache path (default: <dir>/docscrape_cache.sqlite)"`
	Statuses   string        `type:"existingfile" help:"YAML file overriding the expected PEP statuses"`
	Timeout    time.Duration `default:"30s" help:"Timeout per request"`
	Rate       float64       `default:"0" help:"Maximum requests per second (0 = unlimited)"`
	DocsURL    string        `name:"docs-url" default:"https://docs.python.org/3/" help:"Python documentation root"`
	PEPURL     string        `name:"pep-url" default:"https://peps.python.org/" help:"PEP index URL"`
	LogLevel   string        `default:"info" enum:"debug,info,warn,error" help:"Console log level (${enum})"`
}

// Validate checks flags kong cannot express as enums.
func (c *CLI) Validate() error {
	if _, err := docscrape.ParseOutput(c.Output); err != nil {
		return err
	}
	if c.Rate < 0 {
		return docscrape.Errorf(docscrape.EINVALID, "rate must not be negative")
	}
	return nil
}

func (c *CLI) cachePath() string {
	if c.Cache != "" {
		return c.Cache
	}
	return filepath.Join(c.Dir, CacheName)
}
