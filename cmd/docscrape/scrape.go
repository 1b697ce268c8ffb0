package main

import (
	"fmt"
	"net/url"

	"github.com/fwojciec/docscrape"
)

// ScrapeCmd runs one mode and routes its report.
type ScrapeCmd struct {
	Mode   docscrape.Mode
	Output docscrape.Output
}

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	handler, err := deps.Scraper.Handler(c.Mode)
	if err != nil {
		return err
	}

	var shown bool
	progress := func(p docscrape.Progress) {
		shown = true
		fmt.Fprintf(deps.Stderr, "\r[%d/%d] %s", p.Completed, p.Total, truncateURL(p.URL, 40))
	}

	table, err := handler(deps.Ctx, progress)

	if shown {
		// Clear progress line
		fmt.Fprintf(deps.Stderr, "\r%80s\r", "")
	}
	if err != nil {
		return err
	}

	if table == nil {
		return nil
	}

	writer, ok := deps.Writers[c.Output]
	if !ok {
		writer = deps.Writers[docscrape.OutputEcho]
	}
	return writer.WriteReport(deps.Ctx, c.Mode, table)
}

// truncateURL shortens a URL for display by showing only the path.
func truncateURL(rawURL string, maxLen int) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		if len(rawURL) <= maxLen {
			return rawURL
		}
		return rawURL[:maxLen-3] + "..."
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}

	if len(path) <= maxLen {
		return path
	}

	// Truncate from the left to show the unique suffix
	return "..." + path[len(path)-maxLen+3:]
}
