package scrape

import (
	"context"
	"regexp"

	"github.com/fwojciec/docscrape"
)

var versionPattern = regexp.MustCompile(`Python (?P<version>\d+\.\d+) \((?P<status>.*)\)`)

// ParseVersionLabel splits a sidebar label such as "Python 3.11 (stable)"
// into its version and status. Labels that do not match are returned
// unchanged as the version with an empty status.
func ParseVersionLabel(text string) (version, status string) {
	m := versionPattern.FindStringSubmatch(text)
	if m == nil {
		return text, ""
	}
	return m[versionPattern.SubexpIndex("version")], m[versionPattern.SubexpIndex("status")]
}

// LatestVersions lists the documentation versions linked from the
// "All versions" sidebar group of the documentation landing page.
func (s *Scraper) LatestVersions(ctx context.Context) (docscrape.Table, error) {
	docsURL := s.docsURL()
	html, err := s.Fetcher.Fetch(ctx, docsURL)
	if err != nil {
		return nil, err
	}
	links, err := s.Parser.ParseVersionLinks(html, docsURL)
	if err != nil {
		return nil, err
	}

	table := docscrape.NewTable("Documentation link", "Version", "Status")
	for _, link := range links {
		version, status := ParseVersionLabel(link.Text)
		table.Append(link.URL, version, status)
	}
	return table, nil
}
