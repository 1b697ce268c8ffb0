package scrape

import (
	"context"
	"strings"

	"github.com/fwojciec/docscrape"
)

// RowResult is the outcome of checking one index row: either the status
// read from the PEP page or the error that prevented reading it.
type RowResult struct {
	Row    docscrape.IndexRow
	Status string
	Err    error
}

// RowFailure is a row whose PEP page could not be fetched or parsed.
type RowFailure struct {
	URL string
	Err error
}

// CheckReport is the outcome of a PEP status cross-check.
type CheckReport struct {
	Tally         *docscrape.StatusTally
	Discrepancies []docscrape.Discrepancy
	Failures      []RowFailure
}

// Table renders the status counts with a trailing total.
func (r *CheckReport) Table() docscrape.Table {
	return r.Tally.Table()
}

// Reconcile partitions row results into status counts, discrepancies and
// failures. Every successful row is counted, whether or not its status is
// expected for its code. A code missing from statuses expects nothing, so
// its rows are always discrepancies.
func Reconcile(statuses *docscrape.StatusTable, results []RowResult) *CheckReport {
	r := &CheckReport{Tally: docscrape.NewStatusTally()}
	for _, res := range results {
		if res.Err != nil {
			r.Failures = append(r.Failures, RowFailure{URL: res.Row.URL, Err: res.Err})
			continue
		}

		r.Tally.Add(res.Status)
		if !statuses.Contains(res.Row.Code, res.Status) {
			r.Discrepancies = append(r.Discrepancies, docscrape.Discrepancy{
				URL:      res.Row.URL,
				Status:   res.Status,
				Expected: statuses.Expected(res.Row.Code),
			})
		}
	}
	return r
}

// CheckStatuses fetches the PEP index, reads every PEP page's status and
// reconciles it against the expected statuses for its index code.
// A failing PEP page is recorded and skipped; failures of the index page
// itself are returned.
func (s *Scraper) CheckStatuses(ctx context.Context, progress docscrape.ProgressFunc) (*CheckReport, error) {
	indexURL := s.pepURL()
	html, err := s.Fetcher.Fetch(ctx, indexURL)
	if err != nil {
		return nil, err
	}
	rows, err := s.Parser.ParsePEPIndex(html, indexURL)
	if err != nil {
		return nil, err
	}

	results := make([]RowResult, 0, len(rows))
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res := s.checkRow(ctx, row)
		results = append(results, res)
		report(progress, docscrape.Progress{
			URL:       row.URL,
			Completed: i + 1,
			Total:     len(rows),
			Err:       res.Err,
		})
	}

	r := Reconcile(s.Statuses, results)

	for _, f := range r.Failures {
		s.logger().Error("pep page skipped", "url", f.URL, "err", f.Err)
	}
	if len(r.Discrepancies) > 0 {
		msgs := make([]string, 0, len(r.Discrepancies))
		for _, d := range r.Discrepancies {
			msgs = append(msgs, d.String())
		}
		s.logger().Warn(strings.Join(msgs, "\n"), "count", len(r.Discrepancies))
	}

	return r, nil
}

func (s *Scraper) checkRow(ctx context.Context, row docscrape.IndexRow) RowResult {
	res := RowResult{Row: row}

	html, err := s.Fetcher.Fetch(ctx, row.URL)
	if err != nil {
		res.Err = err
		return res
	}
	status, err := s.Parser.ParsePEPStatus(html)
	if err != nil {
		res.Err = err
		return res
	}
	res.Status = status
	return res
}

// PEP returns status counts for all PEPs in the numerical index.
func (s *Scraper) PEP(ctx context.Context, progress docscrape.ProgressFunc) (docscrape.Table, error) {
	r, err := s.CheckStatuses(ctx, progress)
	if err != nil {
		return nil, err
	}
	return r.Table(), nil
}
