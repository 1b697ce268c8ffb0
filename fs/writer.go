// Package fs provides file-based outputs: CSV reports and downloaded archives.
package fs

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/docscrape"
)

// DateTimeFormat is the timestamp layout used in report file names.
const DateTimeFormat = "2006-01-02_15-04-05"

// ReportFileName returns the file name for a report of mode produced at t.
// Example: pep at 2024-03-01 14:05:09 → pep_2024-03-01_14-05-09.csv
func ReportFileName(mode docscrape.Mode, t time.Time) string {
	return string(mode) + "_" + t.Format(DateTimeFormat) + ".csv"
}

// Ensure CSVWriter implements docscrape.ReportWriter at compile time.
var _ docscrape.ReportWriter = (*CSVWriter)(nil)

// CSVWriter writes reports as comma-separated files with LF line endings.
type CSVWriter struct {
	dir    string
	logger *slog.Logger

	// Now returns the timestamp used in file names. Defaults to time.Now.
	Now func() time.Time
}

// NewCSVWriter creates a new CSVWriter that writes to dir.
func NewCSVWriter(dir string, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{
		dir:    dir,
		logger: logger,
		Now:    time.Now,
	}
}

// WriteReport saves table to a timestamped file and logs its path.
func (w *CSVWriter) WriteReport(_ context.Context, mode docscrape.Mode, table docscrape.Table) error {
	path, err := w.Save(mode, table)
	if err != nil {
		return err
	}
	w.logger.Info("results saved", "path", path)
	return nil
}

// Save writes table to a timestamped file under the writer's directory and
// returns the file path. The directory is created if missing.
func (w *CSVWriter) Save(mode docscrape.Mode, table docscrape.Table) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.dir, ReportFileName(mode, w.Now()))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	records := make([][]string, 0, len(table))
	for _, row := range table {
		records = append(records, row)
	}

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(records); err != nil {
		return "", err
	}
	return path, f.Close()
}
