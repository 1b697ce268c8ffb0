package docscrape

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// ReportWriter renders a Table produced by the given mode.
type ReportWriter interface {
	WriteReport(ctx context.Context, mode Mode, table Table) error
}

var _ ReportWriter = (*EchoWriter)(nil)

// EchoWriter prints each row's values joined by single spaces.
type EchoWriter struct {
	w io.Writer
}

// NewEchoWriter creates a new EchoWriter writing to w.
func NewEchoWriter(w io.Writer) *EchoWriter {
	return &EchoWriter{w: w}
}

// WriteReport writes one line per row, header included.
func (e *EchoWriter) WriteReport(_ context.Context, _ Mode, table Table) error {
	for _, row := range table {
		if _, err := fmt.Fprintln(e.w, strings.Join(row, " ")); err != nil {
			return err
		}
	}
	return nil
}
