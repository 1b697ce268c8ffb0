package mock

import (
	"context"

	"github.com/fwojciec/docscrape"
)

var _ docscrape.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of docscrape.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, mode docscrape.Mode, table docscrape.Table) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, mode docscrape.Mode, table docscrape.Table) error {
	return w.WriteReportFn(ctx, mode, table)
}
