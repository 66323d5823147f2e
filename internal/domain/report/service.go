package report

import (
	"context"
	"io"
)

type ReportService interface {
	Summary(ctx context.Context, req SummaryReportRequest) (SummaryReportResponse, error)
	// PayrollExport writes the CSV export to w and returns the suggested
	// filename.
	PayrollExport(ctx context.Context, req PayrollExportRequest, w io.Writer) (filename string, err error)
}
