package attendance

import "context"

// AttendanceService defines the log correction workflow and summary
// processing operations. Log mutations persist immediately and
// independently; summaries change only through Reprocess or Process.
type AttendanceService interface {
	ListSummaries(ctx context.Context, filter SummaryFilter) (ListSummariesResponse, error)
	ListRawLogs(ctx context.Context, personnelID string, date string) ([]LogResponse, error)

	CreateLog(ctx context.Context, req CreateLogRequest) (LogResponse, error)
	UpdateLog(ctx context.Context, req UpdateLogRequest) (LogResponse, error)
	DeleteLog(ctx context.Context, id string) error
	IngestDeviceLogs(ctx context.Context, req DeviceLogBatchRequest) (DeviceBatchResponse, error)

	Reprocess(ctx context.Context, req ReprocessRequest) (SummaryResponse, error)
	Process(ctx context.Context, req ProcessRequest) (ProcessResponse, error)
}
