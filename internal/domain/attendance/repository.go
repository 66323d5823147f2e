package attendance

import (
	"context"
	"time"
)

type LogRepository interface {
	Create(ctx context.Context, log AttendanceLog) (AttendanceLog, error)
	GetByID(ctx context.Context, id string) (AttendanceLog, error)
	// ListForDay returns all logs in the (personnel, calendar day) bucket,
	// ordered by log time.
	ListForDay(ctx context.Context, personnelID string, date time.Time) ([]AttendanceLog, error)
	Update(ctx context.Context, log AttendanceLog) error
	Delete(ctx context.Context, id string) error
	CreateBatch(ctx context.Context, logs []AttendanceLog) (int, error)
}

type SummaryRepository interface {
	// Upsert inserts or replaces the summary for its (personnel, date) key.
	Upsert(ctx context.Context, s DailySummary) (DailySummary, error)
	GetByKey(ctx context.Context, personnelID string, date time.Time) (DailySummary, error)
	List(ctx context.Context, filter SummaryFilter) ([]DailySummary, int64, error)
	// ListForPeriod returns all summaries for the personnel set within
	// [start, end] without pagination, for report aggregation.
	ListForPeriod(ctx context.Context, personnelIDs []string, start, end time.Time) ([]DailySummary, error)
	// MarkUnprocessed flags the (personnel, date) bucket as needing a
	// reprocess. Missing buckets are not an error.
	MarkUnprocessed(ctx context.Context, personnelID string, date time.Time) error
}
