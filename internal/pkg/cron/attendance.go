package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceJobs(attendanceService attendance.AttendanceService) *AttendanceJobs {
	return &AttendanceJobs{attendanceService: attendanceService}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("process_previous_day", 1*time.Hour, j.ProcessPreviousDay)
}

// ProcessPreviousDay recomputes yesterday's summaries for all active
// personnel, so absences and incomplete days show up without a manual
// processing call.
func (j *AttendanceJobs) ProcessPreviousDay(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	previousDay := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	slog.Info("Cron: Starting previous-day attendance processing", "date", previousDay)

	resp, err := j.attendanceService.Process(ctx, attendance.ProcessRequest{
		StartDate: previousDay,
		EndDate:   previousDay,
	})
	if err != nil {
		return fmt.Errorf("failed to process previous day: %w", err)
	}

	slog.Info("Cron: Previous-day attendance processing finished",
		"date", previousDay, "processed", resp.ProcessedCount)
	return nil
}
