package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/personnel"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

type ReportServiceImpl struct {
	db            *database.DB
	summaryRepo   attendance.SummaryRepository
	personnelRepo personnel.PersonnelRepository
}

func NewReportService(db *database.DB, summaryRepository attendance.SummaryRepository, personnelRepository personnel.PersonnelRepository) report.ReportService {
	return &ReportServiceImpl{
		db:            db,
		summaryRepo:   summaryRepository,
		personnelRepo: personnelRepository,
	}
}

// Summary implements report.ReportService. Each row aggregates one
// personnel's daily summaries over the period.
func (s *ReportServiceImpl) Summary(ctx context.Context, req report.SummaryReportRequest) (report.SummaryReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.SummaryReportResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	people, err := s.resolvePersonnel(ctx, req)
	if err != nil {
		return report.SummaryReportResponse{}, err
	}

	personnelIDs := make([]string, 0, len(people))
	for _, p := range people {
		personnelIDs = append(personnelIDs, p.ID)
	}

	summaries, err := s.summaryRepo.ListForPeriod(ctx, personnelIDs, start, end)
	if err != nil {
		return report.SummaryReportResponse{}, fmt.Errorf("failed to list summaries: %w", err)
	}

	byPersonnel := make(map[string][]attendance.DailySummary, len(people))
	for _, summary := range summaries {
		byPersonnel[summary.PersonnelID] = append(byPersonnel[summary.PersonnelID], summary)
	}

	resp := report.SummaryReportResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Rows:      make([]report.PersonnelSummary, 0, len(people)),
	}
	for _, p := range people {
		row := aggregateRow(p, byPersonnel[p.ID])
		resp.Rows = append(resp.Rows, row)

		resp.Totals.PresenceMinutes += row.PresenceMinutes
		resp.Totals.DelayMinutes += row.DelayMinutes
		resp.Totals.OvertimeMinutes += row.OvertimeMinutes
		resp.Totals.UndertimeMinutes += row.UndertimeMinutes
		resp.Totals.AbsentDays += row.AbsentDays
		resp.Totals.LeaveDays += row.LeaveDays
		resp.Totals.MissionDays += row.MissionDays
	}
	resp.Totals.PresenceHours = float64(resp.Totals.PresenceMinutes) / 60

	return resp, nil
}

// PayrollExport implements report.ReportService.
func (s *ReportServiceImpl) PayrollExport(ctx context.Context, req report.PayrollExportRequest, w io.Writer) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	template, ok := exportTemplates[exportFormat(req.Format)]
	if !ok {
		return "", report.ErrUnknownExportFormat
	}

	summary, err := s.Summary(ctx, req.SummaryReportRequest)
	if err != nil {
		return "", err
	}

	if err := writeCSV(w, template, summary); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	filename := fmt.Sprintf("attendance_%s_%s_%s.csv", template.name, req.StartDate, req.EndDate)
	return filename, nil
}

func (s *ReportServiceImpl) resolvePersonnel(ctx context.Context, req report.SummaryReportRequest) ([]personnel.Personnel, error) {
	if len(req.PersonnelIDs) > 0 {
		people := make([]personnel.Personnel, 0, len(req.PersonnelIDs))
		for _, id := range req.PersonnelIDs {
			p, err := s.personnelRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			people = append(people, p)
		}
		return people, nil
	}

	var people []personnel.Personnel
	filter := personnel.PersonnelFilter{UnitID: req.UnitID, Page: 1, Limit: 100}
	for {
		page, total, err := s.personnelRepo.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to list personnel: %w", err)
		}
		people = append(people, page...)
		if int64(len(people)) >= total || len(page) == 0 {
			break
		}
		filter.Page++
	}

	if req.EmploymentType != nil {
		filtered := people[:0]
		for _, p := range people {
			if string(p.EmploymentType) == *req.EmploymentType {
				filtered = append(filtered, p)
			}
		}
		people = filtered
	}
	return people, nil
}

func aggregateRow(p personnel.Personnel, summaries []attendance.DailySummary) report.PersonnelSummary {
	row := report.PersonnelSummary{
		PersonnelID:     p.ID,
		PersonnelNumber: p.PersonnelNumber,
		FullName:        p.FullName(),
	}
	if p.UnitName != nil {
		row.UnitName = *p.UnitName
	}

	for _, s := range summaries {
		row.PresenceMinutes += s.PresenceMinutes
		row.DelayMinutes += s.DelayMinutes
		row.OvertimeMinutes += s.OvertimeMinutes
		row.UndertimeMinutes += s.UndertimeMinutes

		switch s.Status {
		case attendance.StatusAbsent:
			row.AbsentDays++
		case attendance.StatusComplete, attendance.StatusIncomplete:
			row.PresentDays++
		case attendance.StatusLeave:
			row.LeaveDays++
		case attendance.StatusPartialLeave:
			row.PresentDays++
			row.LeaveDays++
		case attendance.StatusMission:
			row.MissionDays++
		case attendance.StatusPartialMission:
			row.PresentDays++
			row.MissionDays++
		}
	}

	if adjusted := row.OvertimeMinutes - row.UndertimeMinutes; adjusted > 0 {
		row.AdjustedOvertimeMinutes = adjusted
	}
	return row
}
