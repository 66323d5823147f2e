package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/personnel"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/request"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/workgroup"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type attendanceServiceImpl struct {
	db              *database.DB
	logRepo         attendance.LogRepository
	summaryRepo     attendance.SummaryRepository
	personnelRepo   personnel.PersonnelRepository
	workGroupRepo   workgroup.WorkGroupRepository
	shiftRepo       shift.ShiftRepository
	holidayRepo     calendar.HolidayRepository
	requestRepo     request.RequestRepository
	leaveTypeRepo   request.LeaveTypeRepository
	missionTypeRepo request.MissionTypeRepository
}

func NewAttendanceService(
	db *database.DB,
	logRepo attendance.LogRepository,
	summaryRepo attendance.SummaryRepository,
	personnelRepo personnel.PersonnelRepository,
	workGroupRepo workgroup.WorkGroupRepository,
	shiftRepo shift.ShiftRepository,
	holidayRepo calendar.HolidayRepository,
	requestRepo request.RequestRepository,
	leaveTypeRepo request.LeaveTypeRepository,
	missionTypeRepo request.MissionTypeRepository,
) attendance.AttendanceService {
	return &attendanceServiceImpl{
		db:              db,
		logRepo:         logRepo,
		summaryRepo:     summaryRepo,
		personnelRepo:   personnelRepo,
		workGroupRepo:   workGroupRepo,
		shiftRepo:       shiftRepo,
		holidayRepo:     holidayRepo,
		requestRepo:     requestRepo,
		leaveTypeRepo:   leaveTypeRepo,
		missionTypeRepo: missionTypeRepo,
	}
}

func (s *attendanceServiceImpl) ListSummaries(ctx context.Context, filter attendance.SummaryFilter) (attendance.ListSummariesResponse, error) {
	filter.Normalize()
	if err := filter.Validate(); err != nil {
		return attendance.ListSummariesResponse{}, err
	}

	summaries, total, err := s.summaryRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListSummariesResponse{}, fmt.Errorf("failed to list daily summaries: %w", err)
	}

	items := make([]attendance.SummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, mapSummaryToResponse(summary))
	}
	return attendance.ListSummariesResponse{
		Items:      items,
		TotalItems: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *attendanceServiceImpl) ListRawLogs(ctx context.Context, personnelID string, date string) ([]attendance.LogResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	logs, err := s.logRepo.ListForDay(ctx, personnelID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list raw logs: %w", err)
	}

	result := make([]attendance.LogResponse, 0, len(logs))
	for _, log := range logs {
		result = append(result, mapLogToResponse(log))
	}
	return result, nil
}

// CreateLog persists a single manual punch. The day's summary keeps its old
// figures until the next reprocess; only its is_processed flag is cleared.
func (s *attendanceServiceImpl) CreateLog(ctx context.Context, req attendance.CreateLogRequest) (attendance.LogResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.LogResponse{}, err
	}

	if _, err := s.personnelRepo.GetByID(ctx, req.PersonnelID); err != nil {
		return attendance.LogResponse{}, fmt.Errorf("failed to get personnel: %w", err)
	}

	logTime, err := time.Parse(time.RFC3339, req.LogTime)
	if err != nil {
		return attendance.LogResponse{}, fmt.Errorf("failed to parse log_time: %w", err)
	}

	deviceID := attendance.ManualDeviceID
	if req.DeviceID != nil && *req.DeviceID != "" {
		deviceID = *req.DeviceID
	}

	log := attendance.AttendanceLog{
		ID:          uuid.NewString(),
		PersonnelID: req.PersonnelID,
		LogTime:     logTime,
		LogType:     attendance.LogType(req.LogType),
		DeviceID:    deviceID,
		IsManual:    true,
	}
	created, err := s.logRepo.Create(ctx, log)
	if err != nil {
		return attendance.LogResponse{}, fmt.Errorf("failed to create attendance log: %w", err)
	}
	if err := s.summaryRepo.MarkUnprocessed(ctx, created.PersonnelID, truncateToDay(created.LogTime)); err != nil {
		return attendance.LogResponse{}, err
	}
	return mapLogToResponse(created), nil
}

func (s *attendanceServiceImpl) UpdateLog(ctx context.Context, req attendance.UpdateLogRequest) (attendance.LogResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.LogResponse{}, err
	}

	log, err := s.logRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.LogResponse{}, err
	}
	previousDay := truncateToDay(log.LogTime)

	if req.LogTime != nil {
		logTime, err := time.Parse(time.RFC3339, *req.LogTime)
		if err != nil {
			return attendance.LogResponse{}, fmt.Errorf("failed to parse log_time: %w", err)
		}
		log.LogTime = logTime
	}
	if req.LogType != nil {
		log.LogType = attendance.LogType(*req.LogType)
	}
	if req.DeviceID != nil {
		log.DeviceID = *req.DeviceID
	}

	if err := s.logRepo.Update(ctx, log); err != nil {
		return attendance.LogResponse{}, fmt.Errorf("failed to update attendance log: %w", err)
	}

	// A time change can move the log across a day boundary, which leaves two
	// buckets stale.
	if err := s.summaryRepo.MarkUnprocessed(ctx, log.PersonnelID, previousDay); err != nil {
		return attendance.LogResponse{}, err
	}
	if newDay := truncateToDay(log.LogTime); !newDay.Equal(previousDay) {
		if err := s.summaryRepo.MarkUnprocessed(ctx, log.PersonnelID, newDay); err != nil {
			return attendance.LogResponse{}, err
		}
	}
	return mapLogToResponse(log), nil
}

func (s *attendanceServiceImpl) DeleteLog(ctx context.Context, id string) error {
	log, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.logRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete attendance log: %w", err)
	}
	return s.summaryRepo.MarkUnprocessed(ctx, log.PersonnelID, truncateToDay(log.LogTime))
}

func (s *attendanceServiceImpl) IngestDeviceLogs(ctx context.Context, req attendance.DeviceLogBatchRequest) (attendance.DeviceBatchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DeviceBatchResponse{}, err
	}

	var logs []attendance.AttendanceLog
	var unknownCards []string
	for _, entry := range req.Entries {
		p, err := s.personnelRepo.GetByCardNumber(ctx, entry.CardNumber)
		if err != nil {
			unknownCards = append(unknownCards, entry.CardNumber)
			continue
		}
		logTime, err := time.Parse(time.RFC3339, entry.LogTime)
		if err != nil {
			return attendance.DeviceBatchResponse{}, fmt.Errorf("failed to parse log_time: %w", err)
		}
		logs = append(logs, attendance.AttendanceLog{
			ID:          uuid.NewString(),
			PersonnelID: p.ID,
			LogTime:     logTime,
			LogType:     attendance.LogType(entry.LogType),
			DeviceID:    req.DeviceID,
			IsManual:    false,
		})
	}

	accepted, err := s.logRepo.CreateBatch(ctx, logs)
	if err != nil {
		return attendance.DeviceBatchResponse{}, fmt.Errorf("failed to ingest device logs: %w", err)
	}

	marked := make(map[string]struct{})
	for _, log := range logs {
		day := truncateToDay(log.LogTime)
		key := log.PersonnelID + day.Format("2006-01-02")
		if _, ok := marked[key]; ok {
			continue
		}
		marked[key] = struct{}{}
		if err := s.summaryRepo.MarkUnprocessed(ctx, log.PersonnelID, day); err != nil {
			return attendance.DeviceBatchResponse{}, err
		}
	}

	slog.Info("device logs ingested",
		"device_id", req.DeviceID, "accepted", accepted, "unknown_cards", len(unknownCards))

	return attendance.DeviceBatchResponse{
		AcceptedCount: accepted,
		UnknownCards:  unknownCards,
	}, nil
}

// Reprocess recomputes one (personnel, date) summary from the persisted log
// set. On failure the previous summary row is left in place.
func (s *attendanceServiceImpl) Reprocess(ctx context.Context, req attendance.ReprocessRequest) (attendance.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SummaryResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	summary, err := s.processDay(ctx, req.PersonnelID, date)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}
	return mapSummaryToResponse(summary), nil
}

// Process recomputes summaries for a date range. The optional shift filter
// limits processing to days resolved to that shift.
func (s *attendanceServiceImpl) Process(ctx context.Context, req attendance.ProcessRequest) (attendance.ProcessResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ProcessResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	personnelIDs := req.PersonnelIDs
	if len(personnelIDs) == 0 {
		ids, err := s.personnelRepo.ListActiveIDs(ctx)
		if err != nil {
			return attendance.ProcessResponse{}, fmt.Errorf("failed to list active personnel: %w", err)
		}
		personnelIDs = ids
	}

	processed := 0
	for _, personnelID := range personnelIDs {
		for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
			input, err := s.buildDayInput(ctx, personnelID, date)
			if err != nil {
				return attendance.ProcessResponse{}, err
			}
			if req.ShiftID != nil {
				if input.Shift == nil || input.Shift.ID != *req.ShiftID {
					continue
				}
			}
			summary, err := ComputeDaily(input)
			if err != nil {
				return attendance.ProcessResponse{}, fmt.Errorf("failed to compute summary: %w", err)
			}
			if _, err := s.summaryRepo.Upsert(ctx, summary); err != nil {
				return attendance.ProcessResponse{}, fmt.Errorf("failed to store summary: %w", err)
			}
			processed++
		}
	}

	slog.Info("attendance processed",
		"start_date", req.StartDate, "end_date", req.EndDate, "count", processed)

	return attendance.ProcessResponse{ProcessedCount: processed}, nil
}

func (s *attendanceServiceImpl) processDay(ctx context.Context, personnelID string, date time.Time) (attendance.DailySummary, error) {
	input, err := s.buildDayInput(ctx, personnelID, date)
	if err != nil {
		return attendance.DailySummary{}, err
	}
	summary, err := ComputeDaily(input)
	if err != nil {
		return attendance.DailySummary{}, fmt.Errorf("failed to compute summary: %w", err)
	}
	stored, err := s.summaryRepo.Upsert(ctx, summary)
	if err != nil {
		return attendance.DailySummary{}, fmt.Errorf("failed to store summary: %w", err)
	}
	return stored, nil
}

func (s *attendanceServiceImpl) buildDayInput(ctx context.Context, personnelID string, date time.Time) (DayInput, error) {
	p, err := s.personnelRepo.GetByID(ctx, personnelID)
	if err != nil {
		return DayInput{}, fmt.Errorf("failed to get personnel: %w", err)
	}

	input := DayInput{
		PersonnelID: personnelID,
		Date:        date,
	}

	if p.WorkGroupID != nil {
		group, err := s.workGroupRepo.GetByID(ctx, *p.WorkGroupID)
		if err != nil {
			return DayInput{}, fmt.Errorf("failed to get work group: %w", err)
		}

		if shiftID := group.ShiftIDFor(date); shiftID != nil {
			assigned, err := s.shiftRepo.GetByID(ctx, *shiftID)
			if err != nil {
				return DayInput{}, fmt.Errorf("failed to get shift: %w", err)
			}
			input.Shift = &assigned
		}

		if group.CalendarID != nil {
			holidays, err := s.holidayRepo.ListForRange(ctx, *group.CalendarID, date, date)
			if err != nil {
				return DayInput{}, fmt.Errorf("failed to list holidays: %w", err)
			}
			for _, h := range holidays {
				if h.Matches(date) {
					input.IsHoliday = true
					input.HolidayName = h.Name
					break
				}
			}
		}
	}

	logs, err := s.logRepo.ListForDay(ctx, personnelID, date)
	if err != nil {
		return DayInput{}, fmt.Errorf("failed to list logs: %w", err)
	}
	input.Logs = logs

	input.Leaves, err = s.approvedLeaves(ctx, personnelID, date)
	if err != nil {
		return DayInput{}, err
	}
	input.Missions, err = s.approvedMissions(ctx, personnelID, date)
	if err != nil {
		return DayInput{}, err
	}

	return input, nil
}

func (s *attendanceServiceImpl) approvedLeaves(ctx context.Context, personnelID string, date time.Time) ([]ApprovedAbsence, error) {
	requests, err := s.requestRepo.ListApprovedForDay(ctx, request.TypeLeave, personnelID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}

	var absences []ApprovedAbsence
	for _, req := range requests {
		if req.Leave == nil {
			continue
		}
		leaveType, err := s.leaveTypeRepo.GetByID(ctx, req.Leave.LeaveTypeID)
		if err != nil {
			return nil, fmt.Errorf("failed to get leave type: %w", err)
		}
		absences = append(absences, ApprovedAbsence{
			IsHourly:     req.IsHourly,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			CountsAsWork: leaveType.CountsAsWork,
			TypeName:     leaveType.Name,
		})
	}
	return absences, nil
}

func (s *attendanceServiceImpl) approvedMissions(ctx context.Context, personnelID string, date time.Time) ([]ApprovedAbsence, error) {
	requests, err := s.requestRepo.ListApprovedForDay(ctx, request.TypeMission, personnelID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved missions: %w", err)
	}

	var absences []ApprovedAbsence
	for _, req := range requests {
		if req.Mission == nil {
			continue
		}
		missionType, err := s.missionTypeRepo.GetByID(ctx, req.Mission.MissionTypeID)
		if err != nil {
			return nil, fmt.Errorf("failed to get mission type: %w", err)
		}
		absences = append(absences, ApprovedAbsence{
			IsHourly:     req.IsHourly,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			CountsAsWork: missionType.CountsAsWork,
			TypeName:     missionType.Name,
		})
	}
	return absences, nil
}

func mapLogToResponse(log attendance.AttendanceLog) attendance.LogResponse {
	return attendance.LogResponse{
		ID:          log.ID,
		PersonnelID: log.PersonnelID,
		LogTime:     log.LogTime,
		LogType:     string(log.LogType),
		DeviceID:    log.DeviceID,
		IsManual:    log.IsManual,
	}
}

func mapSummaryToResponse(s attendance.DailySummary) attendance.SummaryResponse {
	return attendance.SummaryResponse{
		ID:                  s.ID,
		PersonnelID:         s.PersonnelID,
		Date:                s.Date.Format("2006-01-02"),
		ShiftID:             s.ShiftID,
		Status:              string(s.Status),
		PresenceMinutes:     s.PresenceMinutes,
		DelayMinutes:        s.DelayMinutes,
		OvertimeMinutes:     s.OvertimeMinutes,
		UndertimeMinutes:    s.UndertimeMinutes,
		ExpectedWorkMinutes: s.ExpectedWorkMinutes,
		FirstIn:             s.FirstIn,
		LastOut:             s.LastOut,
		RawLogsCount:        s.RawLogsCount,
		Notes:               s.Notes,
		IsProcessed:         s.IsProcessed,
		ProcessedAt:         s.ProcessedAt,
	}
}
