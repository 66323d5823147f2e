package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ListSummaries(w http.ResponseWriter, r *http.Request)
	ListRawLogs(w http.ResponseWriter, r *http.Request)
	CreateLog(w http.ResponseWriter, r *http.Request)
	UpdateLog(w http.ResponseWriter, r *http.Request)
	DeleteLog(w http.ResponseWriter, r *http.Request)
	IngestDeviceLogs(w http.ResponseWriter, r *http.Request)
	Reprocess(w http.ResponseWriter, r *http.Request)
	Process(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ListSummaries implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListSummaries(w http.ResponseWriter, r *http.Request) {
	filter := attendance.SummaryFilter{
		PersonnelIDs: queryStrings(r, "personnel_ids"),
		StartDate:    queryDate(r, "start_date"),
		EndDate:      queryDate(r, "end_date"),
		ShiftID:      queryString(r, "shift_id"),
		Status:       queryString(r, "status"),
		Page:         queryInt(r, "page"),
		Limit:        queryInt(r, "limit"),
	}

	listResponse, err := h.attendanceService.ListSummaries(r.Context(), filter)
	if err != nil {
		slog.Error("List summaries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	meta := response.PageMeta(listResponse.Page, listResponse.Limit, listResponse.TotalItems)
	response.SuccessWithMeta(w, listResponse.Items, meta)
}

// ListRawLogs implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListRawLogs(w http.ResponseWriter, r *http.Request) {
	personnelID := r.URL.Query().Get("personnel_id")
	date := r.URL.Query().Get("date")
	if personnelID == "" || date == "" {
		response.BadRequest(w, "personnel_id and date are required", nil)
		return
	}

	logs, err := h.attendanceService.ListRawLogs(r.Context(), personnelID, date)
	if err != nil {
		slog.Error("List raw logs service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, logs)
}

// CreateLog implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CreateLog(w http.ResponseWriter, r *http.Request) {
	var createReq attendance.CreateLogRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create log decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	logResponse, err := h.attendanceService.CreateLog(r.Context(), createReq)
	if err != nil {
		slog.Error("Create log service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance log created successfully", logResponse)
}

// UpdateLog implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UpdateLog(w http.ResponseWriter, r *http.Request) {
	var updateReq attendance.UpdateLogRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update log decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	logResponse, err := h.attendanceService.UpdateLog(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update log service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance log updated successfully", logResponse)
}

// DeleteLog implements AttendanceHandler.
func (h *AttendanceHandlerImpl) DeleteLog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.attendanceService.DeleteLog(r.Context(), id); err != nil {
		slog.Error("Delete log service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}

// IngestDeviceLogs implements AttendanceHandler.
func (h *AttendanceHandlerImpl) IngestDeviceLogs(w http.ResponseWriter, r *http.Request) {
	var batchReq attendance.DeviceLogBatchRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&batchReq); err != nil {
		slog.Error("Device logs decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := batchReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	batchResponse, err := h.attendanceService.IngestDeviceLogs(r.Context(), batchReq)
	if err != nil {
		slog.Error("Device logs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Device logs accepted", batchResponse)
}

// Reprocess implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Reprocess(w http.ResponseWriter, r *http.Request) {
	var reprocessReq attendance.ReprocessRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&reprocessReq); err != nil {
		slog.Error("Reprocess decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := reprocessReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	summaryResponse, err := h.attendanceService.Reprocess(r.Context(), reprocessReq)
	if err != nil {
		slog.Error("Reprocess service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily summary reprocessed successfully", summaryResponse)
}

// Process implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var processReq attendance.ProcessRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&processReq); err != nil {
		slog.Error("Process decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := processReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	processResponse, err := h.attendanceService.Process(r.Context(), processReq)
	if err != nil {
		slog.Error("Process service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance processed successfully", processResponse)
}
