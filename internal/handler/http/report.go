package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	PayrollExport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Summary implements ReportHandler.
func (h *ReportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	var summaryReq report.SummaryReportRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&summaryReq); err != nil {
		slog.Error("Summary report decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := summaryReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	summaryResponse, err := h.reportService.Summary(r.Context(), summaryReq)
	if err != nil {
		slog.Error("Summary report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaryResponse)
}

// PayrollExport implements ReportHandler.
func (h *ReportHandlerImpl) PayrollExport(w http.ResponseWriter, r *http.Request) {
	var exportReq report.PayrollExportRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&exportReq); err != nil {
		slog.Error("Payroll export decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := exportReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// The CSV is buffered so a late failure still produces a clean JSON
	// error instead of a truncated download.
	var buf bytes.Buffer
	filename, err := h.reportService.PayrollExport(r.Context(), exportReq, &buf)
	if err != nil {
		slog.Error("Payroll export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Payroll export write error", "error", err)
	}
}
