package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CalendarHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AddHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &CalendarHandlerImpl{calendarService: calendarService}
}

// Create implements CalendarHandler.
func (h *CalendarHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq calendar.CreateCalendarRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create calendar decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	calendarResponse, err := h.calendarService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create calendar service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Calendar created successfully", calendarResponse)
}

// Get implements CalendarHandler.
func (h *CalendarHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	calendarResponse, err := h.calendarService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, calendarResponse)
}

// List implements CalendarHandler.
func (h *CalendarHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	calendars, err := h.calendarService.List(r.Context())
	if err != nil {
		slog.Error("List calendars service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, calendars)
}

// Update implements CalendarHandler.
func (h *CalendarHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq calendar.UpdateCalendarRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update calendar decode error", "error", err)
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
	calendarResponse, err := h.calendarService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update calendar service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Calendar updated successfully", calendarResponse)
}

// Delete implements CalendarHandler.
func (h *CalendarHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.calendarService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete calendar service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}

// AddHoliday implements CalendarHandler.
func (h *CalendarHandlerImpl) AddHoliday(w http.ResponseWriter, r *http.Request) {
	var createReq calendar.CreateHolidayRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Add holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.CalendarID = chi.URLParam(r, "id")

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	holidayResponse, err := h.calendarService.AddHoliday(r.Context(), createReq)
	if err != nil {
		slog.Error("Add holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday added successfully", holidayResponse)
}

// ListHolidays implements CalendarHandler.
func (h *CalendarHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	calendarID := chi.URLParam(r, "id")

	holidays, err := h.calendarService.ListHolidays(r.Context(), calendarID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, holidays)
}

// DeleteHoliday implements CalendarHandler.
func (h *CalendarHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	holidayID := chi.URLParam(r, "holidayID")

	if err := h.calendarService.DeleteHoliday(r.Context(), holidayID); err != nil {
		slog.Error("Delete holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}
