package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/request"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// MasterHandler serves the leave and mission type catalogs.
type MasterHandler interface {
	CreateLeaveType(w http.ResponseWriter, r *http.Request)
	ListLeaveTypes(w http.ResponseWriter, r *http.Request)
	DeleteLeaveType(w http.ResponseWriter, r *http.Request)
	CreateMissionType(w http.ResponseWriter, r *http.Request)
	ListMissionTypes(w http.ResponseWriter, r *http.Request)
	DeleteMissionType(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	requestService request.RequestService
}

func NewMasterHandler(requestService request.RequestService) MasterHandler {
	return &MasterHandlerImpl{requestService: requestService}
}

// CreateLeaveType implements MasterHandler.
func (h *MasterHandlerImpl) CreateLeaveType(w http.ResponseWriter, r *http.Request) {
	var createReq request.CreateTypeRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create leave type decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	typeResponse, err := h.requestService.CreateLeaveType(r.Context(), createReq)
	if err != nil {
		slog.Error("Create leave type service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave type created successfully", typeResponse)
}

// ListLeaveTypes implements MasterHandler.
func (h *MasterHandlerImpl) ListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.requestService.ListLeaveTypes(r.Context())
	if err != nil {
		slog.Error("List leave types service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, types)
}

// DeleteLeaveType implements MasterHandler.
func (h *MasterHandlerImpl) DeleteLeaveType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.requestService.DeleteLeaveType(r.Context(), id); err != nil {
		slog.Error("Delete leave type service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}

// CreateMissionType implements MasterHandler.
func (h *MasterHandlerImpl) CreateMissionType(w http.ResponseWriter, r *http.Request) {
	var createReq request.CreateTypeRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create mission type decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	typeResponse, err := h.requestService.CreateMissionType(r.Context(), createReq)
	if err != nil {
		slog.Error("Create mission type service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Mission type created successfully", typeResponse)
}

// ListMissionTypes implements MasterHandler.
func (h *MasterHandlerImpl) ListMissionTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.requestService.ListMissionTypes(r.Context())
	if err != nil {
		slog.Error("List mission types service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, types)
}

// DeleteMissionType implements MasterHandler.
func (h *MasterHandlerImpl) DeleteMissionType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.requestService.DeleteMissionType(r.Context(), id); err != nil {
		slog.Error("Delete mission type service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}
