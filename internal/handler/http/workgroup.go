package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/workgroup"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkGroupHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type WorkGroupHandlerImpl struct {
	workGroupService workgroup.WorkGroupService
}

func NewWorkGroupHandler(workGroupService workgroup.WorkGroupService) WorkGroupHandler {
	return &WorkGroupHandlerImpl{workGroupService: workGroupService}
}

// Create implements WorkGroupHandler.
func (h *WorkGroupHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq workgroup.CreateWorkGroupRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create work group decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	groupResponse, err := h.workGroupService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create work group service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work group created successfully", groupResponse)
}

// Get implements WorkGroupHandler.
func (h *WorkGroupHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	groupResponse, err := h.workGroupService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, groupResponse)
}

// List implements WorkGroupHandler.
func (h *WorkGroupHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.workGroupService.List(r.Context())
	if err != nil {
		slog.Error("List work groups service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, groups)
}

// Update implements WorkGroupHandler.
func (h *WorkGroupHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq workgroup.UpdateWorkGroupRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update work group decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	// Call service. Validation happens inside because the rotation rules
	// depend on the stored group.
	groupResponse, err := h.workGroupService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update work group service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work group updated successfully", groupResponse)
}

// Delete implements WorkGroupHandler.
func (h *WorkGroupHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.workGroupService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete work group service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}
