package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/personnel"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PersonnelHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type PersonnelHandlerImpl struct {
	personnelService personnel.PersonnelService
}

func NewPersonnelHandler(personnelService personnel.PersonnelService) PersonnelHandler {
	return &PersonnelHandlerImpl{personnelService: personnelService}
}

// Create implements PersonnelHandler.
func (h *PersonnelHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq personnel.CreatePersonnelRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create personnel decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	personnelResponse, err := h.personnelService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create personnel service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Personnel created successfully", personnelResponse)
}

// Get implements PersonnelHandler.
func (h *PersonnelHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	personnelResponse, err := h.personnelService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, personnelResponse)
}

// List implements PersonnelHandler.
func (h *PersonnelHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := personnel.PersonnelFilter{
		UnitID:   queryString(r, "unit_id"),
		Search:   queryString(r, "search"),
		IsActive: queryBool(r, "is_active"),
		Page:     queryInt(r, "page"),
		Limit:    queryInt(r, "limit"),
	}

	listResponse, err := h.personnelService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List personnel service error", "error", err)
		response.HandleError(w, err)
		return
	}

	meta := response.PageMeta(listResponse.Page, listResponse.Limit, listResponse.TotalItems)
	response.SuccessWithMeta(w, listResponse.Items, meta)
}

// Update implements PersonnelHandler.
func (h *PersonnelHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq personnel.UpdatePersonnelRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update personnel decode error", "error", err)
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
	personnelResponse, err := h.personnelService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update personnel service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Personnel updated successfully", personnelResponse)
}

// Deactivate implements PersonnelHandler.
func (h *PersonnelHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.personnelService.Deactivate(r.Context(), id); err != nil {
		slog.Error("Deactivate personnel service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}
