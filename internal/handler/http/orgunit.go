package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/orgunit"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OrgUnitHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Tree(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type OrgUnitHandlerImpl struct {
	orgUnitService orgunit.OrgUnitService
}

func NewOrgUnitHandler(orgUnitService orgunit.OrgUnitService) OrgUnitHandler {
	return &OrgUnitHandlerImpl{orgUnitService: orgUnitService}
}

// Create implements OrgUnitHandler.
func (h *OrgUnitHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq orgunit.CreateOrgUnitRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create org unit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	unitResponse, err := h.orgUnitService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create org unit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Organizational unit created successfully", unitResponse)
}

// Get implements OrgUnitHandler.
func (h *OrgUnitHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	unitResponse, err := h.orgUnitService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, unitResponse)
}

// List implements OrgUnitHandler.
func (h *OrgUnitHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	units, err := h.orgUnitService.List(r.Context())
	if err != nil {
		slog.Error("List org units service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, units)
}

// Tree implements OrgUnitHandler.
func (h *OrgUnitHandlerImpl) Tree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.orgUnitService.Tree(r.Context())
	if err != nil {
		slog.Error("Org unit tree service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, tree)
}

// Update implements OrgUnitHandler.
func (h *OrgUnitHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq orgunit.UpdateOrgUnitRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update org unit decode error", "error", err)
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
	unitResponse, err := h.orgUnitService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update org unit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Organizational unit updated successfully", unitResponse)
}

// Delete implements OrgUnitHandler.
func (h *OrgUnitHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.orgUnitService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete org unit service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}
