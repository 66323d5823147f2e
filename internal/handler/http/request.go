package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/request"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

// RequestHandlerImpl serves one request variant. The same implementation is
// mounted twice, once for leave and once for mission routes.
type RequestHandlerImpl struct {
	requestService request.RequestService
	requestType    request.RequestType
}

func NewRequestHandler(requestService request.RequestService, requestType request.RequestType) RequestHandler {
	return &RequestHandlerImpl{
		requestService: requestService,
		requestType:    requestType,
	}
}

// Create implements RequestHandler.
func (h *RequestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq request.CreateRequestRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.Type = h.requestType

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	requestResponse, err := h.requestService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Request submitted successfully", requestResponse)
}

// Get implements RequestHandler.
func (h *RequestHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	requestResponse, err := h.requestService.Get(r.Context(), id, h.requestType)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requestResponse)
}

// List implements RequestHandler.
func (h *RequestHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := request.RequestFilter{
		Type:         h.requestType,
		PersonnelIDs: queryStrings(r, "personnel_ids"),
		Status:       queryString(r, "status"),
		StartDate:    queryDate(r, "start_date"),
		EndDate:      queryDate(r, "end_date"),
		Page:         queryInt(r, "page"),
		Limit:        queryInt(r, "limit"),
	}

	listResponse, err := h.requestService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List requests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	meta := response.PageMeta(listResponse.Page, listResponse.Limit, listResponse.TotalItems)
	response.SuccessWithMeta(w, listResponse.Items, meta)
}

// Update implements RequestHandler.
func (h *RequestHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq request.UpdateRequestRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update request decode error", "error", err)
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
	requestResponse, err := h.requestService.Update(r.Context(), h.requestType, updateReq)
	if err != nil {
		slog.Error("Update request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request updated successfully", requestResponse)
}

// Delete implements RequestHandler.
func (h *RequestHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.requestService.Delete(r.Context(), id, h.requestType); err != nil {
		slog.Error("Delete request service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}

// UpdateStatus implements RequestHandler.
func (h *RequestHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var statusReq request.UpdateStatusRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("Update request status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	statusReq.ID = chi.URLParam(r, "id")
	statusReq.Type = h.requestType

	// Validate DTO
	if err := statusReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	requestResponse, err := h.requestService.UpdateStatus(r.Context(), statusReq)
	if err != nil {
		slog.Error("Update request status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request status updated successfully", requestResponse)
}
