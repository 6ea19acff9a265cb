package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/folgas-app/folgas-backend-go/internal/domain/employee"
	"github.com/folgas-app/folgas-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// maxPhotoSize bounds avatar uploads before decoding.
const maxPhotoSize = 10 << 20

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Departments(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UploadPhoto(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	rosterService employee.RosterService
}

func NewEmployeeHandler(rosterService employee.RosterService) EmployeeHandler {
	return &EmployeeHandlerImpl{rosterService: rosterService}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	roster, err := h.rosterService.Roster(r.Context())
	if err != nil {
		slog.Error("roster fetch failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, roster)
}

// Departments implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Departments(w http.ResponseWriter, r *http.Request) {
	response.Success(w, employee.SuggestedDepartments)
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.rosterService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", emp)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	emp, err := h.rosterService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", emp)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := h.rosterService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// UploadPhoto implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		response.BadRequest(w, "Field 'photo' is required", nil)
		return
	}
	defer file.Close()

	// One byte past the limit distinguishes "too large" from a short read
	raw, err := io.ReadAll(io.LimitReader(file, maxPhotoSize+1))
	if err != nil {
		response.BadRequest(w, "Unable to read photo file", nil)
		return
	}
	if len(raw) > maxPhotoSize {
		response.BadRequest(w, "Photo must not exceed 10MB", nil)
		return
	}

	emp, err := h.rosterService.UploadPhoto(r.Context(), id, raw)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Photo updated", emp)
}
