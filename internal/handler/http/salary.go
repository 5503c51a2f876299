package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/auth"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/salary"
	"github.com/cmlabs-hris/shift-payroll/internal/handler/http/middleware"
	"github.com/cmlabs-hris/shift-payroll/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SalaryHandler interface {
	GetSalary(w http.ResponseWriter, r *http.Request)
	GetSalaryHistory(w http.ResponseWriter, r *http.Request)
	ChangeWage(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.Service
}

func NewSalaryHandler(salaryService salary.Service) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

// GetSalary returns the current wage, or the wage in effect on ?at=YYYY-MM-DD.
func (h *salaryHandlerImpl) GetSalary(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")
	if !h.canAccess(w, r, staffID) {
		return
	}

	var (
		result salary.SalaryResponse
		err    error
	)
	if at := r.URL.Query().Get("at"); at != "" {
		result, err = h.salaryService.GetAt(r.Context(), staffID, at)
	} else {
		result, err = h.salaryService.GetCurrent(r.Context(), staffID)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) GetSalaryHistory(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")
	if !h.canAccess(w, r, staffID) {
		return
	}

	result, err := h.salaryService.GetHistory(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) ChangeWage(w http.ResponseWriter, r *http.Request) {
	var req salary.ChangeWageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.StaffID = chi.URLParam(r, "id")

	result, err := h.salaryService.ChangeWage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Hourly wage changed", result)
}

func (h *salaryHandlerImpl) canAccess(w http.ResponseWriter, r *http.Request, staffID string) bool {
	identity, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return false
	}
	if !identity.CanAccessStaff(staffID) {
		response.HandleError(w, auth.ErrOtherStaffAccessDenied)
		return false
	}
	return true
}
