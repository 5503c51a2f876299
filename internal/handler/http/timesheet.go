package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/auth"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/timesheet"
	"github.com/cmlabs-hris/shift-payroll/internal/handler/http/middleware"
	"github.com/cmlabs-hris/shift-payroll/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimesheetHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.Service
}

func NewTimesheetHandler(timesheetService timesheet.Service) TimesheetHandler {
	return &timesheetHandlerImpl{timesheetService: timesheetService}
}

// Record lets staff record their own attendance; admins may record for anyone.
func (h *timesheetHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req timesheet.RecordTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.StaffID == "" && !identity.IsAdmin() {
		req.StaffID = identity.StaffID
	}
	if !identity.CanAccessStaff(req.StaffID) {
		response.HandleError(w, auth.ErrOtherStaffAccessDenied)
		return
	}

	result, err := h.timesheetService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timesheet recorded", result)
}

func (h *timesheetHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req timesheet.UpdateTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.timesheetService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
