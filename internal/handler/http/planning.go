package http

import (
	"net/http"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/auth"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/planning"
	"github.com/cmlabs-hris/shift-payroll/internal/handler/http/middleware"
	"github.com/cmlabs-hris/shift-payroll/internal/handler/http/response"
)

type PlanningHandler interface {
	GetPlanning(w http.ResponseWriter, r *http.Request)
}

type planningHandlerImpl struct {
	planningService planning.Service
}

func NewPlanningHandler(planningService planning.Service) PlanningHandler {
	return &planningHandlerImpl{planningService: planningService}
}

// GetPlanning serves the admin view when staff_id is omitted by an admin and
// the published self-service view otherwise.
func (h *planningHandlerImpl) GetPlanning(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := r.URL.Query()
	req := planning.GetPlanningRequest{
		From: query.Get("from"),
		To:   query.Get("to"),
	}
	if staffID := query.Get("staff_id"); staffID != "" {
		req.StaffID = &staffID
	} else if !identity.IsAdmin() {
		req.StaffID = &identity.StaffID
	}
	if req.StaffID != nil && !identity.CanAccessStaff(*req.StaffID) {
		response.HandleError(w, auth.ErrOtherStaffAccessDenied)
		return
	}

	views, err := h.planningService.GetPlanning(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	meta := &response.Meta{From: req.From, To: req.To, Staff: len(views)}
	for _, v := range views {
		meta.Warnings += len(v.Warnings)
		if v.Error != "" {
			meta.Failed++
		}
	}
	response.SuccessWithMeta(w, views, meta)
}
