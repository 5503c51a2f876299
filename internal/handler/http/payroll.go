package http

import (
	"net/http"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/shift-payroll/internal/handler/http/response"
)

type PayrollHandler interface {
	GetPayroll(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) GetPayroll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := payroll.GetPayrollRequest{
		From: query.Get("from"),
		To:   query.Get("to"),
	}
	if search := query.Get("search"); search != "" {
		req.Search = &search
	}

	views, err := h.payrollService.GetPayroll(r.Context(), req)
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
