package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/palm-payroll-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	RunPayroll(w http.ResponseWriter, r *http.Request)
	GetRun(w http.ResponseWriter, r *http.Request)
	ListRuns(w http.ResponseWriter, r *http.Request)
	GetPayslipsPDF(w http.ResponseWriter, r *http.Request)
	CreateAllowance(w http.ResponseWriter, r *http.Request)
	ListAllowances(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== RUNS ==========

func (h *payrollHandlerImpl) RunPayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.RunPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.RunPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll run completed", result)
}

func (h *payrollHandlerImpl) GetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	result, err := h.payrollService.GetRun(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListRuns handles GET /payroll/runs?month=&year=&page=&limit=
func (h *payrollHandlerImpl) ListRuns(w http.ResponseWriter, r *http.Request) {
	var filter payroll.RunFilter

	month, ok := queryInt(r, "month")
	if !ok {
		response.BadRequest(w, "invalid month parameter", nil)
		return
	}
	year, ok := queryInt(r, "year")
	if !ok {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}
	page, ok := queryInt(r, "page")
	if !ok {
		response.BadRequest(w, "invalid page parameter", nil)
		return
	}
	limit, ok := queryInt(r, "limit")
	if !ok {
		response.BadRequest(w, "invalid limit parameter", nil)
		return
	}

	filter.Month, filter.Year = month, year
	if page != nil {
		filter.Page = *page
	}
	if limit != nil {
		filter.Limit = *limit
	}

	result, err := h.payrollService.ListRuns(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := 0
	if result.Limit > 0 {
		totalPages = int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	}
	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

// ========== ALLOWANCES ==========

func (h *payrollHandlerImpl) CreateAllowance(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateAllowanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.CreateAllowance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Allowance created", result)
}

// ListAllowances handles GET /payroll/allowances?month=&year=&worker_id=
func (h *payrollHandlerImpl) ListAllowances(w http.ResponseWriter, r *http.Request) {
	month, ok := queryInt(r, "month")
	if !ok {
		response.BadRequest(w, "invalid month parameter", nil)
		return
	}
	year, ok := queryInt(r, "year")
	if !ok {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}

	filter := payroll.AllowanceFilter{WorkerID: r.URL.Query().Get("worker_id")}
	if month != nil {
		filter.Month = *month
	}
	if year != nil {
		filter.Year = *year
	}

	result, err := h.payrollService.ListAllowances(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== DOCUMENTS ==========

func (h *payrollHandlerImpl) GetPayslipsPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	content, err := h.payrollService.RenderPayslipsPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDF(w, fmt.Sprintf("payslips-%s.pdf", id), content)
}
