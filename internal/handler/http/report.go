package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/report"
	"github.com/cmlabs-hris/palm-payroll-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetManagementReport(w http.ResponseWriter, r *http.Request)
	GetManagementReportPDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetManagementReport handles POST /reports/management
func (h *reportHandlerImpl) GetManagementReport(w http.ResponseWriter, r *http.Request) {
	var req report.ManagementReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.reportService.GenerateManagementReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetManagementReportPDF handles POST /reports/management.pdf
func (h *reportHandlerImpl) GetManagementReportPDF(w http.ResponseWriter, r *http.Request) {
	var req report.ManagementReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	content, err := h.reportService.RenderManagementReportPDF(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDF(w, fmt.Sprintf("management-report-%d-%02d.pdf", req.Year, req.Month), content)
}
