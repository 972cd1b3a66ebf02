package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worklog"
	"github.com/cmlabs-hris/palm-payroll-go/internal/handler/http/response"
)

type WorkLogHandler interface {
	CreateWorkLog(w http.ResponseWriter, r *http.Request)
}

type workLogHandlerImpl struct {
	workLogService worklog.WorkLogService
}

func NewWorkLogHandler(workLogService worklog.WorkLogService) WorkLogHandler {
	return &workLogHandlerImpl{workLogService: workLogService}
}

func (h *workLogHandlerImpl) CreateWorkLog(w http.ResponseWriter, r *http.Request) {
	var req worklog.CreateWorkLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.workLogService.CreateWorkLog(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work log recorded", result)
}
