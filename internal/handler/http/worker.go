package http

import (
	"net/http"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worklog"
	"github.com/cmlabs-hris/palm-payroll-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkerHandler interface {
	ListWorkers(w http.ResponseWriter, r *http.Request)
	GetWorker(w http.ResponseWriter, r *http.Request)
	GetUnsettledLogs(w http.ResponseWriter, r *http.Request)
}

type workerHandlerImpl struct {
	workerService  worker.WorkerService
	workLogService worklog.WorkLogService
}

func NewWorkerHandler(workerService worker.WorkerService, workLogService worklog.WorkLogService) WorkerHandler {
	return &workerHandlerImpl{
		workerService:  workerService,
		workLogService: workLogService,
	}
}

// ListWorkers handles GET /workers?type=&status=
func (h *workerHandlerImpl) ListWorkers(w http.ResponseWriter, r *http.Request) {
	filter := worker.ListWorkersFilter{
		Type:   r.URL.Query().Get("type"),
		Status: r.URL.Query().Get("status"),
	}

	result, err := h.workerService.ListWorkers(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workerHandlerImpl) GetWorker(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Worker ID is required", nil)
		return
	}

	result, err := h.workerService.GetWorker(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetUnsettledLogs handles GET /workers/{id}/unsettled-logs
func (h *workerHandlerImpl) GetUnsettledLogs(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Worker ID is required", nil)
		return
	}

	result, err := h.workLogService.GetUnsettledLogs(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
