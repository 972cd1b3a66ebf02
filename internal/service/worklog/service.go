package worklog

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worklog"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/calendar"
)

type WorkLogServiceImpl struct {
	workLogRepo  worklog.WorkLogRepository
	workerRepo   worker.WorkerRepository
	customerRepo worker.CustomerRepository
	aggregator   worklog.Aggregator
	calendar     *calendar.Calendar
}

func NewWorkLogService(
	workLogRepo worklog.WorkLogRepository,
	workerRepo worker.WorkerRepository,
	customerRepo worker.CustomerRepository,
	aggregator worklog.Aggregator,
	cal *calendar.Calendar,
) worklog.WorkLogService {
	return &WorkLogServiceImpl{
		workLogRepo:  workLogRepo,
		workerRepo:   workerRepo,
		customerRepo: customerRepo,
		aggregator:   aggregator,
		calendar:     cal,
	}
}

func (s *WorkLogServiceImpl) CreateWorkLog(ctx context.Context, req worklog.CreateWorkLogRequest) (worklog.WorkLogResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.WorkLogResponse{}, err
	}

	logDate, err := calendar.ParseDate(req.LogDate)
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}
	if s.calendar.IsFuture(logDate) {
		return worklog.WorkLogResponse{}, worklog.ErrFutureLogDate
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}
	if !w.IsActive() {
		return worklog.WorkLogResponse{}, worker.ErrWorkerInactive
	}

	c, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}

	rate := c.Rate
	if req.RatePerTon != nil {
		rate = *req.RatePerTon
	}

	created, err := s.workLogRepo.Create(ctx, worklog.WorkLog{
		LogDate:    logDate,
		WorkerID:   w.ID,
		CustomerID: c.ID,
		Tons:       req.Tons,
		RatePerTon: rate,
	})
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}
	created.CustomerName = &c.Name

	return ToWorkLogResponse(created), nil
}

func (s *WorkLogServiceImpl) GetUnsettledLogs(ctx context.Context, workerID string) (worklog.UnsettledLogsResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return worklog.UnsettledLogsResponse{}, err
	}

	// An empty unsettled set is a normal answer here
	agg, err := s.aggregator.Aggregate(ctx, w.ID, worklog.Unsettled())
	switch {
	case errors.Is(err, worklog.ErrNoUnsettledLogs):
		agg = worklog.Summarize(nil)
	case err != nil:
		return worklog.UnsettledLogsResponse{}, err
	}

	resp := worklog.UnsettledLogsResponse{
		Worker: worker.WorkerSummary{ID: w.ID, Name: w.Name, Type: string(w.Type)},
		Logs:   make([]worklog.WorkLogResponse, 0, len(agg.Logs)),
		Summary: worklog.UnsettledSummary{
			Count:       len(agg.Logs),
			TotalTons:   agg.TotalTons,
			TotalAmount: agg.GrossPay,
			FromDate:    formatDatePtr(agg.FromDate),
			ToDate:      formatDatePtr(agg.ToDate),
		},
	}
	for _, l := range agg.Logs {
		resp.Logs = append(resp.Logs, ToWorkLogResponse(l))
	}

	return resp, nil
}

func ToWorkLogResponse(l worklog.WorkLog) worklog.WorkLogResponse {
	return worklog.WorkLogResponse{
		ID:           l.ID,
		LogDate:      calendar.FormatDate(l.LogDate),
		WorkerID:     l.WorkerID,
		CustomerID:   l.CustomerID,
		CustomerName: l.CustomerName,
		Tons:         l.Tons,
		RatePerTon:   l.RatePerTon,
		Amount:       l.Amount(),
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := calendar.FormatDate(*t)
	return &s
}
