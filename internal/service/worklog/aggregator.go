package worklog

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worklog"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/calendar"
)

type aggregator struct {
	repo worklog.WorkLogRepository
}

func NewAggregator(repo worklog.WorkLogRepository) worklog.Aggregator {
	return &aggregator{repo: repo}
}

// Aggregate runs on whatever querier ctx carries, so inside a transaction the
// unsettled set is re-read and locked there.
func (a *aggregator) Aggregate(ctx context.Context, workerID string, filter worklog.DateFilter) (worklog.Aggregation, error) {
	switch filter.Mode {
	case worklog.FilterMonthly:
		from, to := calendar.MonthRange(filter.Year, filter.Month)
		logs, err := a.repo.ListByWorkerBetween(ctx, workerID, from, to)
		if err != nil {
			return worklog.Aggregation{}, err
		}
		return worklog.Summarize(logs), nil

	case worklog.FilterUnsettled:
		logs, err := a.repo.ListUnsettledByWorker(ctx, workerID, filter.Lock)
		if err != nil {
			return worklog.Aggregation{}, err
		}
		if len(logs) == 0 {
			return worklog.Aggregation{}, worklog.ErrNoUnsettledLogs
		}
		return worklog.Summarize(logs), nil

	default:
		return worklog.Aggregation{}, fmt.Errorf("unknown work log filter mode %d", filter.Mode)
	}
}
